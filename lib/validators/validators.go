package validators

import (
	"time"

	"hr-system-backend/lib/utils/dateutils"
	"hr-system-backend/models"
	dbmodels "hr-system-backend/models/db"
)

// Пенсионный возраст
const (
	RetirementAgeMale   = 65
	RetirementAgeFemale = 60
)

// Минимальный академический стаж для не-ассистентов
const MinAcademicExpForNonAssistant = 3

// Тарифный разряд
const (
	MinTariffRate = 1
	MaxTariffRate = 18
)

// CheckResult - трехзначный результат проверки.
// Indeterminate означает некорректные/незаполненные входные данные
// и отличается от Invalid: поле заполнено неверно vs не заполнено вовсе.
// Для вызывающего кода оба случая - ошибка валидации, но с разным сообщением.
type CheckResult int8

const (
	Indeterminate CheckResult = iota
	Invalid
	Valid
)

func (r CheckResult) IsValid() bool {
	return r == Valid
}

// IsValidAge проверяет возраст кандидата на соответствие пенсионному порогу.
// Возраст считается полными годами на текущую дату.
func IsValidAge(dateOfBirth string, gender models.Gender) CheckResult {
	return isValidAgeAt(dateOfBirth, gender, time.Now())
}

func isValidAgeAt(dateOfBirth string, gender models.Gender, at time.Time) CheckResult {
	if !gender.IsValid() {
		return Indeterminate
	}
	age, ok := dateutils.CalculateAgeAt(dateOfBirth, at)
	if !ok {
		return Indeterminate
	}
	retirementAge := RetirementAgeMale
	if gender == models.GenderFemale {
		retirementAge = RetirementAgeFemale
	}
	if age < retirementAge {
		return Valid
	}
	return Invalid
}

// IsEducationValidForPosition проверяет соответствие уровня образования должности.
func IsEducationValidForPosition(educationLevel models.EducationLevel, position *dbmodels.Position) CheckResult {
	if position == nil || !educationLevel.IsValid() {
		return Indeterminate
	}
	if position.RequiresHigherEducation && educationLevel != models.EducationHigher {
		return Invalid
	}
	return Valid
}

// IsValidExperience проверяет общий и академический стаж.
// Для должностей не-ассистентов академический стаж не менее 3 лет.
func IsValidExperience(totalExperience, academicExperience *int, position *dbmodels.Position) CheckResult {
	if totalExperience == nil || academicExperience == nil || position == nil ||
		*totalExperience < 0 || *academicExperience < 0 {
		return Indeterminate
	}
	if *academicExperience > *totalExperience {
		return Invalid
	}
	if !position.IsAssistant && *academicExperience < MinAcademicExpForNonAssistant {
		return Invalid
	}
	return Valid
}

// IsValidTariffRate проверяет тарифный разряд, допустимый диапазон [1, 18].
func IsValidTariffRate(rate *int) CheckResult {
	if rate == nil {
		return Indeterminate
	}
	if *rate >= MinTariffRate && *rate <= MaxTariffRate {
		return Valid
	}
	return Invalid
}

// IsValidProficiencyLevel проверяет уровень владения языком.
func IsValidProficiencyLevel(level models.ProficiencyLevel) CheckResult {
	if level.IsValid() {
		return Valid
	}
	return Invalid
}

// IsValidDateNotInFuture проверяет, что дата не в будущем.
func IsValidDateNotInFuture(date *time.Time) CheckResult {
	if date == nil {
		return Indeterminate
	}
	if date.After(time.Now()) {
		return Invalid
	}
	return Valid
}
