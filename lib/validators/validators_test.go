package validators

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"hr-system-backend/models"
	dbmodels "hr-system-backend/models/db"
)

func intPtr(v int) *int {
	return &v
}

func TestIsValidAge(t *testing.T) {
	at := time.Date(2025, 4, 10, 12, 0, 0, 0, time.UTC)

	t.Run(`мужчина младше пенсионного возраста`, func(t *testing.T) {
		result := isValidAgeAt("1990-01-01", models.GenderMale, at)
		require.Equal(t, Valid, result)
	})

	t.Run(`мужчина на пороге пенсионного возраста`, func(t *testing.T) {
		// ровно 65 лет на дату проверки
		result := isValidAgeAt("1960-04-10", models.GenderMale, at)
		require.Equal(t, Invalid, result)
	})

	t.Run(`мужчине 64, день рождения еще не наступил`, func(t *testing.T) {
		result := isValidAgeAt("1960-04-11", models.GenderMale, at)
		require.Equal(t, Valid, result)
	})

	t.Run(`женщина на пороге пенсионного возраста`, func(t *testing.T) {
		result := isValidAgeAt("1965-04-10", models.GenderFemale, at)
		require.Equal(t, Invalid, result)
	})

	t.Run(`женщина младше пенсионного возраста`, func(t *testing.T) {
		result := isValidAgeAt("1965-04-11", models.GenderFemale, at)
		require.Equal(t, Valid, result)
	})

	t.Run(`64-летний мужчина валиден, женщина того же возраста нет`, func(t *testing.T) {
		dob := "1961-01-01"
		require.Equal(t, Valid, isValidAgeAt(dob, models.GenderMale, at))
		require.Equal(t, Invalid, isValidAgeAt(dob, models.GenderFemale, at))
	})

	t.Run(`некорректная дата рождения`, func(t *testing.T) {
		require.Equal(t, Indeterminate, isValidAgeAt("01.01.1990", models.GenderMale, at))
		require.Equal(t, Indeterminate, isValidAgeAt("", models.GenderMale, at))
	})

	t.Run(`дата рождения в будущем`, func(t *testing.T) {
		require.Equal(t, Indeterminate, isValidAgeAt("2030-01-01", models.GenderMale, at))
	})

	t.Run(`некорректный пол`, func(t *testing.T) {
		require.Equal(t, Indeterminate, isValidAgeAt("1990-01-01", models.Gender("OTHER"), at))
	})
}

func TestIsEducationValidForPosition(t *testing.T) {
	professorPosition := &dbmodels.Position{
		Name:                    "Профессор",
		RequiresHigherEducation: true,
	}
	labPosition := &dbmodels.Position{
		Name: "Лаборант",
	}

	t.Run(`должность требует высшего образования`, func(t *testing.T) {
		require.Equal(t, Valid, IsEducationValidForPosition(models.EducationHigher, professorPosition))
		require.Equal(t, Invalid, IsEducationValidForPosition(models.EducationNonHigher, professorPosition))
	})

	t.Run(`должность без требования к образованию`, func(t *testing.T) {
		require.Equal(t, Valid, IsEducationValidForPosition(models.EducationHigher, labPosition))
		require.Equal(t, Valid, IsEducationValidForPosition(models.EducationNonHigher, labPosition))
	})

	t.Run(`нет должности или уровня`, func(t *testing.T) {
		require.Equal(t, Indeterminate, IsEducationValidForPosition(models.EducationHigher, nil))
		require.Equal(t, Indeterminate, IsEducationValidForPosition(models.EducationLevel(""), labPosition))
	})
}

func TestIsValidExperience(t *testing.T) {
	assistantPosition := &dbmodels.Position{
		Name:        "Ассистент",
		IsAssistant: true,
	}
	docentPosition := &dbmodels.Position{
		Name: "Доцент",
	}

	t.Run(`ассистенту академический стаж не требуется`, func(t *testing.T) {
		require.Equal(t, Valid, IsValidExperience(intPtr(1), intPtr(0), assistantPosition))
	})

	t.Run(`не-ассистенту требуется 3 года академического стажа`, func(t *testing.T) {
		require.Equal(t, Invalid, IsValidExperience(intPtr(10), intPtr(2), docentPosition))
		require.Equal(t, Valid, IsValidExperience(intPtr(10), intPtr(3), docentPosition))
	})

	t.Run(`академический стаж не может превышать общий`, func(t *testing.T) {
		require.Equal(t, Invalid, IsValidExperience(intPtr(2), intPtr(5), assistantPosition))
	})

	t.Run(`незаполненный стаж`, func(t *testing.T) {
		require.Equal(t, Indeterminate, IsValidExperience(nil, intPtr(1), docentPosition))
		require.Equal(t, Indeterminate, IsValidExperience(intPtr(1), nil, docentPosition))
		require.Equal(t, Indeterminate, IsValidExperience(intPtr(-1), intPtr(0), docentPosition))
		require.Equal(t, Indeterminate, IsValidExperience(intPtr(1), intPtr(1), nil))
	})
}

func TestIsValidTariffRate(t *testing.T) {
	t.Run(`границы диапазона`, func(t *testing.T) {
		require.Equal(t, Valid, IsValidTariffRate(intPtr(1)))
		require.Equal(t, Valid, IsValidTariffRate(intPtr(18)))
		require.Equal(t, Invalid, IsValidTariffRate(intPtr(0)))
		require.Equal(t, Invalid, IsValidTariffRate(intPtr(19)))
	})

	t.Run(`не указан`, func(t *testing.T) {
		require.Equal(t, Indeterminate, IsValidTariffRate(nil))
	})
}

func TestIsValidProficiencyLevel(t *testing.T) {
	t.Run(`известные уровни`, func(t *testing.T) {
		for _, level := range []models.ProficiencyLevel{
			models.ProficiencyElementary,
			models.ProficiencyIntermediate,
			models.ProficiencyAdvanced,
			models.ProficiencyFluent,
			models.ProficiencyNative,
		} {
			require.Equal(t, Valid, IsValidProficiencyLevel(level))
		}
	})

	t.Run(`неизвестный уровень`, func(t *testing.T) {
		require.Equal(t, Invalid, IsValidProficiencyLevel(models.ProficiencyLevel("PERFECT")))
	})
}

func TestIsValidDateNotInFuture(t *testing.T) {
	t.Run(`прошлое и будущее`, func(t *testing.T) {
		past := time.Now().Add(-time.Hour)
		future := time.Now().Add(time.Hour)
		require.Equal(t, Valid, IsValidDateNotInFuture(&past))
		require.Equal(t, Invalid, IsValidDateNotInFuture(&future))
		require.Equal(t, Indeterminate, IsValidDateNotInFuture(nil))
	})
}
