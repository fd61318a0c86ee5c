package models

type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
)

var genderHumanName = map[Gender]string{
	GenderMale:   "Мужской",
	GenderFemale: "Женский",
}

func (g Gender) IsValid() bool {
	_, exist := genderHumanName[g]
	return exist
}

func (g Gender) ToHuman() string {
	if human, exist := genderHumanName[g]; exist {
		return human
	}
	return string(g)
}

type EducationLevel string

const (
	EducationHigher    EducationLevel = "HIGHER"
	EducationNonHigher EducationLevel = "NON_HIGHER"
)

var educationHumanName = map[EducationLevel]string{
	EducationHigher:    "Высшее",
	EducationNonHigher: "Не высшее",
}

func (e EducationLevel) IsValid() bool {
	_, exist := educationHumanName[e]
	return exist
}

func (e EducationLevel) ToHuman() string {
	if human, exist := educationHumanName[e]; exist {
		return human
	}
	return string(e)
}

type EmployeeStatus string

const (
	// EmployeeStatusNew - необработанная заявка кандидата
	EmployeeStatusNew EmployeeStatus = "NEW"
	// EmployeeStatusAccepted - действующий сотрудник с табельным номером и тарифным разрядом
	EmployeeStatusAccepted EmployeeStatus = "ACCEPTED"
)

var employeeStatusHumanName = map[EmployeeStatus]string{
	EmployeeStatusNew:      "Заявка",
	EmployeeStatusAccepted: "Принят",
}

func (s EmployeeStatus) ToHuman() string {
	if human, exist := employeeStatusHumanName[s]; exist {
		return human
	}
	return string(s)
}

func (s EmployeeStatus) IsValid() bool {
	return s == EmployeeStatusNew || s == EmployeeStatusAccepted
}

type ProficiencyLevel string

const (
	ProficiencyElementary   ProficiencyLevel = "ELEMENTARY"
	ProficiencyIntermediate ProficiencyLevel = "INTERMEDIATE"
	ProficiencyAdvanced     ProficiencyLevel = "ADVANCED"
	ProficiencyFluent       ProficiencyLevel = "FLUENT"
	ProficiencyNative       ProficiencyLevel = "NATIVE"
)

var proficiencyHumanName = map[ProficiencyLevel]string{
	ProficiencyElementary:   "Начальный",
	ProficiencyIntermediate: "Средний",
	ProficiencyAdvanced:     "Продвинутый",
	ProficiencyFluent:       "Свободно",
	ProficiencyNative:       "Родной",
}

func (p ProficiencyLevel) IsValid() bool {
	_, exist := proficiencyHumanName[p]
	return exist
}

func (p ProficiencyLevel) ToHuman() string {
	if human, exist := proficiencyHumanName[p]; exist {
		return human
	}
	return string(p)
}

type UserRole string

const (
	UserRoleHR    UserRole = "HR"
	UserRoleAdmin UserRole = "ADMIN"
)

var roleHumanName = map[UserRole]string{
	UserRoleHR:    "Сотрудник отдела кадров",
	UserRoleAdmin: "Администратор",
}

func (r UserRole) IsValid() bool {
	_, exist := roleHumanName[r]
	return exist
}

func (r UserRole) ToHuman() string {
	if human, exist := roleHumanName[r]; exist {
		return human
	}
	return string(r)
}

func (r UserRole) IsAdmin() bool {
	return r == UserRoleAdmin
}
