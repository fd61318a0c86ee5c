package dateutils

import (
	"time"
)

// ISODateFormat - единственный формат хранения дат (ISO 8601)
const ISODateFormat = "2006-01-02"

// DisplayDateFormat - формат отображения для отчетов
const DisplayDateFormat = "02.01.2006"

// ParseISODate разбирает дату из строки YYYY-MM-DD.
func ParseISODate(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}
	date, err := time.Parse(ISODateFormat, value)
	if err != nil {
		return time.Time{}, false
	}
	return date, true
}

func FormatISODate(date time.Time) string {
	return date.Format(ISODateFormat)
}

func FormatDateForDisplay(isoDate string) string {
	date, ok := ParseISODate(isoDate)
	if !ok {
		return isoDate
	}
	return date.Format(DisplayDateFormat)
}

func CurrentISODate() string {
	return time.Now().Format(ISODateFormat)
}

// CalculateAge считает полных лет на текущую дату.
// ok=false, если дата не разбирается или находится в будущем.
func CalculateAge(dateOfBirth string) (age int, ok bool) {
	return CalculateAgeAt(dateOfBirth, time.Now())
}

// CalculateAgeAt считает полных лет на заданную дату.
func CalculateAgeAt(dateOfBirth string, at time.Time) (age int, ok bool) {
	birth, ok := ParseISODate(dateOfBirth)
	if !ok {
		return 0, false
	}
	if birth.After(at) {
		return 0, false
	}
	age = at.Year() - birth.Year()
	// день рождения в этом году еще не наступил
	if at.Month() < birth.Month() ||
		(at.Month() == birth.Month() && at.Day() < birth.Day()) {
		age--
	}
	return age, true
}
