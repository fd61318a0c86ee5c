package dateutils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseISODate(t *testing.T) {
	t.Run(`корректная дата`, func(t *testing.T) {
		date, ok := ParseISODate("2024-02-29")
		require.True(t, ok)
		require.Equal(t, 2024, date.Year())
		require.Equal(t, time.February, date.Month())
		require.Equal(t, 29, date.Day())
	})

	t.Run(`некорректные значения`, func(t *testing.T) {
		for _, value := range []string{"", "29.02.2024", "2024-13-01", "2023-02-29", "сегодня"} {
			_, ok := ParseISODate(value)
			require.False(t, ok, value)
		}
	})
}

func TestFormatDateForDisplay(t *testing.T) {
	t.Run(`iso дата переводится в отображаемый формат`, func(t *testing.T) {
		require.Equal(t, "01.09.2024", FormatDateForDisplay("2024-09-01"))
	})

	t.Run(`неразбираемое значение возвращается как есть`, func(t *testing.T) {
		require.Equal(t, "not-a-date", FormatDateForDisplay("not-a-date"))
	})
}

func TestCalculateAgeAt(t *testing.T) {
	at := time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC)

	t.Run(`полных лет на дату`, func(t *testing.T) {
		age, ok := CalculateAgeAt("1990-01-01", at)
		require.True(t, ok)
		require.Equal(t, 35, age)
	})

	t.Run(`день рождения еще не наступил`, func(t *testing.T) {
		age, ok := CalculateAgeAt("1990-04-11", at)
		require.True(t, ok)
		require.Equal(t, 34, age)
	})

	t.Run(`день рождения сегодня`, func(t *testing.T) {
		age, ok := CalculateAgeAt("1990-04-10", at)
		require.True(t, ok)
		require.Equal(t, 35, age)
	})

	t.Run(`дата рождения в будущем`, func(t *testing.T) {
		_, ok := CalculateAgeAt("2030-01-01", at)
		require.False(t, ok)
	})

	t.Run(`неразбираемая дата`, func(t *testing.T) {
		_, ok := CalculateAgeAt("10.04.1990", at)
		require.False(t, ok)
	})
}
