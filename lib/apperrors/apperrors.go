package apperrors

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
)

// Базовые типы ошибок бизнес-логики.
// Провайдеры возвращают ошибку, обернутую над одной из них,
// контроллеры по errors.Is подбирают http статус.
var (
	ErrValidation          = errors.New("некорректные данные")
	ErrNotFound            = errors.New("запись не найдена")
	ErrInvalidState        = errors.New("операция недоступна в текущем статусе")
	ErrCapacityExceeded    = errors.New("нет свободных вакансий")
	ErrConstraintViolation = errors.New("нарушение целостности данных")
)

func Validation(msg string) error {
	return errors.WithMessage(ErrValidation, msg)
}

func NotFound(msg string) error {
	return errors.WithMessage(ErrNotFound, msg)
}

func InvalidState(msg string) error {
	return errors.WithMessage(ErrInvalidState, msg)
}

func CapacityExceeded(msg string) error {
	return errors.WithMessage(ErrCapacityExceeded, msg)
}

func ConstraintViolation(msg string) error {
	return errors.WithMessage(ErrConstraintViolation, msg)
}

// StatusCode подбирает http статус по типу ошибки
func StatusCode(err error) int {
	switch {
	case errors.Is(err, ErrValidation):
		return fiber.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, ErrInvalidState),
		errors.Is(err, ErrCapacityExceeded),
		errors.Is(err, ErrConstraintViolation):
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}
