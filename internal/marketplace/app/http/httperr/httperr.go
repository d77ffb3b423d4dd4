// Package httperr сопоставляет доменные ошибки с HTTP-ответами.
package httperr

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v3"

	"notemarket/internal/marketplace/domain/entities"
	domainsvc "notemarket/internal/marketplace/domain/services"
	portsvc "notemarket/internal/marketplace/ports/services"
)

const msgInternalError = "internal server error"

// knownErrors перечисляет доменные ошибки, текст которых можно показывать клиенту.
var knownErrors = []error{
	entities.ErrMissingUserFields,
	entities.ErrInvalidRole,
	entities.ErrEmailAlreadyExists,
	entities.ErrInvalidCredentials,
	entities.ErrSellerNotFound,
	entities.ErrMissingNoteFields,
	entities.ErrInvalidPrice,
	entities.ErrMissingFile,
	entities.ErrNoteUnavailable,
	entities.ErrMissingPurchaseFields,
	domainsvc.ErrInvalidPassword,
	portsvc.ErrFileNotFound,
}

// Status возвращает HTTP-статус для доменной ошибки.
func Status(err error) int {
	switch {
	case errors.Is(err, entities.ErrMissingUserFields),
		errors.Is(err, entities.ErrInvalidRole),
		errors.Is(err, entities.ErrMissingNoteFields),
		errors.Is(err, entities.ErrInvalidPrice),
		errors.Is(err, entities.ErrMissingFile),
		errors.Is(err, entities.ErrMissingPurchaseFields),
		errors.Is(err, domainsvc.ErrInvalidPassword):
		return http.StatusBadRequest
	case errors.Is(err, entities.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, entities.ErrSellerNotFound),
		errors.Is(err, entities.ErrNoteUnavailable),
		errors.Is(err, portsvc.ErrFileNotFound):
		return http.StatusNotFound
	case errors.Is(err, entities.ErrEmailAlreadyExists):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Message возвращает текст ошибки без внутренних деталей.
func Message(err error) string {
	for _, known := range knownErrors {
		if errors.Is(err, known) {
			return known.Error()
		}
	}
	return msgInternalError
}

// Respond отправляет клиенту JSON-ответ с ошибкой.
func Respond(ctx fiber.Ctx, err error) error {
	if sendErr := ctx.Status(Status(err)).JSON(fiber.Map{
		"error": Message(err),
	}); sendErr != nil {
		return fmt.Errorf("sending error response: %w", sendErr)
	}
	return nil
}
