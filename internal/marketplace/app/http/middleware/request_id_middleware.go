// Package middleware содержит промежуточное ПО для HTTP обработчиков.
package middleware

import (
	"github.com/gofiber/fiber/v3"

	"notemarket/pkg/logger"
)

// HeaderRequestID имя заголовка со сквозным идентификатором запроса.
const HeaderRequestID = "X-Request-Id"

// NewRequestIDMiddleware привязывает идентификатор запроса к контексту.
// Если клиент не прислал заголовок, идентификатор генерируется.
func NewRequestIDMiddleware() fiber.Handler {
	return func(ctx fiber.Ctx) error {
		requestCtx := logger.NewRequestIDContext(ctx.Context(), ctx.Get(HeaderRequestID))
		ctx.SetContext(requestCtx)

		if requestID, ok := logger.GetRequestID(requestCtx); ok {
			ctx.Set(HeaderRequestID, requestID)
		}

		return ctx.Next()
	}
}
