// Package purchase содержит HTTP обработчик покупки конспектов.
package purchase

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"notemarket/internal/marketplace/app/dto"
	"notemarket/internal/marketplace/app/http/httperr"
	"notemarket/internal/marketplace/ports/api"
	"notemarket/pkg/logger"
)

// Константы для логирования.
const (
	LogHandlerPurchase = "purchase handler: purchase note"

	ErrMsgInvalidRequestBody = "invalid request body"

	MsgPurchaseSuccessful = "purchase successful"
)

// Handler обработчик HTTP-запросов покупки.
type Handler struct {
	purchases api.PurchaseUseCase
}

// NewHandler создает новый экземпляр обработчика покупки.
func NewHandler(purchases api.PurchaseUseCase) *Handler {
	return &Handler{purchases: purchases}
}

// Purchase обрабатывает запрос на покупку конспекта.
func (h *Handler) Purchase(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Debug(requestCtx, LogHandlerPurchase)

	var req dto.PurchaseRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Error(requestCtx, ErrMsgInvalidRequestBody, zap.Error(err))
		if err := ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": ErrMsgInvalidRequestBody,
		}); err != nil {
			return fmt.Errorf("failed to send bad request response: %w", err)
		}
		return nil
	}

	downloadLink, err := h.purchases.Purchase(requestCtx, req.BuyerID, req.NoteID)
	if err != nil {
		log.Error(requestCtx, "failed to purchase note", zap.Error(err))
		return httperr.Respond(ctx, err)
	}

	if err := ctx.JSON(dto.PurchaseResponse{
		Message:      MsgPurchaseSuccessful,
		DownloadLink: downloadLink,
	}); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}
