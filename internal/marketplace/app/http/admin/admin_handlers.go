// Package admin содержит HTTP обработчики модерации конспектов.
package admin

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"notemarket/internal/marketplace/app/dto"
	"notemarket/internal/marketplace/app/http/httperr"
	"notemarket/internal/marketplace/ports/api"
	"notemarket/pkg/logger"
)

// Константы ошибок и сообщений для логирования.
const (
	LogHandlerListPending = "admin handler: list pending notes"
	LogHandlerApprove     = "admin handler: approve note"
	LogHandlerReject      = "admin handler: reject note"

	ErrMsgInvalidNoteID = "invalid note id"
)

// Handler обработчик административных HTTP-запросов.
type Handler struct {
	moderation api.ModerationUseCase
}

// NewHandler создает новый экземпляр обработчика модерации.
func NewHandler(moderation api.ModerationUseCase) *Handler {
	return &Handler{moderation: moderation}
}

// ListPending обрабатывает запрос на просмотр очереди модерации.
func (h *Handler) ListPending(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Debug(requestCtx, LogHandlerListPending)

	notes, err := h.moderation.ListPending(requestCtx)
	if err != nil {
		log.Error(requestCtx, "failed to list pending notes", zap.Error(err))
		return httperr.Respond(ctx, err)
	}

	resp := dto.PendingNotesResponse{PendingNotes: make([]dto.PendingNoteResponse, 0, len(notes))}
	for _, note := range notes {
		resp.PendingNotes = append(resp.PendingNotes, dto.PendingNoteResponseFromEntity(note))
	}

	if err := ctx.JSON(resp); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// Approve обрабатывает запрос на одобрение конспекта.
func (h *Handler) Approve(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Debug(requestCtx, LogHandlerApprove)

	noteID, err := h.noteID(ctx)
	if err != nil {
		return err
	}
	if noteID == 0 {
		return nil
	}

	if err := h.moderation.Approve(requestCtx, noteID); err != nil {
		log.Error(requestCtx, "failed to approve note", zap.Error(err))
		return httperr.Respond(ctx, err)
	}

	if err := ctx.JSON(dto.ModerationResponse{
		Message: fmt.Sprintf("note %d has been approved", noteID),
	}); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// Reject обрабатывает запрос на отклонение конспекта.
func (h *Handler) Reject(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Debug(requestCtx, LogHandlerReject)

	noteID, err := h.noteID(ctx)
	if err != nil {
		return err
	}
	if noteID == 0 {
		return nil
	}

	if err := h.moderation.Reject(requestCtx, noteID); err != nil {
		log.Error(requestCtx, "failed to reject note", zap.Error(err))
		return httperr.Respond(ctx, err)
	}

	if err := ctx.JSON(dto.ModerationResponse{
		Message: fmt.Sprintf("note %d has been rejected", noteID),
	}); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// noteID извлекает идентификатор конспекта из пути. При некорректном
// значении отправляет ответ 400 и возвращает нулевой идентификатор.
func (h *Handler) noteID(ctx fiber.Ctx) (int64, error) {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)

	noteID, err := strconv.ParseInt(ctx.Params("note_id"), 10, 64)
	if err != nil || noteID <= 0 {
		log.Error(requestCtx, ErrMsgInvalidNoteID, zap.Error(err))
		if err := ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": ErrMsgInvalidNoteID,
		}); err != nil {
			return 0, fmt.Errorf("failed to send bad request response: %w", err)
		}
		return 0, nil
	}
	return noteID, nil
}
