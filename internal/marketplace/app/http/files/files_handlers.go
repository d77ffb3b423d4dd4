// Package files содержит HTTP обработчик выдачи купленных файлов.
package files

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"notemarket/internal/marketplace/app/http/httperr"
	"notemarket/internal/marketplace/ports/services"
	"notemarket/pkg/logger"
)

// Константы для логирования.
const (
	LogHandlerDownload = "files handler: download"
)

// Handler обработчик HTTP-запросов на скачивание файлов.
type Handler struct {
	store services.FileStore
}

// NewHandler создает новый экземпляр обработчика файлов.
func NewHandler(store services.FileStore) *Handler {
	return &Handler{store: store}
}

// Download отдает сохраненный файл конспекта как вложение.
func (h *Handler) Download(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Debug(requestCtx, LogHandlerDownload)

	name := ctx.Params("name")

	file, err := h.store.Open(requestCtx, name)
	if err != nil {
		log.Error(requestCtx, "failed to open stored file", zap.Error(err))
		return httperr.Respond(ctx, err)
	}
	ctx.Set(fiber.HeaderContentType, fiber.MIMEOctetStream)
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", name))

	// Поток закрывает fasthttp после отправки ответа.
	if err := ctx.SendStream(file); err != nil {
		return fmt.Errorf("error sending file: %w", err)
	}
	return nil
}
