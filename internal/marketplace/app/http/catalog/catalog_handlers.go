// Package catalog содержит HTTP обработчики загрузки и просмотра конспектов.
package catalog

import (
	"context"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"notemarket/internal/marketplace/app/dto"
	"notemarket/internal/marketplace/app/http/httperr"
	"notemarket/internal/marketplace/domain/entities"
	"notemarket/internal/marketplace/ports/api"
	"notemarket/pkg/logger"
)

// Константы ошибок и сообщений для логирования.
const (
	LogHandlerUploadNote  = "catalog handler: upload note"
	LogHandlerBrowseNotes = "catalog handler: browse notes"

	ErrMsgInvalidPrice      = "invalid price"
	ErrMsgInvalidSellerID   = "invalid seller_id"
	ErrMsgInvalidPagination = "invalid pagination parameters"

	MsgNoteUploaded = "note uploaded successfully and is pending admin approval"
)

// Handler обработчик HTTP-запросов каталога конспектов.
type Handler struct {
	catalog api.CatalogUseCase
}

// NewHandler создает новый экземпляр обработчика каталога.
func NewHandler(catalog api.CatalogUseCase) *Handler {
	return &Handler{catalog: catalog}
}

// UploadNote обрабатывает multipart-запрос на загрузку конспекта.
func (h *Handler) UploadNote(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Debug(requestCtx, LogHandlerUploadNote)

	priceStr := ctx.FormValue("price")
	sellerStr := ctx.FormValue("seller_id")

	input := api.UploadNoteInput{
		Title:       ctx.FormValue("title"),
		Subject:     ctx.FormValue("subject"),
		Description: ctx.FormValue("description"),
	}

	if input.Title == "" || input.Subject == "" || priceStr == "" || sellerStr == "" {
		log.Error(requestCtx, "missing upload form fields")
		return httperr.Respond(ctx, entities.ErrMissingNoteFields)
	}

	price, err := strconv.ParseFloat(priceStr, 64)
	if err != nil {
		log.Error(requestCtx, ErrMsgInvalidPrice, zap.Error(err))
		if err := ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": ErrMsgInvalidPrice,
		}); err != nil {
			return fmt.Errorf("failed to send bad request response: %w", err)
		}
		return nil
	}
	input.Price = price

	sellerID, err := strconv.ParseInt(sellerStr, 10, 64)
	if err != nil {
		log.Error(requestCtx, ErrMsgInvalidSellerID, zap.Error(err))
		if err := ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": ErrMsgInvalidSellerID,
		}); err != nil {
			return fmt.Errorf("failed to send bad request response: %w", err)
		}
		return nil
	}
	input.SellerID = sellerID

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		log.Error(requestCtx, "missing note file", zap.Error(err))
		return httperr.Respond(ctx, entities.ErrMissingFile)
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.Error(requestCtx, "failed to open uploaded file", zap.Error(err))
		return httperr.Respond(ctx, entities.ErrMissingFile)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			log.Warn(requestCtx, "failed to close uploaded file", zap.Error(closeErr))
		}
	}()

	input.FileName = fileHeader.Filename
	input.File = file

	note, err := h.catalog.UploadNote(requestCtx, input)
	if err != nil {
		log.Error(requestCtx, "failed to upload note", zap.Error(err))
		return httperr.Respond(ctx, err)
	}

	if err := ctx.Status(fiber.StatusCreated).JSON(dto.UploadNoteResponse{
		Message: MsgNoteUploaded,
		NoteID:  note.ID,
	}); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// BrowseNotes обрабатывает запрос на просмотр одобренных конспектов.
func (h *Handler) BrowseNotes(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Debug(requestCtx, LogHandlerBrowseNotes)

	limit, err := strconv.Atoi(ctx.Query("limit", "0"))
	if err != nil || limit < 0 {
		return h.badPagination(ctx, requestCtx, err)
	}

	offset, err := strconv.Atoi(ctx.Query("offset", "0"))
	if err != nil || offset < 0 {
		return h.badPagination(ctx, requestCtx, err)
	}

	notes, err := h.catalog.BrowseNotes(requestCtx, limit, offset)
	if err != nil {
		log.Error(requestCtx, "failed to browse notes", zap.Error(err))
		return httperr.Respond(ctx, err)
	}

	resp := dto.BrowseNotesResponse{Notes: make([]dto.NoteResponse, 0, len(notes))}
	for _, note := range notes {
		resp.Notes = append(resp.Notes, dto.NoteResponseFromEntity(note))
	}

	if err := ctx.JSON(resp); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

func (h *Handler) badPagination(ctx fiber.Ctx, requestCtx context.Context, cause error) error {
	log := logger.Log(requestCtx)
	log.Error(requestCtx, ErrMsgInvalidPagination, zap.Error(cause))
	if err := ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": ErrMsgInvalidPagination,
	}); err != nil {
		return fmt.Errorf("failed to send bad request response: %w", err)
	}
	return nil
}
