// Package account содержит HTTP обработчики регистрации и входа.
package account

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
	LogHandlerRegister = "account handler: register"
	LogHandlerLogin    = "account handler: login"

	ErrMsgInvalidRequestBody = "invalid request body"

	MsgUserCreated     = "new user created successfully"
	MsgLoginSuccessful = "login successful"
)

// Handler содержит HTTP обработчики учетных записей.
type Handler struct {
	accounts api.AccountUseCase
}

// NewHandler создает новый экземпляр обработчика учетных записей.
func NewHandler(accounts api.AccountUseCase) *Handler {
	return &Handler{accounts: accounts}
}

// Register обрабатывает запрос на регистрацию нового пользователя.
func (h *Handler) Register(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Debug(requestCtx, LogHandlerRegister)

	var req dto.RegisterRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Error(requestCtx, ErrMsgInvalidRequestBody, zap.Error(err))
		if err := ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": ErrMsgInvalidRequestBody,
		}); err != nil {
			return fmt.Errorf("failed to send bad request response: %w", err)
		}
		return nil
	}

	if _, err := h.accounts.Register(requestCtx, req.Name, req.Email, req.Password, req.Role); err != nil {
		log.Error(requestCtx, "failed to register user", zap.Error(err))
		return httperr.Respond(ctx, err)
	}

	if err := ctx.Status(fiber.StatusCreated).JSON(dto.RegisterResponse{
		Message: MsgUserCreated,
	}); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// Login обрабатывает запрос на вход пользователя.
func (h *Handler) Login(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Debug(requestCtx, LogHandlerLogin)

	var req dto.LoginRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Error(requestCtx, ErrMsgInvalidRequestBody, zap.Error(err))
		if err := ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": ErrMsgInvalidRequestBody,
		}); err != nil {
			return fmt.Errorf("failed to send bad request response: %w", err)
		}
		return nil
	}

	user, err := h.accounts.Login(requestCtx, req.Email, req.Password)
	if err != nil {
		log.Error(requestCtx, "failed to log in user", zap.Error(err))
		return httperr.Respond(ctx, err)
	}

	if err := ctx.JSON(dto.LoginResponse{
		Message: MsgLoginSuccessful,
		User: dto.UserResponse{
			UserID: user.ID,
			Name:   user.Name,
			Email:  user.Email,
			Role:   user.Role,
		},
	}); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}
