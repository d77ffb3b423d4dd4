// Package http содержит компоненты HTTP сервера маркетплейса.
package http

import (
	"github.com/gofiber/fiber/v3"

	"notemarket/internal/marketplace/app/http/account"
	"notemarket/internal/marketplace/app/http/admin"
	"notemarket/internal/marketplace/app/http/catalog"
	"notemarket/internal/marketplace/app/http/files"
	"notemarket/internal/marketplace/app/http/middleware"
	"notemarket/internal/marketplace/app/http/purchase"
	"notemarket/internal/marketplace/ports/api"
	"notemarket/internal/marketplace/ports/services"
)

// SetupRouter настраивает маршрутизацию HTTP сервера.
func SetupRouter(
	app *fiber.App,
	accounts api.AccountUseCase,
	catalogUC api.CatalogUseCase,
	purchases api.PurchaseUseCase,
	moderation api.ModerationUseCase,
	fileStore services.FileStore,
) {
	accountHandler := account.NewHandler(accounts)
	catalogHandler := catalog.NewHandler(catalogUC)
	purchaseHandler := purchase.NewHandler(purchases)
	adminHandler := admin.NewHandler(moderation)
	filesHandler := files.NewHandler(fileStore)

	// Middleware для всех запросов.
	app.Use(middleware.NewRequestIDMiddleware())
	app.Use(middleware.NewLoggerMiddleware())
	app.Use(middleware.NewRecoveryMiddleware())

	// Учетные записи.
	app.Post("/register", accountHandler.Register)
	app.Post("/login", accountHandler.Login)

	// Каталог конспектов.
	app.Post("/notes", catalogHandler.UploadNote)
	app.Get("/notes", catalogHandler.BrowseNotes)

	// Покупки и выдача файлов.
	app.Post("/purchase", purchaseHandler.Purchase)
	app.Get("/uploads/:name", filesHandler.Download)

	// Административные маршруты модерации.
	adminRoutes := app.Group("/admin")
	adminRoutes.Get("/notes/pending", adminHandler.ListPending)
	adminRoutes.Put("/notes/:note_id/approve", adminHandler.Approve)
	adminRoutes.Put("/notes/:note_id/reject", adminHandler.Reject)

	// Обработчик для несуществующих маршрутов.
	app.Use(func(c fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Route not found",
		})
	})
}
