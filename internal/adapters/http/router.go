// Package http содержит компоненты HTTP сервера.
package http

import (
	"github.com/gofiber/fiber/v3"

	"notesapi/internal/adapters/http/auth"
	"notesapi/internal/adapters/http/middleware"
	"notesapi/internal/adapters/http/notes"
	"notesapi/internal/adapters/http/response"
	"notesapi/internal/adapters/http/users"
	"notesapi/internal/app"
	"notesapi/internal/ports/services"
)

// SetupRouter настраивает маршрутизацию HTTP сервера.
func SetupRouter(
	fiberApp *fiber.App,
	authUseCase *app.AuthUseCase,
	noteUseCase *app.NoteUseCase,
	identity *app.IdentityUseCase,
	tokenSvc services.TokenService,
) {
	authHandler := auth.NewHandler(authUseCase)
	notesHandler := notes.NewHandler(noteUseCase)
	usersHandler := users.NewHandler(authUseCase)

	// Middleware для всех запросов. Шлюз аутентификации выполняется
	// на каждом запросе и никогда сам не отклоняет запрос.
	fiberApp.Use(middleware.NewLoggerMiddleware())
	fiberApp.Use(middleware.NewRecoveryMiddleware())
	fiberApp.Use(middleware.NewAuthMiddleware(tokenSvc, identity))

	// API версии 1.
	apiV1 := fiberApp.Group("/api/v1")

	// Auth routes (публичные).
	authRoutes := apiV1.Group("/auth")
	authRoutes.Post("/register", authHandler.Register)
	authRoutes.Post("/login", authHandler.Login)

	// Маршруты заметок. Health - публичный, остальные требуют
	// установленного аутентификационного контекста.
	notesRoutes := apiV1.Group("/notes")
	notesRoutes.Get("/health", notesHandler.Health)
	notesRoutes.Use(middleware.RequireAuth())
	notesRoutes.Post("/", notesHandler.CreateNote)
	notesRoutes.Get("/", notesHandler.ListNotes)
	notesRoutes.Get("/:note_id", notesHandler.GetNote)
	notesRoutes.Put("/:note_id", notesHandler.UpdateNote)
	notesRoutes.Delete("/:note_id", notesHandler.DeleteNote)

	// Маршруты пользователей (требуют авторизации).
	usersRoutes := apiV1.Group("/users")
	usersRoutes.Use(middleware.RequireAuth())
	usersRoutes.Get("/", usersHandler.ListUsers)
	usersRoutes.Get("/:user_id", usersHandler.GetUser)
	usersRoutes.Put("/:user_id", usersHandler.UpdateUser)
	usersRoutes.Delete("/:user_id", usersHandler.DeleteUser)

	// Обработчик для несуществующих маршрутов.
	fiberApp.Use(func(c fiber.Ctx) error {
		return response.WriteStatus(c, fiber.StatusNotFound, "Resource Not Found", "")
	})
}
