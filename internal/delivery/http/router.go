package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/nitpydev/gyanith24-cms/internal/delivery/http/controllers"
	"github.com/nitpydev/gyanith24-cms/internal/delivery/http/middleware"
	"github.com/nitpydev/gyanith24-cms/internal/domain"
)

// NewRouter initializes the HTTP router with all application routes.
// Everything except login and the swagger UI requires a session token.
func NewRouter(
	eventController *controllers.EventController,
	authController *controllers.AuthController,
	schemaController *controllers.SchemaController,
	uploadController *controllers.UploadController,
	verifier domain.TokenVerifier,
) *http.ServeMux {
	mux := http.NewServeMux()
	auth := middleware.RequireAuth(verifier)

	// Auth
	mux.HandleFunc("POST /auth/login", authController.Login)

	// Events
	mux.HandleFunc("POST /events", auth(eventController.CreateEvent))
	mux.HandleFunc("GET /events", auth(eventController.ListEvents))
	mux.HandleFunc("GET /events/{slug}", auth(eventController.GetEvent))
	mux.HandleFunc("PUT /events/{slug}", auth(eventController.UpdateEvent))
	mux.HandleFunc("DELETE /events/{slug}", auth(eventController.DeleteEvent))

	// Form schema for the admin UI
	mux.HandleFunc("GET /schema", auth(schemaController.GetSchema))

	// Image uploads
	mux.HandleFunc("POST /uploads/{area}", auth(uploadController.Upload))

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
