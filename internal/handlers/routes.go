package handlers

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func RegisterRoutes(r *chi.Mux, registrationHandler *RegistrationHandler, adminHandler *AdminHandler) {
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Initialize Huma API
	config := huma.DefaultConfig("Event Registration API", "1.0.0")
	api := humachi.New(r, config)

	// Public routes
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Visitor routes
	huma.Get(api, "/registration/options", registrationHandler.HandleFormOptions)
	huma.Post(api, "/registration", registrationHandler.HandleRegister)

	// Admin routes
	huma.Post(api, "/admin/events", adminHandler.HandleCreateEvent)
	huma.Get(api, "/admin/registrations/options", adminHandler.HandleFilterOptions)
	huma.Get(api, "/admin/registrations", adminHandler.HandleListRegistrations)
	r.Get("/admin/registrations/export", adminHandler.HandleExportCSV)
}
