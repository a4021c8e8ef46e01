package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/aashiiiaggarwal/event-registration-fossee/internal/catalog"
	"github.com/aashiiiaggarwal/event-registration-fossee/internal/config"
	"github.com/aashiiiaggarwal/event-registration-fossee/internal/database"
	"github.com/aashiiiaggarwal/event-registration-fossee/internal/handlers"
	"github.com/aashiiiaggarwal/event-registration-fossee/internal/notifier"
	"github.com/aashiiiaggarwal/event-registration-fossee/internal/options"
	"github.com/aashiiiaggarwal/event-registration-fossee/internal/registration"
	"github.com/aashiiiaggarwal/event-registration-fossee/internal/report"
	"github.com/bwmarrin/discordgo"
	"github.com/go-chi/chi/v5"
)

func main() {
	// Load Configuration
	cfg := config.LoadConfig()

	// Connect to Database
	db := database.Connect(cfg)

	// Core components
	eventCatalog := catalog.New(db)
	resolver := options.NewResolver(eventCatalog)
	store := registration.NewStore(db)
	validator := registration.NewValidator(eventCatalog, store)
	engine := report.NewEngine(store)

	// Notification channels
	var channels notifier.Fanout
	if cfg.SMTPAddr != "" {
		channels = append(channels, notifier.NewMailNotifier(cfg.SMTPAddr, cfg.SMTPFrom))
	} else {
		log.Printf("SMTP not configured, confirmation mails disabled")
	}
	if cfg.DiscordBotToken != "" {
		session, err := discordgo.New("Bot " + cfg.DiscordBotToken)
		if err != nil {
			log.Printf("Discord notifier not initialized: %v", err)
		} else {
			channels = append(channels, notifier.NewDiscordNotifier(session, cfg.DiscordNotificationsChannelID))
		}
	}

	// Initialize Handlers
	registrationHandler := handlers.NewRegistrationHandler(eventCatalog, resolver, validator, store, channels, cfg)
	adminHandler := handlers.NewAdminHandler(eventCatalog, resolver, engine)

	// Initialize Router
	r := chi.NewRouter()

	// Register Routes
	handlers.RegisterRoutes(r, registrationHandler, adminHandler)

	// Start Server
	log.Printf("Starting server on port %s", cfg.Port)
	if err := http.ListenAndServe(fmt.Sprintf(":%s", cfg.Port), r); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
