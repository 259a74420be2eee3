package main

import (
	"fmt"
	"log"
	"os"

	"github.com/menucraft/backend/config"
	httpDelivery "github.com/menucraft/backend/internal/delivery/http"
	"github.com/menucraft/backend/internal/infrastructure/extraction"
	"github.com/menucraft/backend/internal/infrastructure/menus"
	"github.com/menucraft/backend/internal/infrastructure/session"
	"github.com/menucraft/backend/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting MenuCraft Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)
	log.Printf("Session TTL: %s", cfg.Session.TTL)

	// Initialize infrastructure dependencies
	sessionStore := session.NewMemoryStore(cfg.Session.TTL)
	extractionClient := extraction.NewClient(cfg.Extraction.APIKey, cfg.Extraction.BaseURL)
	menuClient := menus.NewClient(cfg.Menus.APIKey, cfg.Menus.BaseURL)

	log.Printf("Extraction service: %s", cfg.Extraction.BaseURL)
	log.Printf("Menu storage service: %s", cfg.Menus.BaseURL)

	// Initialize usecase layer
	editorService := usecase.NewEditorService(sessionStore, extractionClient)
	importService := usecase.NewImportService(sessionStore, menuClient)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(editorService, importService)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
