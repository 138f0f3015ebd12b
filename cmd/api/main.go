package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"alfredoptarigan/cv-enhancer/internal/config"
	"alfredoptarigan/cv-enhancer/internal/server"
	"alfredoptarigan/cv-enhancer/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	if cfg.LLM.APIKey == "" {
		log.Printf("⚠️  No API key configured for %s provider, completion calls will fail", cfg.LLM.Provider)
	}

	// Initialize completion client
	generator, err := services.NewTextGenerator(context.Background(), cfg.LLM)
	if err != nil {
		log.Fatalf("❌ Failed to initialize %s client: %v", cfg.LLM.Provider, err)
	}
	log.Printf("✅ %s client initialized (model: %s, temperature: %.2f)", cfg.LLM.Provider, cfg.LLM.Model, cfg.LLM.Temperature)

	// Initialize services
	enhancerService := services.NewEnhancerService(generator)
	pdfParser := services.NewPDFParserService()
	log.Println("✅ Services initialized successfully")

	app := server.New(cfg, enhancerService, pdfParser)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)
	log.Printf("📄 Serving front-end from %s\n", cfg.Static.Dir)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}
