package main

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/mindful/cliparse"
	"github.com/danielhkuo/mindful/db"
	"github.com/danielhkuo/mindful/middleware"
	"github.com/danielhkuo/mindful/router"
	"github.com/danielhkuo/mindful/sentiment"
)

func main() {
	var err error

	// Load .env if present; real environment variables win
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("failed to load .env", "error", err)
	}

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Connect to the database
	dbConn, err := sql.Open(cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	if cfg.DatabaseType == "sqlite" {
		// SQLite allows a single writer
		dbConn.SetMaxOpenConns(1)
	}

	// Verify connection
	if err := dbConn.Ping(); err != nil {
		slog.Error("database ping failed", "error", err)
		os.Exit(1)
	}

	// Create schema (tables)
	if err := db.CreateSchema(dbConn); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready", "type", cfg.DatabaseType)

	// Sentiment model (optional)
	analyzer := sentiment.NewAnalyzer(nil)
	if cfg.XAIAPIKey != "" {
		model, err := sentiment.NewModel(sentiment.Config{
			BaseURL: cfg.LLMBaseURL,
			Model:   cfg.LLMModel,
			APIKey:  cfg.XAIAPIKey,
		})
		if err != nil {
			slog.Error("sentiment model setup failed", "error", err)
			os.Exit(1)
		}
		analyzer = sentiment.NewAnalyzer(model)
		slog.Info("Sentiment analysis enabled", "model", cfg.LLMModel, "base_url", cfg.LLMBaseURL)
	} else {
		slog.Warn("XAI_API_KEY not set; journal entries will use the neutral fallback analysis")
	}

	// Create router
	mux := router.NewRouter(dbConn, analyzer)

	// Create server
	server := http.Server{
		Handler: middleware.CORS(cfg.AllowedOrigin, middleware.RequireToken(cfg.APIToken, mux)),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
