package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"marquee/internal/config"
	"marquee/internal/domain/models"
	"marquee/internal/handler"
	"marquee/internal/middleware"
	"marquee/internal/repository/postgres"
	"marquee/internal/service"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	// Load .env file (silently ignore if it doesn't exist - for production)
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Setup structured logging
	logLevel := slog.LevelInfo
	if cfg.Environment == "dev" {
		logLevel = slog.LevelDebug
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("server starting",
		"environment", cfg.Environment,
		"port", cfg.Port,
		"table_prefix", cfg.TablePrefix,
		"timezone", cfg.Timezone,
	)

	// Create pgx connection pool
	ctx := context.Background()
	pool, err := postgres.CreateConnectionPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to create connection pool: %v", err)
	}
	defer pool.Close()

	logger.Info("database connected",
		"max_conns", 25,
		"min_conns", 5,
	)

	// Create table names and repositories
	tables := postgres.NewTableNames(cfg.TablePrefix)
	repoConfig := &postgres.RepositoryConfig{
		Pool:   pool,
		Tables: tables,
		Logger: logger,
	}
	folderRepo := postgres.NewFolderRepository(repoConfig)
	contentRepo := postgres.NewContentRepository(repoConfig)
	playerRepo := postgres.NewPlayerRepository(repoConfig)
	slideRepo := postgres.NewSlideRepository(repoConfig)
	playlistRepo := postgres.NewPlaylistRepository(repoConfig)
	txManager := postgres.NewTransactionManager(pool)

	// Create services. The folder tree is instantiated once per namespace:
	// content folders and player folders never see each other.
	contentFolderService := service.NewFolderService(models.KindContent, folderRepo, contentRepo, txManager, logger)
	playerFolderService := service.NewFolderService(models.KindNodePlayer, folderRepo, playerRepo, txManager, logger)
	contentService := service.NewContentService(contentRepo, slideRepo, contentFolderService, logger)
	playerService := service.NewNodePlayerService(playerRepo, playlistRepo, playerFolderService, logger)
	slideService := service.NewSlideService(slideRepo, contentRepo, playlistRepo, txManager, cfg.Location, logger)
	playlistService := service.NewPlaylistService(playlistRepo, slideRepo, playerRepo, logger)

	// Create handlers
	contentFolderHandler := handler.NewFolderHandler(contentFolderService, logger)
	playerFolderHandler := handler.NewFolderHandler(playerFolderService, logger)
	contentHandler := handler.NewContentHandler(contentService, logger)
	playerHandler := handler.NewPlayerHandler(playerService, logger)
	slideHandler := handler.NewSlideHandler(slideService, logger)
	playlistHandler := handler.NewPlaylistHandler(playlistService, slideService, logger)

	logger.Info("services initialized")

	// Create HTTP router (Go 1.22+ enhanced patterns)
	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("GET /health", handler.HealthCheck)

	// Content folder tree
	mux.HandleFunc("POST /api/content/folders", contentFolderHandler.CreateFolder)
	mux.HandleFunc("GET /api/content/folders", contentFolderHandler.ListChildren)
	mux.HandleFunc("GET /api/content/folders/tree", contentFolderHandler.GetTree)
	mux.HandleFunc("PATCH /api/content/folders/{id}", contentFolderHandler.UpdateFolder)
	mux.HandleFunc("DELETE /api/content/folders/{id}", contentFolderHandler.DeleteFolder)
	mux.HandleFunc("POST /api/content/folders/entities/move", contentFolderHandler.MoveEntities)

	// Player folder tree
	mux.HandleFunc("POST /api/players/folders", playerFolderHandler.CreateFolder)
	mux.HandleFunc("GET /api/players/folders", playerFolderHandler.ListChildren)
	mux.HandleFunc("GET /api/players/folders/tree", playerFolderHandler.GetTree)
	mux.HandleFunc("PATCH /api/players/folders/{id}", playerFolderHandler.UpdateFolder)
	mux.HandleFunc("DELETE /api/players/folders/{id}", playerFolderHandler.DeleteFolder)
	mux.HandleFunc("POST /api/players/folders/entities/move", playerFolderHandler.MoveEntities)

	// Content
	mux.HandleFunc("POST /api/contents", contentHandler.CreateContent)
	mux.HandleFunc("GET /api/contents", contentHandler.ListContent)
	mux.HandleFunc("GET /api/contents/{id}", contentHandler.GetContent)
	mux.HandleFunc("PATCH /api/contents/{id}", contentHandler.UpdateContent)
	mux.HandleFunc("DELETE /api/contents/{id}", contentHandler.DeleteContent)

	// Fleet players
	mux.HandleFunc("POST /api/players", playerHandler.RegisterPlayer)
	mux.HandleFunc("GET /api/players", playerHandler.ListPlayers)
	mux.HandleFunc("GET /api/players/{id}", playerHandler.GetPlayer)
	mux.HandleFunc("PATCH /api/players/{id}", playerHandler.UpdatePlayer)
	mux.HandleFunc("DELETE /api/players/{id}", playerHandler.DeletePlayer)

	// Playlists
	mux.HandleFunc("POST /api/playlists", playlistHandler.CreatePlaylist)
	mux.HandleFunc("GET /api/playlists", playlistHandler.ListPlaylists)
	mux.HandleFunc("GET /api/playlists/{id}", playlistHandler.GetPlaylist)
	mux.HandleFunc("PATCH /api/playlists/{id}", playlistHandler.UpdatePlaylist)
	mux.HandleFunc("DELETE /api/playlists/{id}", playlistHandler.DeletePlaylist)
	mux.HandleFunc("GET /api/playlists/{id}/slides", playlistHandler.ListSlides)

	// Slides and notifications
	mux.HandleFunc("POST /api/slides", slideHandler.CreateSlide)
	mux.HandleFunc("POST /api/slides/positions", slideHandler.UpdatePositions) // Must come before {id} route
	mux.HandleFunc("GET /api/slides/{id}", slideHandler.GetSlide)
	mux.HandleFunc("PATCH /api/slides/{id}", slideHandler.UpdateSlide)
	mux.HandleFunc("DELETE /api/slides/{id}", slideHandler.DeleteSlide)
	mux.HandleFunc("POST /api/notifications", slideHandler.CreateNotification)

	// Build middleware chain (applied in reverse order, they wrap each other)
	var h http.Handler = mux
	h = middleware.Recovery(logger)(h)
	h = middleware.RequestLogger(logger)(h)

	// CORS - must be outermost to handle OPTIONS pre-flight requests
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   strings.Split(cfg.CORSOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	})
	h = corsHandler.Handler(h)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      h,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.Info("listening", "port", cfg.Port)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Failed to start server: %v", err)
	}
}
