package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"

	"marquee/internal/config"
	"marquee/internal/domain/models"
	"marquee/internal/domain/services"
	"marquee/internal/repository/postgres"
	"marquee/internal/schedule"
	"marquee/internal/service"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

func main() {
	dropTables := flag.Bool("drop-tables", false, "Drop all tables before seeding (fresh start)")
	schemaOnly := flag.Bool("schema-only", false, "Only set up schema, don't seed demo data")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// SAFETY: never drop tables in production
	if cfg.Environment == "prod" && *dropTables {
		log.Fatalf("BLOCKED: cannot run --drop-tables in production environment")
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	log.Printf("Seeding database (environment: %s, prefix: %s)", cfg.Environment, cfg.TablePrefix)

	ctx := context.Background()
	pool, err := postgres.CreateConnectionPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	tables := postgres.NewTableNames(cfg.TablePrefix)

	if *dropTables {
		log.Println("Dropping all tables...")
		if err := postgres.DropTables(ctx, pool, tables); err != nil {
			log.Fatalf("Failed to drop tables: %v", err)
		}
		log.Println("Tables dropped")
	}

	log.Println("Ensuring database schema is up to date...")
	if err := postgres.EnsureSchema(ctx, pool, tables, cfg.TablePrefix); err != nil {
		log.Fatalf("Failed to run schema: %v", err)
	}
	log.Println("Schema ready")

	if *schemaOnly {
		log.Println("Schema setup complete (schema-only mode)")
		return
	}

	if err := seedDemoData(ctx, pool, tables, cfg, logger); err != nil {
		log.Fatalf("Failed to seed demo data: %v", err)
	}

	log.Println("Seeding complete!")
}

// seedDemoData builds a small demo deployment through the service layer so
// every invariant (path materialization, schedule compilation, guards) runs
// the same code the server runs.
func seedDemoData(ctx context.Context, pool *pgxpool.Pool, tables *postgres.TableNames, cfg *config.Config, logger *slog.Logger) error {
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

	contentFolders := service.NewFolderService(models.KindContent, folderRepo, contentRepo, txManager, logger)
	playerFolders := service.NewFolderService(models.KindNodePlayer, folderRepo, playerRepo, txManager, logger)
	contents := service.NewContentService(contentRepo, slideRepo, contentFolders, logger)
	players := service.NewNodePlayerService(playerRepo, playlistRepo, playerFolders, logger)
	slides := service.NewSlideService(slideRepo, contentRepo, playlistRepo, txManager, cfg.Location, logger)
	playlists := service.NewPlaylistService(playlistRepo, slideRepo, playerRepo, logger)

	// Folder trees
	for _, req := range []services.CreateFolderRequest{
		{Name: "Campaigns", ParentPath: "/"},
		{Name: "Summer", ParentPath: "/Campaigns"},
		{Name: "Evergreen", ParentPath: "/"},
	} {
		if _, err := contentFolders.CreateFolder(ctx, &req); err != nil {
			return err
		}
		log.Printf("Created content folder %s/%s", req.ParentPath, req.Name)
	}
	for _, req := range []services.CreateFolderRequest{
		{Name: "Ground Floor", ParentPath: "/"},
		{Name: "First Floor", ParentPath: "/"},
	} {
		if _, err := playerFolders.CreateFolder(ctx, &req); err != nil {
			return err
		}
		log.Printf("Created player folder %s/%s", req.ParentPath, req.Name)
	}

	// Content
	welcome, err := contents.CreateContent(ctx, &services.CreateContentRequest{
		Name:     "Welcome Board",
		Type:     models.ContentTypeURL,
		Location: "https://example.com/welcome",
		Folder:   services.FolderRef{Path: strPtr("/Evergreen")},
	})
	if err != nil {
		return err
	}
	promo, err := contents.CreateContent(ctx, &services.CreateContentRequest{
		Name:     "Summer Promo",
		Type:     models.ContentTypePicture,
		Location: "/uploads/summer-promo.png",
		Folder:   services.FolderRef{Path: strPtr("/Campaigns/Summer")},
	})
	if err != nil {
		return err
	}

	// Playlist with one looping and one windowed slide
	lobby, err := playlists.CreatePlaylist(ctx, &services.CreatePlaylistRequest{
		Name:     "Lobby Loop",
		TimeSync: true,
	})
	if err != nil {
		return err
	}

	if _, err := slides.CreateSlide(ctx, &services.CreateSlideRequest{
		ContentID:  welcome.ID,
		PlaylistID: lobby.ID,
		Duration:   intPtr(10),
		Position:   intPtr(1),
	}); err != nil {
		return err
	}
	if _, err := slides.CreateSlide(ctx, &services.CreateSlideRequest{
		ContentID:  promo.ID,
		PlaylistID: lobby.ID,
		Duration:   intPtr(5),
		Position:   intPtr(2),
		Scheduling: &schedule.Request{
			Mode:      schedule.ModeInWeek,
			DayStart:  intPtr(1),
			TimeStart: "08:00",
			DayEnd:    intPtr(5),
			TimeEnd:   "20:00",
		},
	}); err != nil {
		return err
	}

	// A registered player rendering the playlist
	if _, err := players.RegisterPlayer(ctx, &services.RegisterPlayerRequest{
		Name:       "Lobby Screen",
		Host:       "lobby-screen.local",
		PlaylistID: &lobby.ID,
		Folder:     services.FolderRef{Path: strPtr("/Ground Floor")},
	}); err != nil {
		return err
	}

	return nil
}

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }
