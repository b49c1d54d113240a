package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"

	"devcamper/internal/config"
	"devcamper/internal/database"
	"devcamper/internal/database/migration"
	"devcamper/internal/geocoder"
	"devcamper/internal/logging"
	"devcamper/internal/repository/postgres"
	"devcamper/internal/seed"
	"devcamper/internal/service"
	"devcamper/internal/storage"
)

var seedDir string

var rootCmd = &cobra.Command{
	Use:          "seeder",
	Short:        "Load or wipe DevCamper fixture data",
	SilenceUsage: true,
}

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import bootcamps and courses",
	Long:  `Create every record in <dir>/bootcamps.json and <dir>/courses.json through the services, so slugs, validation and average cost apply.`,
	RunE:  runImport,
}

var destroyCmd = &cobra.Command{
	Use:   "destroy",
	Short: "Delete all courses and bootcamps",
	RunE:  runDestroy,
}

func init() {
	importCmd.Flags().StringVarP(&seedDir, "dir", "d", "./seed", "Directory holding the fixture files")
	rootCmd.AddCommand(importCmd, destroyCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runImport(cmd *cobra.Command, _ []string) error {
	return withSeeder(cmd.Context(), func(ctx context.Context, s *seed.Seeder) error {
		stats, err := s.Import(ctx, seedDir)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Imported %d bootcamps and %d courses\n", stats.Bootcamps, stats.Courses)
		return nil
	})
}

func runDestroy(cmd *cobra.Command, _ []string) error {
	return withSeeder(cmd.Context(), func(ctx context.Context, s *seed.Seeder) error {
		if err := s.Destroy(ctx); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Data destroyed")
		return nil
	})
}

func withSeeder(ctx context.Context, fn func(context.Context, *seed.Seeder) error) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg := config.Load()
	logging.Init(logging.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})

	db, err := database.NewPostgres(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer db.Close()

	if err := migration.EnsureMigrated(ctx, db, cfg.Database.Host); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	bootcamps, courses, err := services(cfg, db)
	if err != nil {
		return err
	}
	return fn(ctx, seed.New(bootcamps, courses))
}

func services(cfg *config.AppConfig, db *sql.DB) (service.BootcampService, service.CourseService, error) {
	store, err := storage.New(cfg.Upload, cfg.MinIO)
	if err != nil {
		return nil, nil, fmt.Errorf("photo storage: %w", err)
	}

	// Fixtures with a pre-resolved location need no provider.
	var gc geocoder.Geocoder = geocoder.Disabled{}
	if cfg.Geocoder.APIKey != "" {
		if gc, err = geocoder.New(cfg.Geocoder); err != nil {
			return nil, nil, fmt.Errorf("geocoder: %w", err)
		}
	}

	bootcampRepo := postgres.NewBootcampPostgres(db)
	return service.NewBootcampService(bootcampRepo, gc, store, cfg.Upload.MaxBytes),
		service.NewCourseService(postgres.NewCoursePostgres(db), bootcampRepo),
		nil
}
