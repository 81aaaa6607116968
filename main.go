package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"pokedeck-seed/config"
	"pokedeck-seed/models"
	"pokedeck-seed/services"
	"pokedeck-seed/utils"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	if err := run(); err != nil {
		log.Printf("❌ Error seeding database: %v", err)
		os.Exit(1)
	}
}

// run owns the database connection; it is closed on every return path
// before main decides the exit status.
func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		Logger: cfg.GormLogger(),
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database handle: %w", err)
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			log.Printf("⚠️  Failed to close database connection: %v", err)
			return
		}
		log.Println("🔌 Database connection closed")
	}()

	if err := db.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	var fetcher services.ObjectFetcher
	if cfg.UsesR2() {
		r2, err := utils.NewR2Client(ctx, cfg.R2.AccountID, cfg.R2.AccessKeyID, cfg.R2.AccessKeySecret, cfg.R2.Bucket)
		if err != nil {
			return err
		}
		fetcher = r2
	}

	seeder := services.NewSeedService(db, cfg.Dataset, cfg.ArtworkBaseURL, fetcher)
	if _, err := seeder.Run(ctx); err != nil {
		return err
	}

	if cfg.ReseedInterval == 0 {
		return nil
	}

	sched, err := seeder.StartReseedScheduler(ctx, cfg.ReseedInterval)
	if err != nil {
		return err
	}
	<-ctx.Done()
	log.Println("Shutting down reseed scheduler...")
	if err := sched.Shutdown(); err != nil {
		log.Printf("⚠️  Scheduler shutdown: %v", err)
	}
	return nil
}
