package main

import (
	"gallery-app/config"
	"gallery-app/database"
	"gallery-app/internal/infra/inquirystore"
	"gallery-app/internal/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var seedMock bool

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the contact_requests table",
	Long: `Runs AutoMigrate against DB_URL.

With --seed-mock (or DB_SEED_MOCK=true) the five development inquiries are
inserted when the table is still empty.`,
	RunE: runMigrate,
}

func init() {
	migrateCmd.Flags().BoolVar(&seedMock, "seed-mock", false, "insert mock inquiries into an empty table")
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log, err := logger.New(cfg.Env, verbose)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	db, err := database.Open(cfg.DBURL, log)
	if err != nil {
		return err
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	if err := database.Migrate(db); err != nil {
		return err
	}
	log.Info("migration complete")

	if seedMock || cfg.DBSeedMock {
		n, err := inquirystore.New(db).SeedMockIfEmpty(cmd.Context())
		if err != nil {
			return err
		}
		log.Info("mock inquiries seeded", zap.Int("inserted", n))
	}
	return nil
}
