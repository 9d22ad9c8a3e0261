package main

import (
	"context"
	"fmt"
	"time"

	"gallery-app/config"
	"gallery-app/database"
	adminapi "gallery-app/internal/api/admin"
	authapi "gallery-app/internal/api/auth"
	inquiriesapi "gallery-app/internal/api/inquiries"
	paintingsapi "gallery-app/internal/api/paintings"
	selectionapi "gallery-app/internal/api/selection"
	tourapi "gallery-app/internal/api/tour"
	routes "gallery-app/internal/app/http"
	"gallery-app/internal/app/http/middleware"
	"gallery-app/internal/domain/admin"
	"gallery-app/internal/domain/catalog"
	"gallery-app/internal/domain/inquiry"
	"gallery-app/internal/domain/selection"
	"gallery-app/internal/domain/visits"
	"gallery-app/internal/infra/inquirystore"
	"gallery-app/internal/infra/mailer"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// newEngine wires every handler around one seeded catalog.
func newEngine(cfg *config.Config, log *zap.Logger, store inquiry.Store, notifier inquiry.Notifier) *gin.Engine {
	if cfg.Env == config.EnvProd {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.RequestLogger(log), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.CORSOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	cat := catalog.NewSeeded()

	routes.RegisterRoutes(r, routes.Deps{
		JWTSecret:     cfg.JWTSecret,
		SecureCookies: cfg.Env == config.EnvProd,
		Paintings:     paintingsapi.NewHandler(cat, log),
		Selection:     selectionapi.NewHandler(cat, selection.NewRegistry(), log),
		Tour:          tourapi.NewHandler(cat, visits.NewStores(), log),
		Inquiries:     inquiriesapi.NewHandler(cat, store, notifier, log),
		Admin:         adminapi.NewHandler(admin.NewWorkspaces(catalog.Seed), store, log),
		Auth:          authapi.NewHandler(cfg, log),
	})
	return r
}

func newNotifier(cfg *config.Config, log *zap.Logger) inquiry.Notifier {
	mc := mailer.Config{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		From:     cfg.SMTP.From,
		Password: cfg.SMTP.Password,
		To:       cfg.SMTP.NotifyTo,
	}
	if !mc.Enabled() {
		log.Info("SMTP not configured, inquiry mails disabled")
		return inquiry.NopNotifier{}
	}
	return mailer.New(mc)
}

// openInquiryStore picks Postgres when DB_URL is set and memory otherwise.
// The returned close func is never nil.
func openInquiryStore(ctx context.Context, cfg *config.Config, log *zap.Logger) (inquiry.Store, func(), error) {
	if cfg.DBURL == "" {
		log.Warn("DB_URL not set, inquiries are kept in memory")
		return inquiry.NewMemoryStore(), func() {}, nil
	}

	db, err := database.Open(cfg.DBURL, log)
	if err != nil {
		return nil, nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, nil, fmt.Errorf("database: %w", err)
	}
	closeDB := func() { _ = sqlDB.Close() }

	if err := database.Migrate(db); err != nil {
		closeDB()
		return nil, nil, err
	}

	store := inquirystore.New(db)
	if cfg.DBSeedMock {
		n, err := store.SeedMockIfEmpty(ctx)
		if err != nil {
			closeDB()
			return nil, nil, err
		}
		log.Info("mock inquiries seeded", zap.Int("inserted", n))
	}
	return store, closeDB, nil
}
