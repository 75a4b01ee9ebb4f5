package main

import (
	"context"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	httpadp "github.com/cagb07/gestor-centros-app/internal/adapter/http"
	"github.com/cagb07/gestor-centros-app/internal/adapter/repository/sqlstore"
	"github.com/cagb07/gestor-centros-app/internal/catalog"
	"github.com/cagb07/gestor-centros-app/internal/config"
	"github.com/cagb07/gestor-centros-app/internal/infrastructure/cache"
	"github.com/cagb07/gestor-centros-app/internal/infrastructure/db"
	"github.com/cagb07/gestor-centros-app/internal/session"
	areauc "github.com/cagb07/gestor-centros-app/internal/usecase/area"
	subuc "github.com/cagb07/gestor-centros-app/internal/usecase/submission"
	templateuc "github.com/cagb07/gestor-centros-app/internal/usecase/template"
	useruc "github.com/cagb07/gestor-centros-app/internal/usecase/user"
)

func main() {
	logger, _ := zap.NewProduction()
	defer func() { _ = logger.Sync() }()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Fatal("invalid config", zap.Error(err))
	}

	gdb, err := db.Open(cfg.DBDriver, cfg.DSN())
	if err != nil {
		logger.Fatal("db open", zap.Error(err))
	}
	if err := sqlstore.Migrate(gdb); err != nil {
		logger.Fatal("db migrate", zap.Error(err))
	}
	logger.Info("database ready", zap.String("driver", cfg.DBDriver))

	ttl := time.Duration(cfg.SessionTTLSecs) * time.Second
	var sessions session.Store
	if cfg.RedisAddr != "" {
		rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
		if err != nil {
			logger.Fatal("redis open", zap.Error(err))
		}
		sessions = session.NewRedisStore(rdb, ttl)
		logger.Info("session store: redis", zap.String("addr", cfg.RedisAddr))
	} else {
		sessions = session.NewMemoryStore(ttl)
		logger.Info("session store: in-memory")
	}

	centers, err := catalog.Load(cfg.CSVPath)
	if err != nil {
		logger.Fatal("reference catalog load", zap.String("path", cfg.CSVPath), zap.Error(err))
	}
	logger.Info("reference catalog loaded", zap.Int("centers", centers.Len()))

	uow := sqlstore.NewGormUoW(gdb)
	areaRepo := sqlstore.NewAreaRepository(gdb)
	userRepo := sqlstore.NewUserRepository(gdb)
	templateRepo := sqlstore.NewTemplateRepository(gdb)
	submissionRepo := sqlstore.NewSubmissionRepository(gdb)

	areas := areauc.NewUsecase(uow, areaRepo)
	templates := templateuc.NewUsecase(uow, templateRepo)
	submissions := subuc.NewUsecase(uow, submissionRepo)
	users := useruc.NewUsecase(uow, userRepo, logger)

	if cfg.SeedAdminUser != "" && cfg.SeedAdminPass != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := users.SeedAdmin(ctx, cfg.SeedAdminUser, cfg.SeedAdminPass, cfg.SeedAdminName); err != nil {
			logger.Warn("admin seed", zap.Error(err))
		}
		cancel()
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Logger(), middleware.Recover())

	httpadp.Register(e, httpadp.Handlers{
		Health:      httpadp.NewHandler(),
		Auth:        httpadp.NewAuthHandler(users, sessions),
		Areas:       httpadp.NewAreaHandler(areas),
		Templates:   httpadp.NewTemplateHandler(templates, centers),
		Submissions: httpadp.NewSubmissionHandler(submissions),
		Users:       httpadp.NewUserHandler(users),
		Catalog:     httpadp.NewCatalogHandler(centers, sessions),
	}, sessions)

	addr := ":" + cfg.AppPort
	logger.Info("listening", zap.String("addr", addr))
	if err := e.Start(addr); err != nil {
		logger.Fatal("server", zap.Error(err))
	}
}
