package bootstrap

import (
	"context"
	"crypto/tls"
	"net/http"
	"strings"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/samber/do"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/tours360/tourgraph/internal/auth"
	"github.com/tours360/tourgraph/internal/config"
	"github.com/tours360/tourgraph/internal/infra/blob"
	"github.com/tours360/tourgraph/internal/infra/cache"
	"github.com/tours360/tourgraph/internal/infra/db"
	"github.com/tours360/tourgraph/internal/infra/httpclient"
	"github.com/tours360/tourgraph/internal/infra/logger"
	mq "github.com/tours360/tourgraph/internal/infra/queue"
	"github.com/tours360/tourgraph/internal/infra/search"
	"github.com/tours360/tourgraph/internal/modules/handler"
	"github.com/tours360/tourgraph/internal/modules/model"
	"github.com/tours360/tourgraph/internal/modules/repo"
	"github.com/tours360/tourgraph/internal/modules/service"
	"github.com/tours360/tourgraph/internal/telemetry"
)

func BuildContainer() *do.Injector {
	inj := do.New()

	// config
	do.Provide(inj, func(i *do.Injector) (*config.Config, error) {
		return config.Load()
	})

	// logger
	do.Provide(inj, func(i *do.Injector) (*zap.Logger, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return logger.New(cfg.Log.Level)
	})

	// DB
	do.Provide(inj, func(i *do.Injector) (*gorm.DB, error) {
		cfg := do.MustInvoke[*config.Config](i)
		log := do.MustInvoke[*zap.Logger](i)
		d, err := db.New(cfg)
		if err != nil {
			return nil, err
		}
		if telemetry.Enabled(cfg) {
			if err := db.RegisterOpenTelemetryPlugin(d); err != nil {
				log.Warn("gorm tracing disabled", zap.Error(err))
			}
		}

		// [optional] auto migrate
		if cfg.Database.AutoMigrate {
			if err := d.AutoMigrate(
				&model.Property{},
				&model.Scene{},
				&model.Hotspot{},
				&model.GalleryImage{},
				&model.Lead{},
			); err != nil {
				return nil, err
			}
		}
		return d, nil
	})

	// Redis
	do.Provide(inj, func(i *do.Injector) (*redis.Client, error) {
		cfg := do.MustInvoke[*config.Config](i)
		log := do.MustInvoke[*zap.Logger](i)
		rdb, err := cache.Open(context.Background(), cfg)
		if err != nil {
			return nil, err
		}
		if telemetry.Enabled(cfg) {
			if err := cache.Instrument(rdb); err != nil {
				log.Warn("redis tracing disabled", zap.Error(err))
			}
		}
		return rdb, nil
	})

	// property edit lock
	do.Provide(inj, func(i *do.Injector) (*cache.PropertyLock, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return cache.NewPropertyLock(do.MustInvoke[*redis.Client](i), cfg.Cascade.LockTTL), nil
	})

	// RabbitMQ Connection
	do.Provide(inj, func(i *do.Injector) (*amqp.Connection, error) {
		cfg := do.MustInvoke[*config.Config](i)

		// Check if TLS is enabled via config or URL protocol
		useTLS := cfg.RabbitMQ.EnableTLS || strings.HasPrefix(cfg.RabbitMQ.URL, "amqps://")
		if useTLS {
			url := cfg.RabbitMQ.URL
			if strings.HasPrefix(url, "amqp://") {
				url = strings.Replace(url, "amqp://", "amqps://", 1)
			}
			return amqp.DialTLS(url, &tls.Config{MinVersion: tls.VersionTLS12})
		}
		return amqp.Dial(cfg.RabbitMQ.URL)
	})

	// RabbitMQ Publisher
	do.Provide(inj, func(i *do.Injector) (*mq.Publisher, error) {
		return mq.NewPublisher(
			do.MustInvoke[*amqp.Connection](i),
			do.MustInvoke[*zap.Logger](i),
			do.MustInvoke[*config.Config](i),
		)
	})

	// S3
	do.Provide(inj, func(i *do.Injector) (*blob.S3Deps, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return blob.NewS3(context.Background(), cfg)
	})

	// Meilisearch
	do.Provide(inj, func(i *do.Injector) (*search.SearchClient, error) {
		cfg := do.MustInvoke[*config.Config](i)
		log := do.MustInvoke[*zap.Logger](i)
		sc := search.NewSearchClient(cfg)
		// meilisearch creates a missing index on the first document add
		if err := sc.InitIndex(); err != nil {
			log.Warn("search index init failed", zap.Error(err))
		}
		return sc, nil
	})

	// Upstream HTTP client
	do.Provide(inj, func(i *do.Injector) (*http.Client, error) {
		return httpclient.New(10 * time.Second), nil
	})

	// Authorizer
	do.Provide(inj, func(i *do.Injector) (auth.Authorizer, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return auth.NewSupabaseAuthorizer(
			cfg.Auth.SupabaseProjectRef,
			cfg.Auth.SupabaseAnonKey,
			cfg.Auth.SupabaseAuthURL,
			cfg.Auth.AdminEmails,
			do.MustInvoke[*http.Client](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})

	// Repo
	do.Provide(inj, func(i *do.Injector) (repo.PropertyRepo, error) {
		return repo.NewPropertyRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.SceneRepo, error) {
		return repo.NewSceneRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.HotspotRepo, error) {
		return repo.NewHotspotRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.GalleryRepo, error) {
		return repo.NewGalleryRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.LeadRepo, error) {
		return repo.NewLeadRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.StatsRepo, error) {
		return repo.NewStatsRepo(do.MustInvoke[*gorm.DB](i)), nil
	})

	// Service
	do.Provide(inj, func(i *do.Injector) (service.HotspotService, error) {
		return service.NewHotspotService(
			do.MustInvoke[repo.SceneRepo](i),
			do.MustInvoke[repo.HotspotRepo](i),
			do.MustInvoke[*cache.PropertyLock](i),
			do.MustInvoke[auth.Authorizer](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (*service.CascadeCoordinator, error) {
		return service.NewCascadeCoordinator(
			do.MustInvoke[repo.SceneRepo](i),
			do.MustInvoke[service.HotspotService](i),
			do.MustInvoke[*cache.PropertyLock](i),
			do.MustInvoke[*mq.Publisher](i),
			do.MustInvoke[*config.Config](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.SceneService, error) {
		return service.NewSceneService(
			do.MustInvoke[repo.PropertyRepo](i),
			do.MustInvoke[repo.SceneRepo](i),
			do.MustInvoke[*service.CascadeCoordinator](i),
			do.MustInvoke[*blob.S3Deps](i),
			do.MustInvoke[*config.Config](i),
			do.MustInvoke[auth.Authorizer](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.PublicationService, error) {
		return service.NewPublicationService(
			do.MustInvoke[repo.PropertyRepo](i),
			do.MustInvoke[repo.SceneRepo](i),
			do.MustInvoke[repo.GalleryRepo](i),
			do.MustInvoke[*cache.PropertyLock](i),
			do.MustInvoke[*search.SearchClient](i),
			do.MustInvoke[*mq.Publisher](i),
			do.MustInvoke[*config.Config](i),
			do.MustInvoke[auth.Authorizer](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.PropertyService, error) {
		return service.NewPropertyService(
			do.MustInvoke[repo.PropertyRepo](i),
			do.MustInvoke[repo.SceneRepo](i),
			do.MustInvoke[repo.HotspotRepo](i),
			do.MustInvoke[repo.GalleryRepo](i),
			do.MustInvoke[*search.SearchClient](i),
			do.MustInvoke[*blob.S3Deps](i),
			do.MustInvoke[auth.Authorizer](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.GalleryService, error) {
		return service.NewGalleryService(
			do.MustInvoke[repo.PropertyRepo](i),
			do.MustInvoke[repo.GalleryRepo](i),
			do.MustInvoke[*blob.S3Deps](i),
			do.MustInvoke[*config.Config](i),
			do.MustInvoke[auth.Authorizer](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})

	do.Provide(inj, func(i *do.Injector) (service.LeadService, error) {
		return service.NewLeadService(
			do.MustInvoke[repo.PropertyRepo](i),
			do.MustInvoke[repo.LeadRepo](i),
			do.MustInvoke[*mq.Publisher](i),
			do.MustInvoke[*config.Config](i),
			do.MustInvoke[auth.Authorizer](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.StatsService, error) {
		return service.NewStatsService(
			do.MustInvoke[repo.StatsRepo](i),
			do.MustInvoke[auth.Authorizer](i),
		), nil
	})

	// Handler
	do.Provide(inj, func(i *do.Injector) (*handler.PropertyHandler, error) {
		return handler.NewPropertyHandler(
			do.MustInvoke[service.PropertyService](i),
			do.MustInvoke[service.PublicationService](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.SceneHandler, error) {
		return handler.NewSceneHandler(do.MustInvoke[service.SceneService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.HotspotHandler, error) {
		return handler.NewHotspotHandler(do.MustInvoke[service.HotspotService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.GalleryHandler, error) {
		return handler.NewGalleryHandler(do.MustInvoke[service.GalleryService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.LeadHandler, error) {
		return handler.NewLeadHandler(do.MustInvoke[service.LeadService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.StatsHandler, error) {
		return handler.NewStatsHandler(do.MustInvoke[service.StatsService](i)), nil
	})
	return inj
}
