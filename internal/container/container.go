package container

import (
	"context"
	"errors"
	"time"

	"github.com/Gauraangst/shorty/internal/analytics"
	analyticsstore "github.com/Gauraangst/shorty/internal/analytics/store"
	"github.com/Gauraangst/shorty/internal/handlers"
	"github.com/Gauraangst/shorty/internal/health"
	"github.com/Gauraangst/shorty/internal/identity"
	"github.com/Gauraangst/shorty/internal/messaging"
	"github.com/Gauraangst/shorty/internal/middleware"
	"github.com/Gauraangst/shorty/internal/ratelimit"
	"github.com/Gauraangst/shorty/internal/shortener"
	"github.com/Gauraangst/shorty/internal/store"
	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-redisstream/pkg/redisstream"
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	_ "github.com/danielgtaylor/huma/v2/formats/cbor" // CBOR format support for huma
	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jaevor/go-nanoid"
	"github.com/redis/go-redis/v9"
	"github.com/samber/do"
	"go.uber.org/zap"
)

// Options holds the service configuration, populated from flags and
// environment variables by humacli.
type Options struct {
	Port          int    `default:"8888"           help:"Port to listen on"                     short:"p"`
	DatabaseURL   string `help:"PostgreSQL connection URL"`
	RedisAddr     string `default:"localhost:6379" help:"Redis server address"                  short:"r"`
	BaseDomain    string `help:"Base domain prepended to short codes"`
	CodeLength    int    `default:"6"              help:"Length of generated short codes"       short:"c"`
	LogFormat     string `default:"console"        help:"Log format (console or json)"`
	ConsumerGroup string `default:"analytics"      help:"Redis stream consumer group name"`
}

// Validate checks that required configuration is present. The server refuses
// to start without it.
func (o *Options) Validate() error {
	if o.DatabaseURL == "" {
		return errors.New("database-url is required")
	}

	if o.BaseDomain == "" {
		return errors.New("base-domain is required")
	}

	return nil
}

// LoggerPackage provides the zap logger.
func LoggerPackage(injector *do.Injector) {
	do.Provide(injector, func(i *do.Injector) (*zap.Logger, error) {
		options := do.MustInvoke[*Options](i)

		if options.LogFormat == "json" {
			return zap.NewProduction()
		}

		return zap.NewDevelopment()
	})
}

// RedisPackage provides the Redis client.
func RedisPackage(injector *do.Injector) {
	do.Provide(injector, func(i *do.Injector) (*redis.Client, error) {
		options := do.MustInvoke[*Options](i)

		return redis.NewClient(&redis.Options{
			Addr: options.RedisAddr,
		}), nil
	})
}

// PostgresPackage provides the PostgreSQL connection pool.
func PostgresPackage(injector *do.Injector) {
	do.Provide(injector, func(i *do.Injector) (*pgxpool.Pool, error) {
		options := do.MustInvoke[*Options](i)

		return pgxpool.New(context.Background(), options.DatabaseURL)
	})
}

// RepositoryPackage provides the persistent stores.
func RepositoryPackage(injector *do.Injector) {
	do.Provide(injector, func(i *do.Injector) (shortener.Repository, error) {
		return store.NewPostgresStore(do.MustInvoke[*pgxpool.Pool](i)), nil
	})

	do.Provide(injector, func(i *do.Injector) (identity.Repository, error) {
		return store.NewPostgresUserStore(do.MustInvoke[*pgxpool.Pool](i)), nil
	})
}

// ShortenerPackage provides the code allocator and resolver.
func ShortenerPackage(injector *do.Injector) {
	do.Provide(injector, func(i *do.Injector) (*shortener.Allocator, error) {
		options := do.MustInvoke[*Options](i)

		generate, err := nanoid.CustomASCII(shortener.GeneratedAlphabet, options.CodeLength)
		if err != nil {
			return nil, err
		}

		return shortener.NewAllocator(
			do.MustInvoke[shortener.Repository](i),
			shortener.CodeGenerator(generate),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})

	do.Provide(injector, func(i *do.Injector) (*shortener.Resolver, error) {
		return shortener.NewResolver(
			do.MustInvoke[shortener.Repository](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
}

// RateLimitPackage provides the Redis-backed write rate limiter.
func RateLimitPackage(injector *do.Injector) {
	do.Provide(injector, func(i *do.Injector) (ratelimit.Limiter, error) {
		limitStore := store.NewRateLimitRedisStore(do.MustInvoke[*redis.Client](i))

		return ratelimit.NewSlidingWindowLimiter(limitStore, 10, time.Minute), nil
	})
}

// PublisherGroupPackage provides the event publisher and typed publish functions.
func PublisherGroupPackage(injector *do.Injector) {
	do.Provide(injector, func(i *do.Injector) (*messaging.PublisherGroup, error) {
		publisher, err := redisstream.NewPublisher(redisstream.PublisherConfig{
			Client: do.MustInvoke[*redis.Client](i),
		}, watermill.NopLogger{})
		if err != nil {
			return nil, err
		}

		return messaging.NewPublisherGroup(publisher), nil
	})

	do.Provide(injector, func(i *do.Injector) (messaging.Publish[analytics.LinkCreatedEvent], error) {
		group := do.MustInvoke[*messaging.PublisherGroup](i)

		return messaging.NewPublishFunc[analytics.LinkCreatedEvent](group.Publisher(), analytics.TopicLinkCreated), nil
	})

	do.Provide(injector, func(i *do.Injector) (messaging.Publish[analytics.LinkResolvedEvent], error) {
		group := do.MustInvoke[*messaging.PublisherGroup](i)

		return messaging.NewPublishFunc[analytics.LinkResolvedEvent](group.Publisher(), analytics.TopicLinkResolved), nil
	})
}

// ConsumerGroupPackage provides the analytics event store and consumer group.
func ConsumerGroupPackage(injector *do.Injector) {
	do.Provide(injector, func(i *do.Injector) (analytics.Store, error) {
		options := do.MustInvoke[*Options](i)
		logger := do.MustInvoke[*zap.Logger](i)

		if options.DatabaseURL == "" {
			return analyticsstore.NewNoop(logger), nil
		}

		return analyticsstore.NewPostgres(do.MustInvoke[*pgxpool.Pool](i)), nil
	})

	do.Provide(injector, func(i *do.Injector) (*messaging.ConsumerGroup, error) {
		options := do.MustInvoke[*Options](i)
		logger := do.MustInvoke[*zap.Logger](i)

		subscriber, err := redisstream.NewSubscriber(redisstream.SubscriberConfig{
			Client:        do.MustInvoke[*redis.Client](i),
			ConsumerGroup: options.ConsumerGroup,
		}, watermill.NopLogger{})
		if err != nil {
			return nil, err
		}

		events := do.MustInvoke[analytics.Store](i)

		group := messaging.NewConsumerGroup(subscriber, logger)
		group.Add(messaging.NewConsumer(subscriber, analytics.TopicLinkCreated,
			func(ctx context.Context, event *analytics.LinkCreatedEvent) error {
				return events.SaveLinkCreated(ctx, event)
			}, logger))
		group.Add(messaging.NewConsumer(subscriber, analytics.TopicLinkResolved,
			func(ctx context.Context, event *analytics.LinkResolvedEvent) error {
				return events.SaveLinkResolved(ctx, event)
			}, logger))

		return group, nil
	})
}

// HTTPPackage provides the router and the API with all routes registered.
func HTTPPackage(injector *do.Injector) {
	do.Provide(injector, func(_ *do.Injector) (*chi.Mux, error) {
		return chi.NewMux(), nil
	})

	do.Provide(injector, func(i *do.Injector) (huma.API, error) {
		options := do.MustInvoke[*Options](i)
		logger := do.MustInvoke[*zap.Logger](i)
		router := do.MustInvoke[*chi.Mux](i)

		api := humachi.New(router, huma.DefaultConfig("Shorty", "1.0.0"))

		api.UseMiddleware(middleware.RequestMeta(api))
		api.UseMiddleware(middleware.RateLimiter(api, do.MustInvoke[ratelimit.Limiter](i)))

		linkHandler := handlers.NewLinkHandler(
			do.MustInvoke[*shortener.Allocator](i),
			do.MustInvoke[*shortener.Resolver](i),
			options.BaseDomain,
			do.MustInvoke[messaging.Publish[analytics.LinkCreatedEvent]](i),
			do.MustInvoke[messaging.Publish[analytics.LinkResolvedEvent]](i),
			logger,
		)
		userHandler := handlers.NewUserHandler(do.MustInvoke[identity.Repository](i), logger)

		healthHandler := health.NewHandler(
			health.NewPostgresChecker(do.MustInvoke[*pgxpool.Pool](i)),
			health.NewRedisChecker(do.MustInvoke[*redis.Client](i)),
		)

		health.RegisterRoutes(api, healthHandler)
		handlers.RegisterRoutes(api, linkHandler, userHandler)

		return api, nil
	})
}
