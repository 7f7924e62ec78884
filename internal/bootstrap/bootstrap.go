package bootstrap

import (
	"context"
	"fmt"

	"phishsim-server/internal/api"
	"phishsim-server/internal/config"
	"phishsim-server/internal/database"
	"phishsim-server/internal/events"
	"phishsim-server/internal/observability"
	"phishsim-server/internal/ratelimit"
	"phishsim-server/internal/store"
	"phishsim-server/migrations"

	analyticsHandler "phishsim-server/internal/analytics/handler"
	analyticsProcessor "phishsim-server/internal/analytics/processor"
	authHandler "phishsim-server/internal/auth/handler"
	authProcessor "phishsim-server/internal/auth/processor"
	campaignHandler "phishsim-server/internal/campaign/handler"
	campaignProcessor "phishsim-server/internal/campaign/processor"
	kafkaClient "phishsim-server/internal/clients/kafka"
	redisClient "phishsim-server/internal/clients/redis"
	collectedDataHandler "phishsim-server/internal/collecteddata/handler"
	collectedDataProcessor "phishsim-server/internal/collecteddata/processor"
	companiesHandler "phishsim-server/internal/companies/handler"
	companiesProcessor "phishsim-server/internal/companies/processor"
	contactsHandler "phishsim-server/internal/contacts/handler"
	contactsProcessor "phishsim-server/internal/contacts/processor"
	emailServicesHandler "phishsim-server/internal/emailservices/handler"
	emailServicesProcessor "phishsim-server/internal/emailservices/processor"
	landingPagesHandler "phishsim-server/internal/landingpages/handler"
	landingPagesProcessor "phishsim-server/internal/landingpages/processor"
	recipientsHandler "phishsim-server/internal/recipients/handler"
	recipientsProcessor "phishsim-server/internal/recipients/processor"
	templatesHandler "phishsim-server/internal/templates/handler"
	templatesProcessor "phishsim-server/internal/templates/processor"
	trackingHandler "phishsim-server/internal/tracking/handler"
	trackingProcessor "phishsim-server/internal/tracking/processor"
	usersHandler "phishsim-server/internal/users/handler"
	usersProcessor "phishsim-server/internal/users/processor"
)

// Dependencies holds all initialized application dependencies
type Dependencies struct {
	// Core
	Store  store.Store
	Redis  *redisClient.Client
	Logger *observability.Logger

	Handlers   api.Handlers
	Middleware api.Middleware

	// Nil when KAFKA_BROKERS is empty
	KafkaProducer *kafkaClient.Producer
}

// Initialize sets up all application dependencies. ctx bounds the lifetime of background
// sweepers such as the rate limiter cleanup.
func Initialize(ctx context.Context, cfg *config.Config, logger *observability.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Logger: logger,
	}

	// Apply schema migrations before opening the pool
	connectionString := cfg.Database.ConnectionString()
	if err := database.RunMigrations(migrations.FS, connectionString); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	var err error
	deps.Store, err = store.New(connectionString, cfg.Database.MaxConns, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	deps.Redis, err = redisClient.NewClient(cfg.Redis, logger)
	if err != nil {
		deps.Cleanup()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	// Engagement events are dropped when no brokers are configured
	var producer events.Producer
	if brokers := cfg.Kafka.BrokerList(); len(brokers) > 0 {
		deps.KafkaProducer = kafkaClient.NewProducer(kafkaClient.ProducerConfig{
			Brokers: brokers,
			Topic:   cfg.Kafka.Topic,
		}, logger)
		producer = deps.KafkaProducer
	} else {
		logger.Warn(ctx, "KAFKA_BROKERS not set, engagement events will not be published")
	}
	publisher := events.NewPublisher(producer, logger)

	s := &deps.Store

	// Initialize auth processor and handler
	authProc := authProcessor.New(s, deps.Redis, authProcessor.AuthConfig{
		SessionSecret: cfg.Auth.SessionSecret,
		SessionTTL:    cfg.Auth.SessionTTL,
	}, logger)
	deps.Handlers.Auth = authHandler.New(authProc, cfg.Server.IsProduction(), logger)

	deps.Handlers.Companies = companiesHandler.New(companiesProcessor.New(s, logger), logger)
	deps.Handlers.Users = usersHandler.New(usersProcessor.New(s, logger), logger)
	deps.Handlers.Templates = templatesHandler.New(templatesProcessor.New(s, logger), logger)
	deps.Handlers.LandingPages = landingPagesHandler.New(landingPagesProcessor.New(s, logger), logger)
	deps.Handlers.EmailServices = emailServicesHandler.New(
		emailServicesProcessor.New(s, emailServicesProcessor.NewResendMailerFactory(logger), logger),
		logger,
	)
	deps.Handlers.Contacts = contactsHandler.New(contactsProcessor.New(s, logger), logger)
	deps.Handlers.Campaigns = campaignHandler.New(campaignProcessor.New(s, logger), logger)
	deps.Handlers.Recipients = recipientsHandler.New(recipientsProcessor.New(s, publisher, logger), logger)
	deps.Handlers.Tracking = trackingHandler.New(trackingProcessor.New(s, publisher, logger), logger)
	deps.Handlers.CollectedData = collectedDataHandler.New(collectedDataProcessor.New(s, logger), logger)
	deps.Handlers.Analytics = analyticsHandler.New(analyticsProcessor.New(s, logger), logger)

	// Request guards
	trackingLimiter := ratelimit.NewLimiter(ctx, cfg.RateLimit.TrackingRPS, cfg.RateLimit.TrackingBurst)
	authLimiter := ratelimit.NewLimiter(ctx, cfg.RateLimit.AuthRPS, cfg.RateLimit.AuthBurst)
	deps.Middleware = api.Middleware{
		Session:           authHandler.RequireSession(&authProc),
		AuthRateLimit:     ratelimit.Middleware(authLimiter, "auth", logger),
		TrackingRateLimit: ratelimit.Middleware(trackingLimiter, "tracking_submit", logger),
	}

	return deps, nil
}

// Cleanup closes all resources that need cleanup
func (d *Dependencies) Cleanup() {
	ctx := context.Background()
	if d.KafkaProducer != nil {
		if err := d.KafkaProducer.Close(); err != nil {
			d.Logger.Error(ctx, "failed to close kafka producer", err)
		}
	}
	if d.Redis != nil {
		if err := d.Redis.Close(); err != nil {
			d.Logger.Error(ctx, "failed to close redis client", err)
		}
	}
	if err := d.Store.Close(); err != nil {
		d.Logger.Error(ctx, "failed to close database", err)
	}
}
