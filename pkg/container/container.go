package container

import (
	"context"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"tattoo-studio/internal/config"
	infraCache "tattoo-studio/internal/infrastructure/cache"
	"tattoo-studio/internal/infrastructure/database"
	"tattoo-studio/internal/infrastructure/storage"
	"tattoo-studio/pkg/cache"
	"tattoo-studio/pkg/jwt"

	appointmentHandler "tattoo-studio/internal/domains/appointment/handler"
	appointmentRepo "tattoo-studio/internal/domains/appointment/repository"
	appointmentService "tattoo-studio/internal/domains/appointment/service"
	artistHandler "tattoo-studio/internal/domains/artist/handler"
	artistRepo "tattoo-studio/internal/domains/artist/repository"
	artistService "tattoo-studio/internal/domains/artist/service"
	dashboardHandler "tattoo-studio/internal/domains/dashboard/handler"
	dashboardService "tattoo-studio/internal/domains/dashboard/service"
	designHandler "tattoo-studio/internal/domains/design/handler"
	designRepo "tattoo-studio/internal/domains/design/repository"
	designService "tattoo-studio/internal/domains/design/service"
	requestHandler "tattoo-studio/internal/domains/tattoorequest/handler"
	requestRepo "tattoo-studio/internal/domains/tattoorequest/repository"
	requestService "tattoo-studio/internal/domains/tattoorequest/service"
	userHandler "tattoo-studio/internal/domains/user/handler"
	userRepo "tattoo-studio/internal/domains/user/repository"
	userService "tattoo-studio/internal/domains/user/service"
)

// Container chứa toàn bộ dependencies, dùng chung cho cmd/api và cmd/worker.
// Thứ tự build: config → infrastructure → repositories → services → handlers.
type Container struct {
	// ========================================
	// INFRASTRUCTURE
	// ========================================
	Config      *config.Config
	DB          *database.PostgresDB
	Redis       *infraCache.RedisClient
	Cache       cache.Cache
	Storage     *storage.MinIOStorage
	AsynqClient *asynq.Client
	JWTManager  *jwt.Manager

	// ========================================
	// SERVICES
	// ========================================
	UserService          userService.ServiceInterface
	ArtistService        artistService.ServiceInterface
	DesignService        designService.ServiceInterface
	TattooRequestService requestService.ServiceInterface
	AppointmentService   appointmentService.ServiceInterface
	DashboardService     dashboardService.ServiceInterface

	// ========================================
	// HANDLERS
	// ========================================
	UserHandler          *userHandler.UserHandler
	ArtistHandler        *artistHandler.ArtistHandler
	DesignHandler        *designHandler.DesignHandler
	TattooRequestHandler *requestHandler.TattooRequestHandler
	AppointmentHandler   *appointmentHandler.AppointmentHandler
	DashboardHandler     *dashboardHandler.DashboardHandler
}

func NewContainer() (*Container, error) {
	log.Info().Msg("Initializing DI container...")
	c := &Container{}

	// ========================================
	// STEP 1: CONFIGURATION
	// ========================================
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	log.Info().Str("env", cfg.App.Environment).Msg("Config loaded")

	// ========================================
	// STEP 2: INFRASTRUCTURE
	// ========================================
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := c.initDatabase(ctx); err != nil {
		c.Cleanup()
		return nil, err
	}
	if err := c.initRedis(ctx); err != nil {
		c.Cleanup()
		return nil, err
	}
	if err := c.initStorage(ctx); err != nil {
		c.Cleanup()
		return nil, err
	}

	c.AsynqClient = asynq.NewClient(c.RedisOpt())
	c.JWTManager = jwt.NewManager(cfg.JWT.Secret, cfg.JWT.AccessTTL)

	// ========================================
	// STEP 3: DOMAINS
	// ========================================
	c.initDomains()

	log.Info().Msg("DI container ready")
	return c, nil
}

func (c *Container) initDatabase(ctx context.Context) error {
	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)
	if err := db.Connect(ctx); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	c.DB = db

	if err := db.HealthCheck(ctx); err != nil {
		return fmt.Errorf("database health check failed: %w", err)
	}
	return nil
}

func (c *Container) initRedis(ctx context.Context) error {
	rc := infraCache.NewRedisClient(c.Config.Redis.Host, c.Config.Redis.Password, c.Config.Redis.DB)
	if err := rc.Connect(ctx); err != nil {
		return fmt.Errorf("failed to connect to redis: %w", err)
	}
	c.Redis = rc
	c.Cache = infraCache.NewRedisCache(rc.Client)
	return nil
}

func (c *Container) initStorage(ctx context.Context) error {
	s, err := storage.NewMinIOStorage(ctx, c.Config.MinIO)
	if err != nil {
		return fmt.Errorf("failed to init object storage: %w", err)
	}
	c.Storage = s
	return nil
}

func (c *Container) initDomains() {
	pool := c.DB.Pool

	// Repositories
	users := userRepo.NewPostgresUserRepository(pool)
	artists := artistRepo.NewPostgresArtistRepository(pool)
	designs := designRepo.NewPostgresDesignRepository(pool)
	requests := requestRepo.NewPostgresTattooRequestRepository(pool)
	appointments := appointmentRepo.NewPostgresAppointmentRepository(pool)

	// Services
	c.UserService = userService.NewUserService(users, c.JWTManager)
	c.ArtistService = artistService.NewArtistService(artists, c.Cache)
	c.DesignService = designService.NewDesignService(designs, c.Storage)
	c.TattooRequestService = requestService.NewTattooRequestService(
		requests,
		c.DesignService,
		c.Storage,
		storage.NewImageProcessor(),
		c.AsynqClient,
	)
	c.AppointmentService = appointmentService.NewAppointmentService(
		appointments,
		c.ArtistService,
		c.TattooRequestService,
	)
	c.DashboardService = dashboardService.NewDashboardService(
		c.AppointmentService,
		c.TattooRequestService,
		c.DesignService,
	)

	// Handlers
	c.UserHandler = userHandler.NewUserHandler(c.UserService)
	c.ArtistHandler = artistHandler.NewArtistHandler(c.ArtistService)
	c.DesignHandler = designHandler.NewDesignHandler(c.DesignService)
	c.TattooRequestHandler = requestHandler.NewTattooRequestHandler(c.TattooRequestService)
	c.AppointmentHandler = appointmentHandler.NewAppointmentHandler(c.AppointmentService)
	c.DashboardHandler = dashboardHandler.NewDashboardHandler(c.DashboardService)
}

// RedisOpt dùng chung cho asynq client, server và scheduler
func (c *Container) RedisOpt() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     c.Config.Redis.Host,
		Password: c.Config.Redis.Password,
		DB:       c.Config.Redis.DB,
	}
}

// Cleanup dọn dẹp resources khi shutdown, an toàn khi container mới build dở
func (c *Container) Cleanup() {
	log.Info().Msg("Cleaning up container resources...")

	if c.AsynqClient != nil {
		if err := c.AsynqClient.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to close asynq client")
		}
	}

	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to close Redis")
		}
	}

	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to close database")
		}
	}

	log.Info().Msg("Container cleanup completed")
}
