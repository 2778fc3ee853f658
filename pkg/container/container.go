package container

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"itemtag-backend/internal/config"
	infraCache "itemtag-backend/internal/infrastructure/cache"
	"itemtag-backend/internal/infrastructure/database"
	"itemtag-backend/pkg/cache"

	itemHandler "itemtag-backend/internal/domains/item/handler"
	itemRepo "itemtag-backend/internal/domains/item/repository"
	itemService "itemtag-backend/internal/domains/item/service"

	tagHandler "itemtag-backend/internal/domains/tag/handler"
	tagRepo "itemtag-backend/internal/domains/tag/repository"
	tagService "itemtag-backend/internal/domains/tag/service"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container chứa TẤT CẢ dependencies của application
// Struct này là "root" của dependency graph
type Container struct {
	// ========================================
	// INFRASTRUCTURE LAYER
	// ========================================
	// Đúng một trong Postgres / SQLite được set, theo DB_DRIVER

	Config   *config.Config
	Postgres *database.PostgresDB
	SQLite   *database.SQLiteDB
	Cache    cache.Cache // nil khi REDIS_ENABLED=false hoặc Redis không kết nối được

	redis *infraCache.RedisClient

	// ========================================
	// REPOSITORY LAYER (DATA ACCESS)
	// ========================================
	ItemRepo itemRepo.Repository
	TagRepo  tagRepo.Repository

	// ========================================
	// SERVICE LAYER (BUSINESS LOGIC)
	// ========================================
	ItemService itemService.Service
	TagService  tagService.Service

	// ========================================
	// HANDLER LAYER (HTTP)
	// ========================================
	ItemHandler *itemHandler.ItemHandler
	TagHandler  *tagHandler.TagHandler
}

// NewContainer load config từ env rồi build dependency graph
func NewContainer() (*Container, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	return Build(ctx, cfg)
}

// Build tạo container từ config đã load.
//
// Thứ tự initialization:
// 1. Database (postgres | sqlite) + auto migrate
// 2. Cache (optional)
// 3. Repositories
// 4. Services
// 5. Handlers
func Build(ctx context.Context, cfg *config.Config) (*Container, error) {
	log.Info().Str("env", cfg.App.Environment).Msg("[CONTAINER] Initializing DI container")

	c := &Container{Config: cfg}

	// ========================================
	// STEP 1: INITIALIZE DATABASE
	// ========================================
	if err := c.initDatabase(ctx); err != nil {
		c.Cleanup()
		return nil, err
	}

	// ========================================
	// STEP 2: INITIALIZE CACHE
	// ========================================
	c.initCache(ctx)

	// ========================================
	// STEP 3-5: REPOSITORIES, SERVICES, HANDLERS
	// ========================================
	c.initRepositories()
	c.initServices()
	c.initHandlers()

	log.Info().Str("driver", cfg.Database.Driver).Bool("cache", c.Cache != nil).
		Msg("[CONTAINER] DI container initialized")
	return c, nil
}

func (c *Container) initDatabase(ctx context.Context) error {
	switch c.Config.Database.Driver {
	case database.DriverSQLite:
		db, err := database.OpenSQLite(ctx, c.Config.Database.SQLitePath)
		if err != nil {
			return fmt.Errorf("failed to open sqlite: %w", err)
		}
		c.SQLite = db

		if c.Config.Database.AutoMigrate {
			if err := migrateUp(ctx, database.DriverSQLite, db.DB); err != nil {
				return err
			}
		}
		return nil

	default:
		dbConfig, err := config.LoadDatabaseConfig()
		if err != nil {
			return fmt.Errorf("failed to load database config: %w", err)
		}

		// goose chạy trên database/sql (lib/pq), đóng ngay sau khi migrate xong
		if c.Config.Database.AutoMigrate {
			sqlDB, err := database.OpenPostgresSQL(dbConfig)
			if err != nil {
				return err
			}
			err = migrateUp(ctx, database.DriverPostgres, sqlDB)
			sqlDB.Close()
			if err != nil {
				return err
			}
		}

		db := database.NewPostgresDB(dbConfig)
		if err := db.Connect(ctx); err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		c.Postgres = db
		return nil
	}
}

func migrateUp(ctx context.Context, driver string, db *sql.DB) error {
	migrator, err := database.NewMigrator(driver, db)
	if err != nil {
		return err
	}
	if _, err := migrator.Up(ctx); err != nil {
		return err
	}
	return nil
}

func (c *Container) initCache(ctx context.Context) {
	if !c.Config.Redis.Enabled {
		log.Info().Msg("[CONTAINER] Redis cache disabled")
		return
	}

	rc := infraCache.NewRedisClient(c.Config.Redis.Host, c.Config.Redis.Password, c.Config.Redis.DB)
	if err := rc.Connect(ctx); err != nil {
		// Redis failure không critical - log warning và continue
		log.Warn().Err(err).Msg("[CONTAINER] Redis connection failed, continuing without cache")
		_ = rc.Close()
		return
	}
	c.redis = rc
	c.Cache = rc
}

// initRepositories chọn implementation theo driver; tag repo được bọc cache nếu có
func (c *Container) initRepositories() {
	if c.SQLite != nil {
		c.ItemRepo = itemRepo.NewSQLiteRepository(c.SQLite.DB)
		c.TagRepo = tagRepo.NewSQLiteRepository(c.SQLite.DB)
	} else {
		c.ItemRepo = itemRepo.NewPostgresRepository(c.Postgres.Pool)
		c.TagRepo = tagRepo.NewPostgresRepository(c.Postgres.Pool)
	}

	if c.Cache != nil {
		c.TagRepo = tagRepo.NewCachedRepository(c.TagRepo, c.Cache, c.Config.Redis.CacheTTL)
	}
}

func (c *Container) initServices() {
	c.ItemService = itemService.NewService(c.ItemRepo)
	c.TagService = tagService.NewService(c.TagRepo)
}

func (c *Container) initHandlers() {
	c.ItemHandler = itemHandler.NewItemHandler(c.ItemService)
	c.TagHandler = tagHandler.NewTagHandler(c.TagService)
}

// HealthCheck ping database và cache; ok = false khi database không phản hồi.
// Cache lỗi chỉ làm status "degraded", không làm fail health check
func (c *Container) HealthCheck(ctx context.Context) (map[string]string, bool) {
	status := map[string]string{"database": "up"}
	ok := true

	var err error
	switch {
	case c.SQLite != nil:
		err = c.SQLite.Ping(ctx)
	case c.Postgres != nil:
		err = c.Postgres.Ping(ctx)
	default:
		err = fmt.Errorf("database not initialized")
	}
	if err != nil {
		log.Warn().Err(err).Msg("[HEALTH] database ping failed")
		status["database"] = "down"
		ok = false
	}

	switch {
	case c.Cache == nil:
		status["cache"] = "disabled"
	case c.Cache.Ping(ctx) != nil:
		status["cache"] = "degraded"
	default:
		status["cache"] = "up"
	}

	return status, ok
}

// Cleanup dọn dẹp resources khi shutdown
func (c *Container) Cleanup() {
	log.Info().Msg("[CONTAINER] Cleaning up resources")

	if c.Postgres != nil {
		if err := c.Postgres.Close(); err != nil {
			log.Warn().Err(err).Msg("[CONTAINER] Failed to close PostgreSQL")
		}
	}
	if c.SQLite != nil {
		if err := c.SQLite.Close(); err != nil {
			log.Warn().Err(err).Msg("[CONTAINER] Failed to close SQLite")
		}
	}
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			log.Warn().Err(err).Msg("[CONTAINER] Failed to close Redis")
		}
	}
}
