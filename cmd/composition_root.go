package cmd

import (
	"context"
	"fmt"
	"log/slog"

	httpin "barista/internal/adapters/in/http"
	"barista/internal/adapters/out/menufile"
	"barista/internal/adapters/out/postgres/menurepo"
	"barista/internal/core/application/engine"
	"barista/internal/core/application/usecases/commands"
	"barista/internal/core/application/usecases/queries"
	"barista/internal/core/ports"
	"barista/internal/jobs"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// CompositionRoot owns the single engine instance and wires it into every consumer.
type CompositionRoot struct {
	config   Config
	logger   *slog.Logger
	registry *prometheus.Registry

	broker     *engine.Broker
	controller *engine.Controller
	menuRepo   ports.MenuRepository
	gormDB     *gorm.DB
}

func NewCompositionRoot(ctx context.Context, config Config, logger *slog.Logger) (*CompositionRoot, error) {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	metrics, err := engine.NewMetrics(registry)
	if err != nil {
		return nil, fmt.Errorf("register engine metrics: %w", err)
	}

	broker := engine.NewBroker()
	controller := engine.NewController(
		jobs.NewClock(logger, jobs.WithRecover(!config.IsDevelopment())),
		logger,
		engine.WithBroker(broker),
		engine.WithMetrics(metrics),
		engine.WithAssertions(config.IsDevelopment()),
	)

	root := &CompositionRoot{
		config:     config,
		logger:     logger,
		registry:   registry,
		broker:     broker,
		controller: controller,
	}

	if err = root.openMenu(ctx); err != nil {
		return nil, err
	}
	return root, nil
}

// openMenu loads the catalog. A Postgres catalog is migrated and, when empty, seeded from
// the menu file.
func (c *CompositionRoot) openMenu(ctx context.Context) error {
	if c.config.MenuSource != MenuSourcePostgres {
		repo, err := menufile.Open(c.config.MenuFile)
		if err != nil {
			return fmt.Errorf("load menu: %w", err)
		}
		c.menuRepo = repo
		return nil
	}

	db, err := gorm.Open(gormpostgres.Open(c.config.DSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	c.gormDB = db

	repo := menurepo.NewGormMenuRepository(db)
	if err = repo.Migrate(ctx); err != nil {
		return fmt.Errorf("migrate menu: %w", err)
	}

	count, err := repo.Count(ctx)
	if err != nil {
		return fmt.Errorf("count menu items: %w", err)
	}
	if count == 0 {
		seed, err := menufile.Open(c.config.MenuFile)
		if err != nil {
			return fmt.Errorf("load menu seed: %w", err)
		}
		items, err := seed.GetAll(ctx)
		if err != nil {
			return err
		}
		if err = repo.AddAll(ctx, items); err != nil {
			return fmt.Errorf("seed menu: %w", err)
		}
		c.logger.InfoContext(ctx, "Seeded menu catalog", "items", len(items), "source", c.config.MenuFile)
	}

	c.menuRepo = repo
	return nil
}

func (c *CompositionRoot) Controller() *engine.Controller {
	return c.controller
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	return commands.NewPlaceOrderCommandHandler(c.menuRepo, c.controller)
}

func (c *CompositionRoot) CreatePickUpOrderCommandHandler() commands.PickUpOrderCommandHandler {
	return commands.NewPickUpOrderCommandHandler(c.controller)
}

func (c *CompositionRoot) CreateStartClockCommandHandler() commands.StartClockCommandHandler {
	return commands.NewStartClockCommandHandler(c.controller)
}

func (c *CompositionRoot) CreateStopClockCommandHandler() commands.StopClockCommandHandler {
	return commands.NewStopClockCommandHandler(c.controller)
}

func (c *CompositionRoot) CreateGetMenuQueryHandler() queries.GetMenuQueryHandler {
	return queries.NewGetMenuQueryHandler(c.menuRepo)
}

func (c *CompositionRoot) CreateGetQueueQueryHandler() queries.GetQueueQueryHandler {
	return queries.NewGetQueueQueryHandler(c.controller)
}

func (c *CompositionRoot) CreateGetReadyOrdersQueryHandler() queries.GetReadyOrdersQueryHandler {
	return queries.NewGetReadyOrdersQueryHandler(c.controller)
}

func (c *CompositionRoot) CreateGetCountsQueryHandler() queries.GetCountsQueryHandler {
	return queries.NewGetCountsQueryHandler(c.controller)
}

// CreateRouter builds the HTTP server with every handler bound to the shared engine.
func (c *CompositionRoot) CreateRouter(ctx context.Context) (*echo.Echo, error) {
	server := httpin.NewServer(
		c.CreatePlaceOrderCommandHandler(),
		c.CreatePickUpOrderCommandHandler(),
		c.CreateStartClockCommandHandler(),
		c.CreateStopClockCommandHandler(),
		c.CreateGetMenuQueryHandler(),
		c.CreateGetQueueQueryHandler(),
		c.CreateGetReadyOrdersQueryHandler(),
		c.CreateGetCountsQueryHandler(),
		c.controller,
	)

	return httpin.NewRouter(ctx, httpin.RouterConfig{
		Server:     server,
		Stream:     httpin.NewStreamHandler(c.controller, c.logger),
		Registerer: c.registry,
		Gatherer:   c.registry,
		Logger:     c.logger,
	})
}

// StartClock starts ticking at the configured interval when auto start is enabled.
func (c *CompositionRoot) StartClock(ctx context.Context) error {
	if !c.config.AutoStartClock {
		return nil
	}
	cmd, err := commands.NewStartClockCommand(c.config.TickInterval)
	if err != nil {
		return err
	}
	handler := c.CreateStartClockCommandHandler()
	return handler.Handle(ctx, cmd)
}

// Close stops the engine clock, ends every event stream and releases the database.
func (c *CompositionRoot) Close() error {
	c.controller.Stop()
	c.broker.Close()

	if c.gormDB == nil {
		return nil
	}
	sqlDB, err := c.gormDB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
