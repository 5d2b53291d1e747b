package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/njprem/VisitEgypt_BackEnd/internal/config"
	"github.com/njprem/VisitEgypt_BackEnd/internal/content"
	"github.com/njprem/VisitEgypt_BackEnd/internal/domain"
	"github.com/njprem/VisitEgypt_BackEnd/internal/logging"
	"github.com/njprem/VisitEgypt_BackEnd/internal/navigation"
	"github.com/njprem/VisitEgypt_BackEnd/internal/repository/file"
	"github.com/njprem/VisitEgypt_BackEnd/internal/repository/memory"
	minioRepo "github.com/njprem/VisitEgypt_BackEnd/internal/repository/minio"
	"github.com/njprem/VisitEgypt_BackEnd/internal/repository/ports"
	"github.com/njprem/VisitEgypt_BackEnd/internal/repository/postgres"
	"github.com/njprem/VisitEgypt_BackEnd/internal/service"
	transport "github.com/njprem/VisitEgypt_BackEnd/internal/transport/http"
)

var (
	cfg    config.Config
	logger *zap.Logger
	flush  func() error
)

var rootCmd = &cobra.Command{
	Use:   "api",
	Short: "Visit Egypt site and session API",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg = config.Load()
		if err := cfg.Validate(); err != nil {
			return err
		}
		var err error
		logger, flush, err = logging.New(logging.Options{
			Level:        cfg.LogLevel,
			LogstashAddr: cfg.LogstashTCPAddr,
			Service:      "visitegypt-api",
		})
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
		if flush != nil {
			_ = flush()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve(cmd.Context())
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the site, the JSON API and swagger docs",
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve(cmd.Context())
	},
}

var seedCatalogCmd = &cobra.Command{
	Use:   "seed-catalog",
	Short: "Create the catalog tables and load the built-in content into Postgres",
	RunE: func(cmd *cobra.Command, args []string) error {
		return seedCatalog(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(seedCatalogCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		log.Fatal(err)
	}
}

func serve(ctx context.Context) error {
	var db *sqlx.DB
	if cfg.UsesPostgres() {
		conn, err := postgres.New(cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("connect postgres: %w", err)
		}
		defer conn.Close()
		if err := postgres.EnsureSchema(ctx, conn); err != nil {
			return err
		}
		db = conn
	}

	cards, guides, err := catalogRepos(db)
	if err != nil {
		return err
	}
	store, err := sessionStore(ctx, db)
	if err != nil {
		return err
	}

	navigator := navigation.ContextNavigator{}
	catalog := service.NewCatalogService(cards, guides, navigator, logger.Named("catalog"))
	session := service.NewSessionManager(store, navigator, service.SessionManagerConfig{
		StorageKey: cfg.SessionStorageKey,
		LoginRoute: cfg.LoginRoute,
	}, logger.Named("session"))

	if err := catalog.Verify(ctx); err != nil {
		if cfg.CatalogSource == config.CatalogSourcePostgres {
			return fmt.Errorf("%w (run `api seed-catalog` first)", err)
		}
		return err
	}

	if err := session.Restore(ctx); err != nil {
		var storedErr *service.StoredUserError
		if !errors.As(err, &storedErr) {
			return err
		}
		logger.Warn("ignoring stored user", zap.Error(err))
	}

	e := transport.NewRouter(transport.RouterOptions{
		AllowOrigins: cfg.AllowOrigins,
		Logger:       logger.Named("http"),
		Session:      session,
	})
	transport.RegisterCatalog(e, catalog, logger)
	transport.RegisterSession(e, logger)
	if err := transport.RegisterPages(e, catalog, logger); err != nil {
		return err
	}
	if cfg.EnableSwagger {
		transport.RegisterSwagger(e, cfg.SwaggerSpecPath, logger)
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening",
			zap.String("port", cfg.Port),
			zap.String("catalog_source", cfg.CatalogSource),
			zap.String("session_store", cfg.SessionStore))
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

func catalogRepos(db *sqlx.DB) (ports.CardRepository, ports.GuideRepository, error) {
	switch cfg.CatalogSource {
	case config.CatalogSourcePostgres:
		repo := postgres.NewCatalogRepo(db)
		return repo, repo, nil
	case config.CatalogSourceMemory:
		repo := memory.NewCatalogRepo()
		return repo, repo, nil
	default:
		return nil, nil, fmt.Errorf("unknown CATALOG_SOURCE %q", cfg.CatalogSource)
	}
}

func sessionStore(ctx context.Context, db *sqlx.DB) (ports.LocalStorage, error) {
	switch cfg.SessionStore {
	case config.SessionStoreMemory:
		return memory.NewLocalStorage(), nil
	case config.SessionStorePostgres:
		return postgres.NewLocalStorageRepo(db), nil
	case config.SessionStoreMinIO:
		client, err := minioRepo.NewClient(cfg.MinIOEndpoint, cfg.MinIOAccessKey, cfg.MinIOSecretKey, cfg.MinIOUseSSL)
		if err != nil {
			return nil, fmt.Errorf("connect minio: %w", err)
		}
		objects := minioRepo.NewObjectStorage(client, cfg.MinIOPublicURL)
		if err := objects.EnsureBucket(ctx, cfg.MinIOBucketSessions); err != nil {
			return nil, err
		}
		return minioRepo.NewLocalStorage(objects, cfg.MinIOBucketSessions, "local-storage"), nil
	case config.SessionStoreFile:
		return file.NewLocalStorage(cfg.SessionStorePath)
	default:
		return nil, fmt.Errorf("unknown SESSION_STORE %q", cfg.SessionStore)
	}
}

func seedCatalog(ctx context.Context) error {
	if cfg.DatabaseURL == "" {
		return errors.New("DATABASE_URL is required to seed the catalog")
	}
	db, err := postgres.New(cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("connect postgres: %w", err)
	}
	defer db.Close()

	if err := postgres.EnsureSchema(ctx, db); err != nil {
		return err
	}

	var cards []domain.Card
	for _, kind := range domain.PageKindsOrdered {
		pageCards, _ := content.Cards(kind)
		cards = append(cards, pageCards...)
	}
	if err := postgres.NewCatalogRepo(db).Seed(ctx, cards, content.Pyramids()); err != nil {
		return err
	}
	logger.Info("catalog seeded", zap.Int("cards", len(cards)))
	return nil
}
