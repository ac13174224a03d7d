package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"studydesk/internal/config"
	"studydesk/internal/db"
	httpServer "studydesk/internal/http"
	"studydesk/internal/http/middleware"
	"studydesk/internal/logger"
	"studydesk/internal/pages"
	"studydesk/internal/repository"
	"studydesk/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "studydesk",
		Short:         "Study desk: to-do list, notes and timer",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve()
		},
	}

	root.AddCommand(newServeCmd())
	root.AddCommand(newMigrateCmd())
	root.AddCommand(newGraphCmd())
	return root
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the web server",
		RunE: func(_ *cobra.Command, _ []string) error {
			return serve()
		},
	}
}

func serve() error {
	cfg := config.Load()
	logger.Init(cfg.LogLevel, cfg.LogJSON)
	service.InitJWT(cfg.JWTSecret)

	var dbPool *pgxpool.Pool
	if cfg.DatabaseURL != "" {
		dbPool = db.Connect(cfg.DatabaseURL)
		defer dbPool.Close()
	} else {
		logger.Info("DATABASE_URL not set, audit trail disabled")
	}

	middleware.InitRedisRateLimiter(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	defer middleware.CloseRedis()

	study := service.NewStudyService(
		repository.NewSessionStore(cfg.SingleSession, nil),
		repository.NewTaskRepository(),
		service.NewAuditService(dbPool),
		nil,
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	study.StartCleanup(ctx, cfg.SessionTTL)

	r := gin.Default()
	httpServer.RegisterRoutes(r, study, dbPool, cfg)

	srv := &http.Server{
		Addr:    ":" + cfg.AppPort,
		Handler: r,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server started", "port", cfg.AppPort, "single_session", cfg.SingleSession)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("listen: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	logger.Info("server exited")
	return nil
}

func newMigrateCmd() *cobra.Command {
	var apply bool
	var dir string

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "List or apply audit database migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			if !apply {
				names, err := db.MigrationFiles(dir)
				if err != nil {
					return err
				}
				for _, name := range names {
					_, _ = fmt.Fprintln(out, name)
				}
				return nil
			}

			dsn := os.Getenv("DATABASE_URL")
			if dsn == "" {
				return fmt.Errorf("DATABASE_URL not set")
			}
			pool := db.Connect(dsn)
			defer pool.Close()

			return db.ApplyMigrations(cmd.Context(), pool, dir, func(name string) {
				_, _ = fmt.Fprintf(out, "applied %s\n", name)
			})
		},
	}
	cmd.Flags().BoolVar(&apply, "apply", false, "apply migrations instead of listing them")
	cmd.Flags().StringVar(&dir, "dir", "internal/migrations", "migrations directory")
	return cmd
}

type graphDoc struct {
	Entry string       `json:"entry" yaml:"entry"`
	Nodes []pages.Node `json:"nodes" yaml:"nodes"`
	Edges []pages.Edge `json:"edges" yaml:"edges"`
}

func newGraphCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Print the page navigation graph",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return writeGraph(cmd.OutOrStdout(), format)
		},
	}
	cmd.Flags().StringVar(&format, "format", "yaml", "output format: yaml|json")
	return cmd
}

func writeGraph(w io.Writer, format string) error {
	// a scratch task store: the graph walk never appends, but keep it isolated
	g := pages.NewApp(repository.NewTaskRepository(), nil).Graph()
	doc := graphDoc{Entry: string(g.Entry), Nodes: g.Nodes(), Edges: g.Edges()}

	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
