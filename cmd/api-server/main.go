package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"

	"anilookup/internal/anilist"
	"anilookup/internal/chat"
	"anilookup/internal/plugin"
	"anilookup/internal/search"
	"anilookup/pkg/utils"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	var cfgFile string

	cmd := &cobra.Command{
		Use:   "api-server",
		Short: "Serve AniList lookups over HTTP and chat rooms",
		Long: `api-server exposes the AniList plugin over HTTP:

  GET /plugins/al?q=Naruto     look up a card
  GET /ws/chat?room=r&user=u   chat room where "!al Naruto" is answered with a card
  GET /chat/history?room=r     recent messages and cards of a room
  GET /metrics                 Prometheus metrics`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := utils.LoadConfig(v, cfgFile)
			if err != nil {
				return err
			}
			logger := utils.NewLogger(os.Stderr, cfg.Log.Level, cfg.Log.Format)
			slog.SetDefault(logger)

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return run(ctx, cfg, logger)
		},
	}

	cmd.Flags().StringVar(&cfgFile, "config", "", "config file (default ./anilookup.yaml)")
	cmd.Flags().String("addr", ":8080", "HTTP listen address")
	cmd.Flags().String("endpoint", anilist.DefaultEndpoint, "AniList GraphQL endpoint")
	cmd.Flags().String("log-level", "info", "log level (debug, info, warn, error)")
	_ = v.BindPFlag("http.addr", cmd.Flags().Lookup("addr"))
	_ = v.BindPFlag("anilist.endpoint", cmd.Flags().Lookup("endpoint"))
	_ = v.BindPFlag("log.level", cmd.Flags().Lookup("log-level"))

	return cmd
}

func run(ctx context.Context, cfg utils.Config, logger *slog.Logger) error {
	registry := plugin.NewRegistry(logger)
	client := anilist.NewClient(cfg.AniList.Endpoint, cfg.AniList.Timeout, logger)
	if err := registry.Register(plugin.NewAniList(search.NewSearcher(client, logger))); err != nil {
		return fmt.Errorf("register plugin: %w", err)
	}

	hub := chat.NewHub(cfg.Chat.HistorySize)
	bot := chat.NewBot(registry, cfg.Chat.Marker)

	httpSrv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           newRouter(registry, hub, bot, logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("HTTP API server listening", "addr", cfg.HTTP.Addr, "anilist", cfg.AniList.Endpoint)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		logger.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return httpSrv.Shutdown(shutdownCtx)
	})

	err := g.Wait()
	logger.Info("server stopped")
	return err
}

func newRouter(registry *plugin.Registry, hub *chat.Hub, bot *chat.Bot, logger *slog.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	_ = router.SetTrustedProxies([]string{"127.0.0.1"})

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "plugins": len(registry.Plugins())})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	plugin.NewHandler(registry).RegisterRoutes(router.Group("/plugins"))

	router.GET("/ws/chat", chat.WSHandler(hub, bot, logger))
	router.GET("/chat/history", chat.HistoryHandler(hub))

	return router
}
