package commands

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

	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"
	"github.com/spf13/cobra"

	"AltarCheckinBackend/clock"
	"AltarCheckinBackend/config"
	"AltarCheckinBackend/database"
	"AltarCheckinBackend/handlers"
	"AltarCheckinBackend/ledger"
	"AltarCheckinBackend/middleware"
	"AltarCheckinBackend/oauth"
	"AltarCheckinBackend/stats"
)

var skipMigrate bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return serve(ctx)
	},
}

func init() {
	serveCmd.Flags().BoolVar(&skipMigrate, "skip-migrate", false, "do not apply the schema on startup")
}

func serve(ctx context.Context) error {
	cfg, db, err := openDB(ctx)
	if err != nil {
		return err
	}
	defer db.Close()
	log.Printf("Loaded %s", cfg)

	if !skipMigrate {
		if err := database.Migrate(ctx, db); err != nil {
			return err
		}
	}

	store := database.NewStore(db)
	clk := clock.New()

	var revocations database.RevocationStore
	if cfg.Redis.Addr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
		})
		defer func() {
			if err := redisClient.Close(); err != nil {
				log.Printf("redis close error: %v", err)
			}
		}()
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		revocations, err = database.NewRedisRevocations(pingCtx, &database.RedisConfig{RedisClient: redisClient})
		cancel()
		if err != nil {
			return err
		}
	} else {
		log.Println("Warning: REDIS_ADDR not set, logout will not revoke session tokens")
	}

	var provider oauth.Provider
	if cfg.GoogleEnabled() {
		provider, err = oauth.NewGoogle(&oauth.GoogleConfig{
			ClientID:     cfg.Auth.GoogleClientID,
			ClientSecret: cfg.Auth.GoogleClientSecret,
			RedirectURL:  cfg.Auth.CallbackURL,
		})
		if err != nil {
			return err
		}
	} else {
		log.Println("Warning: Google login is not configured")
	}

	limiter := middleware.NewRateLimiter(cfg.Server.RateLimitPerMinute, clk)
	go limiter.Run(ctx, 5*time.Minute)

	router, err := buildRouter(cfg, store, revocations, provider, limiter, clk)
	if err != nil {
		return err
	}

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: cfg.Server.AllowedOrigins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Authorization",
			"Content-Type",
		},
		ExposedHeaders: []string{
			"Content-Disposition",
		},
		AllowCredentials: true,
		MaxAge:           300,
	})

	httpServer := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           corsHandler.Handler(router),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Server starting on port %s...", cfg.Server.Port)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Println("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown error: %v", err)
	}
	return nil
}

func buildRouter(cfg *config.Config, store *database.Store, revocations database.RevocationStore, provider oauth.Provider, limiter *middleware.RateLimiter, clk clock.Clock) (http.Handler, error) {
	sessionLedger, err := ledger.New(&ledger.Config{Sessions: store, Clock: clk})
	if err != nil {
		return nil, err
	}
	aggregator, err := stats.New(&stats.Config{Users: store, Sessions: store, Clock: clk, Location: cfg.Stats.Location})
	if err != nil {
		return nil, err
	}
	tokens, err := middleware.NewTokenIssuer(cfg.Auth.SessionSecret, clk)
	if err != nil {
		return nil, err
	}
	authn, err := middleware.NewAuthenticator(&middleware.AuthenticatorConfig{
		Tokens:      tokens,
		Users:       store,
		Revocations: revocations,
	})
	if err != nil {
		return nil, err
	}
	h, err := handlers.New(&handlers.Config{
		Ledger:       sessionLedger,
		Stats:        aggregator,
		Users:        store,
		Sessions:     store,
		Tokens:       tokens,
		Provider:     provider,
		Revocations:  revocations,
		CookieSecure: cfg.Auth.CookieSecure,
	})
	if err != nil {
		return nil, err
	}
	return handlers.NewRouter(&handlers.RouterConfig{
		Handler:       h,
		Authenticator: authn,
		RateLimiter:   limiter,
		StaticDir:     cfg.Server.StaticDir,
	}), nil
}
