// @title        Hospital Booking API
// @version      1.0
// @description  Accounts, sessions and hospital bookings.
// @BasePath     /
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/carepoint/hospital-booking/internal/api"
	"github.com/carepoint/hospital-booking/internal/api/middleware"
	"github.com/carepoint/hospital-booking/internal/core/ports"
	"github.com/carepoint/hospital-booking/internal/core/service"
	mongostore "github.com/carepoint/hospital-booking/internal/infrastructure/db/mongo"
	mysqlstore "github.com/carepoint/hospital-booking/internal/infrastructure/db/mysql"
	redisstore "github.com/carepoint/hospital-booking/internal/infrastructure/db/redis"
	"github.com/carepoint/hospital-booking/internal/infrastructure/http/handlers"
	"github.com/carepoint/hospital-booking/internal/pkg/config"
	"github.com/carepoint/hospital-booking/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// stores is the account/booking backend selected by STORE_DRIVER.
type stores struct {
	accounts ports.AccountRepository
	bookings ports.BookingRepository
	pinger   handlers.Pinger
	close    func(context.Context) error
}

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDev(),
		Service: "hospital-booking",
	})

	if err := run(cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func run(cfg *config.Config, log zerolog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	st, err := openStores(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := st.close(closeCtx); err != nil {
			log.Error().Err(err).Msg("closing store")
		}
	}()
	log.Info().Str("driver", cfg.StoreDriver).Msg("store connected")

	rdb, err := redisstore.Connect(ctx, redisstore.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		return err
	}
	defer rdb.Close()
	log.Info().Str("addr", cfg.Redis.Addr).Msg("redis connected")

	if _, err := service.NewSeeder(st.accounts, logger.Component("seeder")).SeedHospitals(ctx, cfg.SeedHospitals); err != nil {
		return fmt.Errorf("seed hospitals: %w", err)
	}

	authService := service.NewAuthService(st.accounts, redisstore.NewSessionStore(rdb), service.AuthConfig{
		HospitalPasskey: cfg.Booking.HospitalPasskey,
		SessionSecret:   cfg.Session.Secret,
		SessionTTL:      cfg.Session.TTL,
	}, logger.Component("auth"))
	bookingService := service.NewBookingService(st.accounts, st.bookings, cfg.Booking.StrictHospitalReference, logger.Component("booking"))

	e := api.NewRouter(api.Dependencies{
		AuthService:    authService,
		BookingService: bookingService,
		Readiness: map[string]handlers.Pinger{
			cfg.StoreDriver: st.pinger,
			"redis":         redisstore.NewPinger(rdb),
		},
		RateLimiter:   middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst),
		SecureCookies: cfg.Session.CookieSecure,
		TrustProxy:    cfg.TrustProxy,
		Logger:        logger.Component("http"),
	})

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Msg("http server listening")
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

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

func openStores(ctx context.Context, cfg *config.Config) (*stores, error) {
	switch cfg.StoreDriver {
	case config.StoreMongo:
		client, db, err := mongostore.Connect(ctx, mongostore.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			return nil, err
		}
		if err := mongostore.EnsureIndexes(ctx, db); err != nil {
			_ = client.Disconnect(ctx)
			return nil, err
		}
		return &stores{
			accounts: mongostore.NewAccountRepository(db),
			bookings: mongostore.NewBookingRepository(db),
			pinger:   mongostore.NewPinger(client),
			close:    client.Disconnect,
		}, nil

	default:
		db, err := mysqlstore.Connect(ctx, mysqlstore.Config{
			Host:     cfg.MySQL.Host,
			Port:     cfg.MySQL.Port,
			User:     cfg.MySQL.User,
			Password: cfg.MySQL.Password,
			DBName:   cfg.MySQL.DBName,
			Verbose:  cfg.IsDev(),
		})
		if err != nil {
			return nil, err
		}
		if err := mysqlstore.Migrate(ctx, db); err != nil {
			_ = mysqlstore.Close(db)
			return nil, err
		}
		return &stores{
			accounts: mysqlstore.NewAccountRepository(db),
			bookings: mysqlstore.NewBookingRepository(db),
			pinger:   mysqlstore.NewPinger(db),
			close:    func(context.Context) error { return mysqlstore.Close(db) },
		}, nil
	}
}
