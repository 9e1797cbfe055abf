package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/redis"
	"github.com/wb-go/wbf/zlog"

	authhandler "github.com/aliskhannn/corpsite/internal/api/handlers/auth"
	contacthandler "github.com/aliskhannn/corpsite/internal/api/handlers/contact"
	dashboardhandler "github.com/aliskhannn/corpsite/internal/api/handlers/dashboard"
	newshandler "github.com/aliskhannn/corpsite/internal/api/handlers/news"
	projecthandler "github.com/aliskhannn/corpsite/internal/api/handlers/project"
	teamhandler "github.com/aliskhannn/corpsite/internal/api/handlers/team"
	uploadhandler "github.com/aliskhannn/corpsite/internal/api/handlers/upload"
	vacancyhandler "github.com/aliskhannn/corpsite/internal/api/handlers/vacancy"
	"github.com/aliskhannn/corpsite/internal/api/router"
	"github.com/aliskhannn/corpsite/internal/api/server"
	"github.com/aliskhannn/corpsite/internal/config"
	"github.com/aliskhannn/corpsite/internal/middlewares"
	"github.com/aliskhannn/corpsite/internal/notify"
	adminrepo "github.com/aliskhannn/corpsite/internal/repository/admin"
	employeerepo "github.com/aliskhannn/corpsite/internal/repository/employee"
	"github.com/aliskhannn/corpsite/internal/repository/migrate"
	newsrepo "github.com/aliskhannn/corpsite/internal/repository/news"
	projectrepo "github.com/aliskhannn/corpsite/internal/repository/project"
	sessionrepo "github.com/aliskhannn/corpsite/internal/repository/session"
	vacancyrepo "github.com/aliskhannn/corpsite/internal/repository/vacancy"
	authsvc "github.com/aliskhannn/corpsite/internal/service/auth"
	contactsvc "github.com/aliskhannn/corpsite/internal/service/contact"
	dashboardsvc "github.com/aliskhannn/corpsite/internal/service/dashboard"
	newssvc "github.com/aliskhannn/corpsite/internal/service/news"
	projectsvc "github.com/aliskhannn/corpsite/internal/service/project"
	teamsvc "github.com/aliskhannn/corpsite/internal/service/team"
	vacancysvc "github.com/aliskhannn/corpsite/internal/service/vacancy"
	"github.com/aliskhannn/corpsite/internal/storage/uploads"
	"github.com/aliskhannn/corpsite/pkg/email"
	"github.com/aliskhannn/corpsite/pkg/telegram"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	zlog.Init()
	cfg := config.Must()
	val := validator.New()

	opts := &dbpg.Options{
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}

	slaveDSNs := make([]string, 0, len(cfg.Database.Slaves))
	for _, s := range cfg.Database.Slaves {
		slaveDSNs = append(slaveDSNs, s.DSN())
	}

	db, err := dbpg.New(cfg.Database.Master.DSN(), slaveDSNs, opts)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to database")
	}

	if err := migrate.Up(ctx, db.Master); err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to apply migrations")
	}

	rdb := redis.New(cfg.Redis.Address, cfg.Redis.Password, cfg.Redis.Database)
	if err := rdb.Ping(ctx).Err(); err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to redis")
	}

	employees := employeerepo.NewRepository(db)
	posts := newsrepo.NewRepository(db)
	projects := projectrepo.NewRepository(db)
	vacancies := vacancyrepo.NewRepository(db)
	admins := adminrepo.NewRepository(db)
	sessions := sessionrepo.NewRepository(rdb, cfg.Retry)

	store, err := uploads.NewStore(cfg.Uploads.Dir)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to prepare upload directory")
	}

	hub := notify.NewHub(
		notify.NewDispatcher(notify.CategoryContact, newTransport(cfg.Notify.General, cfg.Email), endpointConfig(cfg.Notify.General)),
		notify.NewDispatcher(notify.CategoryVacancyApplication, newTransport(cfg.Notify.HR, cfg.Email), endpointConfig(cfg.Notify.HR)),
	)

	authService := authsvc.NewService(admins, sessions, cfg.Session.TTL)
	teamService := teamsvc.NewService(employees)

	if err := authService.EnsureAdmin(ctx, cfg.Admin.Login, cfg.Admin.Password); err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to ensure admin account")
	}

	if _, err := teamService.Backfill(ctx); err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to backfill employee order")
	}

	handlers := router.Handlers{
		Team:    teamhandler.NewHandler(teamService, val),
		News:    newshandler.NewHandler(newssvc.NewService(posts), val),
		Project: projecthandler.NewHandler(projectsvc.NewService(projects), val),
		Vacancy: vacancyhandler.NewHandler(vacancysvc.NewService(vacancies, hub), store, val),
		Contact: contacthandler.NewHandler(contactsvc.NewService(hub), store),
		Auth:    authhandler.NewHandler(authService, val, cfg.Session),
		Dashboard: dashboardhandler.NewHandler(
			dashboardsvc.NewService(posts, employees, projects, vacancies),
		),
		Upload: uploadhandler.NewHandler(store),
	}

	r := router.New(handlers, router.Options{
		AllowedOrigins: cfg.Server.AllowedOrigins,
		UploadsDir:     store.Dir(),
		MaxBodySize:    cfg.Uploads.MaxSize,
		AdminAuth:      middlewares.AdminAuth(authService, cfg.Session.CookieName),
	})
	s := server.New(cfg.Server.HTTPPort, r)

	go func() {
		zlog.Logger.Info().Str("addr", s.Addr).Msg("starting server")
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Logger.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	<-ctx.Done()
	zlog.Logger.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	zlog.Logger.Info().Msg("shutting down server")
	if err := s.Shutdown(shutdownCtx); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to shutdown server")
	}

	if errors.Is(shutdownCtx.Err(), context.DeadlineExceeded) {
		zlog.Logger.Info().Msg("timeout exceeded, forcing shutdown")
	}

	if err := rdb.Close(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to close redis client")
	}

	if err := db.Master.Close(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to close master DB")
	}

	for i, s := range db.Slaves {
		if err := s.Close(); err != nil {
			zlog.Logger.Error().Err(err).Int("slave", i).Msg("failed to close slave DB")
		}
	}
}

// newTransport builds the delivery channel of one endpoint.
func newTransport(e config.Endpoint, smtp config.Email) notify.Transport {
	if e.Channel == "email" {
		timeout := smtp.Timeout
		if e.FileTimeout > 0 {
			timeout = e.FileTimeout
		}

		client := email.NewClient(smtp.SMTPHost, smtp.SMTPPort, smtp.Username, smtp.Password, smtp.From, timeout)
		return notify.NewEmailTransport(client, e.To, e.Subject)
	}

	return notify.NewTelegramTransport(telegram.NewClient(e.Token, e.APIBase), e.ChatID)
}

func endpointConfig(e config.Endpoint) notify.EndpointConfig {
	return notify.EndpointConfig{MessageTimeout: e.MessageTimeout, FileTimeout: e.FileTimeout}
}
