package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/landingkit/handler"
	"github.com/dmitrymomot/landingkit/modules/landing"
	"github.com/dmitrymomot/landingkit/modules/signup"
	"github.com/dmitrymomot/landingkit/pkg/config"
	"github.com/dmitrymomot/landingkit/pkg/cookie"
	"github.com/dmitrymomot/landingkit/pkg/httpserver"
	"github.com/dmitrymomot/landingkit/pkg/logger"
	"github.com/dmitrymomot/landingkit/pkg/requestid"
)

const serviceName = "landingkit"

type appConfig struct {
	Env    string `env:"APP_ENV" envDefault:"development"`
	Log    logger.Config
	Cookie cookie.Config
	HTTP   httpserver.Config
}

func main() {
	var cfg appConfig
	config.MustLoad(&cfg)

	log := logger.NewFromConfig(cfg.Log,
		logger.WithEnvironment(cfg.Env, serviceName),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	)
	logger.SetAsDefault(log)

	cookies, err := cookie.NewFromConfig(cfg.Cookie)
	if err != nil {
		log.Error("Failed to build cookie manager", logger.Error(err))
		os.Exit(1)
	}

	content, err := landing.LoadContent()
	if err != nil {
		log.Error("Failed to load landing content", logger.Error(err))
		os.Exit(1)
	}

	errHandler := handler.NewErrorHandler(log, handler.ErrorHandlerConfig{
		ErrorPage:  landing.ErrorPage,
		ErrorToast: landing.ErrorToast,
	})

	signupSvc := signup.NewService(errHandler)
	landingSvc := landing.NewService(content, cookies, signup.Form(signup.FormParams{}), errHandler)

	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", httpserver.HealthCheckHandler(context.Background(), log))
	r.Mount("/signup", signupSvc.Handle())
	r.Mount("/", landingSvc.Handle())

	srv := httpserver.NewFromConfig(cfg.HTTP,
		httpserver.WithLogger(log),
		httpserver.WithStartHook(func(log *slog.Logger) {
			log.Info("HTTP server starting",
				slog.String("addr", cfg.HTTP.Addr),
				slog.String("env", cfg.Env),
			)
		}),
	)

	if err := srv.Run(context.Background(), r); err != nil {
		log.Error("Server stopped with error", logger.Error(err))
		os.Exit(1)
	}
}
