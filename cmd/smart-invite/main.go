package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"smartInvite/internal/config"
	"smartInvite/internal/http-server/handlers/event/createEvent"
	"smartInvite/internal/http-server/handlers/event/deleteEvent"
	"smartInvite/internal/http-server/handlers/event/getAllEvents"
	"smartInvite/internal/http-server/handlers/event/getEvent"
	"smartInvite/internal/http-server/handlers/event/getEventComplete"
	"smartInvite/internal/http-server/handlers/event/getEventsWithStats"
	"smartInvite/internal/http-server/handlers/event/listEventGuests"
	"smartInvite/internal/http-server/handlers/event/updateEvent"
	"smartInvite/internal/http-server/handlers/guest/createGuest"
	"smartInvite/internal/http-server/handlers/guest/deleteGuest"
	"smartInvite/internal/http-server/handlers/guest/getInvite"
	"smartInvite/internal/http-server/handlers/guest/updateGuest"
	"smartInvite/internal/http-server/handlers/upload/serveImage"
	"smartInvite/internal/http-server/handlers/upload/uploadImage"
	"smartInvite/internal/http-server/middleware/mwlogger"
	"smartInvite/internal/lib/logger/handlers/slogpretty"
	"smartInvite/internal/lib/logger/sl"
	"smartInvite/internal/storage/sqlstore"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("Starting smart invite", slog.String("env", cfg.Env))
	log.Debug("Debug messages are enabled")

	storage, err := sqlstore.InitDB(log, cfg)
	if err != nil {
		log.Error("failed to init storage", sl.Err(err))
		os.Exit(1)
	}

	if err = uploadImage.InitDir(cfg.Uploads.Dir); err != nil {
		log.Error("failed to init upload directory", sl.Err(err))
		os.Exit(1)
	}

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)

	fs := http.FileServer(http.Dir("./static/"))
	router.Handle("/static/*", http.StripPrefix("/static/", fs))

	router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/static/index.html", http.StatusFound)
	})

	router.Post("/events", createEvent.New(log, storage))
	router.Get("/events", getAllEvents.New(log, storage))
	router.Get("/events/with-stats", getEventsWithStats.New(log, storage))
	router.Get("/events/{id}", getEvent.New(log, storage))
	router.Put("/events/{id}", updateEvent.New(log, storage))
	router.Delete("/events/{id}", deleteEvent.New(log, storage))
	router.Get("/events/{id}/complete", getEventComplete.New(log, storage))
	router.Get("/events/{id}/guests", listEventGuests.New(log, storage))

	router.Post("/guests", createGuest.New(log, storage, cfg.BasePath))
	router.Put("/guests", updateGuest.New(log, storage))
	router.Delete("/guests/{id}", deleteGuest.New(log, storage))
	router.Get("/invite/{token}", getInvite.New(log, storage))

	router.Post("/upload", uploadImage.New(log, cfg.Uploads))
	router.Get("/uploads/*", serveImage.New(log, cfg.Uploads))

	log.Info("starting server", slog.String("address", cfg.HTTPServer.Address))

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT, os.Interrupt)

	go func() {
		if err = srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", sl.Err(err))
			stop <- syscall.SIGTERM
		}
	}()

	sign := <-stop

	log.Info("application stopping", slog.String("signal", sign.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err = srv.Shutdown(ctx); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	log.Info("application stopped")

	if err = storage.Close(); err != nil {
		log.Error("failed to close database connection", sl.Err(err))
	}

	log.Info("database connection closed")
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	h := opts.NewPrettyHandler(os.Stdout)

	return slog.New(h)
}
