package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/alexedwards/scs/goredisstore"
	"github.com/alexedwards/scs/v2"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/motinhapro/CinemaWeb/internal/domain"
	"github.com/motinhapro/CinemaWeb/internal/mailer"
	"github.com/motinhapro/CinemaWeb/internal/repository"
	"github.com/motinhapro/CinemaWeb/internal/store"
	appvalidator "github.com/motinhapro/CinemaWeb/internal/validator"
	"github.com/motinhapro/CinemaWeb/internal/vcs"
	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"
	"github.com/riandyrn/otelchi"
	"github.com/shopspring/decimal"
)

var (
	version = vcs.Version()
)

type Application struct {
	config         config
	logger         *slog.Logger
	redis          redis.UniversalClient
	validator      *validator.Validate
	mailer         mailer.Mailer
	sessionManager *scs.SessionManager
	wg             sync.WaitGroup

	movieRepo    domain.MovieRepository
	roomRepo     domain.RoomRepository
	showtimeRepo domain.ShowtimeRepository
	ticketRepo   domain.TicketRepository
	snackRepo    domain.SnackRepository
	orderRepo    domain.OrderRepository
}

type config struct {
	port  int
	env   string
	store struct {
		url     string
		timeout time.Duration
	}
	redis struct {
		url          string
		maxOpenConns int
		maxIdleConns int
		maxIdleTime  time.Duration
	}
	smtp struct {
		host     string
		port     int
		username string
		password string
		sender   string
	}
	catalog struct {
		basePrice decimal.Decimal
		rowWidth  int
	}
	otelCollectorUrl string
}

func Run() error {
	var cfg config
	var basePrice string

	// .env values become defaults; flags still win.
	_ = godotenv.Load()

	flag.IntVar(&cfg.port, "port", 4000, "server port")
	flag.StringVar(&cfg.env, "env", "dev", "Environment (dev|staging|prod)")

	flag.StringVar(&cfg.store.url, "store-url", envOr("STORE_URL", "http://localhost:3000"), "Data store base URL")
	flag.DurationVar(&cfg.store.timeout, "store-timeout", 10*time.Second, "Data store request timeout")

	flag.StringVar(&cfg.redis.url, "redis-url", envOr("REDIS_URL", ""), "Redis URL")
	flag.IntVar(&cfg.redis.maxOpenConns, "redis-max-open-conns", 25, "Redis max open connections")
	flag.IntVar(&cfg.redis.maxIdleConns, "redis-max-idle-conns", 10, "Redis max idle connections")
	flag.DurationVar(&cfg.redis.maxIdleTime, "redis-max-idle-time", 2*time.Minute, "Redis max idle time for connections")

	flag.StringVar(&cfg.smtp.host, "smtp-host", envOr("SMTP_HOST", "sandbox.smtp.mailtrap.io"), "SMTP host")
	flag.IntVar(&cfg.smtp.port, "smtp-port", 2525, "SMTP port")
	flag.StringVar(&cfg.smtp.username, "smtp-username", envOr("SMTP_USERNAME", ""), "SMTP username")
	flag.StringVar(&cfg.smtp.password, "smtp-password", envOr("SMTP_PASSWORD", ""), "SMTP password")
	flag.StringVar(&cfg.smtp.sender, "smtp-sender", "CinemaWeb <no-reply@cinemaweb.example>", "SMTP sender")

	flag.StringVar(&basePrice, "base-ticket-price", envOr("BASE_TICKET_PRICE", "20.00"), "Full fare ticket price")
	flag.IntVar(&cfg.catalog.rowWidth, "row-width", domain.DefaultRowWidth, "Seats per room row")

	flag.StringVar(&cfg.otelCollectorUrl, "otel-collector-url", envOr("OTEL_COLLECTOR_URL", ""), "OpenTelemetry collector URL")

	displayVersion := flag.Bool("version", false, "Display version and exit")

	flag.Parse()

	if *displayVersion {
		fmt.Printf("Version:\t%s\n", version)
		os.Exit(0)
	}

	price, err := decimal.NewFromString(basePrice)
	if err != nil || !price.IsPositive() {
		return fmt.Errorf("invalid base ticket price %q", basePrice)
	}
	cfg.catalog.basePrice = price

	if cfg.catalog.rowWidth < 1 {
		return fmt.Errorf("row width must be at least 1")
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	validator := appvalidator.NewValidator()

	storeClient := store.NewClient(cfg.store.url, cfg.store.timeout)

	redisClient, err := newRedisClient(cfg)
	if err != nil {
		return err
	}
	defer redisClient.Close()

	app := &Application{
		config:         cfg,
		logger:         logger,
		redis:          redisClient,
		validator:      validator,
		mailer:         mailer.NewSMTPMailer(cfg.smtp.host, cfg.smtp.port, cfg.smtp.username, cfg.smtp.password, cfg.smtp.sender),
		sessionManager: newSessionManager(redisClient),
		movieRepo:      repository.NewRestMovieRepository(storeClient),
		roomRepo:       repository.NewRestRoomRepository(storeClient),
		showtimeRepo:   repository.NewRestShowtimeRepository(storeClient),
		ticketRepo:     repository.NewRestTicketRepository(storeClient),
		snackRepo:      repository.NewRestSnackRepository(storeClient),
		orderRepo:      repository.NewRestOrderRepository(storeClient),
	}

	shutdownTelemetry, err := app.InitTelemetry()
	if err != nil {
		return err
	}
	defer shutdownTelemetry(context.Background())

	return app.run()
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}

func newSessionManager(client *redis.Client) *scs.SessionManager {
	sessionManager := scs.New()

	sessionManager.Store = goredisstore.New(client)
	sessionManager.IdleTimeout = 20 * time.Minute
	sessionManager.Cookie.Name = "session_id"

	return sessionManager
}

func newRedisClient(cfg config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:            cfg.redis.url,
		MaxIdleConns:    cfg.redis.maxIdleConns,
		MaxActiveConns:  cfg.redis.maxOpenConns,
		ConnMaxIdleTime: cfg.redis.maxIdleTime,
	})

	err := redisotel.InstrumentTracing(rdb)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err = rdb.Ping(ctx).Err()
	if err != nil {
		return nil, err
	}

	return rdb, nil
}

func (app *Application) run() error {
	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%d", app.config.port),
		Handler:      app.routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(app.logger.Handler(), slog.LevelDebug),
	}

	shutdownError := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		app.logger.Info("shutting down server", "signal", s.String())

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		err := srv.Shutdown(ctx)
		if err != nil {
			shutdownError <- err
			return
		}

		app.wg.Wait()
		shutdownError <- nil
	}()

	app.logger.Info("starting server", "addr", srv.Addr, "env", app.config.env)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdownError
	if err != nil {
		return err
	}

	app.logger.Info("stopped server", "addr", srv.Addr)

	return nil
}

func (app *Application) routes() http.Handler {
	r := chi.NewRouter()

	r.NotFound(app.notFoundResponse)

	r.Use(middleware.Logger)
	r.Use(middleware.RequestID)
	r.Use(otelchi.Middleware("cinema-admin-api", otelchi.WithChiRoutes(r)))
	r.Use(app.recoverPanic)
	r.Use(app.sessionManager.LoadAndSave)
	r.Use(app.ensureGuestSession)
	r.Use(app.requestLogger)

	r.Get("/health", app.GetHealth)

	r.Route("/movies", func(r chi.Router) {
		r.Get("/", app.ListMovies)
		r.Post("/", app.CreateMovie)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", app.GetMovie)
			r.Put("/", app.UpdateMovie)
			r.Delete("/", app.DeleteMovie)
		})
	})

	r.Route("/rooms", func(r chi.Router) {
		r.Get("/", app.ListRooms)
		r.Post("/", app.CreateRoom)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", app.GetRoom)
			r.Put("/", app.UpdateRoom)
			r.Delete("/", app.DeleteRoom)
		})
	})

	r.Route("/snacks", func(r chi.Router) {
		r.Get("/", app.ListSnacks)
		r.Post("/", app.CreateSnack)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", app.GetSnack)
			r.Put("/", app.UpdateSnack)
			r.Delete("/", app.DeleteSnack)
		})
	})

	r.Route("/showtimes", func(r chi.Router) {
		r.Get("/", app.ListShowtimes)
		r.Post("/", app.CreateShowtime)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", app.GetShowtime)
			r.Put("/", app.UpdateShowtime)
			r.Delete("/", app.DeleteShowtime)
			r.Get("/seats", app.GetSeatMap)
			r.Put("/seats/selection", app.SelectSeat)
			r.Post("/checkout", app.Checkout)
		})
	})

	r.Route("/cart", func(r chi.Router) {
		r.Get("/", app.GetCart)
		r.Put("/items", app.SetCartItem)
	})

	r.Route("/orders", func(r chi.Router) {
		r.Get("/", app.ListOrders)
		r.Get("/{id}", app.GetOrder)
	})

	return r
}
