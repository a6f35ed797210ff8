package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"

	"arrangement-service/config"
	"arrangement-service/domain"
	"arrangement-service/events"
	httpLayer "arrangement-service/http"
	"arrangement-service/repository"
	"arrangement-service/service"
)

func main() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	cfg := config.Load()

	var (
		templates   repository.TemplateRepository
		quotes      repository.QuoteRepository
		acceptances repository.AcceptanceRepository
		settings    repository.SettingsRepository
	)
	if cfg.PostgresDSN != "" {
		db, err := sql.Open("postgres", cfg.PostgresDSN)
		if err != nil {
			log.Fatalf("failed to open postgres: %v", err)
		}
		defer db.Close()
		if err := db.Ping(); err != nil {
			log.Fatalf("failed to reach postgres: %v", err)
		}
		if err := repository.RunMigrations(db, cfg.MigrationsPath); err != nil {
			log.Fatalf("failed to run migrations: %v", err)
		}
		pg := repository.NewPostgresRepository(db)
		templates, quotes, acceptances, settings = pg, pg, pg, pg
		log.Println("using postgres storage")
	} else {
		mem := repository.NewMemoryRepository()
		templates, quotes, acceptances, settings = mem, mem, mem, mem
		log.Println("POSTGRES_DSN not set, using in-memory storage")
	}

	var cache repository.CacheRepository = repository.NewMockCache()
	if cfg.RedisAddr != "" {
		cache = repository.NewRedisCache(cfg.RedisAddr, cfg.QuoteCacheTTL)
		log.Println("using redis quote cache")
	}

	var publisher events.Publisher = events.NoopPublisher{}
	if len(cfg.KafkaBrokers) > 0 {
		kp := events.NewKafkaPublisher(cfg.KafkaBrokers)
		defer kp.Close()
		publisher = kp
		log.Println("publishing events to kafka")
	}

	defaultMinimum := domain.Money(cfg.MinMonthlyPaymentCents)
	quoteService := service.NewQuoteService(quotes, settings, cache, defaultMinimum)
	offerService := service.NewOfferService(templates, acceptances, settings, publisher, defaultMinimum)

	quoteHandler := httpLayer.NewQuoteHandler(quoteService)
	scheduleHandler := httpLayer.NewScheduleHandler()
	offersHandler := httpLayer.NewOffersHandler(offerService)
	acceptHandler := httpLayer.NewAcceptHandler(offerService)

	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimitPerMinute, time.Minute)
	defer rateLimiter.Stop()
	limited := func(h http.HandlerFunc) http.Handler {
		return httpLayer.RateLimitMiddleware(rateLimiter, h)
	}

	r := mux.NewRouter()
	r.Handle("/arrangements/quote", limited(quoteHandler.Quote)).Methods(http.MethodPost)
	r.Handle("/arrangements/schedule-preview", limited(scheduleHandler.Preview)).Methods(http.MethodPost)
	r.Handle("/arrangements/offers", limited(offersHandler.Offers)).Methods(http.MethodGet)
	r.Handle("/arrangements/term-options", limited(offersHandler.TermOptions)).Methods(http.MethodGet)
	r.Handle("/arrangements/accept", limited(acceptHandler.Accept)).Methods(http.MethodPost)
	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods(http.MethodGet)

	server := &http.Server{
		Addr:         cfg.Addr,
		Handler:      httpLayer.LoggingMiddleware(r),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Printf("arrangement service listening on %s", cfg.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		log.Printf("Error starting server: %v", err)
		return
	case <-quit:
		log.Println("Shutting down server...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Error during server shutdown: %v", err)
	}

	log.Println("Server exited")
}
