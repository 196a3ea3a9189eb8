package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"

	"lookmyshow/internal/booking"
	"lookmyshow/internal/booking/booking_api"
	bookingdb "lookmyshow/internal/booking/db"
	"lookmyshow/internal/config"
	"lookmyshow/internal/events"
	"lookmyshow/internal/events/cache"
	eventsdb "lookmyshow/internal/events/db"
	"lookmyshow/internal/events/event_api"
	"lookmyshow/internal/kafka"
	"lookmyshow/internal/logger"
	"lookmyshow/internal/storage"
)

func main() {
	_ = godotenv.Load() // loads .env file if present

	cfg := config.Load()
	log := logger.NewLogger()
	defer log.Close()

	// --- PostgreSQL setup ---
	bunDB, err := storage.Connect(cfg.Database)
	if err != nil {
		log.Fatal("DATABASE", fmt.Sprintf("Failed to connect to Postgres: %v", err))
	}
	defer bunDB.Close()
	log.LogDatabase("CONNECT", "postgres", cfg.Database.Host)

	if err := storage.Bootstrap(context.Background(), bunDB); err != nil {
		log.Fatal("DATABASE", fmt.Sprintf("Bootstrap failed: %v", err))
	}

	// --- Redis setup (optional event cache) ---
	var eventCache events.EventCache
	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr})
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			log.Fatal("REDIS", fmt.Sprintf("Failed to connect to Redis: %v", err))
		}
		eventCache = cache.NewCache(redisClient, cfg.Redis.CacheTTL)
		log.Info("REDIS", fmt.Sprintf("Event cache enabled (%s, ttl=%s)", cfg.Redis.Addr, cfg.Redis.CacheTTL))
	}

	// --- Kafka setup ---
	var publisher booking.Publisher
	if cfg.Kafka.Enabled {
		if cfg.Kafka.MockMode {
			publisher = &kafka.MockProducer{Logger: log}
			log.Info("KAFKA", "Mock mode: booking notifications logged only")
		} else {
			producer := kafka.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.Topic, log)
			defer producer.Close()
			publisher = producer
			log.Info("KAFKA", fmt.Sprintf("Publishing booking notifications to %s", cfg.Kafka.Topic))
		}
	}

	// --- Services ---
	eventRepo := &eventsdb.DB{Bun: bunDB}
	bookingRepo := &bookingdb.DB{Bun: bunDB, Logger: log}

	eventService := events.NewEventService(eventRepo, eventCache, log)
	bookingService := booking.NewBookingService(bookingRepo, eventRepo, publisher, log)

	eventHandler := event_api.NewHandler(eventService, log)
	bookingHandler := booking_api.NewHandler(bookingService, log)

	// --- Router ---
	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))
	r.Use(requestLogger(log))

	r.Route("/api", func(r chi.Router) {
		r.Get("/events", eventHandler.GetEvents)
		r.Get("/events/{eventID}", eventHandler.GetEvent)
		r.Post("/bookings", bookingHandler.CreateBooking)
		r.Get("/bookings", bookingHandler.GetBookings)
		r.Get("/bookings/user/{email}", bookingHandler.GetUserBookings)
		r.Get("/bookings/{bookingID}/qr", bookingHandler.GetBookingQR)
		r.Get("/health", healthCheck)
	})

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"Endpoint not found"}`))
	})

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		log.Info("SERVER", fmt.Sprintf("🚀 Booking API on %s", server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("SERVER", fmt.Sprintf("HTTP error: %v", err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	log.Info("SERVER", "Shutdown signal received. Cleaning up...")

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = server.Shutdown(ctxShutdown)
	log.Info("SERVER", "✅ Booking API shutdown complete")
}

func healthCheck(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy","service":"lookmyshow-api"}`))
}

func requestLogger(log *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			log.LogAPI(r.Method, r.URL.Path,
				fmt.Sprintf("%d", ww.Status()), time.Since(start).String())
		})
	}
}
