package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/deliciabrasa/order-bot/internal/bot"
	"github.com/deliciabrasa/order-bot/internal/config"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	// --- Order archive (optional) ---
	var orders bot.OrderRepo = bot.NoopOrderRepo{}
	if cfg.DatabaseURL != "" {
		db, err := sql.Open("postgres", cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("db open error: %v", err)
		}
		defer db.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			log.Fatalf("db ping error: %v", err)
		}

		orders = bot.NewOrderRepo(db)
	} else {
		log.Println("DATABASE_URL not set, completed orders will not be archived")
	}

	// --- Router ---
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	// --- Bot module wiring ---
	store := bot.NewSessionStore()
	classifier := bot.NewClassifier(cfg.Bot.StartKeywords)
	hours := bot.NewHoursGate(cfg.Bot.OpenHour, cfg.Bot.CloseHour)
	outbound := bot.NewGatewayOutbound(cfg.Gateway.BaseURL, cfg.Gateway.Token)
	dispatcher := bot.NewDispatcher(outbound)
	service := bot.NewService(store, classifier, hours, dispatcher, orders, cfg.Bot.MenuFile, cfg.Bot.ReplyDelay)
	handler := bot.NewHandler(service, store)

	bot.RegisterRoutes(r, handler)

	// --- status ---
	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("🤖 Restaurante Delícia na Brasa order bot is running"))
	})
	r.Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("pong"))
	})

	log.Printf("listening on %s", cfg.Server.Addr)
	if err := http.ListenAndServe(cfg.Server.Addr, r); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
