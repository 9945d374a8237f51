package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"snookerslam/internal/handlers"
	"snookerslam/internal/payment/jazzcash"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("no .env file, using process environment")
	}

	gateway, err := jazzcash.New(jazzcash.ConfigFromEnv())
	if err != nil {
		log.Fatalf("jazzcash config: %v", err)
	}
	payments := handlers.NewPaymentHandlers(gateway)

	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://snookerslam.com", "http://localhost:4200"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))

	// Payment routes
	r.Route("/payments", func(r chi.Router) {
		r.Use(handlers.Authentication())
		r.Post("/charge", payments.Charge)
		r.Post("/inquiry", payments.Inquiry)
		r.Post("/refund", payments.Refund)
	})

	// The gateway posts back here without our auth token.
	r.Post("/jazzcash/callback", payments.Callback)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	// Start the server
	fmt.Printf("Server is running on http://localhost:%s\n", port)
	log.Fatal(http.ListenAndServe(":"+port, r))
}
