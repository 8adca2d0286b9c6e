package rest

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/frahmantamala/payment-service/internal/payment"
	"github.com/frahmantamala/payment-service/internal/transport/middleware"
	"github.com/frahmantamala/payment-service/internal/transport/swagger"
	"github.com/go-chi/chi"
	chiMiddleware "github.com/go-chi/chi/middleware"
)

func RegisterAllRoutes(router *chi.Mux, db *sql.DB, paymentHandler *payment.Handler, logger *slog.Logger) {
	healthHandler := NewHealthHandler(db)

	// Apply global middleware
	router.Use(middleware.CORS)
	router.Use(chiMiddleware.RequestID)
	router.Use(middleware.RequestID)
	router.Use(middleware.LoggingMiddleware(logger))
	router.Use(middleware.RecoveryMiddleware(logger))

	// Serve OpenAPI spec at root (outside API prefix)
	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	// Swagger UI route at root
	router.Handle("/swagger/*", swagger.Handler())

	router.Route("/api/v1", func(r chi.Router) {
		// Health check route
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		if paymentHandler != nil {
			r.Route("/payments", func(pr chi.Router) {
				pr.Get("/", paymentHandler.ListPayments)          // GET /payments
				pr.Post("/", paymentHandler.CreatePayment)        // POST /payments
				pr.Get("/{id}", paymentHandler.GetPayment)        // GET /payments/:id
				pr.Put("/{id}", paymentHandler.UpdatePayment)     // PUT /payments/:id
				pr.Delete("/{id}", paymentHandler.DeletePayment)  // DELETE /payments/:id

				pr.Patch("/{id}/confirm", paymentHandler.ConfirmPayment)            // PATCH /payments/:id/confirm
				pr.Patch("/{id}/confirm-local", paymentHandler.ConfirmPaymentLocal) // PATCH /payments/:id/confirm-local
			})
		}
	})
}
