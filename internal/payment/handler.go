package payment

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	errors "github.com/frahmantamala/payment-service/internal"
	"github.com/frahmantamala/payment-service/internal/transport"
	"github.com/go-chi/chi"
)

type ServiceAPI interface {
	ListAll(page, size int) (*PaymentPage, error)
	GetByID(ctx context.Context, id int64) (*PaymentDTO, error)
	Create(dto *PaymentDTO) (*PaymentDTO, error)
	Update(id int64, dto *PaymentDTO) (*PaymentDTO, error)
	Delete(id int64) error
	Confirm(ctx context.Context, id int64) error
	ConfirmWithoutIntegration(id int64) error
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(baseHandler *transport.BaseHandler, service ServiceAPI) *Handler {
	return &Handler{
		BaseHandler: baseHandler,
		Service:     service,
	}
}

// ListPayments handles GET /api/v1/payments
func (h *Handler) ListPayments(w http.ResponseWriter, r *http.Request) {
	page := 0
	size := 10

	if pageStr := r.URL.Query().Get("page"); pageStr != "" {
		if p, err := strconv.Atoi(pageStr); err == nil && p >= 0 {
			page = p
		}
	}

	if sizeStr := r.URL.Query().Get("size"); sizeStr != "" {
		if s, err := strconv.Atoi(sizeStr); err == nil && s > 0 && s <= 100 {
			size = s
		}
	}

	result, err := h.Service.ListAll(page, size)
	if err != nil {
		h.Logger.Error("ListPayments: service error", "error", err, "page", page, "size", size)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, result)
}

// GetPayment handles GET /api/v1/payments/{id}
func (h *Handler) GetPayment(w http.ResponseWriter, r *http.Request) {
	id, ok := h.paymentID(w, r)
	if !ok {
		return
	}

	dto, err := h.Service.GetByID(r.Context(), id)
	if err != nil {
		h.Logger.Error("GetPayment: service error", "error", err, "payment_id", id)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, dto)
}

// CreatePayment handles POST /api/v1/payments
func (h *Handler) CreatePayment(w http.ResponseWriter, r *http.Request) {
	var dto PaymentDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("CreatePayment: invalid request body", "error", err)
		h.HandleError(w, errors.NewValidationError("invalid request body", errors.ErrCodeValidationFailed))
		return
	}

	created, err := h.Service.Create(&dto)
	if err != nil {
		h.Logger.Error("CreatePayment: service error", "error", err, "order_id", dto.OrderID)
		h.HandleServiceError(w, err)
		return
	}

	h.Logger.Info("CreatePayment: payment created",
		"payment_id", created.ID,
		"order_id", created.OrderID,
		"status", created.Status)

	h.WriteJSON(w, http.StatusCreated, created)
}

// UpdatePayment handles PUT /api/v1/payments/{id}
func (h *Handler) UpdatePayment(w http.ResponseWriter, r *http.Request) {
	id, ok := h.paymentID(w, r)
	if !ok {
		return
	}

	var dto PaymentDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("UpdatePayment: invalid request body", "error", err, "payment_id", id)
		h.HandleError(w, errors.NewValidationError("invalid request body", errors.ErrCodeValidationFailed))
		return
	}

	updated, err := h.Service.Update(id, &dto)
	if err != nil {
		h.Logger.Error("UpdatePayment: service error", "error", err, "payment_id", id)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, updated)
}

// DeletePayment handles DELETE /api/v1/payments/{id}
func (h *Handler) DeletePayment(w http.ResponseWriter, r *http.Request) {
	id, ok := h.paymentID(w, r)
	if !ok {
		return
	}

	if err := h.Service.Delete(id); err != nil {
		h.Logger.Error("DeletePayment: service error", "error", err, "payment_id", id)
		h.HandleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ConfirmPayment handles PATCH /api/v1/payments/{id}/confirm
func (h *Handler) ConfirmPayment(w http.ResponseWriter, r *http.Request) {
	id, ok := h.paymentID(w, r)
	if !ok {
		return
	}

	if err := h.Service.Confirm(r.Context(), id); err != nil {
		h.Logger.Error("ConfirmPayment: service error", "error", err, "payment_id", id)
		h.HandleServiceError(w, err)
		return
	}

	h.Logger.Info("ConfirmPayment: payment confirmed", "payment_id", id)
	w.WriteHeader(http.StatusNoContent)
}

// ConfirmPaymentLocal handles PATCH /api/v1/payments/{id}/confirm-local
func (h *Handler) ConfirmPaymentLocal(w http.ResponseWriter, r *http.Request) {
	id, ok := h.paymentID(w, r)
	if !ok {
		return
	}

	if err := h.Service.ConfirmWithoutIntegration(id); err != nil {
		h.Logger.Error("ConfirmPaymentLocal: service error", "error", err, "payment_id", id)
		h.HandleServiceError(w, err)
		return
	}

	h.Logger.Info("ConfirmPaymentLocal: payment confirmed without integration", "payment_id", id)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) paymentID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		h.Logger.Error("invalid payment ID", "id", idStr)
		h.HandleError(w, errors.NewValidationError("invalid payment ID", errors.ErrCodeValidationFailed))
		return 0, false
	}
	return id, true
}
