package payment

import (
	"context"
	"log/slog"

	errors "github.com/frahmantamala/payment-service/internal"
	paymentDatamodel "github.com/frahmantamala/payment-service/internal/core/datamodel/payment"
	"github.com/frahmantamala/payment-service/internal/orders"
)

// RepositoryAPI defines the data access methods for payments. Only the
// operations the workflow actually uses are exposed.
type RepositoryAPI interface {
	Create(p *paymentDatamodel.Payment) error
	GetByID(id int64) (*paymentDatamodel.Payment, error)
	FindPage(offset, limit int) ([]*paymentDatamodel.Payment, int64, error)
	Save(p *paymentDatamodel.Payment) error
	DeleteByID(id int64) error
}

// OrderClient is the slice of the order service this workflow needs.
type OrderClient interface {
	GetOrderItems(ctx context.Context, orderID int64) ([]orders.OrderItem, error)
	NotifyPaymentConfirmed(ctx context.Context, orderID int64) error
}

// Service orchestrates store, order client and mapping for the payment
// workflow.
type Service struct {
	repo        RepositoryAPI
	orderClient OrderClient
	logger      *slog.Logger
}

func NewService(repo RepositoryAPI, orderClient OrderClient, logger *slog.Logger) *Service {
	return &Service{
		repo:        repo,
		orderClient: orderClient,
		logger:      logger,
	}
}

// ListAll returns one page of payments with the store's pagination metadata.
func (s *Service) ListAll(page, size int) (*PaymentPage, error) {
	if page < 0 {
		page = 0
	}
	if size <= 0 {
		size = 10
	}

	records, total, err := s.repo.FindPage(page*size, size)
	if err != nil {
		s.logger.Error("failed to list payments", "error", err, "page", page, "size", size)
		return nil, errors.NewInternalError("failed to list payments", err)
	}

	totalPages := total / int64(size)
	if total%int64(size) != 0 {
		totalPages++
	}

	return &PaymentPage{
		Content:       FromDataModelSlice(records),
		Page:          page,
		Size:          size,
		TotalElements: total,
		TotalPages:    totalPages,
	}, nil
}

// GetByID returns a single payment with its order items attached. An order
// service failure propagates to the caller; there is no fallback.
func (s *Service) GetByID(ctx context.Context, id int64) (*PaymentDTO, error) {
	record, err := s.repo.GetByID(id)
	if err != nil {
		s.logger.Warn("payment not found", "payment_id", id, "error", err)
		return nil, errors.ErrPaymentNotFound
	}

	dto := FromDataModel(record)

	items, err := s.orderClient.GetOrderItems(ctx, record.OrderID)
	if err != nil {
		s.logger.Error("failed to fetch order items", "error", err, "payment_id", id, "order_id", record.OrderID)
		return nil, errors.NewExternalError("failed to fetch order items", err)
	}
	dto.Items = items

	return dto, nil
}

// Create persists a new payment. Whatever status the caller supplied is
// discarded; every payment starts as CREATED.
func (s *Service) Create(dto *PaymentDTO) (*PaymentDTO, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("payment validation failed", "error", err)
		return nil, err
	}

	record := ToDataModel(dto)
	record.ID = 0
	record.Status = paymentDatamodel.StatusCreated

	if err := s.repo.Create(record); err != nil {
		s.logger.Error("failed to create payment", "error", err, "order_id", dto.OrderID)
		return nil, errors.NewInternalError("failed to create payment", err)
	}

	s.logger.Info("payment created",
		"payment_id", record.ID,
		"order_id", record.OrderID,
		"amount", record.Amount.String())

	return FromDataModel(record), nil
}

// Update replaces the stored record under id with the mapped DTO. The DTO's
// own id is discarded. No prior-existence check is made: saving a record
// with an id the store has never seen inserts it.
func (s *Service) Update(id int64, dto *PaymentDTO) (*PaymentDTO, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("payment validation failed", "error", err, "payment_id", id)
		return nil, err
	}

	record := ToDataModel(dto)
	record.ID = id

	if err := s.repo.Save(record); err != nil {
		s.logger.Error("failed to update payment", "error", err, "payment_id", id)
		return nil, errors.NewInternalError("failed to update payment", err)
	}

	s.logger.Info("payment updated", "payment_id", id, "status", record.Status)

	return FromDataModel(record), nil
}

// Delete removes a payment by id. Deleting an absent id is a no-op.
func (s *Service) Delete(id int64) error {
	if err := s.repo.DeleteByID(id); err != nil {
		s.logger.Error("failed to delete payment", "error", err, "payment_id", id)
		return errors.NewInternalError("failed to delete payment", err)
	}

	s.logger.Info("payment deleted", "payment_id", id)
	return nil
}

// Confirm marks the payment CONFIRMED and then notifies the order service.
// The persist and the notify are not atomic: if the notify fails the local
// status stays CONFIRMED and the error is surfaced. Re-confirming an
// already confirmed payment is accepted.
func (s *Service) Confirm(ctx context.Context, id int64) error {
	record, err := s.repo.GetByID(id)
	if err != nil {
		s.logger.Warn("payment not found for confirmation", "payment_id", id, "error", err)
		return errors.ErrPaymentNotFound
	}

	record.Status = paymentDatamodel.StatusConfirmed
	if err := s.repo.Save(record); err != nil {
		s.logger.Error("failed to persist confirmation", "error", err, "payment_id", id)
		return errors.NewInternalError("failed to confirm payment", err)
	}

	if err := s.orderClient.NotifyPaymentConfirmed(ctx, record.OrderID); err != nil {
		s.logger.Error("order service notification failed after confirmation was persisted",
			"error", err,
			"payment_id", id,
			"order_id", record.OrderID)
		return errors.NewExternalError("failed to notify order service", err)
	}

	s.logger.Info("payment confirmed", "payment_id", id, "order_id", record.OrderID)
	return nil
}

// ConfirmWithoutIntegration records the confirmation locally only; the
// order service is never called.
func (s *Service) ConfirmWithoutIntegration(id int64) error {
	record, err := s.repo.GetByID(id)
	if err != nil {
		s.logger.Warn("payment not found for local confirmation", "payment_id", id, "error", err)
		return errors.ErrPaymentNotFound
	}

	record.Status = paymentDatamodel.StatusConfirmedWithoutIntegration
	if err := s.repo.Save(record); err != nil {
		s.logger.Error("failed to persist local confirmation", "error", err, "payment_id", id)
		return errors.NewInternalError("failed to confirm payment", err)
	}

	s.logger.Info("payment confirmed without integration", "payment_id", id, "order_id", record.OrderID)
	return nil
}
