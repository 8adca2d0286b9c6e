package payment

import (
	errors "github.com/frahmantamala/payment-service/internal"
	"github.com/frahmantamala/payment-service/internal/core/common/validation"
	"github.com/frahmantamala/payment-service/internal/orders"
	"github.com/shopspring/decimal"
)

// PaymentDTO is the external shape of a payment. Items is transient: it is
// only filled on single-record reads, from the order service, and is never
// persisted with the payment.
type PaymentDTO struct {
	ID               int64              `json:"id,omitempty"`
	Amount           decimal.Decimal    `json:"amount"`
	PayerName        string             `json:"payer_name"`
	CardNumber       string             `json:"card_number"`
	CardExpiry       string             `json:"card_expiry"`
	CardSecurityCode string             `json:"card_security_code"`
	Status           string             `json:"status,omitempty"`
	PaymentMethodID  int64              `json:"payment_method_id"`
	OrderID          int64              `json:"order_id"`
	Items            []orders.OrderItem `json:"items,omitempty"`
}

// PaymentPage is one page of payments plus the pagination metadata the
// store reported.
type PaymentPage struct {
	Content       []*PaymentDTO `json:"content"`
	Page          int           `json:"page"`
	Size          int           `json:"size"`
	TotalElements int64         `json:"total_elements"`
	TotalPages    int64         `json:"total_pages"`
}

// Validate checks the writable fields of a payment. Status is deliberately
// not validated: create overwrites it and update persists whatever the
// caller sends, matching the unguarded transition model.
func (dto *PaymentDTO) Validate() error {
	validator := validation.NewValidator()

	validator.Field("amount", dto.Amount).Required().PositiveDecimal(errors.ErrCodeInvalidAmount)
	validator.Field("payer_name", dto.PayerName).Required().MaxLength(100)
	validator.Field("card_number", dto.CardNumber).Required().MaxLength(19)
	validator.Field("card_expiry", dto.CardExpiry).Required().MaxLength(7)
	validator.Field("card_security_code", dto.CardSecurityCode).Required().MaxLength(4)
	validator.Field("payment_method_id", dto.PaymentMethodID).Required().MinInt(1, errors.ErrCodeValidationFailed)
	validator.Field("order_id", dto.OrderID).Required().MinInt(1, errors.ErrCodeInvalidOrder)

	if appErr := validator.Validate(); appErr != nil {
		return appErr
	}
	return nil
}
