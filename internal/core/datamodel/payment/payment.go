package payment

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment is the persisted payment record. Card fields are stored as opaque
// strings; validation of their contents belongs to the upstream issuer flow.
type Payment struct {
	ID               int64           `json:"id" gorm:"primaryKey"`
	Amount           decimal.Decimal `json:"amount" gorm:"column:amount;type:numeric(19,2);not null"`
	PayerName        string          `json:"payer_name" gorm:"column:payer_name;not null"`
	CardNumber       string          `json:"card_number" gorm:"column:card_number"`
	CardExpiry       string          `json:"card_expiry" gorm:"column:card_expiry"`
	CardSecurityCode string          `json:"card_security_code" gorm:"column:card_security_code"`
	Status           string          `json:"status" gorm:"column:status;default:CREATED"`
	PaymentMethodID  int64           `json:"payment_method_id" gorm:"column:payment_method_id"`
	OrderID          int64           `json:"order_id" gorm:"column:order_id"`
	CreatedAt        time.Time       `json:"created_at" gorm:"column:created_at"`
	UpdatedAt        time.Time       `json:"updated_at" gorm:"column:updated_at"`
}

// TableName returns the table name for GORM
func (Payment) TableName() string {
	return "payments"
}

// Payment status values. Only these three are ever written by this service;
// transitions are not enforced, any record can be moved to either confirmed
// state regardless of its current status.
const (
	StatusCreated                     = "CREATED"
	StatusConfirmed                   = "CONFIRMED"
	StatusConfirmedWithoutIntegration = "CONFIRMED_WITHOUT_INTEGRATION"
)
