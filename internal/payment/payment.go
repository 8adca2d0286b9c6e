package payment

import (
	paymentDatamodel "github.com/frahmantamala/payment-service/internal/core/datamodel/payment"
)

// Explicit field-by-field conversion between the persisted entity and the
// DTO. Items never crosses into the entity: the payments table does not
// store order items.

func ToDataModel(dto *PaymentDTO) *paymentDatamodel.Payment {
	return &paymentDatamodel.Payment{
		ID:               dto.ID,
		Amount:           dto.Amount,
		PayerName:        dto.PayerName,
		CardNumber:       dto.CardNumber,
		CardExpiry:       dto.CardExpiry,
		CardSecurityCode: dto.CardSecurityCode,
		Status:           dto.Status,
		PaymentMethodID:  dto.PaymentMethodID,
		OrderID:          dto.OrderID,
	}
}

func FromDataModel(p *paymentDatamodel.Payment) *PaymentDTO {
	return &PaymentDTO{
		ID:               p.ID,
		Amount:           p.Amount,
		PayerName:        p.PayerName,
		CardNumber:       p.CardNumber,
		CardExpiry:       p.CardExpiry,
		CardSecurityCode: p.CardSecurityCode,
		Status:           p.Status,
		PaymentMethodID:  p.PaymentMethodID,
		OrderID:          p.OrderID,
	}
}

func FromDataModelSlice(payments []*paymentDatamodel.Payment) []*PaymentDTO {
	result := make([]*PaymentDTO, len(payments))
	for i, p := range payments {
		result[i] = FromDataModel(p)
	}
	return result
}
