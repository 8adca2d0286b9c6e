package payment_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"

	paymentDatamodel "github.com/frahmantamala/payment-service/internal/core/datamodel/payment"
	"github.com/frahmantamala/payment-service/internal/orders"
	"github.com/frahmantamala/payment-service/internal/payment"
)

var _ = Describe("Payment mapping", func() {
	It("should survive an entity to DTO to entity round trip", func() {
		entity := &paymentDatamodel.Payment{
			ID:               7,
			Amount:           decimal.RequireFromString("1250.55"),
			PayerName:        "Beatriz Santos",
			CardNumber:       "378282246310005",
			CardExpiry:       "09/25",
			CardSecurityCode: "7890",
			Status:           paymentDatamodel.StatusConfirmed,
			PaymentMethodID:  2,
			OrderID:          31,
		}

		roundTripped := payment.ToDataModel(payment.FromDataModel(entity))

		Expect(roundTripped.ID).To(Equal(entity.ID))
		Expect(roundTripped.Amount.Equal(entity.Amount)).To(BeTrue())
		Expect(roundTripped.PayerName).To(Equal(entity.PayerName))
		Expect(roundTripped.CardNumber).To(Equal(entity.CardNumber))
		Expect(roundTripped.CardExpiry).To(Equal(entity.CardExpiry))
		Expect(roundTripped.CardSecurityCode).To(Equal(entity.CardSecurityCode))
		Expect(roundTripped.Status).To(Equal(entity.Status))
		Expect(roundTripped.PaymentMethodID).To(Equal(entity.PaymentMethodID))
		Expect(roundTripped.OrderID).To(Equal(entity.OrderID))
	})

	It("should never copy items into the entity", func() {
		dto := &payment.PaymentDTO{
			ID:      3,
			Amount:  decimal.NewFromInt(10),
			OrderID: 5,
			Items: []orders.OrderItem{
				{ID: 1, Description: "notebook", Quantity: 1},
			},
		}

		entity := payment.ToDataModel(dto)
		back := payment.FromDataModel(entity)
		Expect(back.Items).To(BeEmpty())
	})

	It("should map slices element by element", func() {
		entities := []*paymentDatamodel.Payment{
			{ID: 1, Amount: decimal.NewFromInt(5), OrderID: 1, Status: paymentDatamodel.StatusCreated},
			{ID: 2, Amount: decimal.NewFromInt(6), OrderID: 2, Status: paymentDatamodel.StatusConfirmed},
		}

		dtos := payment.FromDataModelSlice(entities)
		Expect(dtos).To(HaveLen(2))
		Expect(dtos[0].ID).To(Equal(int64(1)))
		Expect(dtos[1].Status).To(Equal(paymentDatamodel.StatusConfirmed))
	})
})
