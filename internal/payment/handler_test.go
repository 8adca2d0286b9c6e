package payment_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/go-chi/chi"
	"github.com/shopspring/decimal"

	internalErrors "github.com/frahmantamala/payment-service/internal"
	paymentDatamodel "github.com/frahmantamala/payment-service/internal/core/datamodel/payment"
	"github.com/frahmantamala/payment-service/internal/payment"
	"github.com/frahmantamala/payment-service/internal/transport"
)

type mockWorkflowService struct {
	page         *payment.PaymentPage
	dto          *payment.PaymentDTO
	err          error
	confirmedIDs []int64
	localIDs     []int64
	deletedIDs   []int64
}

func (m *mockWorkflowService) ListAll(page, size int) (*payment.PaymentPage, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.page, nil
}

func (m *mockWorkflowService) GetByID(ctx context.Context, id int64) (*payment.PaymentDTO, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.dto, nil
}

func (m *mockWorkflowService) Create(dto *payment.PaymentDTO) (*payment.PaymentDTO, error) {
	if m.err != nil {
		return nil, m.err
	}
	created := *dto
	created.ID = 1
	created.Status = paymentDatamodel.StatusCreated
	return &created, nil
}

func (m *mockWorkflowService) Update(id int64, dto *payment.PaymentDTO) (*payment.PaymentDTO, error) {
	if m.err != nil {
		return nil, m.err
	}
	updated := *dto
	updated.ID = id
	return &updated, nil
}

func (m *mockWorkflowService) Delete(id int64) error {
	if m.err != nil {
		return m.err
	}
	m.deletedIDs = append(m.deletedIDs, id)
	return nil
}

func (m *mockWorkflowService) Confirm(ctx context.Context, id int64) error {
	if m.err != nil {
		return m.err
	}
	m.confirmedIDs = append(m.confirmedIDs, id)
	return nil
}

func (m *mockWorkflowService) ConfirmWithoutIntegration(id int64) error {
	if m.err != nil {
		return m.err
	}
	m.localIDs = append(m.localIDs, id)
	return nil
}

var _ = Describe("Payment Handler", func() {
	var (
		mockService *mockWorkflowService
		router      *chi.Mux
	)

	BeforeEach(func() {
		mockService = &mockWorkflowService{}
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		handler := payment.NewHandler(transport.NewBaseHandler(logger), mockService)

		router = chi.NewRouter()
		router.Get("/payments", handler.ListPayments)
		router.Post("/payments", handler.CreatePayment)
		router.Get("/payments/{id}", handler.GetPayment)
		router.Put("/payments/{id}", handler.UpdatePayment)
		router.Delete("/payments/{id}", handler.DeletePayment)
		router.Patch("/payments/{id}/confirm", handler.ConfirmPayment)
		router.Patch("/payments/{id}/confirm-local", handler.ConfirmPaymentLocal)
	})

	Describe("GET /payments", func() {
		It("should return the page from the service", func() {
			mockService.page = &payment.PaymentPage{
				Content:       []*payment.PaymentDTO{{ID: 1}},
				Page:          0,
				Size:          10,
				TotalElements: 1,
				TotalPages:    1,
			}

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/payments?page=0&size=10", nil))

			Expect(rec.Code).To(Equal(http.StatusOK))

			var page payment.PaymentPage
			Expect(json.Unmarshal(rec.Body.Bytes(), &page)).To(Succeed())
			Expect(page.Content).To(HaveLen(1))
			Expect(page.TotalElements).To(Equal(int64(1)))
		})
	})

	Describe("GET /payments/{id}", func() {
		It("should return 404 when the service reports not found", func() {
			mockService.err = internalErrors.ErrPaymentNotFound

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/payments/42", nil))

			Expect(rec.Code).To(Equal(http.StatusNotFound))
		})

		It("should return 400 for a non-numeric id", func() {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/payments/abc", nil))

			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})

		It("should return 502 when the order service failed", func() {
			mockService.err = internalErrors.NewExternalError("failed to fetch order items", nil)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/payments/42", nil))

			Expect(rec.Code).To(Equal(http.StatusBadGateway))
		})

		It("should return the payment with items", func() {
			mockService.dto = &payment.PaymentDTO{ID: 42, Amount: decimal.NewFromInt(10), OrderID: 7}

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/payments/42", nil))

			Expect(rec.Code).To(Equal(http.StatusOK))
		})
	})

	Describe("POST /payments", func() {
		It("should return 201 with the created payment", func() {
			body, _ := json.Marshal(map[string]interface{}{
				"amount":             "149.90",
				"payer_name":         "Ana Souza",
				"card_number":        "4111111111111111",
				"card_expiry":        "12/27",
				"card_security_code": "123",
				"payment_method_id":  1,
				"order_id":           42,
			})

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/payments", bytes.NewReader(body))
			router.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusCreated))

			var created payment.PaymentDTO
			Expect(json.Unmarshal(rec.Body.Bytes(), &created)).To(Succeed())
			Expect(created.ID).To(Equal(int64(1)))
			Expect(created.Status).To(Equal(paymentDatamodel.StatusCreated))
		})

		It("should return 400 for a malformed body", func() {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/payments", bytes.NewReader([]byte("{not json")))
			router.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})

		It("should return 400 when validation fails", func() {
			mockService.err = internalErrors.NewValidationError("Validation failed", internalErrors.ErrCodeValidationFailed)

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/payments", bytes.NewReader([]byte("{}")))
			router.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("PUT /payments/{id}", func() {
		It("should persist under the path id", func() {
			body, _ := json.Marshal(map[string]interface{}{
				"id":         777,
				"amount":     "89.50",
				"payer_name": "Carlos Lima",
			})

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPut, "/payments/5", bytes.NewReader(body))
			router.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusOK))

			var updated payment.PaymentDTO
			Expect(json.Unmarshal(rec.Body.Bytes(), &updated)).To(Succeed())
			Expect(updated.ID).To(Equal(int64(5)))
		})
	})

	Describe("DELETE /payments/{id}", func() {
		It("should return 204 and delegate to the service", func() {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/payments/9", nil))

			Expect(rec.Code).To(Equal(http.StatusNoContent))
			Expect(mockService.deletedIDs).To(Equal([]int64{9}))
		})
	})

	Describe("PATCH /payments/{id}/confirm", func() {
		It("should return 204 on success", func() {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, "/payments/3/confirm", nil))

			Expect(rec.Code).To(Equal(http.StatusNoContent))
			Expect(mockService.confirmedIDs).To(Equal([]int64{3}))
		})

		It("should return 404 for an absent payment", func() {
			mockService.err = internalErrors.ErrPaymentNotFound

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, "/payments/3/confirm", nil))

			Expect(rec.Code).To(Equal(http.StatusNotFound))
		})

		It("should return 502 when the notification failed", func() {
			mockService.err = internalErrors.NewExternalError("failed to notify order service", nil)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, "/payments/3/confirm", nil))

			Expect(rec.Code).To(Equal(http.StatusBadGateway))
		})
	})

	Describe("PATCH /payments/{id}/confirm-local", func() {
		It("should return 204 on success", func() {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, "/payments/4/confirm-local", nil))

			Expect(rec.Code).To(Equal(http.StatusNoContent))
			Expect(mockService.localIDs).To(Equal([]int64{4}))
		})
	})
})
