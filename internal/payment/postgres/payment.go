package postgres

import (
	"time"

	errors "github.com/frahmantamala/payment-service/internal"
	paymentDatamodel "github.com/frahmantamala/payment-service/internal/core/datamodel/payment"
	paymentpkg "github.com/frahmantamala/payment-service/internal/payment"
	"gorm.io/gorm"
)

// PaymentRepository implements payment.RepositoryAPI using GORM
type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) paymentpkg.RepositoryAPI {
	return &PaymentRepository{db: db}
}

func (r *PaymentRepository) Create(p *paymentDatamodel.Payment) error {
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now
	return r.db.Create(p).Error
}

// GetByID returns ErrPaymentNotFound when no record exists for id.
func (r *PaymentRepository) GetByID(id int64) (*paymentDatamodel.Payment, error) {
	var p paymentDatamodel.Payment
	err := r.db.Where("id = ?", id).First(&p).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrPaymentNotFound
		}
		return nil, err
	}
	return &p, nil
}

// FindPage returns one page of payments ordered by id, plus the total count.
func (r *PaymentRepository) FindPage(offset, limit int) ([]*paymentDatamodel.Payment, int64, error) {
	var total int64
	if err := r.db.Model(&paymentDatamodel.Payment{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var payments []*paymentDatamodel.Payment
	err := r.db.Order("id ASC").
		Limit(limit).
		Offset(offset).
		Find(&payments).Error
	if err != nil {
		return nil, 0, err
	}

	return payments, total, nil
}

// Save upserts: a record whose id exists is replaced in full, an unseen id
// is inserted.
func (r *PaymentRepository) Save(p *paymentDatamodel.Payment) error {
	p.UpdatedAt = time.Now()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = p.UpdatedAt
	}
	return r.db.Save(p).Error
}

// DeleteByID removes the record if present; deleting an absent id is not
// an error.
func (r *PaymentRepository) DeleteByID(id int64) error {
	return r.db.Delete(&paymentDatamodel.Payment{}, id).Error
}
