package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/receipthub/receipthub-api/internal/domain/entity"
	domainRepo "github.com/receipthub/receipthub-api/internal/domain/repository"
	"gorm.io/gorm"
)

type checkRepository struct {
	db *gorm.DB
}

// NewCheckRepository creates a new check repository
func NewCheckRepository(db *gorm.DB) domainRepo.CheckRepository {
	return &checkRepository{db: db}
}

// Create inserts the check and its items. GORM writes the association rows
// in the same transaction as the parent, so a partial check is never visible.
func (r *checkRepository) Create(ctx context.Context, check *entity.Check) error {
	return r.db.WithContext(ctx).Create(check).Error
}

func (r *checkRepository) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*entity.Check, error) {
	var check entity.Check
	err := r.db.WithContext(ctx).
		Preload("Products", productOrder).
		First(&check, "id = ? AND user_id = ?", id, ownerID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &check, err
}

func (r *checkRepository) List(ctx context.Context, ownerID uuid.UUID, params *domainRepo.CheckFilterParams) ([]entity.Check, error) {
	var checks []entity.Check

	query := r.db.WithContext(ctx).Model(&entity.Check{}).
		Where("user_id = ?", ownerID)

	if params.CreatedFrom != nil {
		query = query.Where("created_at >= ?", *params.CreatedFrom)
	}

	if params.CreatedTo != nil {
		query = query.Where("created_at <= ?", *params.CreatedTo)
	}

	if params.MinTotal != nil {
		query = query.Where("total >= ?", *params.MinTotal)
	}

	if params.MaxTotal != nil {
		query = query.Where("total <= ?", *params.MaxTotal)
	}

	if params.PaymentType != nil {
		query = query.Where("payment_type = ?", *params.PaymentType)
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.Limit()).
		Preload("Products", productOrder).
		Order("created_at ASC, id ASC").
		Find(&checks).Error

	return checks, err
}

// productOrder keeps preloaded items in submission order. Without it the
// item order would depend on the table's physical row order.
func productOrder(db *gorm.DB) *gorm.DB {
	return db.Order("ordinal ASC")
}
