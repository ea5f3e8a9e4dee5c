package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/receipthub/receipthub-api/internal/domain/entity"
	"github.com/receipthub/receipthub-api/internal/domain/enum"
	"github.com/receipthub/receipthub-api/pkg/pagination"
)

// CheckRepository defines the interface for check data operations.
// Every query is scoped to an owner; there is no way to read another
// user's checks through this interface.
type CheckRepository interface {
	// Create persists a check together with its items in one transaction.
	Create(ctx context.Context, check *entity.Check) error
	// GetByID returns the check with its items, or nil when the check does
	// not exist or belongs to a different owner.
	GetByID(ctx context.Context, ownerID, id uuid.UUID) (*entity.Check, error)
	// List returns the owner's checks matching the filters, ordered by
	// created_at then id so pagination is stable.
	List(ctx context.Context, ownerID uuid.UUID, params *CheckFilterParams) ([]entity.Check, error)
}

// CheckFilterParams contains filtering parameters for check queries.
// All filters are optional and combined with AND.
type CheckFilterParams struct {
	Pagination  *pagination.Params
	CreatedFrom *time.Time
	CreatedTo   *time.Time
	MinTotal    *int64 // cents
	MaxTotal    *int64 // cents
	PaymentType *enum.PaymentType
}
