package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/receipthub/receipthub-api/internal/domain/entity"
	"github.com/receipthub/receipthub-api/internal/domain/repository"
	"github.com/receipthub/receipthub-api/pkg/apperror"
	"github.com/receipthub/receipthub-api/pkg/receipt"
)

// CheckService handles check-related operations
type CheckService struct {
	checkRepo    repository.CheckRepository
	userRepo     repository.UserRepository
	queryTimeout time.Duration
}

// NewCheckService creates a new check service
func NewCheckService(checkRepo repository.CheckRepository, userRepo repository.UserRepository, queryTimeout time.Duration) *CheckService {
	return &CheckService{
		checkRepo:    checkRepo,
		userRepo:     userRepo,
		queryTimeout: queryTimeout,
	}
}

// CreateCheck builds a check from the draft and persists it for the owner.
// The check and its items are written atomically; an underpaid or empty
// draft fails before anything touches the store.
func (s *CheckService) CreateCheck(ctx context.Context, ownerID uuid.UUID, draft *CheckDraft) (*entity.Check, error) {
	check, err := BuildCheck(draft)
	if err != nil {
		return nil, err
	}

	check.UserID = ownerID
	check.CreatedAt = time.Now().UTC()
	for i := range check.Products {
		check.Products[i].CheckID = check.ID
	}

	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	if err := s.checkRepo.Create(ctx, check); err != nil {
		return nil, err
	}

	return check, nil
}

// ListChecks returns the owner's checks matching the filter parameters
func (s *CheckService) ListChecks(ctx context.Context, ownerID uuid.UUID, params *repository.CheckFilterParams) ([]entity.Check, error) {
	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	return s.checkRepo.List(ctx, ownerID, params)
}

// GetCheck returns a single check. Checks belonging to other users report
// not-found, same as checks that do not exist.
func (s *CheckService) GetCheck(ctx context.Context, ownerID, checkID uuid.UUID) (*entity.Check, error) {
	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	check, err := s.checkRepo.GetByID(ctx, ownerID, checkID)
	if err != nil {
		return nil, err
	}
	if check == nil {
		return nil, apperror.ErrCheckNotFound
	}
	return check, nil
}

// RenderCheckText loads a check and renders it as a fixed-width text document
func (s *CheckService) RenderCheckText(ctx context.Context, ownerID, checkID uuid.UUID, layout receipt.Layout) (string, error) {
	if err := layout.Validate(); err != nil {
		return "", apperror.NewBadRequestError(err.Error())
	}

	check, err := s.GetCheck(ctx, ownerID, checkID)
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	owner, err := s.userRepo.GetByID(ctx, check.UserID)
	if err != nil {
		return "", err
	}
	if owner == nil {
		return "", apperror.ErrCheckNotFound
	}

	return receipt.Render(buildReceipt(check, owner), layout), nil
}

// buildReceipt maps a stored check to the renderer's value object
func buildReceipt(check *entity.Check, owner *entity.User) receipt.Receipt {
	items := make([]receipt.Item, 0, len(check.Products))
	for _, p := range check.Products {
		items = append(items, receipt.Item{
			Name:     p.Name,
			Quantity: p.Quantity,
			Price:    float64(p.Price) / 100,
			Total:    float64(p.Total) / 100,
		})
	}

	return receipt.Receipt{
		FOP:           owner.FullName,
		Items:         items,
		Total:         check.GetTotalDecimal(),
		PaymentType:   check.PaymentType.String(),
		PaymentAmount: float64(check.PaymentAmount) / 100,
		Rest:          check.GetRestDecimal(),
		CreatedAt:     check.CreatedAt,
	}
}
