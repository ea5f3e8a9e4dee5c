package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/receipthub/receipthub-api/internal/domain/entity"
	domainRepo "github.com/receipthub/receipthub-api/internal/domain/repository"
)

// fakeUserRepo is an in-memory UserRepository for tests
type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	f.users[user.Username] = user
	return nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	if u, ok := f.users[username]; ok {
		return u, nil
	}
	return nil, nil
}

// fakeCheckRepo is an in-memory CheckRepository for tests. It enforces the
// same owner scoping contract as the real repository.
type fakeCheckRepo struct {
	checks      []*entity.Check
	createCalls int
}

func newFakeCheckRepo() *fakeCheckRepo {
	return &fakeCheckRepo{}
}

func (f *fakeCheckRepo) Create(ctx context.Context, check *entity.Check) error {
	f.createCalls++
	if check.ID == uuid.Nil {
		check.ID = uuid.New()
	}
	for i := range check.Products {
		check.Products[i].CheckID = check.ID
	}
	f.checks = append(f.checks, check)
	return nil
}

func (f *fakeCheckRepo) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*entity.Check, error) {
	for _, c := range f.checks {
		if c.ID == id && c.UserID == ownerID {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeCheckRepo) List(ctx context.Context, ownerID uuid.UUID, params *domainRepo.CheckFilterParams) ([]entity.Check, error) {
	params.Pagination.Validate()

	var matched []entity.Check
	for _, c := range f.checks {
		if c.UserID != ownerID {
			continue
		}
		if params.CreatedFrom != nil && c.CreatedAt.Before(*params.CreatedFrom) {
			continue
		}
		if params.CreatedTo != nil && c.CreatedAt.After(*params.CreatedTo) {
			continue
		}
		if params.MinTotal != nil && c.Total < *params.MinTotal {
			continue
		}
		if params.MaxTotal != nil && c.Total > *params.MaxTotal {
			continue
		}
		if params.PaymentType != nil && c.PaymentType != *params.PaymentType {
			continue
		}
		matched = append(matched, *c)
	}

	if params.Pagination.Offset() >= len(matched) {
		return nil, nil
	}
	matched = matched[params.Pagination.Offset():]
	if len(matched) > params.Pagination.Limit() {
		matched = matched[:params.Pagination.Limit()]
	}
	return matched, nil
}
