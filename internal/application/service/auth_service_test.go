package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/receipthub/receipthub-api/internal/domain/entity"
	"github.com/receipthub/receipthub-api/pkg/apperror"
	"github.com/receipthub/receipthub-api/pkg/utils"
)

func newTestAuthService() (*AuthService, *fakeUserRepo) {
	repo := newFakeUserRepo()
	jwtManager := utils.NewJWTManager("test-secret", "HS256", 15*time.Minute)
	return NewAuthService(repo, jwtManager, 5*time.Second), repo
}

func validRegistration() *RegisterInput {
	return &RegisterInput{
		FullName: "Ivan Taran",
		Username: "ivan",
		Password: "Secret1",
	}
}

func TestRegister(t *testing.T) {
	svc, _ := newTestAuthService()

	user, err := svc.Register(context.Background(), validRegistration())
	if err != nil {
		t.Fatalf("Register() unexpected error: %v", err)
	}
	if user.FullName != "Ivan Taran" || user.Username != "ivan" {
		t.Errorf("Register() user = %+v", user)
	}
	if user.Password == "Secret1" || user.Password == "" {
		t.Error("password must be stored as a hash, never plain text")
	}
	if !utils.CheckPasswordHash("Secret1", user.Password) {
		t.Error("stored hash does not verify against the original password")
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc, _ := newTestAuthService()

	if _, err := svc.Register(context.Background(), validRegistration()); err != nil {
		t.Fatalf("first Register() unexpected error: %v", err)
	}

	input := validRegistration()
	input.FullName = "Someone Else"
	_, err := svc.Register(context.Background(), input)
	if !errors.Is(err, apperror.ErrUsernameTaken) {
		t.Fatalf("second Register() error = %v, want ErrUsernameTaken", err)
	}
	if apperror.GetAppError(err).Code != 409 {
		t.Errorf("duplicate username code = %d, want 409", apperror.GetAppError(err).Code)
	}
}

func TestRegisterFieldValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*RegisterInput)
	}{
		{"empty full name", func(i *RegisterInput) { i.FullName = "" }},
		{"full name with digits", func(i *RegisterInput) { i.FullName = "Ivan 4ever" }},
		{"full name too long", func(i *RegisterInput) { i.FullName = "Very Long Name Repeated Over And Over Until Past Fifty" }},
		{"username with symbols", func(i *RegisterInput) { i.Username = "ivan!" }},
		{"username too long", func(i *RegisterInput) { i.Username = "abcdefghijklmnopqrstu" }},
		{"short password", func(i *RegisterInput) { i.Password = "Ab1" }},
		{"password without uppercase", func(i *RegisterInput) { i.Password = "secret1" }},
		{"password without lowercase", func(i *RegisterInput) { i.Password = "SECRET1" }},
		{"password without digit", func(i *RegisterInput) { i.Password = "Secrets" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newTestAuthService()
			input := validRegistration()
			tt.mutate(input)

			_, err := svc.Register(context.Background(), input)
			if err == nil {
				t.Fatal("Register() succeeded, want validation error")
			}
			if code := apperror.GetAppError(err).Code; code != 400 {
				t.Errorf("validation error code = %d, want 400", code)
			}
			if len(repo.users) != 0 {
				t.Error("invalid registration must not persist a user")
			}
		})
	}
}

func TestLogin(t *testing.T) {
	svc, _ := newTestAuthService()
	if _, err := svc.Register(context.Background(), validRegistration()); err != nil {
		t.Fatalf("Register() unexpected error: %v", err)
	}

	out, err := svc.Login(context.Background(), &LoginInput{Username: "ivan", Password: "Secret1"})
	if err != nil {
		t.Fatalf("Login() unexpected error: %v", err)
	}
	if out.AccessToken == "" {
		t.Fatal("Login() returned empty token")
	}

	jwtManager := utils.NewJWTManager("test-secret", "HS256", 15*time.Minute)
	claims, err := jwtManager.ValidateAccessToken(out.AccessToken)
	if err != nil {
		t.Fatalf("issued token does not validate: %v", err)
	}
	if claims.Username != "ivan" {
		t.Errorf("token username = %q, want %q", claims.Username, "ivan")
	}
	if claims.UserID != out.User.ID {
		t.Errorf("token user id = %v, want %v", claims.UserID, out.User.ID)
	}
}

// Wrong password and unknown username must be indistinguishable.
func TestLoginBadCredentials(t *testing.T) {
	svc, _ := newTestAuthService()
	if _, err := svc.Register(context.Background(), validRegistration()); err != nil {
		t.Fatalf("Register() unexpected error: %v", err)
	}

	_, wrongPass := svc.Login(context.Background(), &LoginInput{Username: "ivan", Password: "Wrong1x"})
	_, unknownUser := svc.Login(context.Background(), &LoginInput{Username: "ghost", Password: "Secret1"})

	if !errors.Is(wrongPass, apperror.ErrInvalidCredentials) {
		t.Errorf("wrong password error = %v, want ErrInvalidCredentials", wrongPass)
	}
	if !errors.Is(unknownUser, apperror.ErrInvalidCredentials) {
		t.Errorf("unknown user error = %v, want ErrInvalidCredentials", unknownUser)
	}
	if wrongPass.Error() != unknownUser.Error() {
		t.Error("login errors must not reveal which factor was wrong")
	}
}

// racingUserRepo simulates a concurrent registration that wins between the
// duplicate lookup and the insert: the lookup sees nothing, the insert hits
// the unique index.
type racingUserRepo struct {
	*fakeUserRepo
}

func (r *racingUserRepo) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	return nil, nil
}

func (r *racingUserRepo) Create(ctx context.Context, user *entity.User) error {
	if _, taken := r.users[user.Username]; taken {
		return apperror.ErrUsernameTaken
	}
	return r.fakeUserRepo.Create(ctx, user)
}

func TestRegisterConcurrentDuplicateConflicts(t *testing.T) {
	repo := &racingUserRepo{fakeUserRepo: newFakeUserRepo()}
	jwtManager := utils.NewJWTManager("test-secret", "HS256", 15*time.Minute)
	svc := NewAuthService(repo, jwtManager, 5*time.Second)

	if _, err := svc.Register(context.Background(), validRegistration()); err != nil {
		t.Fatalf("first Register() unexpected error: %v", err)
	}

	_, err := svc.Register(context.Background(), validRegistration())
	if !errors.Is(err, apperror.ErrUsernameTaken) {
		t.Fatalf("racing Register() error = %v, want ErrUsernameTaken", err)
	}
	if apperror.GetAppError(err).Code != 409 {
		t.Errorf("racing duplicate code = %d, want 409", apperror.GetAppError(err).Code)
	}
}
