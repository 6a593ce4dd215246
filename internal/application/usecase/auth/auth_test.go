// Package auth contains registration, login, and token refresh use cases.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/pocketvision/ledger/internal/application/adapter"
	"github.com/pocketvision/ledger/internal/domain/entity"
	domainerror "github.com/pocketvision/ledger/internal/domain/error"
)

// fakeUserRepo is an in-memory UserRepository.
type fakeUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, domainerror.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, domainerror.ErrUserNotFound
}

func (r *fakeUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Email == email {
			return true, nil
		}
	}
	return false, nil
}

// plainPasswordService hashes with a reversible prefix so tests stay fast.
type plainPasswordService struct{}

func (plainPasswordService) HashPassword(password string) (string, error) {
	return "hashed:" + password, nil
}

func (plainPasswordService) VerifyPassword(hashedPassword, password string) error {
	if hashedPassword != "hashed:"+password {
		return errors.New("password mismatch")
	}
	return nil
}

func (plainPasswordService) ValidatePasswordStrength(password string) error {
	if len(password) < 8 {
		return errors.New("password too short")
	}
	return nil
}

// stubTokenService issues deterministic tokens keyed by user ID.
type stubTokenService struct {
	failGenerate bool
}

func (s *stubTokenService) GenerateTokenPair(_ context.Context, userID uuid.UUID, email string) (*adapter.TokenPair, error) {
	if s.failGenerate {
		return nil, errors.New("signing failed")
	}
	return &adapter.TokenPair{
		AccessToken:  fmt.Sprintf("access-%s", userID),
		RefreshToken: fmt.Sprintf("refresh-%s|%s", userID, email),
	}, nil
}

func (s *stubTokenService) ValidateAccessToken(_ context.Context, token string) (*adapter.TokenClaims, error) {
	return s.parse(token, "access-")
}

func (s *stubTokenService) ValidateRefreshToken(_ context.Context, token string) (*adapter.TokenClaims, error) {
	return s.parse(token, "refresh-")
}

func (s *stubTokenService) parse(token, prefix string) (*adapter.TokenClaims, error) {
	if !strings.HasPrefix(token, prefix) {
		return nil, errors.New("malformed token")
	}
	payload := strings.TrimPrefix(token, prefix)
	parts := strings.SplitN(payload, "|", 2)
	userID, err := uuid.Parse(parts[0])
	if err != nil {
		return nil, errors.New("malformed token")
	}
	claims := &adapter.TokenClaims{UserID: userID, ExpiresAt: time.Now().Add(time.Hour)}
	if len(parts) == 2 {
		claims.Email = parts[1]
	}
	return claims, nil
}

func assertAuthErrorCode(t *testing.T, err error, code domainerror.AuthErrorCode) {
	t.Helper()
	var authErr *domainerror.AuthError
	if !errors.As(err, &authErr) {
		t.Fatalf("expected AuthError, got %v", err)
	}
	if authErr.Code != code {
		t.Errorf("expected code %s, got %s", code, authErr.Code)
	}
}

func TestRegisterUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	newUseCase := func() (*RegisterUseCase, *fakeUserRepo) {
		repo := newFakeUserRepo()
		return NewRegisterUseCase(repo, plainPasswordService{}, &stubTokenService{}), repo
	}

	t.Run("successful registration signs the user in", func(t *testing.T) {
		useCase, repo := newUseCase()

		output, err := useCase.Execute(ctx, RegisterInput{
			Email:    "Lan@Example.com",
			Name:     "Lan",
			Password: "sufficiently-long",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.User.Email != "lan@example.com" {
			t.Errorf("expected lowercased email, got %q", output.User.Email)
		}
		if !output.User.EmailNotifications || !output.User.BudgetAlerts {
			t.Error("expected notification preferences enabled by default")
		}
		if output.Tokens.AccessToken == "" || output.Tokens.RefreshToken == "" {
			t.Error("expected token pair issued")
		}
		if _, err := repo.FindByEmail(ctx, "lan@example.com"); err != nil {
			t.Errorf("expected user persisted: %v", err)
		}
	})

	t.Run("missing fields", func(t *testing.T) {
		useCase, _ := newUseCase()
		for _, input := range []RegisterInput{
			{Name: "Lan", Password: "sufficiently-long"},
			{Email: "lan@example.com", Password: "sufficiently-long"},
			{Email: "lan@example.com", Name: "Lan"},
		} {
			_, err := useCase.Execute(ctx, input)
			assertAuthErrorCode(t, err, domainerror.ErrCodeMissingFields)
		}
	})

	t.Run("invalid email format", func(t *testing.T) {
		useCase, _ := newUseCase()
		_, err := useCase.Execute(ctx, RegisterInput{Email: "not-an-email", Name: "Lan", Password: "sufficiently-long"})
		assertAuthErrorCode(t, err, domainerror.ErrCodeInvalidEmail)
	})

	t.Run("weak password", func(t *testing.T) {
		useCase, _ := newUseCase()
		_, err := useCase.Execute(ctx, RegisterInput{Email: "lan@example.com", Name: "Lan", Password: "short"})
		assertAuthErrorCode(t, err, domainerror.ErrCodeWeakPassword)
	})

	t.Run("duplicate email", func(t *testing.T) {
		useCase, repo := newUseCase()
		_ = repo.Create(ctx, entity.NewUser("lan@example.com", "Lan", "hash"))

		_, err := useCase.Execute(ctx, RegisterInput{Email: "lan@example.com", Name: "Lan", Password: "sufficiently-long"})
		assertAuthErrorCode(t, err, domainerror.ErrCodeEmailExists)
	})
}

func TestLoginUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	seed := func() (*LoginUseCase, *entity.User) {
		repo := newFakeUserRepo()
		user := entity.NewUser("lan@example.com", "Lan", "hashed:correct-password")
		_ = repo.Create(ctx, user)
		return NewLoginUseCase(repo, plainPasswordService{}, &stubTokenService{}), user
	}

	t.Run("successful login", func(t *testing.T) {
		useCase, user := seed()

		output, err := useCase.Execute(ctx, LoginInput{Email: "Lan@Example.com ", Password: "correct-password"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.User.ID != user.ID {
			t.Error("expected the seeded user")
		}
		if output.Tokens.AccessToken == "" {
			t.Error("expected access token")
		}
	})

	t.Run("wrong password and unknown email are indistinguishable", func(t *testing.T) {
		useCase, _ := seed()

		_, wrongPassword := useCase.Execute(ctx, LoginInput{Email: "lan@example.com", Password: "wrong"})
		_, unknownEmail := useCase.Execute(ctx, LoginInput{Email: "nobody@example.com", Password: "correct-password"})

		assertAuthErrorCode(t, wrongPassword, domainerror.ErrCodeInvalidCredentials)
		assertAuthErrorCode(t, unknownEmail, domainerror.ErrCodeInvalidCredentials)
		if wrongPassword.Error() != unknownEmail.Error() {
			t.Error("expected identical error messages for both failure modes")
		}
	})
}

func TestRefreshUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	seed := func() (*RefreshUseCase, *fakeUserRepo, *entity.User) {
		repo := newFakeUserRepo()
		user := entity.NewUser("lan@example.com", "Lan", "hash")
		_ = repo.Create(ctx, user)
		return NewRefreshUseCase(repo, &stubTokenService{}), repo, user
	}

	t.Run("valid refresh token issues a new pair", func(t *testing.T) {
		useCase, _, user := seed()

		output, err := useCase.Execute(ctx, RefreshInput{RefreshToken: fmt.Sprintf("refresh-%s|%s", user.ID, user.Email)})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Tokens.AccessToken == "" || output.Tokens.RefreshToken == "" {
			t.Error("expected new token pair")
		}
	})

	t.Run("empty token", func(t *testing.T) {
		useCase, _, _ := seed()
		_, err := useCase.Execute(ctx, RefreshInput{})
		assertAuthErrorCode(t, err, domainerror.ErrCodeMissingToken)
	})

	t.Run("malformed token", func(t *testing.T) {
		useCase, _, _ := seed()
		_, err := useCase.Execute(ctx, RefreshInput{RefreshToken: "garbage"})
		assertAuthErrorCode(t, err, domainerror.ErrCodeInvalidToken)
	})

	t.Run("token for a deleted account", func(t *testing.T) {
		useCase, _, _ := seed()
		_, err := useCase.Execute(ctx, RefreshInput{RefreshToken: fmt.Sprintf("refresh-%s|ghost@example.com", uuid.New())})
		assertAuthErrorCode(t, err, domainerror.ErrCodeInvalidToken)
	})
}
