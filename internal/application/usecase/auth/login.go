// Package auth contains registration, login, and token refresh use cases.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/pocketvision/ledger/internal/application/adapter"
	"github.com/pocketvision/ledger/internal/domain/entity"
	domainerror "github.com/pocketvision/ledger/internal/domain/error"
)

// LoginInput represents the input for user login.
type LoginInput struct {
	Email    string
	Password string
}

// LoginOutput represents the output of user login.
type LoginOutput struct {
	User   *entity.User
	Tokens *adapter.TokenPair
}

// LoginUseCase handles user login logic.
type LoginUseCase struct {
	userRepo        adapter.UserRepository
	passwordService adapter.PasswordService
	tokenService    adapter.TokenService
}

// NewLoginUseCase creates a new LoginUseCase instance.
func NewLoginUseCase(
	userRepo adapter.UserRepository,
	passwordService adapter.PasswordService,
	tokenService adapter.TokenService,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
		tokenService:    tokenService,
	}
}

// Execute performs the login. Unknown email and wrong password return the
// same error so the endpoint cannot be used to enumerate accounts.
func (uc *LoginUseCase) Execute(ctx context.Context, input LoginInput) (*LoginOutput, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	user, err := uc.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainerror.ErrUserNotFound) {
			return nil, invalidCredentials()
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if err := uc.passwordService.VerifyPassword(user.PasswordHash, input.Password); err != nil {
		return nil, invalidCredentials()
	}

	tokens, err := uc.tokenService.GenerateTokenPair(ctx, user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	return &LoginOutput{User: user, Tokens: tokens}, nil
}

func invalidCredentials() error {
	return domainerror.NewAuthError(
		domainerror.ErrCodeInvalidCredentials,
		"invalid email or password",
		domainerror.ErrInvalidCredentials,
	)
}
