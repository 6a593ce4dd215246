// Package auth contains registration, login, and token refresh use cases.
package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/pocketvision/ledger/internal/application/adapter"
	domainerror "github.com/pocketvision/ledger/internal/domain/error"
)

// RefreshInput represents the input for token refresh.
type RefreshInput struct {
	RefreshToken string
}

// RefreshOutput represents the output of token refresh.
type RefreshOutput struct {
	Tokens *adapter.TokenPair
}

// RefreshUseCase exchanges a valid refresh token for a new token pair. The
// user row is re-read so a deleted account cannot keep refreshing.
type RefreshUseCase struct {
	userRepo     adapter.UserRepository
	tokenService adapter.TokenService
}

// NewRefreshUseCase creates a new RefreshUseCase instance.
func NewRefreshUseCase(userRepo adapter.UserRepository, tokenService adapter.TokenService) *RefreshUseCase {
	return &RefreshUseCase{
		userRepo:     userRepo,
		tokenService: tokenService,
	}
}

// Execute performs the token refresh.
func (uc *RefreshUseCase) Execute(ctx context.Context, input RefreshInput) (*RefreshOutput, error) {
	if input.RefreshToken == "" {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeMissingToken,
			"refresh token is required",
			domainerror.ErrInvalidToken,
		)
	}

	claims, err := uc.tokenService.ValidateRefreshToken(ctx, input.RefreshToken)
	if err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidToken,
			"refresh token is invalid or expired",
			fmt.Errorf("%w: %w", domainerror.ErrInvalidToken, err),
		)
	}

	user, err := uc.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, domainerror.ErrUserNotFound) {
			return nil, domainerror.NewAuthError(
				domainerror.ErrCodeInvalidToken,
				"refresh token does not match an active account",
				domainerror.ErrInvalidToken,
			)
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	tokens, err := uc.tokenService.GenerateTokenPair(ctx, user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	return &RefreshOutput{Tokens: tokens}, nil
}
