package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"volunteerhub-backend/internal/domain"
	"volunteerhub-backend/internal/repository"
	"volunteerhub-backend/internal/security"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

type authService struct {
	accountRepo repository.AccountRepository
	tokens      security.TokenManager
}

func NewAuthService(accountRepo repository.AccountRepository, tokens security.TokenManager) AuthService {
	return &authService{
		accountRepo: accountRepo,
		tokens:      tokens,
	}
}

func (s *authService) Signup(ctx context.Context, name, email, password string, role domain.AccountRole) (*domain.Account, string, string, error) {
	if name == "" || email == "" {
		return nil, "", "", domain.InvalidArgumentError("name and email are required")
	}
	if len(password) < 8 {
		return nil, "", "", domain.InvalidArgumentError("password must be at least 8 characters")
	}
	if !domain.ValidAccountRole(role) {
		return nil, "", "", domain.InvalidArgumentError(fmt.Sprintf("invalid account role %q", role))
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", "", fmt.Errorf("failed to hash password: %w", err)
	}

	account := &domain.Account{
		Email:        email,
		PasswordHash: string(hash),
		Name:         name,
		Role:         role,
	}
	if err := s.accountRepo.Create(ctx, account); err != nil {
		return nil, "", "", err
	}

	access, refresh, err := s.issueTokens(account)
	if err != nil {
		return nil, "", "", err
	}
	return account, access, refresh, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*domain.Account, string, string, error) {
	account, err := s.accountRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, "", "", ErrInvalidCredentials
		}
		return nil, "", "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return nil, "", "", ErrInvalidCredentials
	}

	access, refresh, err := s.issueTokens(account)
	if err != nil {
		return nil, "", "", err
	}
	return account, access, refresh, nil
}

func (s *authService) RegisterPushToken(ctx context.Context, accountID int32, token string) error {
	if token == "" {
		return domain.InvalidArgumentError("push token is required")
	}
	return s.accountRepo.UpdatePushToken(ctx, accountID, token)
}

func (s *authService) issueTokens(account *domain.Account) (string, string, error) {
	access, err := s.tokens.GenerateAccessToken(account.ID, account.Email, account.Role)
	if err != nil {
		return "", "", fmt.Errorf("failed to generate access token: %w", err)
	}
	refresh, err := s.tokens.GenerateRefreshToken(account.ID, account.Email)
	if err != nil {
		return "", "", fmt.Errorf("failed to generate refresh token: %w", err)
	}
	return access, refresh, nil
}
