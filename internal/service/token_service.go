package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dtroode/myflix-server/internal/logger"
	"github.com/dtroode/myflix-server/internal/model"
)

const bearerScheme = "Bearer"

// TokenService issues access tokens and resolves presented tokens back to
// live identities. It composes the TokenManager and UserStore.
type TokenService struct {
	manager   model.TokenManager
	userStore model.UserStore
	logger    *logger.Logger
}

func NewTokenService(manager model.TokenManager, userStore model.UserStore, logger *logger.Logger) *TokenService {
	return &TokenService{manager: manager, userStore: userStore, logger: logger}
}

// Issue signs a token whose subject is the user's username.
func (s *TokenService) Issue(user model.User) (string, error) {
	if user.Username == "" {
		return "", errors.New("cannot issue token without username")
	}

	token, err := s.manager.GenerateAccessToken(user.Username)
	if err != nil {
		return "", fmt.Errorf("issue access: %w", err)
	}

	return token, nil
}

// Validate checks the token and resolves its subject. A subject that no
// longer exists is reported as model.ErrInvalidToken.
func (s *TokenService) Validate(ctx context.Context, token string) (model.User, error) {
	subject, err := s.manager.ParseAccessToken(token)
	if err != nil {
		return model.User{}, err
	}

	user, err := s.userStore.GetByUsername(ctx, subject)
	if errors.Is(err, model.ErrNotFound) {
		s.logger.Info("Token service: token subject no longer exists",
			"username", subject)
		return model.User{}, fmt.Errorf("%w: unknown subject", model.ErrInvalidToken)
	}
	if err != nil {
		s.logger.Error("Token service: failed to resolve token subject",
			"username", subject,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to get user by username: %w", err)
	}

	return user.WithoutPassword(), nil
}

// Authenticate extracts a bearer token from a raw Authorization header value
// and validates it.
func (s *TokenService) Authenticate(ctx context.Context, header string) (model.User, error) {
	header = strings.TrimSpace(header)
	if header == "" {
		return model.User{}, model.ErrMissingToken
	}

	scheme, token, ok := strings.Cut(header, " ")
	token = strings.TrimSpace(token)
	if !ok || !strings.EqualFold(scheme, bearerScheme) || token == "" {
		return model.User{}, fmt.Errorf("%w: malformed authorization header", model.ErrInvalidToken)
	}

	return s.Validate(ctx, token)
}
