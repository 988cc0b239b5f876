package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/myflix-server/internal/logger"
	"github.com/dtroode/myflix-server/internal/model"
)

// Auth registers users and verifies their credentials.
type Auth struct {
	userStore    model.UserStore
	hasher       model.PasswordHasher
	tokenService *TokenService
	logger       *logger.Logger
	now          func() time.Time

	// dummyDigest is verified against when the user does not exist so that
	// both failure branches perform a key derivation.
	dummyMu     sync.Mutex
	dummyDigest string
}

func NewAuth(
	userStore model.UserStore,
	hasher model.PasswordHasher,
	tokenService *TokenService,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		userStore:    userStore,
		hasher:       hasher,
		tokenService: tokenService,
		logger:       logger,
		now:          time.Now,
	}
}

// Register creates a new identity. Uniqueness is checked first for a friendly
// error; the store's unique constraints remain the source of truth.
func (a *Auth) Register(ctx context.Context, params model.RegisterParams) (model.User, error) {
	a.logger.Debug("Auth service: starting user registration",
		"username", params.Username)

	if err := a.ensureAvailable(ctx, params.Username, params.Email); err != nil {
		return model.User{}, err
	}

	hash, err := a.hasher.Hash(params.Password)
	if err != nil {
		a.logger.Error("Auth service: failed to hash password",
			"username", params.Username,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	now := a.now().UTC()
	user := model.User{
		ID:           uuid.New(),
		Username:     params.Username,
		PasswordHash: hash,
		Email:        params.Email,
		Birthday:     params.Birthday,
		City:         params.City,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	saved, err := a.userStore.Create(ctx, user)
	if err != nil {
		var dupErr *model.DuplicateIdentityError
		if errors.As(err, &dupErr) {
			a.logger.Info("Auth service: identity taken at insert",
				"username", params.Username,
				"field", string(dupErr.Field))
			return model.User{}, dupErr
		}
		a.logger.Error("Auth service: failed to create user",
			"username", params.Username,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	a.logger.Info("Auth service: user registration completed successfully",
		"username", saved.Username,
		"user_id", saved.ID)

	return saved.WithoutPassword(), nil
}

func (a *Auth) ensureAvailable(ctx context.Context, username, email string) error {
	_, err := a.userStore.GetByUsername(ctx, username)
	switch {
	case err == nil:
		a.logger.Info("Auth service: username already exists",
			"username", username)
		return model.NewDuplicateIdentityError(model.FieldUsername)
	case !errors.Is(err, model.ErrNotFound):
		a.logger.Error("Auth service: failed to get user by username",
			"username", username,
			"error", err.Error())
		return fmt.Errorf("failed to get user by username: %w", err)
	}

	_, err = a.userStore.GetByEmail(ctx, email)
	switch {
	case err == nil:
		a.logger.Info("Auth service: email already exists",
			"username", username)
		return model.NewDuplicateIdentityError(model.FieldEmail)
	case !errors.Is(err, model.ErrNotFound):
		a.logger.Error("Auth service: failed to get user by email",
			"username", username,
			"error", err.Error())
		return fmt.Errorf("failed to get user by email: %w", err)
	}

	return nil
}

// VerifyCredentials returns the identity for a matching username and password.
// Unknown usernames and wrong passwords both yield model.ErrInvalidCredentials.
func (a *Auth) VerifyCredentials(ctx context.Context, username, password string) (model.User, error) {
	user, err := a.userStore.GetByUsername(ctx, username)
	if errors.Is(err, model.ErrNotFound) {
		a.hasher.Verify(password, a.placeholderDigest())
		a.logger.Info("Auth service: login rejected",
			"username", username)
		return model.User{}, model.ErrInvalidCredentials
	}
	if err != nil {
		a.logger.Error("Auth service: failed to get user by username",
			"username", username,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to get user by username: %w", err)
	}

	if !a.hasher.Verify(password, user.PasswordHash) {
		a.logger.Info("Auth service: login rejected",
			"username", username)
		return model.User{}, model.ErrInvalidCredentials
	}

	return user.WithoutPassword(), nil
}

// Login verifies credentials and issues an access token for the identity.
func (a *Auth) Login(ctx context.Context, username, password string) (model.LoginResult, error) {
	a.logger.Debug("Auth service: starting user login",
		"username", username)

	user, err := a.VerifyCredentials(ctx, username, password)
	if err != nil {
		return model.LoginResult{}, err
	}

	token, err := a.tokenService.Issue(user)
	if err != nil {
		a.logger.Error("Auth service: failed to issue token",
			"username", user.Username,
			"error", err.Error())
		return model.LoginResult{}, fmt.Errorf("failed to issue token: %w", err)
	}

	a.logger.Info("Auth service: user logged in successfully",
		"username", user.Username)

	return model.LoginResult{User: user, Token: token}, nil
}

// placeholderDigest is created on first use and retried until hashing succeeds.
func (a *Auth) placeholderDigest() string {
	a.dummyMu.Lock()
	defer a.dummyMu.Unlock()

	if a.dummyDigest != "" {
		return a.dummyDigest
	}

	digest, err := a.hasher.Hash(uuid.NewString())
	if err != nil {
		a.logger.Warn("Auth service: failed to prepare placeholder digest",
			"error", err.Error())
		return ""
	}
	a.dummyDigest = digest
	return digest
}
