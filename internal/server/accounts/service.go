// Package accounts contains server-side business logic for user accounts:
// registration, credential login, and bearer-token authentication.
package accounts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	"wallmagic/internal/common"
	"wallmagic/internal/logging"
	"wallmagic/internal/server/auth"
	"wallmagic/internal/server/config"
	"wallmagic/internal/server/models"
	"wallmagic/internal/server/repositories/repomanager"
)

// Validation bounds for registration input, counted in runes.
const (
	usernameMinLen = 3
	usernameMaxLen = 100
	passwordMinLen = 6
	passwordMaxLen = 100
	fullNameMaxLen = 255
)

// Token is the bearer credential issued after registration and login.
// ExpiresIn is the token lifetime in seconds.
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// AuthResult is the payload returned by Register and Login.
type AuthResult struct {
	Message string          `json:"message"`
	User    models.UserView `json:"user"`
	Token   Token           `json:"token"`
}

// RegisterParams carries the inputs of Register. FullName may be nil.
type RegisterParams struct {
	Email    string
	Username string
	Password string
	FullName *string
}

// Service provides account-related operations:
// - Register: validate input and create accounts
// - Login: verify credentials and mint tokens
// - Authenticate: resolve a bearer token back into an account
type Service struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	hasher      *auth.PasswordHasher
	issuer      *auth.TokenIssuer
	logger      logging.Logger
	now         func() time.Time
	dummyHash   string
}

// NewService constructs a Service using repositories and server config.
func NewService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config, logger logging.Logger) (*Service, error) {
	hasher := auth.NewPasswordHasher(cfg.HashCost)

	issuer, err := auth.NewTokenIssuer(cfg.SecretKey, cfg.Algorithm, cfg.AccessTokenValidityDuration)
	if err != nil {
		return nil, err
	}

	// Burned on login for unknown emails, keeping both failure paths at one
	// bcrypt comparison each.
	dummyHash, err := hasher.Hash("wallmagic-dummy-password")
	if err != nil {
		return nil, err
	}

	return &Service{
		db:          db,
		repomanager: m,
		hasher:      hasher,
		issuer:      issuer,
		logger:      logger.With("module", "accounts"),
		now:         time.Now,
		dummyHash:   dummyHash,
	}, nil
}

// Register validates the input, creates the account and returns an AuthResult
// with a fresh bearer token. Duplicate email and username checks run before
// the insert; a race lost at the insert surfaces the same sentinels.
func (s *Service) Register(ctx context.Context, params RegisterParams) (*AuthResult, error) {
	email := NormalizeEmail(params.Email)
	if err := validateRegistration(email, params.Username, params.Password, params.FullName); err != nil {
		return nil, err
	}

	repo := s.repomanager.Users(s.db)

	if _, err := repo.FindByEmail(ctx, email); err == nil {
		return nil, common.ErrEmailTaken
	} else if !errors.Is(err, common.ErrorNotFound) {
		return nil, fmt.Errorf("%w: %v", common.ErrorStoreUnavailable, err)
	}

	if _, err := repo.FindByUsername(ctx, params.Username); err == nil {
		return nil, common.ErrUsernameTaken
	} else if !errors.Is(err, common.ErrorNotFound) {
		return nil, fmt.Errorf("%w: %v", common.ErrorStoreUnavailable, err)
	}

	hash, err := s.hasher.Hash(params.Password)
	if err != nil {
		return nil, common.ErrorInternal
	}

	now := s.now().UTC()
	user := &models.User{
		Email:        email,
		Username:     params.Username,
		PasswordHash: hash,
		FullName:     params.FullName,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrEmailTaken) || errors.Is(err, common.ErrUsernameTaken) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", common.ErrorStoreUnavailable, err)
	}

	s.logger.Info(ctx, "user registered", "user_id", created.ID, "username", created.Username)

	return s.authResult("registered", created)
}

// Login verifies the credentials for the given email and, on success, returns
// an AuthResult with a fresh bearer token. An unknown email and a wrong
// password both return common.ErrorInvalidCredentials, and the unknown-email
// path still performs one bcrypt comparison.
func (s *Service) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.FindByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			_, _ = s.hasher.Verify(password, s.dummyHash)
			return nil, common.ErrorInvalidCredentials
		}
		return nil, fmt.Errorf("%w: %v", common.ErrorStoreUnavailable, err)
	}

	ok, err := s.hasher.Verify(password, user.PasswordHash)
	if err != nil {
		s.logger.Error(ctx, "stored password hash is unreadable", "user_id", user.ID, "error", err.Error())
		return nil, common.ErrorInternal
	}
	if !ok {
		return nil, common.ErrorInvalidCredentials
	}

	return s.authResult("login ok", user)
}

// Authenticate resolves a bearer token into the account it was issued for.
// Token failures surface the token sentinels unchanged; a valid token whose
// subject no longer exists yields common.ErrorInvalidCredentials.
func (s *Service) Authenticate(ctx context.Context, tokenString string) (*models.User, error) {
	claims, err := s.issuer.Verify(tokenString)
	if err != nil {
		return nil, err
	}

	repo := s.repomanager.Users(s.db)
	user, err := repo.FindByEmail(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorInvalidCredentials
		}
		return nil, fmt.Errorf("%w: %v", common.ErrorStoreUnavailable, err)
	}

	return user, nil
}

// --- helpers below ---

// NormalizeEmail lowercases the address and trims surrounding whitespace.
// Lookups and uniqueness operate on the normalized form only.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *Service) authResult(message string, user *models.User) (*AuthResult, error) {
	access, expiresIn, err := s.issuer.Issue(user.Email, user.ID)
	if err != nil {
		return nil, common.ErrorInternal
	}
	return &AuthResult{
		Message: message,
		User:    user.View(),
		Token: Token{
			AccessToken: access,
			TokenType:   "bearer",
			ExpiresIn:   expiresIn,
		},
	}, nil
}

func validateRegistration(email, username, password string, fullName *string) error {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return fmt.Errorf("%w: invalid email address", common.ErrValidation)
	}
	if n := utf8.RuneCountInString(username); n < usernameMinLen || n > usernameMaxLen {
		return fmt.Errorf("%w: username must be between %d and %d characters", common.ErrValidation, usernameMinLen, usernameMaxLen)
	}
	if n := utf8.RuneCountInString(password); n < passwordMinLen || n > passwordMaxLen {
		return fmt.Errorf("%w: password must be between %d and %d characters", common.ErrValidation, passwordMinLen, passwordMaxLen)
	}
	if fullName != nil && utf8.RuneCountInString(*fullName) > fullNameMaxLen {
		return fmt.Errorf("%w: full name must be at most %d characters", common.ErrValidation, fullNameMaxLen)
	}
	return nil
}
