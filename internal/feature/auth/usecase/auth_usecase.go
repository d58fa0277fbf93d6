// Package usecase implements the business logic for the auth feature.
package usecase

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"social_backend/internal/feature/auth/domain"
	"social_backend/internal/feature/auth/domain/entity"
)

// UserRepository abstracts the persistence layer for user entities.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type UserRepository interface {
	// Create persists a new user. It returns domain.ErrUserAlreadyExists
	// when the email or username is already taken.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail retrieves the user with the given email address.
	// It returns domain.ErrUserNotFound when no such user exists.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByEmailOrUsername retrieves the first user matching either the
	// email or the username (case-sensitive equality). It returns
	// domain.ErrUserNotFound when neither matches.
	FindByEmailOrUsername(ctx context.Context, email, username string) (*entity.User, error)
}

// JWTGenerator defines the interface for JWT token generation.
type JWTGenerator interface {
	// GenerateToken creates a signed JWT token whose subject is the user id.
	GenerateToken(userID string) (string, error)
}

// AuthView is the response projection of an authenticated user: the
// identity fields plus a freshly issued access token.
type AuthView struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	Username    string `json:"username"`
	AccessToken string `json:"accessToken"`
}

// RegisterDetails carries the fields required to register a new user.
type RegisterDetails struct {
	Email    string
	Username string
	Password string
}

// dummyHash is a valid bcrypt hash compared against when the email is
// unknown, so Login always performs one bcrypt comparison regardless of
// whether the user exists (timing attack mitigation).
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// authUsecase implements the authentication business logic.
type authUsecase struct {
	users        UserRepository
	jwtGenerator JWTGenerator
}

// NewAuthUsecase creates a new authUsecase instance.
func NewAuthUsecase(users UserRepository, jwtGenerator JWTGenerator) *authUsecase {
	return &authUsecase{
		users:        users,
		jwtGenerator: jwtGenerator,
	}
}

// Register creates a new user with a bcrypt-hashed password and returns
// the identity fields plus a signed access token. It returns
// domain.ErrUserAlreadyExists when the email or username is taken.
func (u *authUsecase) Register(ctx context.Context, details RegisterDetails) (AuthView, error) {
	_, err := u.users.FindByEmailOrUsername(ctx, details.Email, details.Username)
	if err == nil {
		return AuthView{}, domain.ErrUserAlreadyExists
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return AuthView{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(details.Password), bcrypt.DefaultCost)
	if err != nil {
		return AuthView{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{
		Email:    details.Email,
		Username: details.Username,
		Password: string(hashed),
	}
	if err := u.users.Create(ctx, user); err != nil {
		return AuthView{}, err
	}

	return u.mapUserToView(user)
}

// Login authenticates the user and returns the identity fields plus a
// fresh access token. An unknown email and a wrong password both return
// domain.ErrInvalidCredentials so the caller cannot tell which check
// failed. A bcrypt comparison runs in both cases.
func (u *authUsecase) Login(ctx context.Context, email, password string) (AuthView, error) {
	user, err := u.users.FindByEmail(ctx, email)

	passwordHash := dummyHash
	if err == nil {
		passwordHash = user.Password
	}

	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))

	if err != nil || compareErr != nil {
		return AuthView{}, domain.ErrInvalidCredentials
	}

	return u.mapUserToView(user)
}

// mapUserToView issues a token for the user and builds the auth response.
func (u *authUsecase) mapUserToView(user *entity.User) (AuthView, error) {
	token, err := u.jwtGenerator.GenerateToken(user.ID)
	if err != nil {
		return AuthView{}, fmt.Errorf("failed to generate token: %w", err)
	}
	return AuthView{
		ID:          user.ID,
		Email:       user.Email,
		Username:    user.Username,
		AccessToken: token,
	}, nil
}
