package usecase

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"skill-trade/internal/domain/user"
	"skill-trade/internal/pkg/jwt"
)

// Identity is what a successful signup or login hands back: the {id, username}
// pair plus server-issued session tokens.
type Identity struct {
	ID           int64
	Username     string
	AccessToken  string
	RefreshToken string
}

type AuthUsecase interface {
	Signup(ctx context.Context, username, password string) (Identity, error)
	Login(ctx context.Context, username, password string) (Identity, error)
}

type Auth struct {
	users  user.Repository
	tokens jwt.Service
}

func NewAuthUsecase(users user.Repository, tokens jwt.Service) *Auth {
	return &Auth{users: users, tokens: tokens}
}

func (u *Auth) Signup(ctx context.Context, username, password string) (Identity, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return Identity{}, ErrInvalidInput
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return Identity{}, ErrInternal
	}

	created, err := u.users.Create(ctx, username, string(hash))
	if err != nil {
		if errors.Is(err, user.ErrUsernameTaken) {
			return Identity{}, ErrUsernameTaken
		}
		return Identity{}, ErrInternal
	}

	return u.issueTokens(created)
}

// Login reports the same error for an unknown username and a wrong password.
func (u *Auth) Login(ctx context.Context, username, password string) (Identity, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return Identity{}, ErrInvalidInput
	}

	found, err := u.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return Identity{}, ErrInvalidCredentials
		}
		return Identity{}, ErrInternal
	}

	if err := bcrypt.CompareHashAndPassword([]byte(found.PasswordHash), []byte(password)); err != nil {
		return Identity{}, ErrInvalidCredentials
	}

	return u.issueTokens(found)
}

func (u *Auth) issueTokens(usr user.User) (Identity, error) {
	access, err := u.tokens.GenerateAccessToken(usr.ID, usr.Username)
	if err != nil {
		return Identity{}, ErrInternal
	}
	refresh, err := u.tokens.GenerateRefreshToken(usr.ID)
	if err != nil {
		return Identity{}, ErrInternal
	}

	return Identity{
		ID:           usr.ID,
		Username:     usr.Username,
		AccessToken:  access,
		RefreshToken: refresh,
	}, nil
}
