// Package services holds the server's business logic between the gRPC
// surface and the repositories.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/milavault/milavault/internal/common"
	"github.com/milavault/milavault/internal/dbx"
	"github.com/milavault/milavault/internal/server/auth"
	"github.com/milavault/milavault/internal/server/config"
	"github.com/milavault/milavault/internal/server/db"
	"github.com/milavault/milavault/internal/server/models"
)

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// UserService implements the email-link authentication flow: request a
// link, exchange it once for a token pair, rotate the refresh token.
type UserService struct {
	manager                      db.RepositoryManager
	jwtSecret                    []byte
	loginTokenValidityDuration   time.Duration
	accessTokenValidityDuration  time.Duration
	refreshTokenValidityDuration time.Duration
}

func NewUserService(m db.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		manager:                      m,
		jwtSecret:                    []byte(cfg.SecretKey),
		loginTokenValidityDuration:   cfg.LoginTokenValidityDuration,
		accessTokenValidityDuration:  cfg.AccessTokenValidityDuration,
		refreshTokenValidityDuration: cfg.RefreshTokenValidityDuration,
	}
}

// RequestLoginLink creates the account on first sight of an address and
// issues a single-use login token. The caller decides how the token
// reaches the user (email in production, RPC response in dev mode).
func (s *UserService) RequestLoginLink(ctx context.Context, email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return "", common.ErrValidation
	}

	user, err := s.manager.Users().GetByEmail(ctx, email)
	if errors.Is(err, common.ErrNotFound) {
		user = &models.User{ID: uuid.NewString(), Email: email}
		if err := s.manager.Users().Create(ctx, user); err != nil {
			return "", fmt.Errorf("error creating user: %w", err)
		}
	} else if err != nil {
		return "", fmt.Errorf("error looking up user: %w", err)
	}

	token, id, secretHash, err := auth.NewLinkToken()
	if err != nil {
		return "", err
	}

	err = s.manager.LoginTokens().Create(ctx, &models.LoginToken{
		ID:         id,
		UserID:     user.ID,
		SecretHash: secretHash,
		ExpiresAt:  time.Now().Add(s.loginTokenValidityDuration),
	})
	if err != nil {
		return "", fmt.Errorf("error storing login token: %w", err)
	}

	return token, nil
}

// Login exchanges a valid, unconsumed, unexpired link token for a token
// pair. The link token is consumed even if the caller never uses the pair.
func (s *UserService) Login(ctx context.Context, linkToken string) (*TokenPair, *models.User, error) {
	id, secret, err := auth.SplitLinkToken(linkToken)
	if err != nil {
		return nil, nil, err
	}

	stored, err := s.manager.LoginTokens().GetByID(ctx, id)
	if errors.Is(err, common.ErrNotFound) {
		return nil, nil, common.ErrInvalidToken
	}
	if err != nil {
		return nil, nil, fmt.Errorf("error loading login token: %w", err)
	}

	if stored.ConsumedAt != nil {
		return nil, nil, common.ErrLoginTokenConsumed
	}
	if stored.ExpiresAt.Before(time.Now()) {
		return nil, nil, common.ErrLoginTokenExpired
	}
	if err := auth.VerifyLinkSecret(stored.SecretHash, secret); err != nil {
		return nil, nil, err
	}

	user, err := s.manager.Users().GetByID(ctx, stored.UserID)
	if err != nil {
		return nil, nil, fmt.Errorf("error loading user: %w", err)
	}

	var pair *TokenPair
	err = dbx.WithTx(ctx, s.manager.Conn(), nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.manager.LoginTokens().Consume(ctx, id); err != nil {
			return fmt.Errorf("error consuming login token: %w", err)
		}
		pair, err = s.generateTokenPair(ctx, user.ID)
		return err
	})
	if err != nil {
		return nil, nil, err
	}

	return pair, user, nil
}

// Refresh rotates a refresh token: the presented token is deleted and a
// new pair is minted in the same transaction.
func (s *UserService) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	token, err := s.manager.RefreshTokens().Find(ctx, refreshToken)
	if errors.Is(err, common.ErrNotFound) {
		return nil, common.ErrInvalidToken
	}
	if err != nil {
		return nil, fmt.Errorf("error searching refresh token: %w", err)
	}

	if token.ExpiresAt.Before(time.Now()) {
		return nil, common.ErrRefreshTokenExpired
	}

	var pair *TokenPair
	err = dbx.WithTx(ctx, s.manager.Conn(), nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.manager.RefreshTokens().Delete(ctx, refreshToken); err != nil {
			return fmt.Errorf("error deleting refresh token: %w", err)
		}
		pair, err = s.generateTokenPair(ctx, token.UserID)
		return err
	})
	if err != nil {
		return nil, err
	}

	return pair, nil
}

func (s *UserService) generateTokenPair(ctx context.Context, userID string) (*TokenPair, error) {
	accessToken, err := auth.GenerateToken(userID, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return nil, fmt.Errorf("error generating access token: %w", err)
	}

	refreshToken, err := common.MakeRandHexString(32)
	if err != nil {
		return nil, fmt.Errorf("error generating refresh token: %w", err)
	}

	err = s.manager.RefreshTokens().Add(ctx, &models.RefreshToken{
		Token:     refreshToken,
		UserID:    userID,
		ExpiresAt: time.Now().Add(s.refreshTokenValidityDuration),
	})
	if err != nil {
		return nil, fmt.Errorf("error storing refresh token: %w", err)
	}

	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}
