package auth

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/milavault/milavault/internal/common"
	"golang.org/x/crypto/bcrypt"
)

// A login-link token travels as "<id>.<secret>". The id keys the stored
// row; only a bcrypt hash of the secret is persisted, so a leaked tokens
// table cannot be replayed.

// NewLinkToken returns the wire form of a fresh token together with its
// id and the hash to store.
func NewLinkToken() (token, id string, secretHash []byte, err error) {
	id = uuid.NewString()

	secret, err := common.MakeRandHexString(24)
	if err != nil {
		return "", "", nil, fmt.Errorf("failed to generate login token: %w", err)
	}

	secretHash, err = bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return "", "", nil, fmt.Errorf("failed to hash login token: %w", err)
	}

	return id + "." + secret, id, secretHash, nil
}

// SplitLinkToken separates a wire token into its id and secret halves.
func SplitLinkToken(token string) (id, secret string, err error) {
	id, secret, ok := strings.Cut(token, ".")
	if !ok || id == "" || secret == "" {
		return "", "", common.ErrInvalidToken
	}
	return id, secret, nil
}

// VerifyLinkSecret compares a presented secret against the stored hash.
func VerifyLinkSecret(secretHash []byte, secret string) error {
	if err := bcrypt.CompareHashAndPassword(secretHash, []byte(secret)); err != nil {
		return common.ErrInvalidToken
	}
	return nil
}
