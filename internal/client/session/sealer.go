package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/biteshare/internal/client/models"
	"github.com/dmitrijs2005/biteshare/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/biteshare/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// RecordVersion is the schema version written into every sealed record.
const RecordVersion = 1

var (
	ErrBadRecord = errors.New("session record is corrupt")
	ErrShortKey  = errors.New("device key too short")
)

type recordClaims struct {
	Version int          `json:"v"`
	User    *models.User `json:"user"`
	jwt.RegisteredClaims
}

// Sealer turns a user into a tamper-evident session record and back.
type Sealer struct {
	key []byte
	now func() time.Time
}

func NewSealer(key []byte) (*Sealer, error) {
	if len(key) < common.DeviceKeySize {
		return nil, ErrShortKey
	}
	return &Sealer{key: key, now: time.Now}, nil
}

// LoadDeviceKey returns the installation secret, creating it on first use.
func LoadDeviceKey(ctx context.Context, repo metadata.Repository) ([]byte, error) {
	return repo.GetOrCreate(ctx, common.DeviceKeyName, func() ([]byte, error) {
		return common.GenerateRandByteArray(common.DeviceKeySize), nil
	})
}

func (s *Sealer) Seal(u *models.User) ([]byte, error) {
	claims := recordClaims{
		Version: RecordVersion,
		User:    u,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  u.ID,
			IssuedAt: jwt.NewNumericDate(s.now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.key)
	if err != nil {
		return nil, fmt.Errorf("failed to sign session record: %w", err)
	}
	return []byte(signed), nil
}

// Open verifies and decodes a record. Any failure wraps ErrBadRecord.
func (s *Sealer) Open(record []byte) (*models.User, error) {
	claims := &recordClaims{}
	_, err := jwt.ParseWithClaims(string(record), claims, func(t *jwt.Token) (any, error) {
		return s.key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadRecord, err)
	}

	if claims.Version != RecordVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrBadRecord, claims.Version)
	}
	if claims.User == nil || claims.User.ID != claims.Subject {
		return nil, fmt.Errorf("%w: subject mismatch", ErrBadRecord)
	}
	return claims.User, nil
}
