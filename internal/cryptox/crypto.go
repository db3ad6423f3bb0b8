// Package cryptox holds the client's small crypto toolbox: argon2id password
// verifiers for the local account directory and AES-GCM sealing for blobs
// kept at rest (ID photo attachments).
package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"errors"

	"golang.org/x/crypto/argon2"
)

// SaltSize is the length of the per-account salt in bytes.
const SaltSize = 32

var ErrInvalidKey = errors.New("key must be 16, 24 or 32 bytes")

// DeriveKey stretches password with salt using argon2id.
func DeriveKey(password []byte, salt []byte) []byte {
	return argon2.IDKey(password, salt, 1, 64*1024, 4, 32)
}

// MakeVerifier hashes a derived key so the key itself never hits the disk.
func MakeVerifier(key []byte) []byte {
	hash := sha256.Sum256(key)
	return hash[:]
}

// CheckPassword derives the verifier for password and compares it with
// stored in constant time.
func CheckPassword(password, salt, stored []byte) bool {
	candidate := MakeVerifier(DeriveKey(password, salt))
	return subtle.ConstantTimeCompare(candidate, stored) == 1
}

func newGCM(key []byte) (cipher.AEAD, error) {
	switch len(key) {
	case 16, 24, 32:
	default:
		return nil, ErrInvalidKey
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}

// Seal encrypts plaintext with AES-GCM under key. A fresh random nonce is
// generated per call and returned next to the ciphertext.
func Seal(plaintext, key []byte) (ciphertext, nonce []byte, err error) {
	aesgcm, err := newGCM(key)
	if err != nil {
		return nil, nil, err
	}

	nonce = make([]byte, aesgcm.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, nil, err
	}

	return aesgcm.Seal(nil, nonce, plaintext, nil), nonce, nil
}

// Open reverses Seal. It fails if key, nonce or ciphertext were altered.
func Open(ciphertext, nonce, key []byte) ([]byte, error) {
	aesgcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}
	return aesgcm.Open(nil, nonce, ciphertext, nil)
}
