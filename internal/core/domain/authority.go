package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/gagliardetto/solana-go"
)

// LedgerAuthority is the platform signing identity that co-signs every
// ledger transaction. It is built once at startup and handed to whoever
// needs to sign; nothing reads the key from ambient state.
type LedgerAuthority struct {
	key solana.PrivateKey
}

// NewLedgerAuthority wraps an ed25519 private key.
func NewLedgerAuthority(key solana.PrivateKey) (LedgerAuthority, error) {
	if len(key) != 64 {
		return LedgerAuthority{}, errors.New("ledger authority key must be 64 bytes")
	}
	return LedgerAuthority{key: key}, nil
}

// ParseLedgerAuthority accepts either a base58 secret key or the JSON byte
// array written by solana-keygen.
func ParseLedgerAuthority(raw string) (LedgerAuthority, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return LedgerAuthority{}, errors.New("ledger authority key is empty")
	}

	if strings.HasPrefix(raw, "[") {
		var ints []int
		if err := json.Unmarshal([]byte(raw), &ints); err != nil {
			return LedgerAuthority{}, fmt.Errorf("parse authority key array: %w", err)
		}
		key := make(solana.PrivateKey, len(ints))
		for i, v := range ints {
			if v < 0 || v > 255 {
				return LedgerAuthority{}, fmt.Errorf("authority key byte %d out of range", i)
			}
			key[i] = byte(v)
		}
		return NewLedgerAuthority(key)
	}

	key, err := solana.PrivateKeyFromBase58(raw)
	if err != nil {
		return LedgerAuthority{}, fmt.Errorf("parse authority key: %w", err)
	}
	return NewLedgerAuthority(key)
}

// PublicKey is the authority's address.
func (a LedgerAuthority) PublicKey() solana.PublicKey {
	return a.key.PublicKey()
}

// PrivateKey returns the signing key. Callers use it only to sign.
func (a LedgerAuthority) PrivateKey() solana.PrivateKey {
	return a.key
}

// IsZero reports whether the authority was never initialised.
func (a LedgerAuthority) IsZero() bool {
	return len(a.key) == 0
}
