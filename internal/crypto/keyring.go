// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/sha256"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
)

// Domain-separation labels for the two derived key purposes. Changing
// either label invalidates every cookie issued with the old material.
const (
	hashKeyInfo  = "epic-notes cookie hash key"
	blockKeyInfo = "epic-notes cookie block key"
)

// keyRing is the private implementation of [KeyRing].
type keyRing struct {
	// keyLen is the length in bytes of each derived key. 32 bytes selects
	// HMAC-SHA256 and AES-256 in gorilla/securecookie.
	keyLen int
}

// NewKeyRing constructs a [KeyRing] producing 256-bit keys.
func NewKeyRing() KeyRing {
	return &keyRing{keyLen: 32}
}

// DeriveKeys implements [KeyRing]. It runs HKDF-SHA256 over the secret
// twice, once per purpose label, and returns the two derived keys.
func (k *keyRing) DeriveKeys(secret string) ([]byte, []byte, error) {
	hashKey, err := k.expand(secret, hashKeyInfo)
	if err != nil {
		return nil, nil, fmt.Errorf("deriving cookie hash key: %w", err)
	}

	blockKey, err := k.expand(secret, blockKeyInfo)
	if err != nil {
		return nil, nil, fmt.Errorf("deriving cookie block key: %w", err)
	}

	return hashKey, blockKey, nil
}

func (k *keyRing) expand(secret, info string) ([]byte, error) {
	reader := hkdf.New(sha256.New, []byte(secret), nil, []byte(info))

	key := make([]byte, k.keyLen)
	if _, err := io.ReadFull(reader, key); err != nil {
		return nil, err
	}

	return key, nil
}
