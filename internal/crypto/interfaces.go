package crypto

// KeyRing derives the per-secret key material used by the cookie codecs.
//
// Each configured session secret yields one (hash key, block key) pair:
// the hash key authenticates cookie values with HMAC-SHA256 and the block
// key encrypts them with AES-256. Deriving both from one secret keeps the
// operator-facing configuration to a single comma-separated secret list
// while still giving each purpose independent key material.
type KeyRing interface {
	// DeriveKeys expands secret into a 32-byte hash key and a 32-byte
	// block key. The derivation is deterministic: the same secret always
	// produces the same pair, so previously issued cookies stay
	// verifiable across restarts.
	DeriveKeys(secret string) (hashKey, blockKey []byte, err error)
}
