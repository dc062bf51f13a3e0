// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package hasher turns trimmed dataset rows into canonical keys.
//
// A canonical key is either the row text itself ([Identity]) or a fixed-size
// digest of it. The hasher identifier travels with every persisted delta
// structure, so a structure built with one hasher can never be checked with
// another.
package hasher

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/sha512"
	"errors"
	"fmt"
	"hash"
	"sort"
	"sync"

	"github.com/zeebo/blake3"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

// Supported hasher identifiers.
const (
	SHA512     = "sha512_str"
	SHA256     = "sha256_str"
	SHA3512    = "sha3_512"
	BLAKE2b512 = "blake2b_512"
	BLAKE3256  = "blake3_256"
	HMACSHA256 = "hmac_sha256"
	Identity   = "identity"

	// Default is used by the build phase when no hasher is configured.
	Default = SHA512
)

var (
	// ErrUnknownHash is returned by [New] for an unsupported identifier.
	ErrUnknownHash = errors.New("unknown hash function")
	// ErrMissingHashKey is returned by [New] when a keyed hasher gets no key.
	ErrMissingHashKey = errors.New("hash key is required for keyed hash function")
)

// fingerprintLabel is the message MAC'ed to identify the key of a keyed hasher
// without storing the key itself.
const fingerprintLabel = "csv-delta/key-fingerprint"

// Hasher maps row text to a canonical key.
type Hasher interface {
	// Name returns the identifier persisted alongside a delta structure.
	Name() string
	// Key returns the canonical key of text.
	Key(text string) []byte
	// Fingerprint identifies the secret of keyed hashers; it is empty for
	// unkeyed ones.
	Fingerprint() []byte
}

var constructors = map[string]func() hash.Hash{
	SHA512:  sha512.New,
	SHA256:  sha256.New,
	SHA3512: sha3.New512,
	BLAKE2b512: func() hash.Hash {
		// New512 only fails for keys longer than 64 bytes.
		h, _ := blake2b.New512(nil)
		return h
	},
	BLAKE3256: func() hash.Hash { return blake3.New() },
}

// Names lists every supported hasher identifier in sorted order.
func Names() []string {
	names := make([]string, 0, len(constructors)+2)
	for name := range constructors {
		names = append(names, name)
	}
	names = append(names, HMACSHA256, Identity)
	sort.Strings(names)
	return names
}

// New returns the hasher registered under name. key is only used by
// [HMACSHA256] and must be non-empty for it.
func New(name, key string) (Hasher, error) {
	switch name {
	case Identity:
		return identityHasher{}, nil
	case HMACSHA256:
		if key == "" {
			return nil, ErrMissingHashKey
		}
		secret := []byte(key)
		mac := hmac.New(sha256.New, secret)
		mac.Write([]byte(fingerprintLabel))
		return newPoolHasher(name, mac.Sum(nil)[:8], func() hash.Hash {
			return hmac.New(sha256.New, secret)
		}), nil
	}

	newHash, ok := constructors[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownHash, name)
	}
	return newPoolHasher(name, nil, newHash), nil
}

// poolHasher computes digests with hash instances pulled from a sync.Pool to
// avoid an allocation per row.
type poolHasher struct {
	name        string
	fingerprint []byte
	pool        sync.Pool
}

func newPoolHasher(name string, fingerprint []byte, newHash func() hash.Hash) *poolHasher {
	return &poolHasher{
		name:        name,
		fingerprint: fingerprint,
		pool: sync.Pool{
			New: func() any { return newHash() },
		},
	}
}

func (p *poolHasher) Name() string {
	return p.name
}

func (p *poolHasher) Fingerprint() []byte {
	return p.fingerprint
}

func (p *poolHasher) Key(text string) []byte {
	h := p.pool.Get().(hash.Hash)
	h.Reset()

	h.Write([]byte(text))
	sum := h.Sum(nil)

	h.Reset()
	p.pool.Put(h)

	return sum
}

// identityHasher keeps the raw row text as the key.
type identityHasher struct{}

func (identityHasher) Name() string { return Identity }

func (identityHasher) Fingerprint() []byte { return nil }

func (identityHasher) Key(text string) []byte { return []byte(text) }
