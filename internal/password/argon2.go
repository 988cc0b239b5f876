// Package password hashes passwords with argon2id.
//
// Digests use the PHC string format, so verification reads its cost
// parameters from the digest and keeps working after the configured
// parameters change.
package password

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/argon2"

	"github.com/dtroode/myflix-server/internal/model"
)

const (
	saltLength = 16
	keyLength  = 32
	algorithm  = "argon2id"
)

var errMalformedDigest = errors.New("malformed password digest")

var _ model.PasswordHasher = (*Argon2)(nil)

// Argon2 implements PasswordHasher with argon2id.
type Argon2 struct {
	time   uint32
	memKiB uint32
	par    uint8
	rand   io.Reader
}

// NewArgon2 creates a hasher with the given work factor.
func NewArgon2(time, memKiB uint32, par uint8) *Argon2 {
	return &Argon2{
		time:   time,
		memKiB: memKiB,
		par:    par,
		rand:   rand.Reader,
	}
}

// Hash derives a key from password with a fresh random salt and encodes it.
func (a *Argon2) Hash(password string) (string, error) {
	salt := make([]byte, saltLength)
	if _, err := io.ReadFull(a.rand, salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}

	key := argon2.IDKey([]byte(password), salt, a.time, a.memKiB, a.par, keyLength)

	return fmt.Sprintf("$%s$v=%d$m=%d,t=%d,p=%d$%s$%s",
		algorithm, argon2.Version, a.memKiB, a.time, a.par,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

// Verify reports whether password matches digest. A malformed digest never matches.
func (a *Argon2) Verify(password, digest string) bool {
	p, err := decode(digest)
	if err != nil {
		return false
	}

	other := argon2.IDKey([]byte(password), p.salt, p.time, p.memKiB, p.par, uint32(len(p.key)))

	return subtle.ConstantTimeCompare(p.key, other) == 1
}

type decoded struct {
	time   uint32
	memKiB uint32
	par    uint8
	salt   []byte
	key    []byte
}

func decode(digest string) (decoded, error) {
	parts := strings.Split(digest, "$")
	if len(parts) != 6 || parts[0] != "" || parts[1] != algorithm {
		return decoded{}, errMalformedDigest
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return decoded{}, errMalformedDigest
	}

	var p decoded
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &p.memKiB, &p.time, &p.par); err != nil {
		return decoded{}, errMalformedDigest
	}
	if p.time == 0 || p.par == 0 || p.memKiB < 8*uint32(p.par) {
		return decoded{}, errMalformedDigest
	}

	var err error
	if p.salt, err = base64.RawStdEncoding.DecodeString(parts[4]); err != nil || len(p.salt) == 0 {
		return decoded{}, errMalformedDigest
	}
	if p.key, err = base64.RawStdEncoding.DecodeString(parts[5]); err != nil || len(p.key) == 0 {
		return decoded{}, errMalformedDigest
	}

	return p, nil
}
