package types

import (
	"encoding/hex"

	"golang.org/x/crypto/sha3"
)

// DigestHexLen is the length of a digest's hex representation (256 bits).
const DigestHexLen = 64

// Digest is a fixed-length lowercase hex string produced by the
// content-addressing oracle. Digests reference snippet contents, hint
// topics, languages, and tags without storing the underlying bytes.
type Digest string

// IsZero reports whether the digest is empty.
func (d Digest) IsZero() bool { return d == "" }

// Valid reports whether the digest is a well-formed 64-character hex string.
func (d Digest) Valid() bool {
	if len(d) != DigestHexLen {
		return false
	}
	for _, c := range d {
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}

// Short returns an abbreviated digest for log output.
func (d Digest) Short() string {
	if len(d) <= 8 {
		return string(d)
	}
	return string(d[:8])
}

// Hasher is the content-addressing oracle: a deterministic,
// collision-resistant mapping from bytes to a Digest.
type Hasher func(data []byte) Digest

// SHA3Sum is the default Hasher. It produces the SHA3-256 digest of data
// as a 64-character lowercase hex string.
func SHA3Sum(data []byte) Digest {
	sum := sha3.Sum256(data)
	return Digest(hex.EncodeToString(sum[:]))
}

// HashString hashes a string with the default Hasher. Convenience for
// deriving language, topic, and tag digests from their names.
func HashString(s string) Digest {
	return SHA3Sum([]byte(s))
}
