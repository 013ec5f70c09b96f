// Package hashutil produces hex digests used as stable fingerprints for
// canonical URLs.
package hashutil

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/pkg/errors"
	"lukechampine.com/blake3"
)

type HashAlgo string

const (
	HashAlgoSHA256 HashAlgo = "sha256"
	HashAlgoBLAKE3 HashAlgo = "blake3"
)

var ErrUnsupportedAlgo = errors.New("unsupported hash algorithm")

// ParseAlgo maps a case-insensitive algorithm name to a HashAlgo.
func ParseAlgo(name string) (HashAlgo, error) {
	algo := HashAlgo(strings.ToLower(strings.TrimSpace(name)))
	switch algo {
	case HashAlgoSHA256, HashAlgoBLAKE3:
		return algo, nil
	default:
		return "", errors.Wrapf(ErrUnsupportedAlgo, "%q", name)
	}
}

// HashBytes returns the hash of bytes as a hex string using the specified algorithm.
func HashBytes(data []byte, algo HashAlgo) (string, error) {
	switch algo {
	case HashAlgoSHA256:
		hash := sha256.Sum256(data)
		return hex.EncodeToString(hash[:]), nil
	case HashAlgoBLAKE3:
		hash := blake3.Sum256(data)
		return hex.EncodeToString(hash[:]), nil
	default:
		return "", errors.Wrapf(ErrUnsupportedAlgo, "%q", string(algo))
	}
}

// HashString hashes s and prefixes the digest with the algorithm name,
// e.g. "sha256:b94d27...", so keys made with different algorithms never
// collide.
func HashString(s string, algo HashAlgo) (string, error) {
	digest, err := HashBytes([]byte(s), algo)
	if err != nil {
		return "", err
	}
	return string(algo) + ":" + digest, nil
}
