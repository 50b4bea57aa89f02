package core

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"math"
)

// Hash represents a cryptographic hash
type Hash string

// NewHash creates a new hash from data
func NewHash(data []byte) Hash {
	sum := sha256.Sum256(data)
	return Hash(hex.EncodeToString(sum[:]))
}

// String returns the string representation
func (h Hash) String() string {
	return string(h)
}

// Short returns the first 12 hex characters, enough to tell runs apart in logs
func (h Hash) Short() string {
	if len(h) <= 12 {
		return string(h)
	}
	return string(h[:12])
}

// SampleFingerprint identifies an x/y sample pair by content
type SampleFingerprint Hash

func (h SampleFingerprint) String() string { return Hash(h).String() }
func (h SampleFingerprint) Short() string  { return Hash(h).Short() }

// ComputeSampleFingerprint hashes the IEEE-754 bits of both samples.
// The length of x is written first so ([1,2],[3]) and ([1],[2,3]) differ.
func ComputeSampleFingerprint(x, y []float64) SampleFingerprint {
	buf := make([]byte, 0, 8*(len(x)+len(y)+2))
	buf = binary.BigEndian.AppendUint64(buf, uint64(len(x)))
	for _, v := range x {
		buf = binary.BigEndian.AppendUint64(buf, math.Float64bits(v))
	}
	buf = binary.BigEndian.AppendUint64(buf, uint64(len(y)))
	for _, v := range y {
		buf = binary.BigEndian.AppendUint64(buf, math.Float64bits(v))
	}
	return SampleFingerprint(NewHash(buf))
}
