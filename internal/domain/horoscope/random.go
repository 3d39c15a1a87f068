package horoscope

import (
	"crypto/sha256"
	"encoding/binary"
	"math"
)

// SamplerVersion names the pinned (hash, byte order, width) triple behind
// Uniform. Changing any part of it changes every historical record.
const SamplerVersion = "sha256-be32-v1"

// maxSample is the largest float64 strictly below 1.
var maxSample = math.Nextafter(1, 0)

// Uniform maps a seed to a value in [0, 1): the first four bytes of the
// SHA-256 digest, read big-endian, divided by 0xFFFFFFFF.
func Uniform(seed Seed) float64 {
	sum := sha256.Sum256([]byte(seed))
	v := float64(binary.BigEndian.Uint32(sum[:4])) / math.MaxUint32
	if v >= 1 {
		// only a 0xFFFFFFFF prefix lands here
		return maxSample
	}
	return v
}
