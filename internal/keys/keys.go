// Package keys derives the two watermark permutation seeds from a
// passphrase, so operators can share a phrase instead of two raw
// 64-bit integers.  Both sides must derive from the same passphrase.
package keys

import (
	"crypto/sha256"
	"encoding/binary"

	"golang.org/x/crypto/pbkdf2"
)

// Fixed application salt: the derivation must be reproducible across
// machines, and the seeds are dispersal keys, not login credentials.
var seedSalt = []byte("dct-watermark/seed-derivation/v1")

const pbkdf2Iters = 65536

// DeriveSeeds stretches passphrase into the embedding and mark seeds
// via PBKDF2-SHA256.
func DeriveSeeds(passphrase string) (seedEmbed, seedMark int64) {
	key := pbkdf2.Key([]byte(passphrase), seedSalt, pbkdf2Iters, 16, sha256.New)
	seedEmbed = int64(binary.BigEndian.Uint64(key[:8]))
	seedMark = int64(binary.BigEndian.Uint64(key[8:]))
	return seedEmbed, seedMark
}
