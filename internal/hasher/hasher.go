// Package hasher produces short content hashes.  The CLI uses them to
// derive genome-addressed default filenames, so re-rendering the same
// genome overwrites its own output instead of piling up copies.
package hasher

import (
	"encoding/binary"
	"encoding/hex"

	"github.com/cespare/xxhash/v2"
)

// ContentHash computes the xxHash64 of data and returns a hex string
// truncated to hexLen characters.  16 hex chars (the full 64 bits) is
// collision-safe for any practical number of genomes.
func ContentHash(data []byte, hexLen int) string {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], xxhash.Sum64(data))
	full := hex.EncodeToString(b[:])
	if hexLen > 0 && hexLen < len(full) {
		return full[:hexLen]
	}
	return full
}
