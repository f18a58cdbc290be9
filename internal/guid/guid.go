package guid

import (
	"crypto/rand"
	"encoding/hex"
)

// Length is the number of hex characters in a GUID.
const Length = 32

// New returns a random 32-character lowercase hex GUID, the identifier
// format used throughout a book file.
func New() string {
	var buf [Length / 2]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// crypto/rand never fails on supported platforms.
		panic("guid: reading random bytes: " + err.Error())
	}
	return hex.EncodeToString(buf[:])
}

// Valid reports whether s looks like a GUID: 32 lowercase hex characters.
func Valid(s string) bool {
	if len(s) != Length {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}
