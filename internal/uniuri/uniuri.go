package uniuri

import (
	"crypto/rand"
	"strings"
)

const (
	// KeyLen gives ~119 bits of entropy with StdChars.
	KeyLen = 20

	// KeyPrefix marks blobs written by the upload stage.
	KeyPrefix = "upload-"

	byteRange = 256
	chunkLen  = 64
)

// StdChars is the alphanumeric alphabet used for keys.
var StdChars = []byte("ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789") //nolint:gochecknoglobals

// NewKey returns a staging key for one uploaded file.
// The original file name is never part of the key.
func NewKey() string {
	return KeyPrefix + NewLenChars(KeyLen, StdChars)
}

// IsKey reports whether key looks like a value returned by NewKey.
func IsKey(key string) bool {
	rest, ok := strings.CutPrefix(key, KeyPrefix)
	if !ok || len(rest) != KeyLen {
		return false
	}

	for i := range len(rest) {
		if strings.IndexByte(string(StdChars), rest[i]) < 0 {
			return false
		}
	}

	return true
}

// NewLenChars returns a random string of the given length drawn from chars.
// chars must hold between 2 and 256 bytes.
func NewLenChars(length int, chars []byte) string {
	if length <= 0 {
		return ""
	}

	clen := len(chars)
	if clen < 2 || clen > byteRange {
		panic("uniuri: wrong charset length for NewLenChars")
	}

	// largest multiple of clen that fits a byte, values at or above it are skipped
	limit := byteRange - byteRange%clen

	out := make([]byte, 0, length)
	buf := make([]byte, chunkLen)

	for len(out) < length {
		if _, err := rand.Read(buf); err != nil {
			panic("uniuri: error reading random bytes: " + err.Error())
		}

		for _, rb := range buf {
			if int(rb) >= limit {
				continue
			}

			out = append(out, chars[int(rb)%clen])
			if len(out) == length {
				break
			}
		}
	}

	return string(out)
}
