package crypto

import (
	"crypto/rand"
	"math"
)

const (
	idAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789_-"
	idSize     = 22 // 22 * 6 = 132 bits of entropy, more than a uuid
)

// alphabet is 64 characters, so 6 random bits map cleanly to one character
const idMask = 63

// NewID generates a URL-safe random identifier. Used for user and
// code-session IDs; collisions are negligible at this entropy.
func NewID() (string, error) {
	step := int(math.Ceil(1.6 * float64(idMask*idSize) / float64(len(idAlphabet))))

	id := make([]byte, idSize)
	buffer := make([]byte, step)

	for position := 0; position < idSize; {
		if _, err := rand.Read(buffer); err != nil {
			return "", err
		}

		for i := 0; i < step && position < idSize; i++ {
			index := buffer[i] & idMask
			if int(index) < len(idAlphabet) {
				id[position] = idAlphabet[index]
				position++
			}
		}
	}

	return string(id), nil
}

// MustID is NewID for call sites where a rand failure is unrecoverable
// anyway; it panics instead of returning an error.
func MustID() string {
	id, err := NewID()
	if err != nil {
		panic(err)
	}
	return id
}
