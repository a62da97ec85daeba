package pkg

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const (
	idAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	idLength   = 6
)

// GenerateMatchID - produces a short join code for a match.
func GenerateMatchID() (string, error) {
	id := make([]byte, idLength)

	for i := range id {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(idAlphabet))))
		if err != nil {
			return "", fmt.Errorf("failed to generate match id: %w", err)
		}
		id[i] = idAlphabet[n.Int64()]
	}

	return string(id), nil
}
