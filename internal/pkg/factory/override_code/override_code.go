package override_code

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const codeSpace = 1000000

// CodeFactory draws uniformly from the 6-digit space, zero-padded. Codes are
// scoped to a unit at redemption time, so no cross-unit uniqueness is
// attempted here.
type CodeFactory struct{}

func New() *CodeFactory {
	return &CodeFactory{}
}

func (f *CodeFactory) Generate() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(codeSpace))
	if err != nil {
		return "", fmt.Errorf("read random source: %w", err)
	}

	return fmt.Sprintf("%06d", n.Int64()), nil
}
