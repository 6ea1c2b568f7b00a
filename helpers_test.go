// Test utils

package httpwire

import (
	"math/rand"
	"sort"

	"github.com/intuitivelabs/bytescase"
)

// randCase randomizes the case of every letter in s.
func randCase(s string) string {
	r := make([]byte, len(s))
	for i, b := range []byte(s) {
		switch rand.Intn(3) {
		case 0:
			r[i] = bytescase.ByteToLower(b)
		case 1:
			r[i] = bytescase.ByteToUpper(b)
		default:
			r[i] = b
		}
	}
	return string(r)
}

// randomPrefixLens returns fewer than maxPieces sorted (possibly repeated)
// lengths in (0, total), for feeding a buffer to a resumable parser a few
// bytes at a time.
func randomPrefixLens(total, maxPieces int) []int {
	n := rand.Intn(maxPieces)
	lens := make([]int, 0, n)
	for i := 0; i < n; i++ {
		if total <= 1 {
			break
		}
		lens = append(lens, 1+rand.Intn(total-1))
	}
	sort.Ints(lens)
	return lens
}
