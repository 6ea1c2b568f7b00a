//go:build amd64 && !noasm

package httpwire

import (
	"math/bits"

	"golang.org/x/sys/cpu"
)

// crMask16 and colonMask16 are implemented in scan_simd_amd64.s: each loads
// 16 bytes at p (unaligned) and returns a bitmask with bit k set iff
// p[k] equals the target byte (CR for crMask16, ':' for colonMask16).

//go:noescape
func crMask16(p *byte) uint32

//go:noescape
func colonMask16(p *byte) uint32

func init() {
	if cpu.X86.HasSSE42 {
		findCRLF = findCRLFSIMD
		findColon = findColonSIMD
	}
}

func findCRLFSIMD(buf []byte, start int) (int, bool) {
	n := len(buf)
	i := start
	for i+16 <= n {
		mask := crMask16(&buf[i])
		for mask != 0 {
			k := bits.TrailingZeros32(mask)
			pos := i + k
			if pos+1 < n && buf[pos+1] == cLF {
				return pos, true
			}
			mask &^= 1 << uint(k)
		}
		i += 16
	}
	// fewer than 16 bytes remain: re-check the tail with the portable
	// scanner instead of relying on the packed compare's own bounds.
	return findCRLFScalar(buf, i)
}

func findColonSIMD(buf []byte, start int) (int, bool) {
	n := len(buf)
	i := start
	for i+16 <= n {
		if mask := colonMask16(&buf[i]); mask != 0 {
			return i + bits.TrailingZeros32(mask), true
		}
		i += 16
	}
	return findColonScalar(buf, i)
}
