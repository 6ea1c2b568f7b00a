//go:build !amd64 || noasm

package httpwire

// On non-amd64 arches, or when built with the noasm tag, findCRLF and
// findColon keep their scan.go default: the portable scalar scanners.
// Nothing to override here.
