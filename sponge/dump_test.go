package sponge

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDumpRoundTrip(t *testing.T) {
	for _, w := range []Width{Width8, Width16, Width32, Width64} {
		s := mustBuild(t, w)
		s.Soak([]byte("hello"))
		_ = squeezeN(s, 7)

		dump := s.Dump(':')
		loaded, err := Load(w, dump, ':')
		require.NoError(t, err)
		require.Equal(t, dump, loaded.Dump(':'))

		want := squeezeN(s, 7)
		got := squeezeN(loaded, 7)
		require.Equal(t, want, got)
	}
}

func TestDumpFieldCount(t *testing.T) {
	s := mustBuild(t, Width64)
	dump := s.Dump(':')
	require.Len(t, strings.Split(dump, ":"), fieldCount)
}

func TestLoadRejectsWrongFieldCount(t *testing.T) {
	_, err := Load(Width64, "0001:0008", ':')
	require.ErrorIs(t, err, ErrFieldCount)
}

func TestLoadRejectsChecksumMutation(t *testing.T) {
	s := mustBuild(t, Width32)
	dump := s.Dump(':')

	mutated := flipOneHexDigit(dump, len(dump)-1)
	_, err := Load(Width32, mutated, ':')
	require.ErrorIs(t, err, ErrChecksumFailed)
}

func TestLoadRejectsBodyMutation(t *testing.T) {
	s := mustBuild(t, Width32)
	dump := s.Dump(':')

	// Field 0 (version) is the first four characters; flipping one digit
	// there changes the body without touching the checksum field itself.
	mutated := flipOneHexDigit(dump, 0)
	_, err := Load(Width32, mutated, ':')
	require.ErrorIs(t, err, ErrChecksumFailed)
}

func TestLoadRejectsUnknownVersion(t *testing.T) {
	s := mustBuild(t, Width32)
	dump := s.Dump(':')
	parts := strings.Split(dump, ":")
	parts[fieldVersion] = "0002"
	// Recompute the checksum so we reach the version check, not the
	// checksum check.
	rewritten := rewriteChecksum(parts, ':')

	_, err := Load(Width32, rewritten, ':')
	require.ErrorIs(t, err, ErrUnknownVersion)
}

func TestLoadRejectsWidthMismatch(t *testing.T) {
	s := mustBuild(t, Width32)
	dump := s.Dump(':')
	_, err := Load(Width64, dump, ':')
	require.ErrorIs(t, err, ErrWidthMismatch)
}

func TestLoadRejectsWrongFieldWidth(t *testing.T) {
	s := mustBuild(t, Width32)
	dump := s.Dump(':')
	parts := strings.Split(dump, ":")
	// Generator field is 8 hex chars for Width32; truncate it by one
	// character without changing the overall field count, then recompute
	// the checksum so Load reaches the field-width check rather than
	// failing on the checksum first.
	parts[fieldGenerator] = parts[fieldGenerator][1:]
	mutated := rewriteChecksum(parts, ':')

	_, err := Load(Width32, mutated, ':')
	require.ErrorIs(t, err, ErrFieldWidth)
}

func flipOneHexDigit(s string, index int) string {
	b := []byte(s)
	if b[index] == '0' {
		b[index] = '1'
	} else {
		b[index] = '0'
	}
	return string(b)
}

func rewriteChecksum(parts []string, delim byte) string {
	sep := string(delim)
	prefix := strings.Join(parts[:fieldCount-1], sep) + sep
	sum := crc64Of(prefix)
	return prefix + sum
}

func crc64Of(prefix string) string {
	sum := ecmaChecksum(prefix)
	return hexWord(sum, 16)
}
