package sponge

import (
	"fmt"
	"hash/crc64"
	"strconv"
	"strings"
)

// dumpVersion is the only version this package writes or accepts. The
// field index constants below are the single source of truth for both
// Dump and Load so the two can never drift apart.
const dumpVersion = 1

const (
	fieldVersion = iota
	fieldSoakingRounds
	fieldSqueezingRounds
	fieldWidth
	fieldGenerator
	fieldXORValue
	fieldInitialValue
	fieldInitialState
	fieldCRC
	fieldState
	fieldChecksum
	fieldCount
)

var ecmaTable = crc64.MakeTable(crc64.ECMA)

// Dump serializes the sponge to a single line of ASCII text: 11
// delimiter-separated, fixed-width lowercase hex fields, the last of which
// is an ECMA CRC-64 checksum over everything before it (including that
// field's own trailing delimiter).
func (s *Sponge) Dump(delim byte) string {
	w := int(s.width)
	sep := string(delim)

	fields := make([]string, fieldCount-1)
	fields[fieldVersion] = fmt.Sprintf("%04x", dumpVersion)
	fields[fieldSoakingRounds] = fmt.Sprintf("%04x", s.soakingRounds)
	fields[fieldSqueezingRounds] = fmt.Sprintf("%04x", s.squeezingRounds)
	fields[fieldWidth] = fmt.Sprintf("%04x", w)
	fields[fieldGenerator] = hexWord(s.generator, w/4)
	fields[fieldXORValue] = hexWord(s.xorValue, w/4)
	fields[fieldInitialValue] = hexWord(s.initialValue, w/4)
	fields[fieldInitialState] = hexWords(s.initialState, w/4)
	fields[fieldCRC] = hexWord(s.crc, w/4)
	fields[fieldState] = hexWords(s.state, w/4)

	prefix := strings.Join(fields, sep) + sep
	sum := crc64.Checksum([]byte(prefix), ecmaTable)
	return prefix + fmt.Sprintf("%016x", sum)
}

// Load parses and validates a dump produced by Dump, checking in order:
// field count, checksum, version, round positivity, generator parity, and
// finally that the dump's declared width matches width, the width the
// caller expects to load into.
func Load(width Width, dump string, delim byte) (*Sponge, error) {
	sep := string(delim)
	parts := strings.Split(dump, sep)
	if len(parts) != fieldCount {
		return nil, ErrFieldCount
	}

	prefix := strings.Join(parts[:fieldCount-1], sep) + sep
	wantSum, err := parseHexWord(parts[fieldChecksum], 16)
	if err != nil {
		return nil, fmt.Errorf("checksum field: %w", err)
	}
	gotSum := crc64.Checksum([]byte(prefix), ecmaTable)
	if wantSum != gotSum {
		return nil, ErrChecksumFailed
	}

	version, err := parseHexWord(parts[fieldVersion], 4)
	if err != nil {
		return nil, fmt.Errorf("version field: %w", err)
	}
	if version != dumpVersion {
		return nil, ErrUnknownVersion
	}

	soakingRounds, err := parseHexWord(parts[fieldSoakingRounds], 4)
	if err != nil {
		return nil, fmt.Errorf("soakingRounds field: %w", err)
	}
	squeezingRounds, err := parseHexWord(parts[fieldSqueezingRounds], 4)
	if err != nil {
		return nil, fmt.Errorf("squeezingRounds field: %w", err)
	}
	if soakingRounds == 0 || squeezingRounds == 0 {
		return nil, ErrNonPositiveRounds
	}

	w := int(width)
	declaredWidth, err := parseHexWord(parts[fieldWidth], 4)
	if err != nil {
		return nil, fmt.Errorf("width field: %w", err)
	}
	// The generator field is sized by the dump's own declared width, so a
	// well-formed dump of another width reaches the width check below.
	generator, err := parseHexWord(parts[fieldGenerator], int(declaredWidth)/4)
	if err != nil {
		return nil, fmt.Errorf("generator field: %w", err)
	}
	if generator&1 == 0 {
		return nil, ErrEvenGenerator
	}

	if int(declaredWidth) != w {
		return nil, ErrWidthMismatch
	}

	xorValue, err := parseHexWord(parts[fieldXORValue], w/4)
	if err != nil {
		return nil, fmt.Errorf("xorValue field: %w", err)
	}
	initialValue, err := parseHexWord(parts[fieldInitialValue], w/4)
	if err != nil {
		return nil, fmt.Errorf("initialValue field: %w", err)
	}
	initialState, err := parseHexWords(parts[fieldInitialState], w, w/4)
	if err != nil {
		return nil, fmt.Errorf("initialState field: %w", err)
	}
	crcVal, err := parseHexWord(parts[fieldCRC], w/4)
	if err != nil {
		return nil, fmt.Errorf("crc field: %w", err)
	}
	state, err := parseHexWords(parts[fieldState], w, w/4)
	if err != nil {
		return nil, fmt.Errorf("state field: %w", err)
	}

	s := &Sponge{
		width:           width,
		generator:       generator,
		initialValue:    initialValue,
		xorValue:        xorValue,
		soakingRounds:   int(soakingRounds),
		squeezingRounds: int(squeezingRounds),
		initialState:    initialState,
		state:           state,
		tmp:             make([]uint64, w),
		crc:             crcVal,
		buffer:          make([]byte, w/8),
		remaining:       0,
		table:           tableFor(w, generator),
	}
	return s, nil
}

// MustLoad is a convenience wrapper over Load that panics on error, for
// call sites (tests, fixtures) that already know the dump is well-formed.
func MustLoad(width Width, dump string, delim byte) *Sponge {
	s, err := Load(width, dump, delim)
	if err != nil {
		panic(err)
	}
	return s
}

func ecmaChecksum(s string) uint64 {
	return crc64.Checksum([]byte(s), ecmaTable)
}

func hexWord(v uint64, nibbles int) string {
	return fmt.Sprintf("%0*x", nibbles, v)
}

func hexWords(words []uint64, nibbles int) string {
	var b strings.Builder
	for _, w := range words {
		b.WriteString(hexWord(w, nibbles))
	}
	return b.String()
}

func parseHexWord(field string, nibbles int) (uint64, error) {
	if len(field) != nibbles {
		return 0, ErrFieldWidth
	}
	v, err := strconv.ParseUint(field, 16, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrMalformedField, err)
	}
	return v, nil
}

func parseHexWords(field string, count, nibbles int) ([]uint64, error) {
	if len(field) != count*nibbles {
		return nil, ErrFieldWidth
	}
	words := make([]uint64, count)
	for i := 0; i < count; i++ {
		v, err := parseHexWord(field[i*nibbles:(i+1)*nibbles], nibbles)
		if err != nil {
			return nil, err
		}
		words[i] = v
	}
	return words, nil
}
