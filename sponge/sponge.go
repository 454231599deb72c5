// Package sponge implements Draupnir's CRC sponge: a parametric sponge
// construction whose permutation is driven by a CRC polynomial divider
// followed by a bit-transpose, and whose absorb/squeeze phases inject and
// extract one block along a bit-diagonal mask.
package sponge

import "github.com/fenrir-labs/draupnir/constants"

// Width is the sponge's word size in bits. The algorithm is identical for
// every supported width; only the word size and the default constants
// differ.
type Width int

const (
	Width8  Width = 8
	Width16 Width = 16
	Width32 Width = 32
	Width64 Width = 64
)

func (w Width) valid() bool {
	switch w {
	case Width8, Width16, Width32, Width64:
		return true
	default:
		return false
	}
}

// Sponge is a stateful, sequential sponge instance. It is not safe for
// concurrent use from multiple goroutines; callers wanting independent
// streams should Clone. A zero Sponge is not usable — construct one with
// Builder.
type Sponge struct {
	width Width

	generator    uint64
	initialValue uint64
	xorValue     uint64

	soakingRounds   int
	squeezingRounds int

	initialState []uint64
	state        []uint64
	tmp          []uint64 // per-instance scratch for transform

	crc uint64

	buffer    []byte
	remaining int

	table *table
}

// Width reports the sponge's configured word size in bits.
func (s *Sponge) Width() Width { return s.width }

// Generator reports the sponge's configured CRC generator polynomial.
func (s *Sponge) Generator() uint64 { return s.generator }

// Builder assembles a Sponge from named, validated parameters, filling in
// width-specific defaults for anything left unset. The zero Builder is
// ready to use and defaults to Width64.
type Builder struct {
	width Width

	generator    *uint64
	initialValue *uint64
	xorValue     *uint64

	soakingRounds   *int
	squeezingRounds *int

	initialState []uint64
}

// NewBuilder starts a Builder for the given width.
func NewBuilder(width Width) *Builder {
	return &Builder{width: width}
}

func (b *Builder) Generator(g uint64) *Builder {
	b.generator = &g
	return b
}

func (b *Builder) InitialValue(v uint64) *Builder {
	b.initialValue = &v
	return b
}

func (b *Builder) XORValue(v uint64) *Builder {
	b.xorValue = &v
	return b
}

func (b *Builder) SoakingRounds(n int) *Builder {
	b.soakingRounds = &n
	return b
}

func (b *Builder) SqueezingRounds(n int) *Builder {
	b.squeezingRounds = &n
	return b
}

// InitialState overrides the default (pi-derived) reset state. state must
// have exactly int(width) entries; Build validates the length and masks
// each entry to its low width bits.
func (b *Builder) InitialState(state []uint64) *Builder {
	b.initialState = state
	return b
}

// defaultGenerator returns the width-specific default generator polynomial.
func defaultGenerator(width Width) uint64 {
	switch width {
	case Width64:
		return 0x42F0E1EBA9EA3693 // ECMA-182
	case Width32:
		return 0x04C11DB7 // ANSI
	case Width16:
		return 0x1021 // CCITT
	case Width8:
		return 0x9B
	default:
		return 0
	}
}

// Build validates the accumulated options and constructs a Sponge, or
// returns a construction error.
func (b *Builder) Build() (*Sponge, error) {
	width := b.width
	if width == 0 {
		width = Width64
	}
	if !width.valid() {
		return nil, ErrInvalidWidth
	}
	w := int(width)
	mask := widthMask(w)

	generator := defaultGenerator(width)
	if b.generator != nil {
		generator = *b.generator
	}
	generator &= mask
	if generator&1 == 0 {
		return nil, ErrEvenGenerator
	}

	initialValue := mask
	if b.initialValue != nil {
		initialValue = *b.initialValue & mask
	}
	xorValue := mask
	if b.xorValue != nil {
		xorValue = *b.xorValue & mask
	}

	soakingRounds := 8
	if b.soakingRounds != nil {
		soakingRounds = *b.soakingRounds
	}
	squeezingRounds := 1
	if b.squeezingRounds != nil {
		squeezingRounds = *b.squeezingRounds
	}
	if soakingRounds <= 0 || squeezingRounds <= 0 {
		return nil, ErrNonPositiveRounds
	}

	var initialState []uint64
	if b.initialState != nil {
		if len(b.initialState) != w {
			return nil, ErrBadInitialState
		}
		initialState = make([]uint64, w)
		for i, v := range b.initialState {
			initialState[i] = v & mask
		}
	} else {
		piWords := constants.Pi(w)
		initialState = make([]uint64, w)
		copy(initialState, piWords)
	}

	s := &Sponge{
		width:           width,
		generator:       generator,
		initialValue:    initialValue,
		xorValue:        xorValue,
		soakingRounds:   soakingRounds,
		squeezingRounds: squeezingRounds,
		initialState:    initialState,
		state:           make([]uint64, w),
		tmp:             make([]uint64, w),
		buffer:          make([]byte, w/8),
		table:           tableFor(w, generator),
	}
	s.Reset()
	return s, nil
}

// Reset restores state to initialState and crc to initialValue, and also
// clears the pending output buffer so a stale squeeze byte can never
// resurface after reset: reset is observably a clean restart.
func (s *Sponge) Reset() *Sponge {
	copy(s.state, s.initialState)
	s.crc = s.initialValue
	s.remaining = 0
	return s
}

// Clone returns an independent, mutable copy of s. The copy shares s's
// immutable CRC table by reference; every mutable field is duplicated.
func (s *Sponge) Clone() *Sponge {
	c := &Sponge{
		width:           s.width,
		generator:       s.generator,
		initialValue:    s.initialValue,
		xorValue:        s.xorValue,
		soakingRounds:   s.soakingRounds,
		squeezingRounds: s.squeezingRounds,
		initialState:    append([]uint64(nil), s.initialState...),
		state:           append([]uint64(nil), s.state...),
		tmp:             make([]uint64, len(s.tmp)),
		crc:             s.crc,
		buffer:          append([]byte(nil), s.buffer...),
		remaining:       s.remaining,
		table:           s.table,
	}
	return c
}

// Step applies the sponge permutation exactly n times, with no effect on
// the output buffer. step(a); step(b) is equivalent to step(a+b): the
// permutation has no hidden per-call side channel beyond state and crc.
func (s *Sponge) Step(n int) *Sponge {
	for i := 0; i < n; i++ {
		s.transform()
	}
	return s
}
