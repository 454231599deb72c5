package sponge

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func mustBuild(t *testing.T, width Width) *Sponge {
	t.Helper()
	s, err := NewBuilder(width).Build()
	require.NoError(t, err)
	return s
}

func squeezeN(s *Sponge, n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = s.Squeeze()
	}
	return out
}

func TestBuilderDefaults(t *testing.T) {
	s := mustBuild(t, Width64)
	require.Equal(t, Width64, s.Width())
	require.Equal(t, uint64(0x42F0E1EBA9EA3693), s.generator)
	require.Equal(t, ^uint64(0), s.initialValue)
	require.Equal(t, ^uint64(0), s.xorValue)
	require.Equal(t, 8, s.soakingRounds)
	require.Equal(t, 1, s.squeezingRounds)
	require.Len(t, s.state, 64)
}

func TestBuilderRejectsEvenGenerator(t *testing.T) {
	_, err := NewBuilder(Width32).Generator(0x04C11DB6).Build()
	require.ErrorIs(t, err, ErrEvenGenerator)
}

func TestBuilderRejectsNonPositiveRounds(t *testing.T) {
	_, err := NewBuilder(Width32).SoakingRounds(0).Build()
	require.ErrorIs(t, err, ErrNonPositiveRounds)

	_, err = NewBuilder(Width32).SqueezingRounds(-1).Build()
	require.ErrorIs(t, err, ErrNonPositiveRounds)
}

func TestBuilderRejectsInvalidWidth(t *testing.T) {
	_, err := NewBuilder(Width(17)).Build()
	require.ErrorIs(t, err, ErrInvalidWidth)
}

func TestBuilderRejectsBadInitialStateSize(t *testing.T) {
	_, err := NewBuilder(Width8).InitialState([]uint64{1, 2, 3}).Build()
	require.ErrorIs(t, err, ErrBadInitialState)
}

func TestDeterminism(t *testing.T) {
	for _, w := range []Width{Width8, Width16, Width32, Width64} {
		a := mustBuild(t, w)
		b := mustBuild(t, w)
		a.Soak([]byte("the quick brown fox"))
		b.Soak([]byte("the quick brown fox"))
		require.Equal(t, squeezeN(a, 32), squeezeN(b, 32))
	}
}

func TestCloneIndependence(t *testing.T) {
	a := mustBuild(t, Width64)
	a.Soak([]byte("seed"))
	b := a.Clone()

	a.Soak([]byte("only on a"))
	first := squeezeN(a, 8)
	second := squeezeN(b, 8)
	require.NotEqual(t, first, second)

	c := a.Clone()
	require.Equal(t, squeezeN(a, 8), squeezeN(c, 8))
}

func TestResetIdempotence(t *testing.T) {
	s := mustBuild(t, Width32)
	s.Soak([]byte("perturb me"))
	_ = squeezeN(s, 5)

	s.Reset()
	stateAfterOneReset := append([]uint64(nil), s.state...)
	crcAfterOneReset := s.crc

	s.Reset()
	require.Equal(t, stateAfterOneReset, s.state)
	require.Equal(t, crcAfterOneReset, s.crc)
	require.Equal(t, s.initialState, s.state)
	require.Equal(t, s.initialValue, s.crc)
	require.Zero(t, s.remaining)
}

func TestStepComposability(t *testing.T) {
	a := mustBuild(t, Width32)
	b := mustBuild(t, Width32)

	a.Step(3).Step(4)
	b.Step(7)

	require.Equal(t, a.state, b.state)
	require.Equal(t, a.crc, b.crc)
}

func TestSoakThenSqueezeEquivalence(t *testing.T) {
	msg := []byte("hello, draupnir")
	a := mustBuild(t, Width64)
	b := mustBuild(t, Width64)
	a.Soak(msg)
	b.Soak(msg)

	want := squeezeN(a, 16)
	got := squeezeN(b.Clone(), 16)
	require.Equal(t, want, got)
}

func TestSmallWidthSqueezeIsNotTriviallyZero(t *testing.T) {
	s, err := NewBuilder(Width8).
		Generator(0x9B).
		InitialValue(0).
		XORValue(0).
		InitialState(make([]uint64, 8)).
		SoakingRounds(1).
		SqueezingRounds(1).
		Build()
	require.NoError(t, err)

	// With an all-zero state and zero CRC parameters only the padding of an
	// absorbed (here empty) message can perturb the state.
	s.Soak(nil)
	first := s.Squeeze()
	require.NotEqual(t, byte(0), first)
}

func TestSqueezeConsumesBufferLowByteFirst(t *testing.T) {
	s := mustBuild(t, Width64)
	first := s.Squeeze()
	require.Equal(t, s.buffer[len(s.buffer)-1], first)
}
