package sponge

// Squeeze returns the next output byte, squeezing a fresh block from the
// odd rows of the state whenever the buffer has run dry. Bytes from a
// freshly squeezed block are consumed low-byte-first: remaining is
// decremented before indexing, so buffer[wordBytes-1] (the low byte of the
// gathered diagonal) is returned first and buffer[0] last.
func (s *Sponge) Squeeze() byte {
	if s.remaining == 0 {
		s.squeezeBlock()
	}
	s.remaining--
	return s.buffer[s.remaining]
}

// squeezeBlock gathers the odd-row diagonal bits into a single width-bit
// word, runs squeezingRounds transforms, and serializes the result into
// the buffer most-significant-byte-first.
func (s *Sponge) squeezeBlock() {
	width := int(s.width)
	var diag uint64
	for i := 1; i < width; i += 2 {
		diag |= s.state[i] & diagonalMask(width, i)
	}
	for n := 0; n < s.squeezingRounds; n++ {
		s.transform()
	}
	wordToBytesBE(diag, s.buffer)
	s.remaining = len(s.buffer)
}
