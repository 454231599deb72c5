package sponge

// Soak absorbs an arbitrary-length byte message into the sponge using
// multi-rate padding and bit-diagonal injection. The message is split into
// full width/8-byte blocks, each absorbed in turn, followed by one
// always-present final padded block so that distinct messages always
// produce distinct padded block sequences.
func (s *Sponge) Soak(data []byte) *Sponge {
	wordBytes := int(s.width) / 8
	for len(data) >= wordBytes {
		s.absorbBlock(bytesToWordLE(data[:wordBytes]))
		data = data[wordBytes:]
	}
	s.absorbBlock(padFinalBlock(data, wordBytes))
	return s
}

// padFinalBlock builds the always-non-empty trailing block: the remainder
// bytes (0..wordBytes-1 of them, read left-to-right) are placed at the top
// of the block in order, a 0x80 padding header is placed in the byte
// immediately below them, and a 0x01 padding tail is placed in the lowest
// byte. When the remainder fills every byte but one, the header and tail
// land in the same byte and are simply OR'd together, so the lowest bit is
// always set and the bit just above the last data byte is always set,
// even at that boundary.
func padFinalBlock(remainder []byte, wordBytes int) uint64 {
	block := make([]byte, wordBytes)
	r := len(remainder)
	for i, b := range remainder {
		block[wordBytes-1-i] = b
	}
	headerPos := wordBytes - 1 - r
	block[headerPos] |= 0x80
	block[0] |= 0x01
	// This array was built by explicit bit-position (byte 0 holds the
	// lowest-order byte of the resulting word), so the conversion back to
	// a uint64 is always little-endian here regardless of the host-order
	// choice used for full-size blocks above.
	return bytesToWordLE(block)
}

// diagonalMask returns the two-bit mask used by both absorb and squeeze
// for row i: bit i and its mirror bit (width-1-i). Row 0's mask is the
// corner bits highBit|lowBit, which this formula produces without a
// special case.
func diagonalMask(width, i int) uint64 {
	topBit := uint64(1) << uint(width-1)
	return (topBit >> uint(i)) | (uint64(1) << uint(i))
}

// absorbBlock injects one width-bit block into the even rows of the state
// along the bit-diagonal mask, then runs soakingRounds transforms.
func (s *Sponge) absorbBlock(block uint64) {
	width := int(s.width)
	for i := 0; i < width; i += 2 {
		mask := diagonalMask(width, i)
		s.state[i] = (s.state[i] &^ mask) | (block & mask)
	}
	s.remaining = 0
	for n := 0; n < s.soakingRounds; n++ {
		s.transform()
	}
}
