package sponge

// transform implements the sponge's internal permutation: a bytewise CRC
// pass over the whole state, producing a temporary word per row and
// zeroing the state, followed by a bit-transpose of the temporary words
// back into the state.
//
// Viewing the state as a flat byte array (one word's worth of bytes per
// row, here) is left host-order-defined. This implementation fixes that
// choice to little-endian — byte 0 of a row is its least significant
// byte — so the result is portable across architectures instead of
// tracking the host's actual endianness. The same convention is used in
// absorb.go for reading full-size blocks off the input. This is
// independent of the CRC table construction (always big-endian, by
// construction) and the squeeze output buffer (always most-significant-
// byte-first, by definition), neither of which is host-order-dependent.
//
// tmp is an instance-owned scratch buffer reused across calls. This is
// an optimization, not part of the contract, and is safe only because a
// single Sponge is never driven from two goroutines at once.
func (s *Sponge) transform() {
	width := int(s.width)
	wordBytes := width / 8
	mask := widthMask(width)
	topBit := uint64(1) << uint(width-1)

	crc := s.crc
	entries := &s.table.entries
	for i := 0; i < width; i++ {
		row := s.state[i]
		for k := 0; k < wordBytes; k++ {
			b := byte((row >> uint(8*k)) & 0xFF)
			crc = entries[(crc^uint64(b))&0xFF] ^ (crc >> 8)
		}
		s.tmp[i] = (crc ^ s.xorValue) & mask
		s.state[i] = 0
	}
	s.crc = crc

	for i := 0; i < width; i++ {
		ti := s.tmp[i]
		if ti == 0 {
			continue
		}
		destBit := uint(width - 1 - i)
		for j := 0; j < width; j++ {
			if ti&(topBit>>uint(j)) != 0 {
				s.state[j] |= uint64(1) << destBit
			}
		}
	}
}
