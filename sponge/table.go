package sponge

import "sync"

// table is the 256-entry, width-bit CRC lookup table used by transform. It
// depends only on (width, generator) and is safe to share by reference
// across any number of Sponge clones.
type table struct {
	width     int
	generator uint64
	entries   [256]uint64
}

type tableKey struct {
	width     int
	generator uint64
}

var tableCache sync.Map // tableKey -> *table

// tableFor returns the shared table for (width, generator), building it on
// first use and interning it in a process-local cache so that many Sponge
// instances with the same parameters share one immutable table.
func tableFor(width int, generator uint64) *table {
	key := tableKey{width, generator}
	if v, ok := tableCache.Load(key); ok {
		return v.(*table)
	}
	t := buildTable(width, generator)
	v, _ := tableCache.LoadOrStore(key, t)
	return v.(*table)
}

// buildTable computes the CRC table entry for each byte value i by running
// eight steps of polynomial division by generator, starting with i placed
// at the top byte of a width-bit word.
func buildTable(width int, generator uint64) *table {
	mask := widthMask(width)
	topBit := uint64(1) << uint(width-1)

	t := &table{width: width, generator: generator & mask}
	for i := 0; i < 256; i++ {
		v := (uint64(i) << uint(width-8)) & mask
		for step := 0; step < 8; step++ {
			if v&topBit != 0 {
				v = ((v << 1) ^ generator) & mask
			} else {
				v = (v << 1) & mask
			}
		}
		t.entries[i] = v
	}
	return t
}

// PrecomputeTable returns the 256-entry CRC table for (width, generator)
// without constructing a Sponge, for offline tooling such as
// cmd/draupnir-gentables. It shares the same cache tableFor uses.
func PrecomputeTable(width Width, generator uint64) [256]uint64 {
	return tableFor(int(width), generator).entries
}

// widthMask returns a mask with the low width bits set.
func widthMask(width int) uint64 {
	if width >= 64 {
		return ^uint64(0)
	}
	return (uint64(1) << uint(width)) - 1
}
