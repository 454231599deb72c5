package random

// NonUniformSampleWithoutReplacement draws an unordered size-subset of
// [0, len(parts)) using Chao's weighted reservoir sampling: the
// reservoir is seeded with [0, size) and their weight sum, then for each
// later index j a uniformly random reservoir slot is replaced with
// probability parts[j]/totalSoFar (after which j's weight joins the
// running total).
func NonUniformSampleWithoutReplacement(src Source, parts []float64, size int) ([]int, error) {
	k := len(parts)
	if size <= 0 {
		return nil, ErrNonPositiveSize
	}
	if size > k {
		return nil, ErrSizeExceedsTotal
	}
	for _, w := range parts {
		if w < 0 {
			return nil, ErrNegativeWeight
		}
	}

	out := make([]int, size)
	var totalSoFar float64
	for i := 0; i < size; i++ {
		out[i] = i
		totalSoFar += parts[i]
	}

	for j := size; j < k; j++ {
		if totalSoFar > 0 && Real(src) < parts[j]/totalSoFar {
			slot := int(NaturalBounded(src, uint64(size-1)))
			out[slot] = j
		}
		totalSoFar += parts[j]
	}
	return out, nil
}
