package random

// UniformSampleWithReplacement draws size independent, uniformly random
// indices in [0, total), any of which may repeat.
func UniformSampleWithReplacement(src Source, total, size int) ([]int, error) {
	if total <= 0 {
		return nil, ErrNonPositiveSize
	}
	if size <= 0 {
		return nil, ErrNonPositiveSize
	}
	out := make([]int, size)
	for i := range out {
		out[i] = int(NaturalBounded(src, uint64(total-1)))
	}
	return out, nil
}

// UniformSampleWithoutReplacement draws a uniform size-subset of
// [0, total), returned as an unordered list, using reservoir sampling by
// index (Algorithm R): the reservoir is seeded with [0, size), then for
// every later index i a uniformly random earlier reservoir slot is
// replaced with probability size/(i+1).
func UniformSampleWithoutReplacement(src Source, total, size int) ([]int, error) {
	if size <= 0 {
		return nil, ErrNonPositiveSize
	}
	if size > total {
		return nil, ErrSizeExceedsTotal
	}
	out := make([]int, size)
	for i := 0; i < size; i++ {
		out[i] = i
	}
	for i := size; i < total; i++ {
		j := int(NaturalBounded(src, uint64(i)))
		if j < size {
			out[j] = i
		}
	}
	return out, nil
}
