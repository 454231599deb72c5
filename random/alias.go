package random

// AliasTable is a Vose alias method sampler for a fixed discrete
// distribution: O(k) to build, O(1) to draw from.
type AliasTable struct {
	prob  []float64
	alias []int
}

// NewAliasTable builds an AliasTable from non-negative part weights.
// Weights need not sum to 1; they are normalized internally.
func NewAliasTable(weights []float64) (*AliasTable, error) {
	k := len(weights)
	if k == 0 {
		return nil, ErrEmptyWeights
	}
	var total float64
	for _, w := range weights {
		if w < 0 {
			return nil, ErrNegativeWeight
		}
		total += w
	}
	if total <= 0 {
		return nil, ErrZeroTotalWeight
	}

	p := make([]float64, k)
	for i, w := range weights {
		p[i] = w * float64(k) / total
	}

	prob := make([]float64, k)
	alias := make([]int, k)

	small := make([]int, 0, k)
	large := make([]int, 0, k)
	for i, v := range p {
		if v < 1 {
			small = append(small, i)
		} else {
			large = append(large, i)
		}
	}

	for len(small) > 0 && len(large) > 0 {
		l := small[len(small)-1]
		small = small[:len(small)-1]
		g := large[len(large)-1]
		large = large[:len(large)-1]

		prob[l] = p[l]
		alias[l] = g

		p[g] = p[g] + p[l] - 1
		if p[g] < 1 {
			small = append(small, g)
		} else {
			large = append(large, g)
		}
	}
	for len(large) > 0 {
		g := large[len(large)-1]
		large = large[:len(large)-1]
		prob[g] = 1
	}
	for len(small) > 0 {
		l := small[len(small)-1]
		small = small[:len(small)-1]
		prob[l] = 1
	}

	return &AliasTable{prob: prob, alias: alias}, nil
}

// Sample draws one column index from the distribution the table was
// built from.
func (t *AliasTable) Sample(src Source) int {
	k := len(t.prob)
	x := int(NaturalBounded(src, uint64(k-1)))
	if Real(src) < t.prob[x] {
		return x
	}
	return t.alias[x]
}

// NonUniformSampleWithReplacement draws size independent samples from the
// discrete distribution given by parts, using a freshly built alias
// table.
func NonUniformSampleWithReplacement(src Source, parts []float64, size int) ([]int, error) {
	if size <= 0 {
		return nil, ErrNonPositiveSize
	}
	table, err := NewAliasTable(parts)
	if err != nil {
		return nil, err
	}
	out := make([]int, size)
	for i := range out {
		out[i] = table.Sample(src)
	}
	return out, nil
}
