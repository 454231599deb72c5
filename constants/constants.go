// Package constants holds the initial-state catalogue referenced by the
// sponge builder's defaults. Only Pi is ever materialized into actual
// state words — it backs the sponge builder's default initialState. The
// remaining catalogue entries (e, gamma, sqrt2, ...) are named here only;
// their literal byte sequences are reference data, not algorithmic
// content worth deriving.
package constants

import (
	"math/big"
	"sync"
)

// Names lists the mathematical constants from which a sponge's initial
// state may, in principle, be seeded. Draupnir's builder only ever reaches
// for Pi; the rest are listed by name only and are not computed by this
// package.
var Names = []string{"pi", "e", "gamma", "sqrt2"}

var (
	piOnce  sync.Once
	piWords map[int][]uint64
	piGuard = uint(64)
)

// Pi returns the first width*width bits of the binary expansion of pi,
// split into width words of width bits each, most-significant word and
// most-significant bit first. width must be one of 8, 16, 32, 64.
//
// The value is derived with Machin's formula (pi = 16*atan(1/5) -
// 4*atan(1/239)) on first use for each width rather than hard-coded.
func Pi(width int) []uint64 {
	piOnce.Do(initPi)
	words, ok := piWords[width]
	if ok {
		return words
	}
	words = derivePiWords(width)
	piWords[width] = words
	return words
}

func initPi() {
	piWords = make(map[int][]uint64, 4)
}

func derivePiWords(width int) []uint64 {
	n := width * width
	prec := uint(n) + piGuard

	pi := machinPi(prec)
	scale := new(big.Float).SetPrec(prec).SetMantExp(big.NewFloat(1), n-2)
	scaled := new(big.Float).SetPrec(prec).Mul(pi, scale)

	i := new(big.Int)
	scaled.Int(i)
	bits := i.Text(2)
	for len(bits) < n {
		bits = "0" + bits
	}
	if len(bits) > n {
		bits = bits[len(bits)-n:]
	}

	words := make([]uint64, width)
	for w := 0; w < width; w++ {
		chunk := bits[w*width : (w+1)*width]
		var v uint64
		for _, c := range chunk {
			v <<= 1
			if c == '1' {
				v |= 1
			}
		}
		words[w] = v
	}
	return words
}

// machinPi computes pi to prec bits via Machin's formula.
func machinPi(prec uint) *big.Float {
	a := arctanReciprocal(5, prec)
	b := arctanReciprocal(239, prec)
	pi := new(big.Float).SetPrec(prec).Mul(a, big.NewFloat(16))
	four := new(big.Float).SetPrec(prec).Mul(b, big.NewFloat(4))
	pi.Sub(pi, four)
	return pi
}

// arctanReciprocal computes atan(1/x) via its Taylor series, summing terms
// until they fall below the working precision.
func arctanReciprocal(x int64, prec uint) *big.Float {
	one := new(big.Float).SetPrec(prec).SetInt64(1)
	xf := new(big.Float).SetPrec(prec).SetInt64(x)
	term := new(big.Float).SetPrec(prec).Quo(one, xf)
	xSquared := new(big.Float).SetPrec(prec).Mul(xf, xf)

	sum := new(big.Float).SetPrec(prec).Set(term)
	cur := new(big.Float).SetPrec(prec).Set(term)

	for k := int64(1); ; k++ {
		cur.Quo(cur, xSquared)
		denom := new(big.Float).SetPrec(prec).SetInt64(2*k + 1)
		t := new(big.Float).SetPrec(prec).Quo(cur, denom)
		if t.Sign() == 0 {
			break
		}
		if exp := t.MantExp(nil); exp < -int(prec) {
			break
		}
		if k%2 == 1 {
			sum.Sub(sum, t)
		} else {
			sum.Add(sum, t)
		}
	}
	return sum
}
