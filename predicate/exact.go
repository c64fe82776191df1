package predicate

import (
	"math"
	"math/big"
)

// exactPrec is the working precision, in bits, used for the arbitrary
// precision fallback. It is large enough that the low-degree polynomial
// evaluations below (products and sums of at most a handful of float64
// values) round-trip without losing the sign of a true near-zero result;
// no suitable third-party exact/expansion-arithmetic library appears in
// the example corpus, so the fallback is built on the standard library's
// math/big instead of a hand-rolled Shewchuk expansion type.
const exactPrec = 256

func bf(x float64) *big.Float {
	return new(big.Float).SetPrec(exactPrec).SetFloat64(x)
}

func bfSub(a, b *big.Float) *big.Float {
	return new(big.Float).SetPrec(exactPrec).Sub(a, b)
}

func bfMul(a, b *big.Float) *big.Float {
	return new(big.Float).SetPrec(exactPrec).Mul(a, b)
}

func bfAdd(a, b *big.Float) *big.Float {
	return new(big.Float).SetPrec(exactPrec).Add(a, b)
}

// signedFloat64 converts v to a float64 preserving its sign even if the
// magnitude would otherwise underflow to zero, so that callers comparing
// the result against zero never see a false "exactly on" reading for a
// value the exact computation determined to be (however slightly) off it.
func signedFloat64(v *big.Float) float64 {
	f, _ := v.Float64()
	if f == 0 && v.Sign() != 0 {
		return math.Copysign(math.SmallestNonzeroFloat64, float64(v.Sign()))
	}
	return f
}
