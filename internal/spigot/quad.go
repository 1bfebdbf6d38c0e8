package spigot

import "math/big"

var (
	bigOne = big.NewInt(1)
	bigTen = big.NewInt(10)
)

// Quad is the bilinear transform x -> (Q*x + R) / (S*x + T).
//
// A Quad is treated as a value: Compose and the constructors always allocate
// fresh coefficients, so no two Quads share a *big.Int.
type Quad struct {
	Q, R, S, T *big.Int
}

// NewQuad builds a Quad from small coefficients.
func NewQuad(q, r, s, t int64) Quad {
	return Quad{
		Q: big.NewInt(q),
		R: big.NewInt(r),
		S: big.NewInt(s),
		T: big.NewInt(t),
	}
}

// Identity returns the transform x -> x.
func Identity() Quad {
	return NewQuad(1, 0, 0, 1)
}

// Term returns the k-th continued-fraction term of pi: (k, 4k+2, 0, 2k+1).
func Term(k uint64) Quad {
	kk := new(big.Int).SetUint64(k)

	r := new(big.Int).Lsh(kk, 2)
	r.Add(r, big.NewInt(2))

	t := new(big.Int).Lsh(kk, 1)
	t.Add(t, bigOne)

	return Quad{Q: kk, R: r, S: new(big.Int), T: t}
}

// Produce returns the transform that shifts digit d out of the integer part
// and rescales by ten: (10, -10d, 0, 1).
func Produce(d uint8) Quad {
	r := big.NewInt(-10 * int64(d))
	return Quad{Q: new(big.Int).Set(bigTen), R: r, S: new(big.Int), T: new(big.Int).Set(bigOne)}
}

// Compose returns the matrix product a*b, i.e. the transform x -> a(b(x)).
func (a Quad) Compose(b Quad) Quad {
	return Quad{
		Q: dot(a.Q, b.Q, a.R, b.S),
		R: dot(a.Q, b.R, a.R, b.T),
		S: dot(a.S, b.Q, a.T, b.S),
		T: dot(a.S, b.R, a.T, b.T),
	}
}

// Extract evaluates the numerator and denominator of the transform at x
// without dividing: (Q*x + R, S*x + T).
func (a Quad) Extract(x int64) (num, den *big.Int) {
	bx := big.NewInt(x)
	num = new(big.Int).Mul(a.Q, bx)
	num.Add(num, a.R)
	den = new(big.Int).Mul(a.S, bx)
	den.Add(den, a.T)
	return num, den
}

// Apply returns floor(a(x)).
func (a Quad) Apply(x int64) *big.Int {
	num, den := a.Extract(x)
	return floorDiv(num, den)
}

// Equal reports whether both transforms have identical coefficients.
func (a Quad) Equal(b Quad) bool {
	return a.Q.Cmp(b.Q) == 0 && a.R.Cmp(b.R) == 0 &&
		a.S.Cmp(b.S) == 0 && a.T.Cmp(b.T) == 0
}

func (a Quad) String() string {
	return "(" + a.Q.String() + ", " + a.R.String() + ", " + a.S.String() + ", " + a.T.String() + ")"
}

// dot returns a*b + c*d.
func dot(a, b, c, d *big.Int) *big.Int {
	x := new(big.Int).Mul(a, b)
	return x.Add(x, new(big.Int).Mul(c, d))
}

// floorDiv divides rounding toward negative infinity. big.Int.Quo truncates
// toward zero, so the quotient is stepped down when the remainder and divisor
// disagree in sign.
func floorDiv(a, b *big.Int) *big.Int {
	q, m := new(big.Int).QuoRem(a, b, new(big.Int))
	if m.Sign() != 0 && (m.Sign() < 0) != (b.Sign() < 0) {
		q.Sub(q, bigOne)
	}
	return q
}
