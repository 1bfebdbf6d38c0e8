package spigot

import (
	"fmt"
	"iter"
	"math/big"
)

// Bounds at which the current transform is evaluated. Both ends of the
// interval must floor to the same integer before a digit is emitted. These
// are fixed for the continued fraction produced by Term and must not change.
const (
	candidateBound = 3
	safeBound      = 4
)

// InvariantError reports a produced value that cannot be a decimal digit.
// It is only ever raised through panic: reaching it means the safety check
// is broken, not that the caller did something wrong.
type InvariantError struct {
	Value *big.Int
	Index uint64
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("spigot: digit %d out of range: %s", e.Index, e.Value)
}

// Generator produces the decimal digits of pi one at a time.
//
// The first digit is the integer part (3); every later digit is fractional.
// The sequence is infinite and cannot be rewound. A Generator must not be
// copied or shared between goroutines; separate Generators are independent.
type Generator struct {
	z       Quad
	k       uint64
	emitted uint64
}

// New returns a Generator positioned before the first digit.
func New() *Generator {
	return &Generator{z: Identity(), k: 1}
}

// Next returns the next digit as a big.Int.
func (g *Generator) Next() *big.Int {
	n, _ := g.next()
	return n
}

// NextDigit returns the next digit narrowed to a uint8.
func (g *Generator) NextDigit() uint8 {
	_, d := g.next()
	return d
}

func (g *Generator) next() (*big.Int, uint8) {
	for {
		n := g.z.Apply(candidateBound)
		if g.z.Apply(safeBound).Cmp(n) == 0 {
			d := toDigit(n, g.emitted)
			g.z = Produce(d).Compose(g.z)
			g.emitted++
			return n, d
		}
		g.z = g.z.Compose(Term(g.k))
		g.k++
	}
}

// Digits returns the remaining digits as a sequence. Ranging over it
// advances g itself; breaking out of the loop leaves g at the next unread
// digit.
func (g *Generator) Digits() iter.Seq[*big.Int] {
	return func(yield func(*big.Int) bool) {
		for {
			if !yield(g.Next()) {
				return
			}
		}
	}
}

// Terms returns the index of the next continued-fraction term to absorb.
// It starts at 1 and never decreases.
func (g *Generator) Terms() uint64 {
	return g.k
}

// Emitted returns how many digits have been produced.
func (g *Generator) Emitted() uint64 {
	return g.emitted
}

// toDigit narrows n to a uint8, panicking if it is not in [0, 9].
func toDigit(n *big.Int, index uint64) uint8 {
	if !n.IsInt64() {
		panic(&InvariantError{Value: new(big.Int).Set(n), Index: index})
	}
	v := n.Int64()
	if v < 0 || v > 9 {
		panic(&InvariantError{Value: new(big.Int).Set(n), Index: index})
	}
	return uint8(v)
}
