// Package spigot streams the decimal digits of pi using exact integer
// arithmetic.
//
// The state is a single bilinear transform z, a Quad, that maps the unknown
// tail of pi's continued fraction onto the value still to be printed. Each
// step either emits a digit, when z evaluated at 3 and at 4 floors to the same
// integer, or absorbs the next continued-fraction term into z. Emitting a
// digit composes z with a transform that subtracts the digit and multiplies
// by ten, so the next fractional place becomes the integer part.
//
// Coefficients are math/big integers and grow without bound, so later digits
// cost more than earlier ones. There is no precision chosen up front.
//
// Usage:
//
//	g := spigot.New()
//	for d := range g.Digits() {
//	    fmt.Print(d)
//	    if g.Emitted() == 100 {
//	        break
//	    }
//	}
package spigot
