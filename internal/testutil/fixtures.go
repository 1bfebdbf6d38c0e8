package testutil

// PiDigits holds the first 100 digits of pi. The first character is the
// integer part.
const PiDigits = "3141592653589793238462643383279502884197169399375105820974944592307816406286208998628034825342117067"

// ReferenceDigits returns the first n digits of PiDigits as numbers.
// It panics if n exceeds len(PiDigits).
func ReferenceDigits(n int) []uint8 {
	out := make([]uint8, n)
	for i := range out {
		out[i] = PiDigits[i] - '0'
	}
	return out
}
