package mathfuncs

// Polynomial holds coefficients in ascending order of power, so p[i] is the
// coefficient of x^i. Empirical calibration curves are stored in this form
// with their fitted constants reproduced verbatim.
type Polynomial []float64

// At evaluates the polynomial at x by summing explicit ascending powers,
// matching the term order the calibration constants were fitted against.
// Do not rewrite this in Horner form: the re-association changes the
// rounding of the fitted curves.
func (p Polynomial) At(x float64) float64 {
	sum := 0.0
	power := 1.0
	for i, c := range p {
		if i > 0 {
			power *= x
		}
		sum += c * power
	}
	return sum
}

// Degree returns the degree of the polynomial, or -1 for an empty one.
func (p Polynomial) Degree() int {
	return len(p) - 1
}
