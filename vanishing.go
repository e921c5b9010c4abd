package kzg

import "github.com/pkg/errors"

// vanishingPolynomialFromRoots builds the coefficients (constant term
// first) of the monic polynomial prod(x - roots[i]). Construction is
// incremental: starting from [-roots[0], 1], multiplying by (x - r) uses
// p'[j] = p[j]*(-r) + p[j-1].
func vanishingPolynomialFromRoots(roots []Fr) ([]Fr, error) {
	if len(roots) == 0 {
		return nil, errors.Wrap(ErrEmptyInput, "vanishing polynomial: no roots given")
	}

	poly := make([]Fr, 1, len(roots)+1)
	poly[0] = roots[0].Negate()

	for i := 1; i < len(roots); i++ {
		negRoot := roots[i].Negate()

		poly = append(poly, negRoot.Add(poly[i-1]))

		for j := i - 1; j >= 1; j-- {
			poly[j] = poly[j].Mul(negRoot).Add(poly[j-1])
		}
		poly[0] = poly[0].Mul(negRoot)
	}

	poly = append(poly, FrOne())
	return poly, nil
}
