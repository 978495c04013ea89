package expansion

import "gonum.org/v1/gonum/floats"

// The three translation operators. Each one is a pure transform of
// (source coefficients, source center, target center, kernel constants,
// truncation order) into a delta that is ADDED to the target's
// coefficients — sources are read-only and targets are never overwritten.
// All three are O(C(p+D,D)²) in the number of retained terms; p is small
// in practice, so the quadratic term cost is accepted.

// TranslateFromFarField merges another far-field expansion into this one
// by re-centering (the multinomial shift theorem) and adding:
//
//	Δcoeffs[β] = Σ_{α ≤ β} src[α] · Δ^{β-α}/(β-α)!,  Δ = (c_src-c_dst)/(k·h).
//
// Used when child-region expansions are pushed up into a parent region.
// The receiver's order grows to at least the source's order.
//
// Errors: ErrNilExpansion, ErrExpansionMismatch (different tables, kernel
// constants, or src == receiver), ErrDegenerateScale.
func (f *FarField) TranslateFromFarField(src *FarField) error {
	if src == nil {
		return ErrNilExpansion
	}
	if src == f || src.table != f.table || !sameKernel(src.aux, f.aux) {
		return ErrExpansionMismatch
	}
	kh, err := normScale(f.aux)
	if err != nil {
		return err
	}

	t := f.table
	p := src.order
	n := t.NumTerms(p)

	delta := make([]float64, t.Dim())
	for d := range delta {
		delta[d] = (src.center[d] - f.center[d]) / kh
	}
	dpow := make([]float64, n)
	if err = t.Monomials(delta, p, dpow); err != nil {
		return err
	}

	inv := t.InverseFactorials()
	buf := make([]float64, n)
	sum := make([]int, t.Dim())
	for a := 0; a < n; a++ {
		ca := src.coeffs[a]
		if ca == 0 {
			continue
		}
		alpha := t.Index(a)
		// Shift terms κ with |α|+|κ| ≤ p land on rank(α+κ).
		kN := t.NumTerms(p - t.OrderOf(a))
		for k := 0; k < kN; k++ {
			kappa := t.Index(k)
			for d := range sum {
				sum[d] = alpha[d] + kappa[d]
			}
			r, _ := t.Rank(sum)
			buf[r] += ca * dpow[k] * inv[k]
		}
	}

	f.grow(p)
	floats.Add(f.coeffs[:n], buf)
	if p > f.order {
		f.order = p
	}
	return nil
}

// TranslateToLocal converts the far-field expansion into a local
// expansion about dst's center and adds the result into dst's
// coefficients. truncationOrder bounds the number of output terms,
// independent of how far the receiver has accumulated (it must not
// exceed the accumulated order).
//
// With z = (c_far - c_local)/(k·h) and m the kernel derivative map at z
// (queried up to twice the truncation order), the contribution is
//
//	Δcoeffs[β] = 1/(β!·(k·h)^{|β|}) · Σ_{|α| ≤ p} (-1)^{|α|} · m[β+α](z) · src[α],
//
// which folds every factorial and kernel rescale into the local
// coefficients, as Local evaluation expects.
//
// Errors: ErrNilExpansion, ErrExpansionMismatch, ErrOrderExceeded (bad
// truncation order), ErrDegenerateScale.
func (f *FarField) TranslateToLocal(dst *Local, truncationOrder int) error {
	if dst == nil {
		return ErrNilExpansion
	}
	if dst.table != f.table || !sameKernel(dst.aux, f.aux) {
		return ErrExpansionMismatch
	}
	if truncationOrder < 0 || truncationOrder > f.order {
		return ErrOrderExceeded
	}
	kh, err := normScale(f.aux)
	if err != nil {
		return err
	}

	t := f.table
	p := truncationOrder
	n := t.NumTerms(p)

	z := make([]float64, t.Dim())
	for d := range z {
		z[d] = (f.center[d] - dst.center[d]) / kh
	}
	dm, err := f.aux.DerivativeMap(z, 2*p)
	if err != nil {
		return err
	}

	// (1/(k·h))^o by total order.
	khInvPow := make([]float64, p+1)
	khInvPow[0] = 1
	for o := 1; o <= p; o++ {
		khInvPow[o] = khInvPow[o-1] / kh
	}

	inv := t.InverseFactorials()
	buf := make([]float64, n)
	for b := 0; b < n; b++ {
		beta := t.Index(b)
		acc := 0.0
		for a := 0; a < n; a++ {
			ca := f.coeffs[a]
			if ca == 0 {
				continue
			}
			term := ca
			for d, ad := range t.Index(a) {
				term *= dm[d][beta[d]+ad]
			}
			if t.OrderOf(a)%2 == 1 {
				term = -term
			}
			acc += term
		}
		buf[b] = acc * inv[b] * khInvPow[t.OrderOf(b)]
	}

	dst.grow(p)
	floats.Add(dst.coeffs[:n], buf)
	if p > dst.order {
		dst.order = p
	}
	return nil
}

// TranslateToLocal re-centers this local expansion onto dst (e.g. pushing
// a parent region's local expansion down to a child) and adds the result
// into dst's coefficients. Re-centering a polynomial is exact:
//
//	Δcoeffs[γ] = Σ_{κ} src[γ+κ] · C(γ+κ, γ) · Δ^κ,  Δ = c_dst - c_src (raw),
//
// structurally the far→far shift over local coefficients.
//
// Errors: ErrNilExpansion, ErrExpansionMismatch.
func (l *Local) TranslateToLocal(dst *Local) error {
	if dst == nil {
		return ErrNilExpansion
	}
	if dst == l || dst.table != l.table || !sameKernel(dst.aux, l.aux) {
		return ErrExpansionMismatch
	}

	t := l.table
	p := l.order
	n := t.NumTerms(p)

	delta := make([]float64, t.Dim())
	for d := range delta {
		delta[d] = dst.center[d] - l.center[d]
	}
	dpow := make([]float64, n)
	if err := t.Monomials(delta, p, dpow); err != nil {
		return err
	}

	inv := t.InverseFactorials()
	buf := make([]float64, n)
	sum := make([]int, t.Dim())
	for g := 0; g < n; g++ {
		gamma := t.Index(g)
		acc := 0.0
		kN := t.NumTerms(p - t.OrderOf(g))
		for k := 0; k < kN; k++ {
			kappa := t.Index(k)
			for d := range sum {
				sum[d] = gamma[d] + kappa[d]
			}
			b, _ := t.Rank(sum)
			// C(β,γ)·Δ^κ with β = γ+κ, via folded factorials: β!/(γ!·κ!).
			acc += l.coeffs[b] * dpow[k] * inv[k] / inv[b]
		}
		buf[g] = acc * inv[g]
	}

	dst.grow(p)
	floats.Add(dst.coeffs[:n], buf)
	if p > dst.order {
		dst.order = p
	}
	return nil
}
