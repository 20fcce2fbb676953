package classify

// CompatibilityPolicy decides whether two kinds may plausibly describe the
// same type. Incompatible pairs escalate conflict severity; an incompatible
// pair tied at the winning priority leaves the type in CONFLICT.
type CompatibilityPolicy[K comparable] interface {
	Compatible(a, b K) bool
}

// NoneCompatible treats every distinct pair of kinds as incompatible.
func NoneCompatible[K comparable]() CompatibilityPolicy[K] {
	return noneCompatible[K]{}
}

type noneCompatible[K comparable] struct{}

func (noneCompatible[K]) Compatible(a, b K) bool {
	return a == b
}

// PairCompatibility lists the unordered kind pairs that may coexist. Pairs
// not listed are incompatible, identical kinds always compatible.
type PairCompatibility[K comparable] struct {
	pairs map[[2]K]struct{}
}

// NewPairCompatibility builds a policy from unordered pairs.
func NewPairCompatibility[K comparable](pairs ...[2]K) *PairCompatibility[K] {
	p := &PairCompatibility[K]{pairs: make(map[[2]K]struct{}, len(pairs)*2)}
	for _, pair := range pairs {
		p.pairs[[2]K{pair[0], pair[1]}] = struct{}{}
		p.pairs[[2]K{pair[1], pair[0]}] = struct{}{}
	}
	return p
}

func (p *PairCompatibility[K]) Compatible(a, b K) bool {
	if a == b {
		return true
	}
	_, ok := p.pairs[[2]K{a, b}]
	return ok
}
