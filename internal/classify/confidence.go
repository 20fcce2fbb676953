package classify

// ConfidenceLevel expresses how certain a criterion is about its match.
// Higher values outrank lower ones when contributions tie on priority.
type ConfidenceLevel int

const (
	Low ConfidenceLevel = iota + 1
	Medium
	High
	// Explicit is reserved for declared markers such as annotations.
	Explicit
)

func (c ConfidenceLevel) String() string {
	switch c {
	case Low:
		return "LOW"
	case Medium:
		return "MEDIUM"
	case High:
		return "HIGH"
	case Explicit:
		return "EXPLICIT"
	default:
		return "UNKNOWN"
	}
}

// Weight returns the ordinal weight used for ranking.
func (c ConfidenceLevel) Weight() int {
	return int(c)
}
