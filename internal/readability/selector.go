package readability

// Select returns the top-scored candidate, or ErrNoCandidate if the
// set is empty.
func Select(candidates *Candidates) (*Candidate, error) {
	if candidates == nil {
		return nil, ErrNoCandidate
	}
	best := candidates.Best()
	if best == nil {
		return nil, ErrNoCandidate
	}
	return best, nil
}
