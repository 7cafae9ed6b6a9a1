package scenereleasex

// extractGroup reserves the final dash-delimited, lexicon-unmatched token for
// the release group. When no tag tokens followed it, the token was already
// consumed as a title candidate and the group stays unset.
//
// This heuristic has a known false-negative rate: a legitimate group name
// that collides with a lexicon entry classifies as that tag instead. The
// trade is deliberate; recovering such names would need a curated group list.
func (s *scan) extractGroup() {
	if s.boundary == -1 || len(s.unmatched) == 0 {
		return
	}
	idx := s.unmatched[len(s.unmatched)-1]
	if idx != len(s.tokens)-1 {
		return
	}
	tok := s.tokens[idx]
	if !tok.Hyphenated || tok.Bracketed {
		return
	}
	s.rel.Group = tok.Text
	s.unmatched = s.unmatched[:len(s.unmatched)-1]
}
