package models

// AnswerSet accumulates the yes/no answers of one game, keyed by feature
// and preserving ask order. It is scoped to a single session and
// discarded afterwards.
type AnswerSet struct {
	order  []string
	values map[string]int
}

// NewAnswerSet returns an empty answer set.
func NewAnswerSet() *AnswerSet {
	return &AnswerSet{values: map[string]int{}}
}

// Set records an answer (0 or 1) for a feature. Re-answering a feature
// overwrites the value but keeps its original position.
func (s *AnswerSet) Set(feature string, answer int) {
	if _, ok := s.values[feature]; !ok {
		s.order = append(s.order, feature)
	}
	s.values[feature] = answer
}

// Get returns the recorded answer for a feature.
func (s *AnswerSet) Get(feature string) (int, bool) {
	answer, ok := s.values[feature]
	return answer, ok
}

// Len returns the number of answered features.
func (s *AnswerSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.order)
}

// Features returns the answered feature keys in ask order.
func (s *AnswerSet) Features() []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Snapshot copies the answers into a plain map for history records.
func (s *AnswerSet) Snapshot() map[string]int {
	out := make(map[string]int, len(s.values))
	for k, v := range s.values {
		out[k] = v
	}
	return out
}
