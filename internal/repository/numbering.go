package repository

import "fmt"

// FormatDocumentNumber builds {PREFIX}-{YYYY}-{seq}, e.g. QUO-2025-001.
// The sequence is zero-padded to three digits and grows past 999 unpadded.
func FormatDocumentNumber(prefix string, year, sequence int) string {
	return fmt.Sprintf("%s-%04d-%03d", prefix, year, sequence)
}

type sequenceKey struct {
	prefix string
	year   int
}

// sequencer hands out per-prefix, per-year document sequence numbers.
// Callers serialise access.
type sequencer struct {
	last map[sequenceKey]int
}

func newSequencer() *sequencer {
	return &sequencer{last: make(map[sequenceKey]int)}
}

func (s *sequencer) next(prefix string, year int) int {
	key := sequenceKey{prefix: prefix, year: year}
	s.last[key]++
	return s.last[key]
}
