package search

// Sequencer issues strictly increasing tie-break identities. The zero value
// is ready to use and starts at 0. Each engine invocation owns one; it is not
// safe for concurrent use.
type Sequencer struct {
	next uint64
}

// Next returns the next identity.
func (s *Sequencer) Next() uint64 {
	id := s.next
	s.next++

	return id
}

// Issued returns how many identities have been handed out.
func (s *Sequencer) Issued() uint64 { return s.next }
