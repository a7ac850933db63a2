package search

// Tracker records which states a traversal has discovered (placed in its
// frontier) and processed (expanded). Membership is by State.Key.
type Tracker struct {
	discovered map[string]struct{}
	processed  map[string]struct{}
}

// NewTracker returns an empty Tracker.
func NewTracker() *Tracker {
	return &Tracker{
		discovered: make(map[string]struct{}),
		processed:  make(map[string]struct{}),
	}
}

// MarkDiscovered records s as discovered.
func (t *Tracker) MarkDiscovered(s State) { t.discovered[s.Key()] = struct{}{} }

// IsDiscovered reports whether s was marked discovered.
func (t *Tracker) IsDiscovered(s State) bool {
	_, ok := t.discovered[s.Key()]

	return ok
}

// MarkProcessed records s as processed.
func (t *Tracker) MarkProcessed(s State) { t.processed[s.Key()] = struct{}{} }

// IsProcessed reports whether s was marked processed.
func (t *Tracker) IsProcessed(s State) bool {
	_, ok := t.processed[s.Key()]

	return ok
}

// Reset clears both sets. Call it only between traversals or between
// IDDFS iterations, never mid-traversal.
func (t *Tracker) Reset() {
	clear(t.discovered)
	clear(t.processed)
}
