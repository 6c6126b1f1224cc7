package we

// Snapshot is the state of a container together with the revision that
// produced it.
type Snapshot[S any] struct {
	Revision Revision
	Type     StateType
	State    S
}

// Transitioned reports whether at least one dispatch has been committed.
func (s Snapshot[S]) Transitioned() bool {
	return s.Revision != InitialRevision
}
