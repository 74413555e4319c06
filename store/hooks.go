package store

// Hooks are lightweight callbacks for high-signal events.
// Implementations MUST be cheap and non-blocking; the store calls them inline.
type Hooks interface {
	// An entry with an unreadable envelope was deleted.
	// where ∈ {"read", "sweep"}
	CorruptEntry(storageKey, where string)

	// Provider returned ok=false on Set (backpressure/admission).
	ProviderSetRejected(storageKey string)

	// A sweep finished; removed counts expired and corrupt entries deleted.
	ExpiredSwept(namespace string, removed int)

	// A sweep could not delete an entry.
	SweepDeleteError(storageKey string, err error)
}

// NopHooks is the default no-op
type NopHooks struct{}

func (NopHooks) CorruptEntry(string, string)    {}
func (NopHooks) ProviderSetRejected(string)     {}
func (NopHooks) ExpiredSwept(string, int)       {}
func (NopHooks) SweepDeleteError(string, error) {}
