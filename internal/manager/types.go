package manager

// State is the lifecycle state of a model name as seen through the cache.
type State string

const (
	// StateUnresolved: no live instance yet, or the last construction failed.
	StateUnresolved State = "unresolved"
	// StateLoading: a construction is in progress.
	StateLoading State = "loading"
	// StateActive: a live instance is cached for the rest of the process.
	StateActive State = "active"
)

// build tracks one in-flight construction so concurrent callers share it.
type build struct {
	done chan struct{}
	err  error
}
