// Package manager is the dispatch facade request handlers talk to. It resolves
// a model name to a cached live instance, creating it on first use, and runs
// requests against it. It is structured into small files by concern:
//
//   - manager.go: Manager type, constructors, available-set projections.
//   - config.go: ManagerConfig and NewWithConfig.
//   - resolve.go: Resolve and the per-name construction guard.
//   - dispatch.go: Dispatch, execution error capture.
//   - errors.go: dispatch error types and helpers (IsNoName, IsNotAvailable, ...).
//   - types.go: per-name State.
//   - status_report.go: Status reporting for /status.
//   - events.go, eventpub_memory.go: lifecycle event publishing.
//
// Every failure crossing the package boundary is one of the error types in
// errors.go; panics raised by model code are recovered and converted.
package manager
