// Package triot validates integer batches and maps a transformation over them
// using a bounded pool of workers, returning results in input order.
//
// Entry points
//   - Validate: gates a candidate input into a well-formed integer sequence.
//   - Executor: generic bounded map-and-collect engine. Run returns results and
//     an explicit error; RunCollect keeps the legacy empty-on-failure contract.
//   - Processor: the canonical doubling pipeline built on top of both.
//
// Execution model
// A batch is synchronous: Run blocks until every item has been transformed or
// one item has failed. The pool size for a batch is min(MaxWorkers, len(items)),
// so small batches never hold idle workers. Each item carries its input index
// and writes its own result slot; completion order never leaks into the output.
//
// Failure policy
// A batch is all-or-nothing. The first item failure (error or recovered panic)
// cancels the remaining work and discards every already-computed result. Run
// reports the failure as an error that unwraps to ErrTaskFailed (or
// ErrTaskPanicked) and exposes the offending index and worker id via
// ItemMetaError. Individual items are never retried.
package triot
