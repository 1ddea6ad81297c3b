// Package orchestration coordinates streaming conversion runs: parsing the
// input into chunks, fanning the chunks out to a worker pool, and reassembling
// the converted records into strict input order before delivery.
//
// The package depends only on interfaces for progress display, record
// delivery, and metrics, keeping presentation and instrumentation concerns
// out of the pipeline itself.
package orchestration
