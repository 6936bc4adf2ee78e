// Package error provides the immutable, transport-agnostic error value produced by the catalog.
//
// It exposes a single concrete type Error that implements contract.Error and integrates
// with the standard library's errors helpers via As / HasCode.
//
// Key characteristics:
//   - Stable, machine-facing Code
//   - Short Title and long-form Detail, both resolved at construction
//   - Status drawn from a closed enumeration, mapped to HTTP by HTTPStatus
//   - Problem wire shape encodable as JSON or CBOR
//
// Errors are normally produced by the catalog package rather than built directly;
// New and E are available for adapters and tests.
package error
