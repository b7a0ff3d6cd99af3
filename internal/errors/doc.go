// Package errors defines the typed errors surfaced by the r2pipe library.
//
// All struct error types implement the R2PipeError marker interface so that
// callers can distinguish library errors from plain I/O failures. Frequently
// checked conditions are exposed as sentinel errors for use with errors.Is.
package errors
