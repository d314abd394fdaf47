package pipeline

import (
	"errors"

	"github.com/dwsmith1983/paddock/internal/schema"
)

// FailureKind classifies why an ingest invocation failed.
type FailureKind string

const (
	// FailureSchemaMismatch: observed columns differ from the expected set.
	FailureSchemaMismatch FailureKind = "SCHEMA_MISMATCH"
	// FailureNormalization: the identifier column is not integer-coercible.
	FailureNormalization FailureKind = "NORMALIZATION"
	// FailureConnectivity: fetch, database, or other I/O failed.
	FailureConnectivity FailureKind = "CONNECTIVITY"
)

// Classify maps an ingest error to its failure kind. Validation and
// normalization produce typed errors; everything else is an external
// collaborator failing.
func Classify(err error) FailureKind {
	var mismatch *schema.MismatchError
	if errors.As(err, &mismatch) {
		return FailureSchemaMismatch
	}
	var norm *schema.NormalizeError
	if errors.As(err, &norm) {
		return FailureNormalization
	}
	return FailureConnectivity
}
