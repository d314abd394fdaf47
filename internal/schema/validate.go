package schema

import (
	"fmt"
	"strings"
)

// MismatchError reports a column set that differs from the expected schema.
// It carries both lists so the failure notification can show them.
type MismatchError struct {
	Got  []string
	Want []string
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("column mismatch: got [%s], want [%s]",
		strings.Join(e.Got, ", "), strings.Join(e.Want, ", "))
}

// Validate compares an observed column list against the expected one for
// exact equality: same members, same order. Any difference rejects the file
// wholesale. No side effects beyond the returned error.
func Validate(got, want []string) error {
	if len(want) == 0 {
		return fmt.Errorf("expected columns not configured")
	}
	if len(got) != len(want) {
		return &MismatchError{Got: got, Want: want}
	}
	for i := range want {
		if got[i] != want[i] {
			return &MismatchError{Got: got, Want: want}
		}
	}
	return nil
}
