package schema

import (
	"strings"
	"testing"

	"github.com/dwsmith1983/paddock/internal/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultColumns(t *testing.T) {
	cols, err := DefaultColumns()
	require.NoError(t, err)
	assert.Equal(t, []string{"id", "name", "odds", "result"}, cols)
}

func TestParseColumns_BlankLines(t *testing.T) {
	cols, err := ParseColumns(strings.NewReader("id\n\nname\n  \nodds\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"id", "name", "odds"}, cols)
}

func TestParseColumns_Empty(t *testing.T) {
	_, err := ParseColumns(strings.NewReader("\n\n"))
	assert.Error(t, err)
}

func TestValidate_Match(t *testing.T) {
	want := []string{"id", "name", "odds", "result"}
	assert.NoError(t, Validate([]string{"id", "name", "odds", "result"}, want))
}

func TestValidate_MissingColumn(t *testing.T) {
	want := []string{"id", "name", "odds", "result"}
	err := Validate([]string{"id", "name", "odds"}, want)
	require.Error(t, err)

	var mismatch *MismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, []string{"id", "name", "odds"}, mismatch.Got)
	assert.Equal(t, want, mismatch.Want)
	// Both lists must surface in the failure message.
	assert.Contains(t, err.Error(), "id, name, odds]")
	assert.Contains(t, err.Error(), "id, name, odds, result")
}

func TestValidate_WrongOrder(t *testing.T) {
	want := []string{"id", "name", "odds", "result"}
	err := Validate([]string{"name", "id", "odds", "result"}, want)
	var mismatch *MismatchError
	require.ErrorAs(t, err, &mismatch)
}

func TestValidate_NoExpectedColumns(t *testing.T) {
	err := Validate([]string{"id"}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not configured")
}

func TestNormalizeID(t *testing.T) {
	rs := &table.RecordSet{
		Columns: []string{"id", "name"},
		Rows: [][]string{
			{"42.0", "Horse A"},
			{"42", "Horse B"},
			{"007", "Horse C"},
		},
	}
	require.NoError(t, NormalizeID(rs, "id"))
	assert.Equal(t, "42", rs.Rows[0][0])
	assert.Equal(t, "42", rs.Rows[1][0])
	assert.Equal(t, "7", rs.Rows[2][0])
}

func TestNormalizeID_Fractional(t *testing.T) {
	rs := &table.RecordSet{
		Columns: []string{"id"},
		Rows:    [][]string{{"42.5"}},
	}
	err := NormalizeID(rs, "id")
	require.Error(t, err)

	var ne *NormalizeError
	require.ErrorAs(t, err, &ne)
	assert.Equal(t, "id", ne.Column)
	assert.Equal(t, "42.5", ne.Value)
}

func TestNormalizeID_DoubleZeroSuffix(t *testing.T) {
	// Only one literal ".0" is stripped; "42.00" stays fractional and fails.
	rs := &table.RecordSet{
		Columns: []string{"id"},
		Rows:    [][]string{{"42.00"}},
	}
	var ne *NormalizeError
	require.ErrorAs(t, NormalizeID(rs, "id"), &ne)
}

func TestNormalizeID_ColumnAbsent(t *testing.T) {
	rs := &table.RecordSet{Columns: []string{"name"}}
	assert.Error(t, NormalizeID(rs, "id"))
}
