package table

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	rs, err := Parse(strings.NewReader("id,name,odds,result\n1,Horse A,5/1,Win\n2,Horse B,10/1,Lose\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"id", "name", "odds", "result"}, rs.Columns)
	require.Len(t, rs.Rows, 2)
	assert.Equal(t, []string{"1", "Horse A", "5/1", "Win"}, rs.Rows[0])
}

func TestParse_HeaderOnly(t *testing.T) {
	rs, err := Parse(strings.NewReader("id,name,odds,result\n"))
	require.NoError(t, err)
	assert.Empty(t, rs.Rows)
}

func TestParse_Empty(t *testing.T) {
	_, err := Parse(strings.NewReader(""))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "empty file")
}

func TestParse_RaggedRow(t *testing.T) {
	_, err := Parse(strings.NewReader("id,name\n1,Horse A,extra\n"))
	assert.Error(t, err)
}

func TestParse_QuotedFields(t *testing.T) {
	rs, err := Parse(strings.NewReader("id,name\n1,\"Dasher, The Second\"\n"))
	require.NoError(t, err)
	assert.Equal(t, "Dasher, The Second", rs.Rows[0][1])
}

func TestColumnIndex(t *testing.T) {
	rs := &RecordSet{Columns: []string{"id", "name"}}
	assert.Equal(t, 0, rs.ColumnIndex("id"))
	assert.Equal(t, 1, rs.ColumnIndex("name"))
	assert.Equal(t, -1, rs.ColumnIndex("odds"))
}
