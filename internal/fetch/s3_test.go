package fetch

import (
	"context"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockS3 struct {
	objects map[string]string
	calls   []string
}

func (m *mockS3) GetObject(_ context.Context, input *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	path := *input.Bucket + "/" + *input.Key
	m.calls = append(m.calls, path)
	body, ok := m.objects[path]
	if !ok {
		return nil, fmt.Errorf("NoSuchKey: %s", path)
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(strings.NewReader(body))}, nil
}

func TestFetch(t *testing.T) {
	mock := &mockS3{objects: map[string]string{
		"uploads/results.csv": "id,name,odds,result\n1,Horse A,5/1,Win\n",
	}}
	f, err := New(context.Background(), WithClient(mock))
	require.NoError(t, err)

	data, err := f.Fetch(context.Background(), "uploads", "results.csv")
	require.NoError(t, err)
	assert.Equal(t, "id,name,odds,result\n1,Horse A,5/1,Win\n", string(data))
	assert.Equal(t, []string{"uploads/results.csv"}, mock.calls)
}

func TestFetch_Missing(t *testing.T) {
	f, err := New(context.Background(), WithClient(&mockS3{objects: map[string]string{}}))
	require.NoError(t, err)

	_, err = f.Fetch(context.Background(), "uploads", "missing.csv")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "s3://uploads/missing.csv")
}
