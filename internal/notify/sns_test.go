package notify

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dwsmith1983/paddock/pkg/types"
)

type mockSNS struct {
	published []*sns.PublishInput
	err       error
}

func (m *mockSNS) Publish(_ context.Context, input *sns.PublishInput, _ ...func(*sns.Options)) (*sns.PublishOutput, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.published = append(m.published, input)
	return &sns.PublishOutput{}, nil
}

func TestSNSSink_Send(t *testing.T) {
	mock := &mockSNS{}
	sink, err := NewSNSSink("arn:aws:sns:eu-west-1:123456789:ingest-outcomes", WithSNSClient(mock))
	require.NoError(t, err)

	n := types.Notification{
		RunID:     "01JTEST",
		Outcome:   types.OutcomeSuccess,
		Bucket:    "uploads",
		Key:       "results.csv",
		Message:   "loaded s3://uploads/results.csv: 2 new rows",
		Timestamp: time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC),
	}

	require.NoError(t, sink.Send(n))

	require.Len(t, mock.published, 1)
	pub := mock.published[0]
	assert.Equal(t, "arn:aws:sns:eu-west-1:123456789:ingest-outcomes", *pub.TopicArn)
	assert.Equal(t, "[SUCCESS] results.csv", *pub.Subject)

	var decoded types.Notification
	require.NoError(t, json.Unmarshal([]byte(*pub.Message), &decoded))
	assert.Equal(t, types.OutcomeSuccess, decoded.Outcome)
	assert.Equal(t, "results.csv", decoded.Key)
	assert.Equal(t, "01JTEST", decoded.RunID)
}

func TestSNSSink_EmptyTopicARN(t *testing.T) {
	_, err := NewSNSSink("")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "topic ARN required")
}

func TestSNSSink_SubjectTruncation(t *testing.T) {
	mock := &mockSNS{}
	sink, err := NewSNSSink("arn:aws:sns:eu-west-1:123456789:ingest-outcomes", WithSNSClient(mock))
	require.NoError(t, err)

	n := types.Notification{
		Outcome: types.OutcomeFailure,
		Key:     "a-very/deeply/nested/path/to/an/upload/with/an/unreasonably/long/object/key/that/overflows/the/sns/subject/limit.csv",
	}
	require.NoError(t, sink.Send(n))
	assert.LessOrEqual(t, len(*mock.published[0].Subject), 100)
}
