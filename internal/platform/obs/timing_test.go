package obs

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeLogsFailure(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	ctx := logger.WithContext(context.Background())

	func() (err error) {
		defer Time(ctx, "dispatch.truck")(&err)
		return errors.New("boom")
	}()

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "dispatch.truck", line["op"])
	assert.Equal(t, "boom", line["error"])
	assert.Equal(t, "warn", line["level"])
}

func TestTimeWithoutLoggerIsSilent(t *testing.T) {
	assert.NotPanics(t, func() {
		var err error
		Time(context.Background(), "noop")(&err)
	})
}

func TestRequestID(t *testing.T) {
	ctx := context.WithValue(context.Background(), RequestIDKey, "abc")
	assert.Equal(t, "abc", RequestID(ctx))
	assert.Equal(t, "", RequestID(context.Background()))
}

func TestTimeTagsRequestID(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)
	ctx := context.WithValue(logger.WithContext(context.Background()), RequestIDKey, "req-7")

	var err error
	Time(ctx, "dispatch.report")(&err)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "req-7", line["req_id"])
	assert.Equal(t, "operation complete", line["message"])
}

func TestLoggerWithoutRequestID(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	ctx := logger.WithContext(context.Background())

	Logger(ctx).Info().Msg("hello")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.NotContains(t, line, "req_id")
}
