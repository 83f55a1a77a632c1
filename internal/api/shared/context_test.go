package shared

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestSetAndGetTraceID(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	assert.Empty(t, GetTraceID(ctx), "Expected empty trace ID in original context")

	ctxWithTrace := SetTraceID(ctx)

	traceID := GetTraceID(ctxWithTrace)
	assert.Len(t, traceID, TraceIDLength)
	assert.True(t, IsValidTraceID(traceID))
	assert.Empty(t, GetTraceID(ctx), "Expected original context to remain unchanged")
}

func TestGetTraceIDWithInvalidContext(t *testing.T) {
	t.Parallel()

	ctx := context.WithValue(context.Background(), TraceIDKey, 123) // Not a string
	assert.Empty(t, GetTraceID(ctx))
}

func TestGenerateTraceIDUniqueness(t *testing.T) {
	t.Parallel()

	seen := make(map[string]struct{}, 1000)
	for range 1000 {
		id := generateTraceID()
		_, dup := seen[id]
		assert.False(t, dup, "duplicate trace ID %s", id)
		seen[id] = struct{}{}
	}
}

func TestIsValidTraceID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  bool
	}{
		{"0123456789abcdef0123456789abcdef", true},
		{"0123456789ABCDEF0123456789ABCDEF", false},
		{"0123456789abcdef", false},
		{"0123456789abcdef0123456789abcdeg", false},
		{"", false},
		{"<script>alert(1)</script>xxxxxxx", false},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, IsValidTraceID(tc.input), "input %q", tc.input)
	}
}

func TestClientID(t *testing.T) {
	t.Parallel()

	_, ok := GetClientID(context.Background())
	assert.False(t, ok)

	_, ok = GetClientID(WithClientID(context.Background(), uuid.Nil))
	assert.False(t, ok, "nil client ID is not an identity")

	id := uuid.New()
	got, ok := GetClientID(WithClientID(context.Background(), id))
	assert.True(t, ok)
	assert.Equal(t, id, got)
}
