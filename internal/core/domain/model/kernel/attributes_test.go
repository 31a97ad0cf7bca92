package kernel_test

import (
	"encoding/json"
	"math"
	"testing"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAttributes(t *testing.T) {
	t.Run("should accept nested JSON-like data", func(t *testing.T) {
		attrs, err := kernel.NewAttributes("preferences", map[string]any{
			"newsletter": true,
			"language":   "en",
			"limits":     map[string]any{"daily": 3, "ratio": 0.5},
			"tags":       []string{"vip", "early"},
			"nothing":    nil,
		})

		require.NoError(t, err)
		assert.Equal(t, 5, attrs.Len())
		nothing, ok := attrs.Get("nothing")
		require.True(t, ok)
		assert.Nil(t, nothing)

		tags, ok := attrs.Get("tags")
		require.True(t, ok)
		assert.Equal(t, []any{"vip", "early"}, tags)
	})

	t.Run("nil map is empty", func(t *testing.T) {
		attrs, err := kernel.NewAttributes("details", nil)
		require.NoError(t, err)
		assert.Zero(t, attrs.Len())
	})

	t.Run("should reject unsupported values", func(t *testing.T) {
		for name, value := range map[string]any{
			"func":    func() {},
			"channel": make(chan int),
			"struct":  struct{ A int }{A: 1},
			"nan":     math.NaN(),
			"inf":     math.Inf(1),
			"intmap":  map[int]string{1: "a"},
		} {
			_, err := kernel.NewAttributes("details", map[string]any{"bad": value})

			var validationErr *errs.ValidationError
			require.ErrorAs(t, err, &validationErr, name)
			assert.Equal(t, "details", validationErr.Field)
			assert.Equal(t, "Attributes must be serializable structured data: bad", validationErr.Message)
		}
	})

	t.Run("should own its data", func(t *testing.T) {
		nested := map[string]any{"level": 1}
		attrs, err := kernel.NewAttributes("details", map[string]any{"nested": nested})
		require.NoError(t, err)

		nested["level"] = 2
		out := attrs.ToMap()
		out["nested"].(map[string]any)["level"] = 3

		level, _ := attrs.Get("nested")
		assert.Equal(t, int64(1), level.(map[string]any)["level"])
	})
}

func TestAttributes_JSON(t *testing.T) {
	t.Run("should round trip", func(t *testing.T) {
		original, err := kernel.NewAttributes("details", map[string]any{
			"gift": true,
			"note": "leave at door",
			"qty":  2,
		})
		require.NoError(t, err)

		data, err := json.Marshal(original)
		require.NoError(t, err)
		assert.JSONEq(t, `{"gift":true,"note":"leave at door","qty":2}`, string(data))

		var decoded kernel.Attributes
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.True(t, original.IsEqual(decoded))
	})

	t.Run("empty and null payloads decode to empty", func(t *testing.T) {
		for _, payload := range []string{"", "null", "  "} {
			attrs, err := kernel.AttributesFromJSON("details", []byte(payload))
			require.NoError(t, err)
			assert.Zero(t, attrs.Len())
		}
	})

	t.Run("should reject non-object payloads", func(t *testing.T) {
		_, err := kernel.AttributesFromJSON("details", []byte(`[1,2]`))
		require.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("zero value marshals as empty object", func(t *testing.T) {
		data, err := json.Marshal(kernel.Attributes{})
		require.NoError(t, err)
		assert.Equal(t, "{}", string(data))
	})
}

func TestEventRecorder(t *testing.T) {
	var recorder kernel.EventRecorder

	first := testEvent{BaseEvent: kernel.NewBaseEvent(), name: "first"}
	second := testEvent{BaseEvent: kernel.NewBaseEvent(), name: "second"}
	recorder.Record(first)
	recorder.Record(second)

	assert.Equal(t, 2, recorder.PendingEventCount())

	drained := recorder.DrainEvents()
	require.Len(t, drained, 2)
	assert.Equal(t, "first", drained[0].EventType())
	assert.Equal(t, "second", drained[1].EventType())
	assert.NotEqual(t, drained[0].EventID(), drained[1].EventID())
	assert.False(t, drained[0].OccurredAt().IsZero())

	assert.Zero(t, recorder.PendingEventCount())
	again := recorder.DrainEvents()
	assert.NotNil(t, again)
	assert.Empty(t, again)
}

type testEvent struct {
	kernel.BaseEvent
	name string
}

func (e testEvent) EventType() string   { return e.name }
func (e testEvent) AggregateID() string { return "aggregate" }
