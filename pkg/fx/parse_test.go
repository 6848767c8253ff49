package fx

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"FadeIn", "fadein", "fade-in", " FADE_IN "} {
		k, err := ParseKind(in)
		require.NoError(t, err, in)
		assert.Equal(t, FadeIn, k)
	}

	k, err := ParseKind("slide-in-left")
	require.NoError(t, err)
	assert.Equal(t, SlideInLeft, k)

	_, err = ParseKind("wobble")
	assert.Error(t, err)
}

func TestParseEasing(t *testing.T) {
	t.Parallel()

	tests := map[string]Easing{
		"ease":             Ease,
		"ease-in-out":      EaseInOut,
		"EaseInOutBack":    EaseInOutBack,
		"ease-out-elastic": EaseOutElastic,
		"linear":           Linear,
		"step-end":         StepEnd,
	}
	for in, want := range tests {
		got, err := ParseEasing(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseEasing("springy")
	assert.Error(t, err)
}

func TestParseFillMode(t *testing.T) {
	t.Parallel()

	f, err := ParseFillMode("Forwards")
	require.NoError(t, err)
	assert.Equal(t, FillForwards, f)

	_, err = ParseFillMode("sideways")
	assert.Error(t, err)
}

func TestTextRoundTripThroughJSON(t *testing.T) {
	t.Parallel()

	in := struct {
		Kind   Kind     `json:"kind"`
		Easing Easing   `json:"easing"`
		Fill   FillMode `json:"fill"`
	}{SlideInDown, EaseInOutCirc, FillBackwards}

	data, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"kind":"slide-in-down","easing":"ease-in-out-circ","fill":"backwards"}`, string(data))

	out := in
	out.Kind, out.Easing, out.Fill = 0, 0, 0
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, in, out)
}

func TestEnumStringsOutOfRange(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "42", Kind(42).String())
	assert.Equal(t, "blazefx-animation 42", ComputeClass(Config{Kind: 42}, true))
	assert.Equal(t, "-3", Easing(-3).String())
	assert.Len(t, Kinds(), 14)
	assert.Len(t, Easings(), 37)
}
