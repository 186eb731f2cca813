package detect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/remedy/scoring"
)

func TestApplyThresholds(t *testing.T) {
	th, err := NewThresholds()
	require.NoError(t, err)

	t.Run("score below threshold is bad", func(t *testing.T) {
		scores := scoring.ScoreSet{
			scoring.MetricTrustworthiness: {Score: scoring.Float(0.69)},
		}

		out := ApplyThresholds(scores, th)
		assert.True(t, out[scoring.MetricTrustworthiness].IsBad)
		assert.True(t, out.IsBadResponse())
	})

	t.Run("score exactly at threshold is not bad", func(t *testing.T) {
		scores := scoring.ScoreSet{
			scoring.MetricTrustworthiness: {Score: scoring.Float(DefaultTrustworthinessThreshold)},
		}

		out := ApplyThresholds(scores, th)
		assert.False(t, out[scoring.MetricTrustworthiness].IsBad)
		assert.False(t, out.IsBadResponse())
	})

	t.Run("nil score never fails", func(t *testing.T) {
		scores := scoring.ScoreSet{
			scoring.MetricTrustworthiness: {Score: nil},
		}

		out := ApplyThresholds(scores, th)
		assert.False(t, out[scoring.MetricTrustworthiness].IsBad)
		assert.Nil(t, out[scoring.MetricTrustworthiness].Score)
		assert.False(t, out.IsBadResponse())
	})

	t.Run("explanations carry through", func(t *testing.T) {
		scores := scoring.ScoreSet{
			scoring.MetricResponseHelpfulness: {
				Score:       scoring.Float(0.2),
				Explanation: "response does not address the question",
			},
		}

		out := ApplyThresholds(scores, th)
		assert.Equal(t, "response does not address the question",
			out[scoring.MetricResponseHelpfulness].Explanation)
		assert.True(t, out[scoring.MetricResponseHelpfulness].IsBad)
	})

	t.Run("custom metric uses default threshold", func(t *testing.T) {
		scores := scoring.ScoreSet{
			"context_sufficiency": {Score: scoring.Float(0.49)},
		}

		out := ApplyThresholds(scores, th)
		assert.True(t, out["context_sufficiency"].IsBad)
	})
}

func TestIsBadResponse(t *testing.T) {
	th, err := NewThresholds()
	require.NoError(t, err)

	t.Run("all passing", func(t *testing.T) {
		scores := scoring.ScoreSet{
			scoring.MetricTrustworthiness:     {Score: scoring.Float(0.95)},
			scoring.MetricResponseHelpfulness: {Score: scoring.Float(0.9)},
		}
		assert.False(t, IsBadResponse(scores, th))
	})

	t.Run("one failing metric flips the verdict", func(t *testing.T) {
		scores := scoring.ScoreSet{
			scoring.MetricTrustworthiness:     {Score: scoring.Float(0.95)},
			scoring.MetricResponseHelpfulness: {Score: scoring.Float(0.1)},
		}
		assert.True(t, IsBadResponse(scores, th))
	})

	t.Run("empty score set is good", func(t *testing.T) {
		assert.False(t, IsBadResponse(scoring.ScoreSet{}, th))
	})

	t.Run("verdict tracks the configured thresholds", func(t *testing.T) {
		scores := scoring.ScoreSet{
			scoring.MetricTrustworthiness:     {Score: scoring.Float(0.92)},
			scoring.MetricResponseHelpfulness: {Score: scoring.Float(0.75)},
		}

		lenient, err := NewThresholdsFromMap(map[string]float64{
			scoring.MetricTrustworthiness:     0.5,
			scoring.MetricResponseHelpfulness: 0.5,
		})
		require.NoError(t, err)
		assert.False(t, IsBadResponse(scores, lenient))

		strict, err := NewThresholdsFromMap(map[string]float64{
			scoring.MetricTrustworthiness: 0.93,
		})
		require.NoError(t, err)
		assert.True(t, IsBadResponse(scores, strict))
	})

	t.Run("all nil scores are good", func(t *testing.T) {
		scores := scoring.ScoreSet{
			scoring.MetricTrustworthiness:     {Score: nil},
			scoring.MetricResponseHelpfulness: {Score: nil},
		}
		assert.False(t, IsBadResponse(scores, th))
	})
}

func TestLabel(t *testing.T) {
	bad := func(v float64) EvalScore {
		return EvalScore{Score: scoring.Float(v), IsBad: true}
	}
	good := func(v float64) EvalScore {
		return EvalScore{Score: scoring.Float(v), IsBad: false}
	}

	tests := []struct {
		name   string
		scores ThresholdedScores
		want   string
	}{
		{
			name: "context sufficiency failure wins over everything",
			scores: ThresholdedScores{
				scoring.MetricContextSufficiency:  bad(0.1),
				scoring.MetricTrustworthiness:     bad(0.1),
				scoring.MetricResponseHelpfulness: bad(0.1),
			},
			want: LabelSearchFailure,
		},
		{
			name: "helpfulness failure before trustworthiness",
			scores: ThresholdedScores{
				scoring.MetricResponseHelpfulness: bad(0.2),
				scoring.MetricTrustworthiness:     bad(0.2),
			},
			want: LabelUnhelpful,
		},
		{
			name: "query ease failure is unhelpful",
			scores: ThresholdedScores{
				scoring.MetricQueryEase:       bad(0.2),
				scoring.MetricTrustworthiness: bad(0.2),
			},
			want: LabelUnhelpful,
		},
		{
			name: "trustworthiness failure alone is hallucination",
			scores: ThresholdedScores{
				scoring.MetricTrustworthiness:     bad(0.3),
				scoring.MetricResponseHelpfulness: good(0.9),
			},
			want: LabelHallucination,
		},
		{
			name: "custom metric failure is other issues",
			scores: ThresholdedScores{
				"custom_eval":                 bad(0.1),
				scoring.MetricTrustworthiness: good(0.9),
			},
			want: LabelOtherIssues,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.scores.Label())
		})
	}
}

func TestDefaultFormatPrompt(t *testing.T) {
	prompt := DefaultFormatPrompt("What is the capital of France?", "France is a country in Europe. Its capital is Paris.")

	assert.Contains(t, prompt, "Context:\nFrance is a country in Europe. Its capital is Paris.")
	assert.Contains(t, prompt, "Query: What is the capital of France?")
}
