package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.NotNil(t, cfg)
	assert.Equal(t, "http://localhost:11434/v1", cfg.Host)
	assert.Equal(t, "qwen2.5:3b", cfg.Model)
	assert.True(t, cfg.LogExplanations)
	require.Len(t, cfg.Evals, 1)
	assert.Equal(t, MetricResponseHelpfulness, cfg.Evals[0].Name)
}

func TestNewConfig(t *testing.T) {
	t.Run("with no options", func(t *testing.T) {
		cfg := NewConfig()

		assert.Equal(t, "http://localhost:11434/v1", cfg.Host)
		assert.Equal(t, "qwen2.5:3b", cfg.Model)
	})

	t.Run("with custom host and model", func(t *testing.T) {
		cfg := NewConfig(
			WithHost("http://custom:8080/v1"),
			WithModel("gpt-4o-mini"),
		)

		assert.Equal(t, "http://custom:8080/v1", cfg.Host)
		assert.Equal(t, "gpt-4o-mini", cfg.Model)
	})

	t.Run("with replaced evals", func(t *testing.T) {
		cfg := NewConfig(WithEvals(Eval{
			Name:     "conciseness",
			Criteria: "Assess whether the response is concise.",
		}))

		require.Len(t, cfg.Evals, 1)
		assert.Equal(t, "conciseness", cfg.Evals[0].Name)
	})

	t.Run("with additional evals", func(t *testing.T) {
		cfg := NewConfig(WithAdditionalEvals(Eval{
			Name:     "context_sufficiency",
			Criteria: "Assess whether the context contains enough information to answer.",
		}))

		require.Len(t, cfg.Evals, 2)
		assert.Equal(t, MetricResponseHelpfulness, cfg.Evals[0].Name)
		assert.Equal(t, "context_sufficiency", cfg.Evals[1].Name)
	})

	t.Run("with explanations disabled", func(t *testing.T) {
		cfg := NewConfig(WithExplanations(false))
		assert.False(t, cfg.LogExplanations)
	})
}

func TestConfigNormalize(t *testing.T) {
	tests := []struct {
		name string
		host string
		want string
	}{
		{"adds v1 suffix", "http://localhost:11434", "http://localhost:11434/v1"},
		{"adds v1 after trailing slash", "http://localhost:11434/", "http://localhost:11434/v1"},
		{"keeps existing v1", "http://localhost:11434/v1", "http://localhost:11434/v1"},
		{"empty host untouched", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Host: tt.host}
			cfg.Normalize()
			assert.Equal(t, tt.want, cfg.Host)
		})
	}
}

func TestConfigValidate(t *testing.T) {
	t.Run("default config is valid", func(t *testing.T) {
		assert.NoError(t, NewConfig().Validate())
	})

	t.Run("missing host", func(t *testing.T) {
		cfg := NewConfig(WithHost(""))
		assert.Error(t, cfg.Validate())
	})

	t.Run("missing model", func(t *testing.T) {
		cfg := NewConfig(WithModel(""))
		assert.Error(t, cfg.Validate())
	})

	t.Run("trustworthiness cannot be an eval", func(t *testing.T) {
		cfg := NewConfig(WithAdditionalEvals(Eval{
			Name:     MetricTrustworthiness,
			Criteria: "anything",
		}))
		assert.Error(t, cfg.Validate())
	})

	t.Run("duplicate eval names", func(t *testing.T) {
		cfg := NewConfig(WithAdditionalEvals(Eval{
			Name:     MetricResponseHelpfulness,
			Criteria: "a second helpfulness eval",
		}))
		assert.Error(t, cfg.Validate())
	})

	t.Run("eval without criteria", func(t *testing.T) {
		cfg := NewConfig(WithAdditionalEvals(Eval{Name: "conciseness"}))
		assert.Error(t, cfg.Validate())
	})

	t.Run("eval without name", func(t *testing.T) {
		cfg := NewConfig(WithAdditionalEvals(Eval{Criteria: "criteria"}))
		assert.Error(t, cfg.Validate())
	})
}
