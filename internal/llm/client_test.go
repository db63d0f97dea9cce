package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name:   "valid",
			config: Config{BaseURL: "https://api.groq.com/openai/v1", Model: "llama-3.1-8b-instant"},
		},
		{
			name:    "missing base URL",
			config:  Config{Model: "llama-3.1-8b-instant"},
			wantErr: true,
		},
		{
			name:    "missing model",
			config:  Config{BaseURL: "https://api.groq.com/openai/v1"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidConfig)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewChatClient_InvalidConfig(t *testing.T) {
	_, err := NewChatClient(Config{})
	assert.Error(t, err)
}

func TestChatClient_Generate_EmptyPrompt(t *testing.T) {
	client, err := NewChatClient(Config{
		BaseURL: "http://localhost:9999/v1",
		Model:   "test-model",
	})
	require.NoError(t, err)

	_, err = client.Generate(context.Background(), "")
	assert.ErrorIs(t, err, ErrEmptyPrompt)
}
