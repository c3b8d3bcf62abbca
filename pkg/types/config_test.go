package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr error
	}{
		{
			name:   "resolved database path passes",
			config: Config{DBPath: "/tmp/word_by_word_en.db"},
		},
		{
			name:   "morphology URL is optional",
			config: Config{DBPath: "/tmp/word_by_word_en.db", MorphologyURL: "https://example.com/corpus.txt"},
		},
		{
			name:    "empty database path is rejected",
			config:  Config{MorphologyURL: "https://example.com/corpus.txt"},
			wantErr: ErrDBPathEmpty,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
