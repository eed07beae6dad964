package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorKinds_Unwrap(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind error
	}{
		{"validation", NewValidationError(RuleNameRequired, "name is mandatory"), ErrValidation},
		{"preset", &PresetUnsupportedError{Preset: "raid-boss"}, ErrPresetUnsupported},
		{"not found", &NotFoundError{Name: "dragon"}, ErrTemplateNotFound},
		{"key", &KeyError{Key: "", Reason: "empty"}, ErrInvalidKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.err, tt.kind)

			// Обертка через %w не теряет вид ошибки
			wrapped := fmt.Errorf("outer: %w", tt.err)
			assert.ErrorIs(t, wrapped, tt.kind)
		})
	}
}

func TestValidationError_Rule(t *testing.T) {
	err := fmt.Errorf("build: %w", NewValidationError(RuleHealthPositive, "health must be positive, got %d", -5))

	var ve *ValidationError
	if assert.True(t, errors.As(err, &ve)) {
		assert.Equal(t, RuleHealthPositive, ve.Rule)
		assert.Equal(t, "health must be positive, got -5", ve.Message)
	}
	assert.Contains(t, err.Error(), "[health_positive]")
}

func TestDefaultStageThreshold(t *testing.T) {
	tests := []struct {
		stage  int
		health int
		want   int
		ok     bool
	}{
		{1, 5000, 5000, true},
		{2, 5000, 2500, true},
		{3, 5000, 1250, true},
		{2, 101, 50, true},
		{3, 7, 1, true},
		{4, 5000, 0, false},
		{0, 5000, 0, false},
	}

	for _, tt := range tests {
		got, ok := DefaultStageThreshold(tt.stage, tt.health)
		assert.Equal(t, tt.ok, ok, "stage %d", tt.stage)
		assert.Equal(t, tt.want, got, "stage %d", tt.stage)
	}
}

func TestParseTags(t *testing.T) {
	assert.Equal(t, ElementNone, ParseElement(""))
	assert.Equal(t, ElementFire, ParseElement(" fire "))
	assert.Equal(t, Element("POISON"), ParseElement("poison"))
	assert.Equal(t, AINeutral, ParseAIBehavior("  "))
	assert.Equal(t, AITactical, ParseAIBehavior("Tactical"))
}
