package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountWords(t *testing.T) {
	tests := []struct {
		content string
		want    int
	}{
		{"", 0},
		{"   ", 0},
		{"one", 1},
		{"  two   words ", 2},
		{"tabs\tand\nnewlines  count", 4},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CountWords(tt.content), "content %q", tt.content)
	}
}

func TestCountCharacters(t *testing.T) {
	assert.Equal(t, 0, CountCharacters(""))
	assert.Equal(t, 5, CountCharacters("hello"))
	assert.Equal(t, 4, CountCharacters("café"))
	assert.Equal(t, 2, CountCharacters("👍🏽"))
}

func TestValidationResult(t *testing.T) {
	r := NewValidationResult()
	assert.True(t, r.CanSubmit)
	assert.NotNil(t, r.Errors)
	assert.NotNil(t, r.Warnings)

	r.AddWarning("note")
	assert.True(t, r.CanSubmit)

	r.AddError("first")
	r.AddError("second")
	assert.False(t, r.CanSubmit)
	assert.Equal(t, []string{"first", "second"}, r.Errors)
}

func TestValidationError(t *testing.T) {
	r := NewValidationResult()
	r.AddError("Response due date has passed")
	var err error = &ValidationError{Result: r}

	assert.ErrorIs(t, err, ErrValidationFailed)
	assert.Equal(t, "peer response validation failed: Response due date has passed", err.Error())

	var ve *ValidationError
	assert.True(t, errors.As(err, &ve))
	assert.Same(t, r, ve.Result)
}
