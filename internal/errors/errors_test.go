package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		assert.Equal(t, "Scientist not found", ErrScientistNotFound.Error())
		assert.Equal(t, "Planet not found", ErrPlanetNotFound.Error())
		assert.Equal(t, "Mission not found", ErrMissionNotFound.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "Scientist"}
		assert.True(t, errors.Is(err1, ErrScientistNotFound))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		assert.False(t, errors.Is(ErrScientistNotFound, ErrPlanetNotFound))
	})

	t.Run("errors.Is through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("failed to get scientist: %w", ErrScientistNotFound)
		assert.True(t, errors.Is(wrapped, ErrScientistNotFound))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrMissionNotFound))
		assert.True(t, IsNotFound(fmt.Errorf("lookup: %w", ErrPlanetNotFound)))
		assert.False(t, IsNotFound(ErrInvalidRequestBody))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &ValidationError{Field: "name", Message: "must not be empty"}
		assert.Equal(t, "validation error: name - must not be empty", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "invalid"}
		assert.Equal(t, "validation error: invalid", err.Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		assert.True(t, IsValidation(NewValidationError("name", "must not be empty")))
		assert.False(t, IsValidation(ErrScientistNotFound))
	})
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "name", Message: "must not be empty"},
		{Field: "field_of_study", Message: "must not be empty"},
	}

	assert.Equal(t, []string{"name", "field_of_study"}, errs.Fields())
	assert.Equal(t,
		"validation error: name - must not be empty; validation error: field_of_study - must not be empty",
		errs.Error())

	wrapped := fmt.Errorf("validation failed: %w", errs)
	assert.True(t, IsValidation(wrapped))

	var got ValidationErrors
	assert.True(t, errors.As(wrapped, &got))
	assert.Len(t, got, 2)
}
