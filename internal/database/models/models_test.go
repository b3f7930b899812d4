package models

import (
	"errors"
	"testing"

	apperrors "space-missions-api/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestScientistValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		s := &Scientist{Name: "Mel T. Valent", FieldOfStudy: "xenobiology"}
		assert.NoError(t, s.Validate())
	})

	t.Run("whitespace is a value", func(t *testing.T) {
		s := &Scientist{Name: " ", FieldOfStudy: "x"}
		assert.NoError(t, s.Validate())
	})

	t.Run("empty name", func(t *testing.T) {
		s := &Scientist{Name: "", FieldOfStudy: "x"}
		err := s.Validate()
		require.Error(t, err)

		var verrs apperrors.ValidationErrors
		require.True(t, errors.As(err, &verrs))
		assert.Equal(t, []string{"name"}, verrs.Fields())
	})

	t.Run("both empty", func(t *testing.T) {
		err := (&Scientist{}).Validate()

		var verrs apperrors.ValidationErrors
		require.True(t, errors.As(err, &verrs))
		assert.ElementsMatch(t, []string{"name", "field_of_study"}, verrs.Fields())
		assert.True(t, apperrors.IsValidation(err))
	})
}

func TestMissionValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		m := &Mission{Name: "Explore Planet X", ScientistID: intPtr(1), PlanetID: intPtr(2)}
		assert.NoError(t, m.Validate())
	})

	t.Run("zero ids are present", func(t *testing.T) {
		m := &Mission{Name: "M1", ScientistID: intPtr(0), PlanetID: intPtr(0)}
		assert.NoError(t, m.Validate())
	})

	t.Run("missing ids", func(t *testing.T) {
		m := &Mission{Name: "M1"}
		err := m.Validate()

		var verrs apperrors.ValidationErrors
		require.True(t, errors.As(err, &verrs))
		assert.ElementsMatch(t, []string{"scientist_id", "planet_id"}, verrs.Fields())
	})

	t.Run("empty name", func(t *testing.T) {
		m := &Mission{ScientistID: intPtr(1), PlanetID: intPtr(1)}
		err := m.Validate()

		var verrs apperrors.ValidationErrors
		require.True(t, errors.As(err, &verrs))
		assert.Equal(t, []string{"name"}, verrs.Fields())
	})

	t.Run("loaded parents are not validated", func(t *testing.T) {
		m := &Mission{
			Name:        "M1",
			ScientistID: intPtr(1),
			PlanetID:    intPtr(1),
			Scientist:   &Scientist{},
		}
		assert.NoError(t, m.Validate())
	})
}

func TestTableNames(t *testing.T) {
	assert.Equal(t, "scientists", Scientist{}.TableName())
	assert.Equal(t, "planets", Planet{}.TableName())
	assert.Equal(t, "missions", Mission{}.TableName())
}
