package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type datastore struct {
	Driver   string `validate:"required,oneof=mongo postgres"`
	MongoURL string `validate:"required_if=Driver mongo"`
	Name     string `validate:"required"`
	Capacity int    `validate:"gte=1"`
}

func TestFormatValidationErrors(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&datastore{Driver: "mongo"})
	require.Error(t, err)

	messages := v.FormatValidationErrors(err)
	assert.Equal(t, "MongoURL is required when Driver is mongo", messages["MongoURL"])
	assert.Equal(t, "Name is required", messages["Name"])
	assert.Equal(t, "Capacity must be greater than or equal to 1", messages["Capacity"])
}

func TestFormatValidationErrors_OneOf(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&datastore{Driver: "sqlite", Name: "x", Capacity: 1})
	require.Error(t, err)
	assert.Equal(t, "Driver must be one of: mongo postgres", v.FormatValidationErrors(err)["Driver"])
}

func TestCheck(t *testing.T) {
	v := NewValidator()

	assert.NoError(t, v.Check(&datastore{Driver: "postgres", Name: "clinic", Capacity: 5}))

	err := v.Check(&datastore{Driver: "mongo", Name: "clinic", Capacity: 5})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalid)
	assert.Contains(t, err.Error(), "MongoURL is required when Driver is mongo")
}
