package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type envelope struct {
	Query string `json:"query" validate:"required"`
	Name  string `validate:"omitempty,max=3"`
}

func TestValidator_Validate(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&envelope{Query: "{ member { id } }"}))

	err := v.Validate(&envelope{Name: "toolong"})
	if assert.Error(t, err) {
		assert.Equal(t, "query is required; name failed validation for max", err.Error())
	}
}
