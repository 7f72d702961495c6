package utils

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationErrorMatchesSentinel(t *testing.T) {
	err := ValidationError("latitude must be a number")

	assert.True(t, errors.Is(err, ErrValidation))
	assert.Equal(t, "latitude must be a number", err.Error())
	assert.False(t, errors.Is(err, ErrPlaceNotFound))
}
