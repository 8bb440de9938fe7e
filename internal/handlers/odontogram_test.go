package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateToothConditions(t *testing.T) {
	assert.NoError(t, validateToothConditions([]string{"healthy"}))
	assert.NoError(t, validateToothConditions([]string{"caries"}))
	assert.NoError(t, validateToothConditions([]string{"caries", "fracture"}))
	assert.NoError(t, validateToothConditions(nil))
}

func TestValidateToothConditionsHealthyIsExclusive(t *testing.T) {
	err := validateToothConditions([]string{"healthy", "caries"})
	assert.Error(t, err)

	err = validateToothConditions([]string{"crown", "healthy"})
	assert.Error(t, err)
}

func TestValidateToothConditionsUnknownFlag(t *testing.T) {
	err := validateToothConditions([]string{"sparkly"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "sparkly")
}
