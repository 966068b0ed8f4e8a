package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("RESTRO_TEST_VAR", "mongodb://db:27017")
	assert.Equal(t, "mongodb://db:27017", GetEnv("RESTRO_TEST_VAR", "fallback"))

	t.Setenv("RESTRO_TEST_VAR", "")
	assert.Equal(t, "fallback", GetEnv("RESTRO_TEST_VAR", "fallback"))

	assert.Equal(t, "fallback", GetEnv("RESTRO_TEST_VAR_UNSET", "fallback"))
}
