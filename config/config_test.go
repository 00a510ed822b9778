package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetEnvInt(t *testing.T) {
	defer os.Unsetenv("SNAKEBATTLE_TEST_INT")

	require.Equal(t, 7, getEnvInt("SNAKEBATTLE_TEST_INT", 7))

	os.Setenv("SNAKEBATTLE_TEST_INT", "42")
	require.Equal(t, 42, getEnvInt("SNAKEBATTLE_TEST_INT", 7))

	os.Setenv("SNAKEBATTLE_TEST_INT", "fast")
	require.Equal(t, 7, getEnvInt("SNAKEBATTLE_TEST_INT", 7))
}
