package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileFlagsAreLocal(t *testing.T) {
	// The catalog input/output flags belong to analyze, not the root
	// command, so file-less commands do not advertise them.
	input := Cmd.Flags().Lookup("input")
	require.NotNil(t, input)
	assert.Equal(t, "i", input.Shorthand)

	output := Cmd.Flags().Lookup("output")
	require.NotNil(t, output)
	assert.Equal(t, "o", output.Shorthand)
}
