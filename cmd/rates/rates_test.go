package rates

import (
	"testing"

	"fjacquet/bond-analyzer/cmd/root"

	"github.com/stretchr/testify/assert"
)

func TestNoFileFlags(t *testing.T) {
	// rates only prints the resolved profile; it must not advertise the
	// catalog input/output flags.
	assert.Nil(t, Cmd.Flags().Lookup("input"))
	assert.Nil(t, Cmd.Flags().Lookup("output"))

	root.Init()
	assert.Nil(t, root.Cmd.PersistentFlags().Lookup("input"))
	assert.Nil(t, root.Cmd.PersistentFlags().Lookup("output"))
}
