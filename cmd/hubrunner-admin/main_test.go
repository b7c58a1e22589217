package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommands_RegistryComplete(t *testing.T) {
	cmds := commands()

	for _, name := range []string{"migrate", "runs-list", "runs-prune", "seed", "login", "whoami", "logout"} {
		cmd, ok := cmds[name]
		assert.True(t, ok, "command %q missing", name)
		assert.Equal(t, name, cmd.name)
		assert.NotEmpty(t, cmd.description)
		assert.NotNil(t, cmd.run)
	}
}
