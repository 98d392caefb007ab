package cli

import (
	"context"
	"fmt"

	"github.com/relcut/relcut/internal"
)

// Represents the 'relcut version' command.
type VersionCmd struct{}

// Executes the version command.
func (c *VersionCmd) Run(ctx context.Context) error {
	fmt.Println(internal.VersionString())
	return nil
}
