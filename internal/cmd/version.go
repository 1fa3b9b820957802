package cmd

import (
	"fmt"

	"github.com/pkg/errors"
)

type versionCommand struct {
	root *RootCommand
}

func (c *versionCommand) Execute(args []string) error {
	if len(args) > 0 {
		return errors.Errorf("version: unexpected arguments %v", args)
	}
	_, err := fmt.Fprintln(c.root.stdout, versionString())
	return err
}
