package cmd

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/offlinefirst/keypost/pkg/inject"
)

type keysCommand struct {
	root *RootCommand
}

func (c *keysCommand) Execute(args []string) error {
	if len(args) > 0 {
		return errors.Errorf("keys: unexpected arguments %v", args)
	}
	for _, k := range inject.KnownKeys() {
		if _, err := fmt.Fprintf(c.root.stdout, "0x%02x  %s\n", uint16(k.Code), k.Name); err != nil {
			return err
		}
	}
	return nil
}
