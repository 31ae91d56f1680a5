// Package system holds the lifecycle and maintenance commands.
package system

import (
	"fmt"

	"github.com/arogowski/vitalog/internal/cli"
)

type InitCmd struct{}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Init(); err != nil {
		return err
	}
	defer ctx.Store.Close()
	fmt.Printf("Initialized vitalog storage at: %s\n", ctx.Store.DataPath())
	return nil
}
