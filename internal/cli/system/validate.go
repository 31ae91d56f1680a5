package system

import (
	"fmt"

	"github.com/arogowski/vitalog/internal/cli"
	"github.com/arogowski/vitalog/internal/validation"
)

// ValidateCmd scans the whole collection for suspect fields. It never
// modifies anything; the report tells the user what to look at.
type ValidateCmd struct{}

func (c *ValidateCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	defer ctx.Store.Close()

	entries, err := ctx.Store.Entries()
	if err != nil {
		return err
	}

	fmt.Printf("Validating %d entries...\n\n", len(entries))
	result := validation.New().ValidateEntries(entries)
	fmt.Println(result.FormatReport())
	return nil
}
