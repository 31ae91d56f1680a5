package report

import (
	"fmt"

	"github.com/arogowski/vitalog/internal/cli"
	"github.com/arogowski/vitalog/internal/export"
	"github.com/arogowski/vitalog/internal/journal"
	"github.com/arogowski/vitalog/internal/logger"
)

// ExportCmd serializes the current view as a portable JSON payload. The
// clipboard is the default sink; on machines without one the command
// says so and the caller picks --stdout or --out.
type ExportCmd struct {
	cli.FilterFlags
	Stdout bool   `help:"Print the payload instead of copying it."`
	Out    string `short:"o" type:"path" help:"Write the payload to a file."`
}

func (c *ExportCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	defer ctx.Store.Close()

	q, err := c.BuildQuery()
	if err != nil {
		return err
	}
	all, err := ctx.Store.Entries()
	if err != nil {
		return err
	}
	view := journal.Filter(all, q)

	payload := export.NewPayload(view, q)
	text, err := payload.JSON()
	if err != nil {
		return err
	}

	switch {
	case c.Stdout:
		fmt.Println(text)
	case c.Out != "":
		if err := export.WriteFile(c.Out, text); err != nil {
			return err
		}
		fmt.Printf("Exported %d entries to %s\n", len(view), c.Out)
	default:
		if export.CopyToClipboard(text) {
			fmt.Printf("Copied %d entries to the clipboard\n", len(view))
		} else {
			logger.Warn("Clipboard unavailable for export")
			fmt.Println("Clipboard unavailable; use --stdout or --out FILE.")
		}
	}
	return nil
}
