package entries

import (
	"fmt"

	"github.com/arogowski/vitalog/internal/cli"
	"github.com/arogowski/vitalog/internal/logger"
)

// DeleteCmd removes an entry permanently. Unlike edit there is no
// fallback: deleting an unknown id is an error.
type DeleteCmd struct {
	ID string `arg:"" help:"Entry id to delete."`
}

func (c *DeleteCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	defer ctx.Store.Close()

	all, err := ctx.Store.Entries()
	if err != nil {
		return err
	}

	idx := -1
	for i := range all {
		if all[i].ID == c.ID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("no entry with id %s", c.ID)
	}

	all = append(all[:idx], all[idx+1:]...)
	if err := ctx.Store.SaveEntries(all); err != nil {
		return err
	}

	logger.Info("Deleted entry", "id", c.ID)
	fmt.Printf("Deleted entry %s\n", c.ID)
	return nil
}
