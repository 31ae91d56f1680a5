// Package settings exposes the persisted journal settings.
package settings

import (
	"fmt"

	"github.com/arogowski/vitalog/internal/cli"
	"github.com/arogowski/vitalog/internal/logger"
)

type SettingsCmd struct {
	WaterTarget int `help:"Set the daily water target in milliliters."`
}

func (c *SettingsCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	defer ctx.Store.Close()

	if c.WaterTarget != 0 {
		if err := ctx.Store.SaveWaterTargetMl(c.WaterTarget); err != nil {
			return err
		}
		logger.Info("Updated water target", "ml", c.WaterTarget)
		fmt.Printf("Water target set to %d ml/day\n", c.WaterTarget)
		return nil
	}

	target, err := ctx.Store.WaterTargetMl()
	if err != nil {
		return err
	}
	fmt.Printf("Data path:    %s\n", ctx.Store.DataPath())
	fmt.Printf("Water target: %d ml/day\n", target)
	return nil
}
