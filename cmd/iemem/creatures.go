package main

import (
	"fmt"
	"strings"

	"iemem/game"
	"iemem/report"

	"github.com/spf13/cobra"
)

var (
	hostileOnly bool
	areaFilter  string
	showEffects bool
)

var creaturesCmd = &cobra.Command{
	Use:   "creatures",
	Short: "List the creatures of the loaded areas",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := openTarget()
		if err != nil {
			return err
		}
		defer t.close()

		world, err := scan(t)
		if err != nil {
			return err
		}

		sprites := world.Creatures(func(s *game.Sprite) bool {
			if areaFilter != "" && !strings.EqualFold(s.CurrentArea, areaFilter) {
				return false
			}
			if hostileOnly {
				ea, ok := s.Base.Object.TypeAI.EnemyAlly.Get()
				return ok && ea.IsHostile()
			}
			return true
		})

		out := cmd.OutOrStdout()
		if err := report.Creatures(out, sprites); err != nil {
			return err
		}
		if showEffects {
			for _, s := range sprites {
				fmt.Fprintf(out, "\n%s (%s)\n", s.DisplayName(), s.ResRef)
				if err := report.Effects(out, s); err != nil {
					return err
				}
			}
		}
		if world.Skipped > 0 {
			log.Warn(world.Skipped, " entities could not be decoded")
		}
		return nil
	},
}

var entitiesCmd = &cobra.Command{
	Use:   "entities",
	Short: "List every object in the entity list",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := openTarget()
		if err != nil {
			return err
		}
		defer t.close()

		world, err := scan(t)
		if err != nil {
			return err
		}
		return report.Entities(cmd.OutOrStdout(), world.Objects)
	},
}

func init() {
	creaturesCmd.Flags().BoolVar(&hostileOnly, "hostile", false, "only list hostile creatures")
	creaturesCmd.Flags().StringVar(&areaFilter, "area", "", "only list creatures in this area (e.g. AR2600)")
	creaturesCmd.Flags().BoolVar(&showEffects, "effects", false, "also list each creature's effects")
	rootCmd.AddCommand(creaturesCmd, entitiesCmd)
}
