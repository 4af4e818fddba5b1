package main

import (
	"fmt"
	"strings"

	"iemem/game"
	"iemem/layout"
	"iemem/process"
	"iemem/process_blob"

	"github.com/Moonlight-Companies/gologger/coloransi"
	"github.com/Moonlight-Companies/gologger/logger"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	buildName    string
	layoutFile   string
	snapshotPath string
	strictClass  bool
	noColor      bool
	baseOverride string

	log = logger.NewLogger(coloransi.Color(coloransi.ColorPurple, coloransi.ColorOrange, "iemem"))
)

var rootCmd = &cobra.Command{
	Use:          "iemem",
	Short:        "Read creature and object state out of a running Infinity Engine game",
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if noColor {
			color.NoColor = true
		}
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&buildName, "build", layout.Default, "builtin layout build ("+strings.Join(layout.Builds(), ", ")+")")
	flags.StringVar(&layoutFile, "layout-file", "", "load the layout from a JSON file instead of a builtin build")
	flags.StringVar(&snapshotPath, "snapshot", "", "read from a recorded snapshot (directory or "+process_blob.ArchiveExt+") instead of the live game")
	flags.BoolVar(&strictClass, "strict-class", false, "fail creatures whose class is not recognized")
	flags.BoolVar(&noColor, "no-color", false, "disable colored output")
	flags.StringVar(&baseOverride, "base", "", "module base address in hex, overriding the located or recorded one")
}

func loadLayout() (*layout.Layout, error) {
	if layoutFile != "" {
		return layout.LoadFile(layoutFile)
	}
	return layout.Builtin(buildName)
}

func decodeOptions() []game.Option {
	if strictClass {
		return []game.Option{game.WithStrictClass()}
	}
	return nil
}

// target is an opened channel together with the module base to decode from.
type target struct {
	ch     process.Channel
	base   process.ProcessMemoryAddress
	layout *layout.Layout
	close  func() error
}

// openTarget opens the snapshot when one is given and the live game otherwise.
func openTarget() (*target, error) {
	l, err := loadLayout()
	if err != nil {
		return nil, err
	}

	if snapshotPath != "" {
		dump, err := process_blob.Open(snapshotPath)
		if err != nil {
			return nil, fmt.Errorf("open snapshot: %w", err)
		}
		t := &target{ch: dump, layout: l, close: func() error { return nil }}
		if baseOverride == "" {
			if err := dump.ResolveBase(l.BaseLine); err != nil {
				return nil, fmt.Errorf("%w (use --base)", err)
			}
		}
		t.base = dump.BaseAddress
		return t.withBase()
	}

	live, err := openLive(l)
	if err != nil {
		return nil, err
	}
	live.layout = l
	return live.withBase()
}

// withBase applies --base when given.
func (t *target) withBase() (*target, error) {
	if baseOverride == "" {
		return t, nil
	}
	base, err := parseAddress(baseOverride)
	if err != nil {
		t.close()
		return nil, fmt.Errorf("--base %q: %w", baseOverride, err)
	}
	t.base = process.ProcessMemoryAddress(base)
	return t, nil
}

func scan(t *target) (*game.World, error) {
	return game.Scan(t.ch, t.layout, t.base, decodeOptions()...)
}
