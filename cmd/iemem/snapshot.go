package main

import (
	"fmt"
	"strings"

	"iemem/process_blob"
	"iemem/report"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var maxRegion string

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Record and inspect snapshots of the game's memory",
}

var snapshotSaveCmd = &cobra.Command{
	Use:   "save <path>",
	Short: "Capture the live game into a directory or a " + process_blob.ArchiveExt + " archive",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, err := humanize.ParseBytes(maxRegion)
		if err != nil {
			return fmt.Errorf("--max-region: %w", err)
		}
		l, err := loadLayout()
		if err != nil {
			return err
		}

		dump, err := captureLive(l, limit)
		if err != nil {
			return err
		}

		path := args[0]
		if strings.HasSuffix(path, process_blob.ArchiveExt) {
			err = dump.SaveArchive(path)
		} else {
			err = dump.Save(path)
		}
		if err != nil {
			return err
		}
		log.Infoln("Saved", dump.Name, "pid", dump.PID, "to", path, "(", humanize.Bytes(dump.CapturedBytes()), ")")
		return nil
	},
}

var snapshotInfoCmd = &cobra.Command{
	Use:   "info <path>",
	Short: "Describe a recorded snapshot",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dump, err := process_blob.Open(args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "process  %s (pid %d)\n", dump.Name, dump.PID)
		if dump.Exe != "" {
			fmt.Fprintf(out, "exe      %s\n", dump.Exe)
		}
		fmt.Fprintf(out, "base     %s\n", dump.BaseAddress)
		fmt.Fprintf(out, "captured %d of %d regions, %s\n\n", len(dump.Blobs), len(dump.MemoryMap), humanize.Bytes(dump.CapturedBytes()))

		table := report.NewTable(
			report.ColumnSpec{Header: "Start"},
			report.ColumnSpec{Header: "End"},
			report.ColumnSpec{Header: "Size", AlignRight: true},
			report.ColumnSpec{Header: "Perms"},
			report.ColumnSpec{Header: "Captured"},
			report.ColumnSpec{Header: "Path"},
		)
		for _, region := range dump.MemoryMap {
			captured := "no"
			if _, ok := dump.Blobs[region.Address]; ok {
				captured = "yes"
			}
			table.AddRow(
				fmt.Sprintf("%012x", region.Address),
				fmt.Sprintf("%012x", region.End()),
				humanize.IBytes(uint64(region.Size)),
				region.Perms,
				captured,
				region.Path,
			)
		}
		return table.Render(out)
	},
}

func init() {
	snapshotSaveCmd.Flags().StringVar(&maxRegion, "max-region", "256MiB", "skip regions larger than this")
	snapshotCmd.AddCommand(snapshotSaveCmd, snapshotInfoCmd)
	rootCmd.AddCommand(snapshotCmd)
}
