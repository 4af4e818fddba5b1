package main

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"iemem/hexdump"
	"iemem/process"
	"iemem/process/memory_map"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var (
	peekRelative  bool
	peekHighlight string
)

type memoryMapper interface {
	GetMemoryMap() ([]memory_map.MemoryMapItem, error)
}

func parseAddress(s string) (uint64, error) {
	s = strings.TrimPrefix(strings.ToLower(s), "0x")
	return strconv.ParseUint(s, 16, 64)
}

var peekCmd = &cobra.Command{
	Use:   "peek <address> [size]",
	Short: "Hex dump memory at an address",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, err := parseAddress(args[0])
		if err != nil {
			return fmt.Errorf("address %q: %w", args[0], err)
		}
		size := uint64(256)
		if len(args) == 2 {
			if size, err = humanize.ParseBytes(args[1]); err != nil {
				return fmt.Errorf("size %q: %w", args[1], err)
			}
		}

		t, err := openTarget()
		if err != nil {
			return err
		}
		defer t.close()

		start := process.ProcessMemoryAddress(addr)
		if peekRelative {
			start = t.base.Add(int64(addr))
		}

		data, err := t.ch.ReadMemory(start, process.ProcessMemorySize(size))
		if err != nil {
			return err
		}

		options := hexdump.DefaultOptions()
		options.StartOffset = uint64(start)
		if mapper, ok := t.ch.(memoryMapper); ok {
			if mm, err := mapper.GetMemoryMap(); err == nil {
				options.MemoryMap = mm
			}
		}
		if peekHighlight != "" {
			if options.Highlight, err = hex.DecodeString(strings.ReplaceAll(peekHighlight, " ", "")); err != nil {
				return fmt.Errorf("--highlight: %w", err)
			}
		}

		hexdump.DumpToWriter(cmd.OutOrStdout(), data, options)
		return nil
	},
}

func init() {
	peekCmd.Flags().BoolVar(&peekRelative, "relative", false, "treat the address as an offset from the module base")
	peekCmd.Flags().StringVar(&peekHighlight, "highlight", "", "hex byte pattern to highlight")
	rootCmd.AddCommand(peekCmd)
}
