// Package hexdump renders target memory for inspection, marking values that
// look like pointers into mapped regions.
package hexdump

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"strings"

	"iemem/process/memory_map"

	"github.com/fatih/color"
)

var (
	colorOffset    = color.New(color.FgCyan).SprintFunc()
	colorHex       = color.New(color.FgGreen).SprintFunc()
	colorZero      = color.New(color.FgHiBlack).SprintFunc()
	colorNonPrint  = color.New(color.FgRed).SprintFunc()
	colorPointer   = color.New(color.FgYellow).SprintfFunc()
	colorHighlight = color.New(color.FgBlack, color.BgYellow).SprintFunc()
)

// Options controls the dump layout
type Options struct {
	// BytesPerLine defines the number of bytes to display per line
	BytesPerLine int

	// StartOffset is the address printed for the first byte
	StartOffset uint64

	// OffsetWidth is the width of the offset column in hex digits
	OffsetWidth int

	// MaxLines is the maximum number of lines to show (0 for no limit)
	MaxLines int

	// Highlight marks every occurrence of a byte pattern
	Highlight []byte

	// MemoryMap, when set, lists the pointer sized values at the start of
	// each 8 byte lane that fall inside a mapped region
	MemoryMap []memory_map.MemoryMapItem
}

// DefaultOptions returns the default hexdump options
func DefaultOptions() Options {
	return Options{
		BytesPerLine: 16,
		OffsetWidth:  12,
	}
}

// Dump creates a hex dump of the given data
func Dump(data []byte, options Options) string {
	var buffer bytes.Buffer
	DumpToWriter(&buffer, data, options)
	return buffer.String()
}

// DumpToWriter writes a hex dump of the given data to the specified writer
func DumpToWriter(w io.Writer, data []byte, options Options) {
	if options.BytesPerLine <= 0 {
		options.BytesPerLine = 16
	}
	if options.OffsetWidth <= 0 {
		options.OffsetWidth = 8
	}
	highlighted := highlightMask(data, options.Highlight)

	lines := 0
	for offset := 0; offset < len(data); offset += options.BytesPerLine {
		if options.MaxLines > 0 && lines >= options.MaxLines {
			fmt.Fprintf(w, "... %d more bytes\n", len(data)-offset)
			break
		}
		end := min(offset+options.BytesPerLine, len(data))
		formatLine(w, data[offset:end], highlighted[offset:end], uint64(offset)+options.StartOffset, options)
		lines++
	}
}

// highlightMask flags every byte covered by an occurrence of pattern.
func highlightMask(data, pattern []byte) []bool {
	mask := make([]bool, len(data))
	if len(pattern) == 0 {
		return mask
	}
	for i := 0; i+len(pattern) <= len(data); i++ {
		if bytes.Equal(data[i:i+len(pattern)], pattern) {
			for j := range pattern {
				mask[i+j] = true
			}
		}
	}
	return mask
}

func formatLine(w io.Writer, data []byte, highlighted []bool, offset uint64, options Options) {
	fmt.Fprint(w, colorOffset(fmt.Sprintf("%0*x", options.OffsetWidth, offset)), "  ")

	half := options.BytesPerLine / 2
	for i := 0; i < options.BytesPerLine; i++ {
		if i > 0 {
			if i == half {
				fmt.Fprint(w, " | ")
			} else {
				fmt.Fprint(w, " ")
			}
		}
		if i >= len(data) {
			fmt.Fprint(w, "  ")
			continue
		}

		hex := fmt.Sprintf("%02x", data[i])
		switch {
		case highlighted[i]:
			fmt.Fprint(w, colorHighlight(hex))
		case data[i] == 0:
			fmt.Fprint(w, colorZero(hex))
		default:
			fmt.Fprint(w, colorHex(hex))
		}
	}

	fmt.Fprint(w, " | ")
	for i, b := range data {
		ch := "."
		if b >= 0x20 && b < 0x7F {
			ch = string(rune(b))
		}
		switch {
		case highlighted[i]:
			fmt.Fprint(w, colorHighlight(ch))
		case b == 0:
			fmt.Fprint(w, colorZero(ch))
		case ch == ".":
			fmt.Fprint(w, colorNonPrint(ch))
		default:
			fmt.Fprint(w, ch)
		}
	}

	if pointers := findPointers(data, options.MemoryMap); len(pointers) > 0 {
		fmt.Fprint(w, strings.Repeat(" ", options.BytesPerLine-len(data)), " | ", strings.Join(pointers, " "))
	}
	fmt.Fprintln(w)
}

// findPointers formats the 8 byte aligned values of data that point into
// a mapped region. The memory map must be sorted.
func findPointers(data []byte, mm []memory_map.MemoryMapItem) []string {
	if len(mm) == 0 {
		return nil
	}
	var result []string
	for i := 0; i+8 <= len(data); i += 8 {
		ptr := binary.LittleEndian.Uint64(data[i:])
		if ptr != 0 && memory_map.Lookup(ptr, mm) != nil {
			result = append(result, colorPointer("0x%x", ptr))
		}
	}
	return result
}
