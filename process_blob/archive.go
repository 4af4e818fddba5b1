package process_blob

import (
	"archive/tar"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path"
	"strconv"
	"strings"

	"iemem/process/memory_map"

	"github.com/dustin/go-humanize"
	"github.com/klauspost/compress/zstd"
)

// ArchiveExt is the suffix of compressed snapshot archives.
const ArchiveExt = ".tar.zst"

const (
	regionExt   = ".dump"
	listingFile = "maps"
)

// regionEntryName names a region "<start>-<end>.dump" in lowercase hex.
func regionEntryName(region memory_map.MemoryMapItem) string {
	return fmt.Sprintf("%x-%x%s", region.Address, region.End(), regionExt)
}

func parseRegionEntryName(name string) (start, end uint64, ok bool) {
	stem, found := strings.CutSuffix(path.Base(name), regionExt)
	if !found {
		return 0, 0, false
	}
	lo, hi, found := strings.Cut(stem, "-")
	if !found {
		return 0, 0, false
	}
	start, err := strconv.ParseUint(lo, 16, 64)
	if err != nil {
		return 0, 0, false
	}
	end, err = strconv.ParseUint(hi, 16, 64)
	if err != nil || end < start {
		return 0, 0, false
	}
	return start, end, true
}

// WriteArchive writes the dump as a zstd compressed tar stream.
func (p *ProcessDump) WriteArchive(w io.Writer) error {
	enc, err := zstd.NewWriter(w)
	if err != nil {
		return fmt.Errorf("zstd writer: %w", err)
	}
	tw := tar.NewWriter(enc)

	writeEntry := func(name string, data []byte) error {
		hdr := &tar.Header{
			Name: name,
			Mode: 0644,
			Size: int64(len(data)),
		}
		if err := tw.WriteHeader(hdr); err != nil {
			return fmt.Errorf("tar header %s: %w", name, err)
		}
		if _, err := tw.Write(data); err != nil {
			return fmt.Errorf("tar write %s: %w", name, err)
		}
		return nil
	}

	metadataJSON, err := json.MarshalIndent(p.Metadata, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal metadata: %w", err)
	}
	if err := writeEntry(metadataFile, metadataJSON); err != nil {
		return err
	}

	memoryMapJSON, err := json.MarshalIndent(p.MemoryMap, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal memory map: %w", err)
	}
	if err := writeEntry(memoryMapFile, memoryMapJSON); err != nil {
		return err
	}

	if p.Listing != nil {
		var listing bytes.Buffer
		if err := memory_map.Format(&listing, p.Listing); err != nil {
			return err
		}
		if err := writeEntry(listingFile, listing.Bytes()); err != nil {
			return err
		}
	}

	for _, region := range p.MemoryMap {
		data, ok := p.Blobs[region.Address]
		if !ok {
			continue
		}
		region.Size = uint(len(data))
		if err := writeEntry(regionEntryName(region), data); err != nil {
			return err
		}
	}

	if err := tw.Close(); err != nil {
		return fmt.Errorf("tar close: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("zstd close: %w", err)
	}
	return nil
}

// SaveArchive writes the dump to filename as a .tar.zst archive
func (p *ProcessDump) SaveArchive(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := p.WriteArchive(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	p.log.Infoln("Snapshot archived to", filename, ":", len(p.Blobs), "regions,", humanize.Bytes(p.CapturedBytes()))
	return nil
}

// ReadArchive loads a snapshot archive. Region entries are named
// "<start>-<end>.dump"; metadata and the memory map are optional so bare
// region archives load too. Any other entry in the /proc/<pid>/maps format
// is kept as the listing: it supplies perms and paths for bare regions and
// the base address through ResolveBase. Without it perms default to read only.
func (p *ProcessDump) ReadArchive(r io.Reader) error {
	dec, err := zstd.NewReader(r)
	if err != nil {
		return fmt.Errorf("zstd reader: %w", err)
	}
	defer dec.Close()

	var listed []memory_map.MemoryMapItem
	var bare []memory_map.MemoryMapItem

	tr := tar.NewReader(dec)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("tar: %w", err)
		}
		if hdr.Typeflag != tar.TypeReg {
			continue
		}

		data, err := io.ReadAll(tr)
		if err != nil {
			return fmt.Errorf("tar read %s: %w", hdr.Name, err)
		}

		switch name := path.Base(hdr.Name); name {
		case metadataFile:
			if err := json.Unmarshal(data, &p.Metadata); err != nil {
				return fmt.Errorf("failed to unmarshal metadata: %w", err)
			}
		case memoryMapFile:
			if err := json.Unmarshal(data, &listed); err != nil {
				return fmt.Errorf("failed to unmarshal memory map: %w", err)
			}
		default:
			start, end, ok := parseRegionEntryName(name)
			if !ok {
				if listing, err := memory_map.Parse(bytes.NewReader(data)); err == nil && len(listing) > 0 {
					p.Listing = listing
					continue
				}
				p.log.Debugln("Skipping archive entry", hdr.Name)
				continue
			}
			if uint64(len(data)) != end-start {
				p.log.Warn("Region ", name, " holds ", len(data), " bytes, name says ", end-start)
			}
			p.Blobs[start] = data
			bare = append(bare, memory_map.MemoryMapItem{Address: start, Size: uint(len(data)), Perms: "r--p"})
		}
	}

	switch {
	case listed != nil:
		p.MemoryMap = listed
	case p.Listing != nil:
		for i, region := range bare {
			for _, item := range p.Listing {
				if item.Address == region.Address {
					bare[i].Perms = item.Perms
					bare[i].Path = item.Path
					break
				}
			}
		}
		p.MemoryMap = bare
	default:
		p.MemoryMap = bare
	}
	p.reindex()

	p.log.Infoln("Loaded snapshot archive of", p.Name, "pid", p.PID, ":", len(p.Blobs), "regions,", humanize.Bytes(p.CapturedBytes()))
	return nil
}

// LoadArchive loads a .tar.zst snapshot archive from filename
func LoadArchive(filename string) (*ProcessDump, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dump := NewProcessDump()
	if err := dump.ReadArchive(f); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return dump, nil
}

// Open loads a snapshot from a directory or a .tar.zst archive.
func Open(name string) (*ProcessDump, error) {
	info, err := os.Stat(name)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return LoadDir(name)
	}
	return LoadArchive(name)
}
