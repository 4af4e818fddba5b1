package game

import (
	"errors"
	"fmt"

	"iemem/layout"
	"iemem/process"
	"iemem/remote"

	"github.com/Moonlight-Companies/gologger/coloransi"
	"github.com/Moonlight-Companies/gologger/logger"
)

// World is everything one Scan could decode.
type World struct {
	Handles []EntityHandle // valid slots, in list order
	Objects []AIBase
	Sprites []Sprite
	Skipped int // entities whose records failed to decode
}

// Creatures returns the sprites keep accepts. A nil keep accepts all.
func (w *World) Creatures(keep func(*Sprite) bool) []*Sprite {
	var result []*Sprite
	for i := range w.Sprites {
		if keep == nil || keep(&w.Sprites[i]) {
			result = append(result, &w.Sprites[i])
		}
	}
	return result
}

// Scanner walks the entity list of one target.
type Scanner struct {
	ch     process.Channel
	layout *layout.Layout
	base   remote.Ptr[remote.Void]
	opts   options
	log    *logger.Logger
}

func NewScanner(ch process.Channel, l *layout.Layout, base process.ProcessMemoryAddress, opts ...Option) *Scanner {
	return &Scanner{
		ch:     ch,
		layout: l,
		base:   remote.New[remote.Void](base),
		opts:   buildOptions(opts),
		log:    logger.NewLogger(coloransi.Color(coloransi.ColorPurple, coloransi.ColorOrange, "scan-"+l.Build)),
	}
}

// Scan reads the entity list and decodes every valid entity. Records that
// fail to decode are logged and counted in World.Skipped; losing the target
// aborts the whole scan with process.ErrTargetClosed.
func (s *Scanner) Scan() (*World, error) {
	handles, err := ReadEntityList(s.ch, s.layout, s.base)
	if err != nil {
		return nil, err
	}

	world := &World{Handles: ValidHandles(handles)}
	s.log.Debugln("Entity list holds", len(world.Handles), "valid handles of", len(handles))

	for _, h := range world.Handles {
		base, err := ReadAIBase(s.ch, s.layout, h)
		if err == nil && base != nil {
			world.Objects = append(world.Objects, *base)

			var sprite *Sprite
			sprite, err = readSprite(s.ch, s.layout, base, s.opts)
			if err == nil && sprite != nil {
				world.Sprites = append(world.Sprites, *sprite)
			}
		}
		if err != nil {
			if errors.Is(err, process.ErrTargetClosed) {
				return nil, err
			}
			s.log.Debugln("Skipping", h, ":", err)
			world.Skipped++
		}
	}

	s.log.Infoln("Scan complete:", len(world.Objects), "objects,", len(world.Sprites), "sprites,", world.Skipped, "skipped")
	return world, nil
}

// Scan is a one-shot Scanner.Scan.
func Scan(ch process.Channel, l *layout.Layout, base process.ProcessMemoryAddress, opts ...Option) (*World, error) {
	world, err := NewScanner(ch, l, base, opts...).Scan()
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", l.Build, err)
	}
	return world, nil
}
