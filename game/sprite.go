package game

import (
	"fmt"

	"iemem/ids"
	"iemem/layout"
	"iemem/process"
	"iemem/remote"
)

// Sprite is a creature: an object of kind ids.ObjectTypeSprite with its
// stats, name and effect lists.
type Sprite struct {
	Base            AIBase
	ResRef          string
	Header          CreatureFileHeader
	Name            *string
	Derived         DerivedStats
	CurrentArea     string
	ClassLevels     []ids.ClassLevel
	EquippedEffects []Effect
	TimedEffects    []Effect
}

// DisplayName is the creature's name, or its resource reference when the
// name is absent.
func (s *Sprite) DisplayName() string {
	if s.Name != nil {
		return *s.Name
	}
	return s.ResRef
}

type options struct {
	strictClass bool
}

// Option adjusts how records are decoded
type Option func(*options)

// WithStrictClass fails sprites whose class is not in ids.Classes with
// *process.InvalidEnumValueError. By default such sprites decode with nil
// ClassLevels.
func WithStrictClass() Option {
	return func(o *options) {
		o.strictClass = true
	}
}

func buildOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// ReadSprite decodes the creature an entity handle points at. It returns
// (nil, nil) for an invalid handle or an object that is not a sprite.
func ReadSprite(ch process.Channel, l *layout.Layout, h EntityHandle, opts ...Option) (*Sprite, error) {
	base, err := ReadAIBase(ch, l, h)
	if err != nil || base == nil {
		return nil, err
	}
	return readSprite(ch, l, base, buildOptions(opts))
}

func readSprite(ch process.Channel, l *layout.Layout, base *AIBase, o options) (*Sprite, error) {
	if base.Object.ObjectType != ids.ObjectTypeSprite {
		return nil, nil
	}

	p := remote.Cast[remote.Void](base.Handle.Ptr)
	off := l.Sprite
	s := &Sprite{Base: *base}
	var err error

	if s.ResRef, err = ReadResRef(ch, p.ByteOffset(off.ResRef.Int64())); err != nil {
		return nil, fmt.Errorf("%s: res ref: %w", base.Handle, err)
	}
	if s.Header, err = ReadCreatureFileHeader(ch, l, p.ByteOffset(off.Header.Int64())); err != nil {
		return nil, fmt.Errorf("%s: header: %w", base.Handle, err)
	}
	if s.Name, err = ReadIndirectString(ch, p.ByteOffset(off.Name.Int64()), off.NameCap); err != nil {
		return nil, fmt.Errorf("%s: name: %w", base.Handle, err)
	}
	if s.Derived, err = ReadDerivedStats(ch, l, remote.Cast[Derived](p.ByteOffset(off.Derived.Int64()))); err != nil {
		return nil, fmt.Errorf("%s: derived stats: %w", base.Handle, err)
	}
	if s.CurrentArea, err = ReadResRef(ch, p.ByteOffset(off.CurrentArea.Int64())); err != nil {
		return nil, fmt.Errorf("%s: current area: %w", base.Handle, err)
	}

	class := base.Object.TypeAI.Class
	if c, ok := class.Get(); ok {
		s.ClassLevels = c.Levels(s.Derived.Levels()...)
	} else if o.strictClass {
		return nil, fmt.Errorf("%s: %w", base.Handle, &process.InvalidEnumValueError{Enum: ids.Classes.Name(), Value: uint64(class.Raw)})
	}

	readEffect := func(ch process.Channel, p remote.Ptr[EffectRecord]) (Effect, error) {
		return ReadEffect(ch, l, p)
	}
	if s.EquippedEffects, err = ReadPtrList(ch, l, remote.Cast[PtrList](p.ByteOffset(off.EquippedEffects.Int64())), readEffect); err != nil {
		return nil, fmt.Errorf("%s: equipped effects: %w", base.Handle, err)
	}
	if s.TimedEffects, err = ReadPtrList(ch, l, remote.Cast[PtrList](p.ByteOffset(off.TimedEffects.Int64())), readEffect); err != nil {
		return nil, fmt.Errorf("%s: timed effects: %w", base.Handle, err)
	}

	return s, nil
}
