package game

import (
	"fmt"

	"iemem/enum"
	"iemem/ids"
	"iemem/layout"
	"iemem/process"
	"iemem/remote"
)

// EffectRecord tags pointers to an applied effect
type EffectRecord struct{}

// Effect is one applied effect as found in a creature's effect lists.
type Effect struct {
	Version      string
	EffectID     enum.Lookup[ids.Effect]
	SpellLevel   int32
	DurationType uint32
	Duration     uint32
	Res          string
	Res2         string
	Res3         string
	SourceRes    string
}

func (e Effect) String() string {
	return fmt.Sprintf("%s(%s) duration %d/%d", e.EffectID, e.Res, e.DurationType, e.Duration)
}

func effectSpan(off layout.Effect) int64 {
	return span(
		[2]int64{off.Version.Int64(), ResRefSize},
		[2]int64{off.EffectID.Int64(), 4},
		[2]int64{off.SpellLevel.Int64(), 4},
		[2]int64{off.DurationType.Int64(), 4},
		[2]int64{off.Duration.Int64(), 4},
		[2]int64{off.Res.Int64(), ResRefSize},
		[2]int64{off.Res2.Int64(), ResRefSize},
		[2]int64{off.Res3.Int64(), ResRefSize},
		[2]int64{off.SourceRes.Int64(), ResRefSize},
	)
}

// ReadEffect decodes the effect at p. Its fields start Effect.Base bytes in.
func ReadEffect(ch process.Channel, l *layout.Layout, p remote.Ptr[EffectRecord]) (Effect, error) {
	var e Effect
	off := l.Effect
	base := remote.Cast[remote.Void](p).ByteOffset(off.Base.Int64())

	block, err := readBlock(ch, base, effectSpan(off))
	if err != nil {
		return e, fmt.Errorf("effect at %s: %w", p, err)
	}

	refs := []struct {
		offset layout.Offset
		dst    *string
	}{
		{off.Version, &e.Version},
		{off.Res, &e.Res},
		{off.Res2, &e.Res2},
		{off.Res3, &e.Res3},
		{off.SourceRes, &e.SourceRes},
	}
	for _, r := range refs {
		if *r.dst, err = ReadResRef(block, base.ByteOffset(r.offset.Int64())); err != nil {
			return Effect{}, err
		}
	}

	id, err := remote.ReadAt[uint32](block, base, off.EffectID.Int64())
	if err != nil {
		return Effect{}, err
	}
	e.EffectID = ids.Effects.Lookup(ids.Effect(id))

	if e.SpellLevel, err = remote.ReadAt[int32](block, base, off.SpellLevel.Int64()); err != nil {
		return Effect{}, err
	}
	if e.DurationType, err = remote.ReadAt[uint32](block, base, off.DurationType.Int64()); err != nil {
		return Effect{}, err
	}
	if e.Duration, err = remote.ReadAt[uint32](block, base, off.Duration.Int64()); err != nil {
		return Effect{}, err
	}
	return e, nil
}
