package game

import (
	"iemem/layout"
	"iemem/process"
	"iemem/remote"
)

// CreatureFileHeader is the subset of the loaded creature file kept in the
// sprite record.
type CreatureFileHeader struct {
	HP     int16
	Level1 int8
	Level2 int8
	Level3 int8
}

func ReadCreatureFileHeader(ch process.Channel, l *layout.Layout, p remote.Ptr[remote.Void]) (CreatureFileHeader, error) {
	var h CreatureFileHeader
	var err error
	off := l.Header

	if h.HP, err = remote.ReadAt[int16](ch, p, off.HP.Int64()); err != nil {
		return h, err
	}
	if h.Level1, err = remote.ReadAt[int8](ch, p, off.Level1.Int64()); err != nil {
		return h, err
	}
	if h.Level2, err = remote.ReadAt[int8](ch, p, off.Level2.Int64()); err != nil {
		return h, err
	}
	if h.Level3, err = remote.ReadAt[int8](ch, p, off.Level3.Int64()); err != nil {
		return h, err
	}
	return h, nil
}
