package game

import (
	"iemem/layout"
	"iemem/process"
	"iemem/remote"
)

// Derived tags pointers to a derived stats record.
type Derived struct{}

// DerivedStats are a creature's effective statistics after items and
// effects are applied.
type DerivedStats struct {
	MaxHP           int16
	AC              int16
	ACCrushing      int16
	ACMissile       int16
	ACPiercing      int16
	ACSlashing      int16
	THAC0           int16
	NumberOfAttacks int16
	SaveVsDeath     int16
	SaveVsWands     int16
	SaveVsPoly      int16
	SaveVsBreath    int16
	SaveVsSpell     int16
	ResistFire      int16
	ResistCold      int16
	ResistElectric  int16
	ResistAcid      int16
	ResistMagic     int16
	ResistMagicFire int16
	ResistMagicCold int16
	ResistSlashing  int16
	ResistCrushing  int16
	ResistPiercing  int16
	ResistMissile   int16
	Level1          int16
	Level2          int16
	Level3          int16
	Str             int16
	StrExtra        int16
	Int             int16
	Wis             int16
	Dex             int16
	Con             int16
	Chr             int16
}

// Levels returns the three class level slots in order
func (d DerivedStats) Levels() []int16 {
	return []int16{d.Level1, d.Level2, d.Level3}
}

// ReadDerivedStats reads the whole record once and decodes every field
// from the copy.
func ReadDerivedStats(ch process.Channel, l *layout.Layout, p remote.Ptr[Derived]) (DerivedStats, error) {
	var d DerivedStats
	off := l.Derived

	block, err := readBlock(ch, p, off.Size.Int64())
	if err != nil {
		return d, err
	}

	fields := []struct {
		offset layout.Offset
		dst    *int16
	}{
		{off.MaxHP, &d.MaxHP},
		{off.AC, &d.AC},
		{off.ACCrushing, &d.ACCrushing},
		{off.ACMissile, &d.ACMissile},
		{off.ACPiercing, &d.ACPiercing},
		{off.ACSlashing, &d.ACSlashing},
		{off.THAC0, &d.THAC0},
		{off.NumberOfAttacks, &d.NumberOfAttacks},
		{off.SaveVsDeath, &d.SaveVsDeath},
		{off.SaveVsWands, &d.SaveVsWands},
		{off.SaveVsPoly, &d.SaveVsPoly},
		{off.SaveVsBreath, &d.SaveVsBreath},
		{off.SaveVsSpell, &d.SaveVsSpell},
		{off.ResistFire, &d.ResistFire},
		{off.ResistCold, &d.ResistCold},
		{off.ResistElectric, &d.ResistElectric},
		{off.ResistAcid, &d.ResistAcid},
		{off.ResistMagic, &d.ResistMagic},
		{off.ResistMagicFire, &d.ResistMagicFire},
		{off.ResistMagicCold, &d.ResistMagicCold},
		{off.ResistSlashing, &d.ResistSlashing},
		{off.ResistCrushing, &d.ResistCrushing},
		{off.ResistPiercing, &d.ResistPiercing},
		{off.ResistMissile, &d.ResistMissile},
		{off.Level1, &d.Level1},
		{off.Level2, &d.Level2},
		{off.Level3, &d.Level3},
		{off.Str, &d.Str},
		{off.StrExtra, &d.StrExtra},
		{off.Int, &d.Int},
		{off.Wis, &d.Wis},
		{off.Dex, &d.Dex},
		{off.Con, &d.Con},
		{off.Chr, &d.Chr},
	}
	for _, f := range fields {
		if *f.dst, err = remote.ReadAt[int16](block, p, f.offset.Int64()); err != nil {
			return DerivedStats{}, err
		}
	}
	return d, nil
}
