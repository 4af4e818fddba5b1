// Package layout holds the per build offset tables of the target's object
// records. Tables are JSON documents: the builtin ones are embedded, others
// can be loaded from a file.
package layout

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path"
	"strconv"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Default is the builtin build used when none is named
const Default = "bgee-2.6"

var ErrUnknownBuild = errors.New("unknown layout build")

//go:embed builds/*.json
var builtinFS embed.FS

// Offset is a signed byte distance from a record base. In JSON it is either
// a number or a hex string such as "0x27780".
type Offset int64

func (o Offset) Int64() int64 {
	return int64(o)
}

func (o Offset) String() string {
	if o < 0 {
		return fmt.Sprintf("-0x%X", -int64(o))
	}
	return fmt.Sprintf("0x%X", int64(o))
}

func (o Offset) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.String())
}

func (o *Offset) UnmarshalJSON(data []byte) error {
	var n int64
	if err := json.Unmarshal(data, &n); err == nil {
		*o = Offset(n)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("offset must be a number or a string, got %s", data)
	}
	v, err := strconv.ParseInt(strings.TrimSpace(s), 0, 64)
	if err != nil {
		return fmt.Errorf("offset %q: %w", s, err)
	}
	*o = Offset(v)
	return nil
}

// EntityList is the fixed size handle array reached from the module base.
type EntityList struct {
	Offset Offset `json:"offset"`
	Count  int    `json:"count"`
	Stride Offset `json:"stride"`
	ID     Offset `json:"id"`
	Ptr    Offset `json:"ptr"`
}

// PtrList is a counted singly linked list of pointers to payload records.
type PtrList struct {
	Head    Offset `json:"head"`
	Count   Offset `json:"count"`
	Next    Offset `json:"next"`
	Payload Offset `json:"payload"`
}

type Object struct {
	ObjectType Offset `json:"object_type"`
	Pos        Offset `json:"pos"`
	PosZ       Offset `json:"pos_z"`
	ListType   Offset `json:"list_type"`
	TypeAI     Offset `json:"type_ai"`
	ID         Offset `json:"id"`
	CanBeSeen  Offset `json:"can_be_seen"`
}

// AIType is relative to the start of the embedded script identity record.
type AIType struct {
	Name        Offset `json:"name"`
	NameCap     int    `json:"name_cap"`
	EnemyAlly   Offset `json:"enemy_ally"`
	General     Offset `json:"general"`
	Race        Offset `json:"race"`
	Class       Offset `json:"class"`
	Instance    Offset `json:"instance"`
	SpecialCase Offset `json:"special_case"`
	Specifics   Offset `json:"specifics"`
	Gender      Offset `json:"gender"`
	Alignment   Offset `json:"alignment"`
}

// Derived locates the derived stats fields. Size is the span read in one go.
type Derived struct {
	Size            Offset `json:"size"`
	MaxHP           Offset `json:"max_hp"`
	AC              Offset `json:"ac"`
	ACCrushing      Offset `json:"ac_crushing"`
	ACMissile       Offset `json:"ac_missile"`
	ACPiercing      Offset `json:"ac_piercing"`
	ACSlashing      Offset `json:"ac_slashing"`
	THAC0           Offset `json:"thac0"`
	NumberOfAttacks Offset `json:"number_of_attacks"`
	SaveVsDeath     Offset `json:"save_vs_death"`
	SaveVsWands     Offset `json:"save_vs_wands"`
	SaveVsPoly      Offset `json:"save_vs_poly"`
	SaveVsBreath    Offset `json:"save_vs_breath"`
	SaveVsSpell     Offset `json:"save_vs_spell"`
	ResistFire      Offset `json:"resist_fire"`
	ResistCold      Offset `json:"resist_cold"`
	ResistElectric  Offset `json:"resist_electricity"`
	ResistAcid      Offset `json:"resist_acid"`
	ResistMagic     Offset `json:"resist_magic"`
	ResistMagicFire Offset `json:"resist_magic_fire"`
	ResistMagicCold Offset `json:"resist_magic_cold"`
	ResistSlashing  Offset `json:"resist_slashing"`
	ResistCrushing  Offset `json:"resist_crushing"`
	ResistPiercing  Offset `json:"resist_piercing"`
	ResistMissile   Offset `json:"resist_missile"`
	Level1          Offset `json:"level1"`
	Level2          Offset `json:"level2"`
	Level3          Offset `json:"level3"`
	Str             Offset `json:"str"`
	StrExtra        Offset `json:"str_extra"`
	Int             Offset `json:"int"`
	Wis             Offset `json:"wis"`
	Dex             Offset `json:"dex"`
	Con             Offset `json:"con"`
	Chr             Offset `json:"chr"`
}

// DerivedFieldSize is the width of every derived stats field.
const DerivedFieldSize = 2

func (d Derived) fields() map[string]Offset {
	return map[string]Offset{
		"max_hp": d.MaxHP, "ac": d.AC, "ac_crushing": d.ACCrushing, "ac_missile": d.ACMissile,
		"ac_piercing": d.ACPiercing, "ac_slashing": d.ACSlashing, "thac0": d.THAC0,
		"number_of_attacks": d.NumberOfAttacks, "save_vs_death": d.SaveVsDeath,
		"save_vs_wands": d.SaveVsWands, "save_vs_poly": d.SaveVsPoly, "save_vs_breath": d.SaveVsBreath,
		"save_vs_spell": d.SaveVsSpell, "resist_fire": d.ResistFire, "resist_cold": d.ResistCold,
		"resist_electricity": d.ResistElectric, "resist_acid": d.ResistAcid, "resist_magic": d.ResistMagic,
		"resist_magic_fire": d.ResistMagicFire, "resist_magic_cold": d.ResistMagicCold,
		"resist_slashing": d.ResistSlashing, "resist_crushing": d.ResistCrushing,
		"resist_piercing": d.ResistPiercing, "resist_missile": d.ResistMissile,
		"level1": d.Level1, "level2": d.Level2, "level3": d.Level3,
		"str": d.Str, "str_extra": d.StrExtra, "int": d.Int, "wis": d.Wis, "dex": d.Dex, "con": d.Con, "chr": d.Chr,
	}
}

// validate checks that every field lies inside the span read in one go.
func (d Derived) validate() error {
	if d.Size <= 0 {
		return errors.New("derived.size must be positive")
	}
	fields := d.fields()
	names := maps.Keys(fields)
	slices.Sort(names)
	for _, name := range names {
		off := fields[name]
		if off < 0 || off+DerivedFieldSize > d.Size {
			return fmt.Errorf("derived.%s at %s does not fit in derived.size %s", name, off, d.Size)
		}
	}
	return nil
}

type Header struct {
	HP     Offset `json:"hp"`
	Level1 Offset `json:"level1"`
	Level2 Offset `json:"level2"`
	Level3 Offset `json:"level3"`
}

// Effect offsets are relative to Base, itself relative to the effect pointer.
type Effect struct {
	Base         Offset `json:"base"`
	Version      Offset `json:"version"`
	EffectID     Offset `json:"effect_id"`
	SpellLevel   Offset `json:"spell_level"`
	DurationType Offset `json:"duration_type"`
	Duration     Offset `json:"duration"`
	Res          Offset `json:"res"`
	Res2         Offset `json:"res2"`
	Res3         Offset `json:"res3"`
	SourceRes    Offset `json:"source_res"`
}

// Sprite offsets are relative to the object base of a sprite kind entity.
type Sprite struct {
	ResRef          Offset `json:"res_ref"`
	Header          Offset `json:"header"`
	Derived         Offset `json:"derived"`
	Name            Offset `json:"name"`
	NameCap         int    `json:"name_cap"`
	CurrentArea     Offset `json:"current_area"`
	EquippedEffects Offset `json:"equipped_effects"`
	TimedEffects    Offset `json:"timed_effects"`
}

// Layout is the complete offset table for one build of the target.
type Layout struct {
	Build       string     `json:"build"`
	Description string     `json:"description,omitempty"`
	Identities  []string   `json:"identities"`
	Executables []string   `json:"executables,omitempty"` // Windows image names
	BaseLine    int        `json:"maps_base_line"`
	EntityList  EntityList `json:"entity_list"`
	Object      Object     `json:"object"`
	AIType      AIType     `json:"ai_type"`
	Derived     Derived    `json:"derived"`
	Header      Header     `json:"header"`
	Effect      Effect     `json:"effect"`
	PtrList     PtrList    `json:"ptr_list"`
	Sprite      Sprite     `json:"sprite"`
}

// Validate rejects tables that cannot drive a decode.
func (l *Layout) Validate() error {
	switch {
	case l.Build == "":
		return errors.New("layout: build name is empty")
	case len(l.Identities) == 0:
		return fmt.Errorf("layout %s: no target identities", l.Build)
	case l.BaseLine < 0:
		return fmt.Errorf("layout %s: maps_base_line %d is negative", l.Build, l.BaseLine)
	case l.EntityList.Count <= 0:
		return fmt.Errorf("layout %s: entity_list.count %d must be positive", l.Build, l.EntityList.Count)
	case l.EntityList.Stride < l.EntityList.Ptr+8 || l.EntityList.Stride < l.EntityList.ID+2:
		return fmt.Errorf("layout %s: entity_list.stride %s too small for its fields", l.Build, l.EntityList.Stride)
	case l.EntityList.ID < 0 || l.EntityList.Ptr < 0:
		return fmt.Errorf("layout %s: entity_list field offsets must not be negative", l.Build)
	case l.AIType.NameCap <= 0 || l.Sprite.NameCap <= 0:
		return fmt.Errorf("layout %s: string capacities must be positive", l.Build)
	}
	if err := l.Derived.validate(); err != nil {
		return fmt.Errorf("layout %s: %w", l.Build, err)
	}
	return nil
}

// IsIdentity reports whether a process name belongs to this build's target.
func (l *Layout) IsIdentity(name string) bool {
	return slices.Contains(l.Identities, name)
}

// Parse decodes and validates one layout document.
func Parse(data []byte) (*Layout, error) {
	var l Layout
	if err := json.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return &l, nil
}

// LoadFile reads a layout document from disk.
func LoadFile(filename string) (*Layout, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Builtin returns a fresh copy of the embedded layout for build.
func Builtin(build string) (*Layout, error) {
	data, err := builtinFS.ReadFile(path.Join("builds", build+".json"))
	if err != nil {
		return nil, fmt.Errorf("%w: %q (have %s)", ErrUnknownBuild, build, strings.Join(Builds(), ", "))
	}
	return Parse(data)
}

// Builds lists the embedded build names, sorted.
func Builds() []string {
	entries, err := builtinFS.ReadDir("builds")
	if err != nil {
		return nil
	}

	var builds []string
	for _, entry := range entries {
		if name, ok := strings.CutSuffix(entry.Name(), ".json"); ok {
			builds = append(builds, name)
		}
	}
	slices.Sort(builds)
	return builds
}
