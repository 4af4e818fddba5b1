package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"iemem/game"
	"iemem/ids"

	"github.com/fatih/color"
)

var (
	colorHostile  = colored(color.New(color.FgRed))
	colorFriendly = colored(color.New(color.FgGreen))
	colorUnknown  = colored(color.New(color.FgHiBlack))
	colorAddress  = colored(color.New(color.Faint))
)

func colored(c *color.Color) FormatFunc {
	return func(s string) string {
		return c.Sprint(s)
	}
}

// side picks the color of an allegiance by which cutoff it falls behind
func side(ea ids.EnemyAlly) FormatFunc {
	switch {
	case ea.IsHostile():
		return colorHostile
	case ea.IsFriendly():
		return colorFriendly
	}
	return nil
}

// colorEnemyAlly colors a formatted allegiance name
func colorEnemyAlly(value string) string {
	for _, ea := range ids.EnemyAllies.Values() {
		if ea.String() == value {
			if f := side(ea); f != nil {
				return f(value)
			}
			return value
		}
	}
	return colorUnknown(value)
}

// ClassLevels formats "Fighter 4/Thief 5", falling back to the class name.
func ClassLevels(s *game.Sprite) string {
	if len(s.ClassLevels) == 0 {
		return s.Base.Object.TypeAI.Class.String()
	}
	parts := make([]string, len(s.ClassLevels))
	for i, cl := range s.ClassLevels {
		parts[i] = fmt.Sprintf("%s %d", cl.Class, cl.Level)
	}
	return strings.Join(parts, "/")
}

func name(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// Creatures writes one row per sprite.
func Creatures(w io.Writer, sprites []*game.Sprite) error {
	t := NewTable(
		ColumnSpec{Header: "ID", AlignRight: true},
		ColumnSpec{Header: "NAME", MinWidth: 12},
		ColumnSpec{Header: "RESREF"},
		ColumnSpec{Header: "AREA"},
		ColumnSpec{Header: "HP", AlignRight: true},
		ColumnSpec{Header: "AC", AlignRight: true},
		ColumnSpec{Header: "THAC0", AlignRight: true},
		ColumnSpec{Header: "CLASS"},
		ColumnSpec{Header: "RACE"},
		ColumnSpec{Header: "EA", FormatFunc: colorEnemyAlly},
		ColumnSpec{Header: "POS"},
		ColumnSpec{Header: "EFFECTS", AlignRight: true},
	)

	for _, s := range sprites {
		obj := s.Base.Object
		t.AddRow(
			strconv.Itoa(int(s.Base.Handle.ID)),
			s.DisplayName(),
			s.ResRef,
			s.CurrentArea,
			fmt.Sprintf("%d/%d", s.Header.HP, s.Derived.MaxHP),
			strconv.Itoa(int(s.Derived.AC)),
			strconv.Itoa(int(s.Derived.THAC0)),
			ClassLevels(s),
			obj.TypeAI.Race.String(),
			obj.TypeAI.EnemyAlly.String(),
			obj.Pos.String(),
			strconv.Itoa(len(s.EquippedEffects)+len(s.TimedEffects)),
		)
	}
	return t.Render(w)
}

// Entities writes one row per decoded object head.
func Entities(w io.Writer, objects []game.AIBase) error {
	t := NewTable(
		ColumnSpec{Header: "ID", AlignRight: true},
		ColumnSpec{Header: "ADDRESS", FormatFunc: colorAddress},
		ColumnSpec{Header: "KIND"},
		ColumnSpec{Header: "SCRIPT NAME"},
		ColumnSpec{Header: "EA", FormatFunc: colorEnemyAlly},
		ColumnSpec{Header: "GENERAL"},
		ColumnSpec{Header: "POS"},
	)

	for _, o := range objects {
		t.AddRow(
			strconv.Itoa(int(o.Handle.ID)),
			o.Handle.Ptr.String(),
			o.Object.ObjectType.String(),
			name(o.Object.TypeAI.Name),
			o.Object.TypeAI.EnemyAlly.String(),
			o.Object.TypeAI.General.String(),
			o.Object.Pos.String(),
		)
	}
	return t.Render(w)
}

// Effects writes the effect lists of one creature.
func Effects(w io.Writer, s *game.Sprite) error {
	t := NewTable(
		ColumnSpec{Header: "LIST"},
		ColumnSpec{Header: "OPCODE", AlignRight: true},
		ColumnSpec{Header: "EFFECT"},
		ColumnSpec{Header: "RESOURCE"},
		ColumnSpec{Header: "SOURCE"},
		ColumnSpec{Header: "DURATION", AlignRight: true},
	)

	add := func(list string, effects []game.Effect) {
		for _, e := range effects {
			t.AddRow(
				list,
				strconv.FormatUint(uint64(e.EffectID.Raw), 10),
				e.EffectID.String(),
				e.Res,
				e.SourceRes,
				strconv.FormatUint(uint64(e.Duration), 10),
			)
		}
	}
	add("equipped", s.EquippedEffects)
	add("timed", s.TimedEffects)
	return t.Render(w)
}
