// Package ids holds the identifier domains of the target's object records.
// Each domain is an explicit raw value to name table; values missing from a
// table decode as enum.Unknown rather than failing.
package ids

import "iemem/enum"

// Alignment (ALIGNMEN.IDS). The Mask values are used by scripts to match a
// whole axis.
type Alignment uint8

const (
	AlignmentNone           Alignment = 0x00
	AlignmentMaskGood       Alignment = 0x01
	AlignmentMaskGENeutral  Alignment = 0x02
	AlignmentMaskEvil       Alignment = 0x03
	AlignmentMaskLawful     Alignment = 0x10
	AlignmentLawfulGood     Alignment = 0x11
	AlignmentLawfulNeutral  Alignment = 0x12
	AlignmentLawfulEvil     Alignment = 0x13
	AlignmentMaskLCNeutral  Alignment = 0x20
	AlignmentNeutralGood    Alignment = 0x21
	AlignmentNeutral        Alignment = 0x22
	AlignmentNeutralEvil    Alignment = 0x23
	AlignmentMaskChaotic    Alignment = 0x30
	AlignmentChaoticGood    Alignment = 0x31
	AlignmentChaoticNeutral Alignment = 0x32
	AlignmentChaoticEvil    Alignment = 0x33
)

var Alignments = enum.NewTable("Alignment", map[Alignment]string{
	AlignmentNone:           "None",
	AlignmentMaskGood:       "MaskGood",
	AlignmentMaskGENeutral:  "MaskGENeutral",
	AlignmentMaskEvil:       "MaskEvil",
	AlignmentMaskLawful:     "MaskLawful",
	AlignmentLawfulGood:     "LawfulGood",
	AlignmentLawfulNeutral:  "LawfulNeutral",
	AlignmentLawfulEvil:     "LawfulEvil",
	AlignmentMaskLCNeutral:  "MaskLCNeutral",
	AlignmentNeutralGood:    "NeutralGood",
	AlignmentNeutral:        "Neutral",
	AlignmentNeutralEvil:    "NeutralEvil",
	AlignmentMaskChaotic:    "MaskChaotic",
	AlignmentChaoticGood:    "ChaoticGood",
	AlignmentChaoticNeutral: "ChaoticNeutral",
	AlignmentChaoticEvil:    "ChaoticEvil",
})

func (a Alignment) String() string { return Alignments.NameOf(a) }
