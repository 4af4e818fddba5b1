package ids

import "iemem/enum"

// General is the broad category of an object (GENERAL.IDS)
type General uint8

const (
	GeneralAnyone        General = 0
	GeneralHumanoid      General = 1
	GeneralAnimal        General = 2
	GeneralDead          General = 3
	GeneralUndead        General = 4
	GeneralGiantHumanoid General = 5
	GeneralFrozen        General = 6
	GeneralMonster       General = 255
)

var Generals = enum.NewTable("General", map[General]string{
	GeneralAnyone:        "Anyone",
	GeneralHumanoid:      "Humanoid",
	GeneralAnimal:        "Animal",
	GeneralDead:          "Dead",
	GeneralUndead:        "Undead",
	GeneralGiantHumanoid: "GiantHumanoid",
	GeneralFrozen:        "Frozen",
	GeneralMonster:       "Monster",
})

func (g General) String() string { return Generals.NameOf(g) }
