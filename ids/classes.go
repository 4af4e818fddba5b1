package ids

import "iemem/enum"

// Class (CLASS.IDS). Multi and dual classes are their own values; Components
// splits them into the single classes the level slots belong to.
type Class uint8

const (
	ClassMage              Class = 1
	ClassFighter           Class = 2
	ClassCleric            Class = 3
	ClassThief             Class = 4
	ClassBard              Class = 5
	ClassPaladin           Class = 6
	ClassFighterMage       Class = 7
	ClassFighterCleric     Class = 8
	ClassFighterThief      Class = 9
	ClassFighterMageThief  Class = 10
	ClassDruid             Class = 11
	ClassRanger            Class = 12
	ClassMageThief         Class = 13
	ClassClericMage        Class = 14
	ClassClericThief       Class = 15
	ClassFighterDruid      Class = 16
	ClassFighterMageCleric Class = 17
	ClassClericRanger      Class = 18
	ClassSorcerer          Class = 19
	ClassMonk              Class = 20
	ClassShaman            Class = 21
)

var Classes = enum.NewTable("Class", map[Class]string{
	ClassMage:              "Mage",
	ClassFighter:           "Fighter",
	ClassCleric:            "Cleric",
	ClassThief:             "Thief",
	ClassBard:              "Bard",
	ClassPaladin:           "Paladin",
	ClassFighterMage:       "FighterMage",
	ClassFighterCleric:     "FighterCleric",
	ClassFighterThief:      "FighterThief",
	ClassFighterMageThief:  "FighterMageThief",
	ClassDruid:             "Druid",
	ClassRanger:            "Ranger",
	ClassMageThief:         "MageThief",
	ClassClericMage:        "ClericMage",
	ClassClericThief:       "ClericThief",
	ClassFighterDruid:      "FighterDruid",
	ClassFighterMageCleric: "FighterMageCleric",
	ClassClericRanger:      "ClericRanger",
	ClassSorcerer:          "Sorcerer",
	ClassMonk:              "Monk",
	ClassShaman:            "Shaman",
})

func (c Class) String() string { return Classes.NameOf(c) }

// the order is the order of the level slots in the derived stats
var classComponents = map[Class][]Class{
	ClassFighterMage:       {ClassFighter, ClassMage},
	ClassFighterCleric:     {ClassFighter, ClassCleric},
	ClassFighterThief:      {ClassFighter, ClassThief},
	ClassFighterMageThief:  {ClassFighter, ClassMage, ClassThief},
	ClassMageThief:         {ClassMage, ClassThief},
	ClassClericMage:        {ClassCleric, ClassMage},
	ClassClericThief:       {ClassCleric, ClassThief},
	ClassFighterDruid:      {ClassFighter, ClassDruid},
	ClassFighterMageCleric: {ClassFighter, ClassMage, ClassCleric},
	ClassClericRanger:      {ClassCleric, ClassRanger},
}

// Components returns the single classes making up c, in level slot order.
// A single class returns itself; an unmapped value returns nil.
func (c Class) Components() []Class {
	if parts, ok := classComponents[c]; ok {
		return append([]Class(nil), parts...)
	}
	if Classes.Contains(c) {
		return []Class{c}
	}
	return nil
}

// ClassLevel pairs a single class with the level held in it.
type ClassLevel struct {
	Class Class
	Level int16
}

// Levels assigns the level slots to the components of c. Slots beyond the
// number of components are ignored.
func (c Class) Levels(slots ...int16) []ClassLevel {
	parts := c.Components()
	if parts == nil {
		return nil
	}

	levels := make([]ClassLevel, 0, len(parts))
	for i, part := range parts {
		var level int16
		if i < len(slots) {
			level = slots[i]
		}
		levels = append(levels, ClassLevel{Class: part, Level: level})
	}
	return levels
}
