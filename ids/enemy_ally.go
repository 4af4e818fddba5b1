package ids

import "iemem/enum"

// EnemyAlly is a creature's allegiance (EA.IDS)
type EnemyAlly uint8

const (
	EnemyAllyAnyone        EnemyAlly = 0 // all allegiances
	EnemyAllyInanimate     EnemyAlly = 1 // e.g. statues
	EnemyAllyPC            EnemyAlly = 2 // party members
	EnemyAllyFamiliar      EnemyAlly = 3 // mage familiars
	EnemyAllyAlly          EnemyAlly = 4
	EnemyAllyControlled    EnemyAlly = 5  // fully player controlled
	EnemyAllyCharmed       EnemyAlly = 6  // green circle, not controllable
	EnemyAllyReallyCharmed EnemyAlly = 7  // fully player controlled
	EnemyAllyGoodButRed    EnemyAlly = 28 // party allegiance, hostile circle
	EnemyAllyGoodButBlue   EnemyAlly = 29 // party allegiance, neutral circle
	EnemyAllyGoodCutoff    EnemyAlly = 30 // script group: party friendly
	EnemyAllyNotGood       EnemyAlly = 31 // script group: all but party friendly
	EnemyAllyAnything      EnemyAlly = 126
	EnemyAllyAreaObject    EnemyAlly = 127 // doors, containers, regions, animations
	EnemyAllyNeutral       EnemyAlly = 128
	EnemyAllyNotNeutral    EnemyAlly = 198
	EnemyAllyNotEvil       EnemyAlly = 199 // script group: all but hostile
	EnemyAllyEvilCutoff    EnemyAlly = 200 // script group: hostile
	EnemyAllyEvilButGreen  EnemyAlly = 201
	EnemyAllyEvilButBlue   EnemyAlly = 202
	EnemyAllyCharmedPC     EnemyAlly = 254
	EnemyAllyEnemy         EnemyAlly = 255
)

var EnemyAllies = enum.NewTable("EnemyAlly", map[EnemyAlly]string{
	EnemyAllyAnyone:        "Anyone",
	EnemyAllyInanimate:     "Inanimate",
	EnemyAllyPC:            "PC",
	EnemyAllyFamiliar:      "Familiar",
	EnemyAllyAlly:          "Ally",
	EnemyAllyControlled:    "Controlled",
	EnemyAllyCharmed:       "Charmed",
	EnemyAllyReallyCharmed: "ReallyCharmed",
	EnemyAllyGoodButRed:    "GoodButRed",
	EnemyAllyGoodButBlue:   "GoodButBlue",
	EnemyAllyGoodCutoff:    "GoodCutoff",
	EnemyAllyNotGood:       "NotGood",
	EnemyAllyAnything:      "Anything",
	EnemyAllyAreaObject:    "AreaObject",
	EnemyAllyNeutral:       "Neutral",
	EnemyAllyNotNeutral:    "NotNeutral",
	EnemyAllyNotEvil:       "NotEvil",
	EnemyAllyEvilCutoff:    "EvilCutoff",
	EnemyAllyEvilButGreen:  "EvilButGreen",
	EnemyAllyEvilButBlue:   "EvilButBlue",
	EnemyAllyCharmedPC:     "CharmedPC",
	EnemyAllyEnemy:         "Enemy",
})

func (e EnemyAlly) String() string { return EnemyAllies.NameOf(e) }

// IsHostile reports whether e is on the hostile side of EvilCutoff.
func (e EnemyAlly) IsHostile() bool {
	return e >= EnemyAllyEvilCutoff
}

// IsFriendly reports whether e is on the party side of GoodCutoff.
func (e EnemyAlly) IsFriendly() bool {
	return e > EnemyAllyAnyone && e <= EnemyAllyGoodCutoff && e != EnemyAllyInanimate
}
