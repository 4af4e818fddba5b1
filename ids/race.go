package ids

import "iemem/enum"

// Race (RACE.IDS). Values above 100 are monster races.
type Race uint8

const (
	RaceHuman          Race = 1
	RaceElf            Race = 2
	RaceHalfElf        Race = 3
	RaceDwarf          Race = 4
	RaceHalfling       Race = 5
	RaceGnome          Race = 6
	RaceHalfOrc        Race = 7
	RaceAnkheg         Race = 101
	RaceBasilisk       Race = 102
	RaceBear           Race = 103
	RaceCarrionCrawler Race = 104
	RaceDog            Race = 105
	RaceDoppleganger   Race = 106
	RaceEttercap       Race = 107
	RaceGhoul          Race = 108
	RaceGibberling     Race = 109
	RaceGnoll          Race = 110
	RaceHobgoblin      Race = 111
	RaceKobold         Race = 112
	RaceOgre           Race = 113
	RaceSkeleton       Race = 114
	RaceSpider         Race = 115
	RaceWolf           Race = 116
	RaceWyvern         Race = 117
	RaceSlime          Race = 118
	RaceFairy          Race = 119
	RaceDemonic        Race = 120
	RaceLycanthrope    Race = 121
	RaceBeetle         Race = 122
	RaceBird           Race = 123
	RaceCat            Race = 124
	RaceDragon         Race = 125
	RaceElemental      Race = 126
	RaceGolem          Race = 127
	RaceMist           Race = 128
)

var Races = enum.NewTable("Race", map[Race]string{
	RaceHuman:          "Human",
	RaceElf:            "Elf",
	RaceHalfElf:        "HalfElf",
	RaceDwarf:          "Dwarf",
	RaceHalfling:       "Halfling",
	RaceGnome:          "Gnome",
	RaceHalfOrc:        "HalfOrc",
	RaceAnkheg:         "Ankheg",
	RaceBasilisk:       "Basilisk",
	RaceBear:           "Bear",
	RaceCarrionCrawler: "CarrionCrawler",
	RaceDog:            "Dog",
	RaceDoppleganger:   "Doppleganger",
	RaceEttercap:       "Ettercap",
	RaceGhoul:          "Ghoul",
	RaceGibberling:     "Gibberling",
	RaceGnoll:          "Gnoll",
	RaceHobgoblin:      "Hobgoblin",
	RaceKobold:         "Kobold",
	RaceOgre:           "Ogre",
	RaceSkeleton:       "Skeleton",
	RaceSpider:         "Spider",
	RaceWolf:           "Wolf",
	RaceWyvern:         "Wyvern",
	RaceSlime:          "Slime",
	RaceFairy:          "Fairy",
	RaceDemonic:        "Demonic",
	RaceLycanthrope:    "Lycanthrope",
	RaceBeetle:         "Beetle",
	RaceBird:           "Bird",
	RaceCat:            "Cat",
	RaceDragon:         "Dragon",
	RaceElemental:      "Elemental",
	RaceGolem:          "Golem",
	RaceMist:           "Mist",
})

func (r Race) String() string { return Races.NameOf(r) }
