package ids

import "iemem/enum"

type Gender uint8

const (
	GenderMale               Gender = 1
	GenderFemale             Gender = 2
	GenderOther              Gender = 3
	GenderNeither            Gender = 4
	GenderBoth               Gender = 5
	GenderSummoned           Gender = 6
	GenderIllusionary        Gender = 7
	GenderExtra              Gender = 8
	GenderSummonedDemon      Gender = 9
	GenderExtra2             Gender = 10
	GenderExtra3             Gender = 11
	GenderExtra4             Gender = 12
	GenderExtra5             Gender = 13
	GenderExtra6             Gender = 14
	GenderExtra7             Gender = 15
	GenderExtra8             Gender = 16
	GenderExtra9             Gender = 17
	GenderExtra10            Gender = 18
	GenderImprisonedSummoned Gender = 66
)

var Genders = enum.NewTable("Gender", map[Gender]string{
	GenderMale:               "Male",
	GenderFemale:             "Female",
	GenderOther:              "Other",
	GenderNeither:            "Neither",
	GenderBoth:               "Both",
	GenderSummoned:           "Summoned",
	GenderIllusionary:        "Illusionary",
	GenderExtra:              "Extra",
	GenderSummonedDemon:      "SummonedDemon",
	GenderExtra2:             "Extra2",
	GenderExtra3:             "Extra3",
	GenderExtra4:             "Extra4",
	GenderExtra5:             "Extra5",
	GenderExtra6:             "Extra6",
	GenderExtra7:             "Extra7",
	GenderExtra8:             "Extra8",
	GenderExtra9:             "Extra9",
	GenderExtra10:            "Extra10",
	GenderImprisonedSummoned: "ImprisonedSummoned",
})

func (g Gender) String() string { return Genders.NameOf(g) }
