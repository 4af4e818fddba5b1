package ids

import "iemem/enum"

// Effect is the opcode of an applied effect. Only the opcodes listed here
// are named; the rest decode as Unknown.
type Effect uint32

const (
	EffectACBonus                 Effect = 0
	EffectAttacksPerRound         Effect = 1
	EffectCureSleep               Effect = 2
	EffectBerserk                 Effect = 3
	EffectCureBerserk             Effect = 4
	EffectCharmCreature           Effect = 5
	EffectCharismaBonus           Effect = 6
	EffectSetColor                Effect = 7
	EffectSetColorGlowSolid       Effect = 8
	EffectSetColorGlowPulse       Effect = 9
	EffectConstitutionBonus       Effect = 10
	EffectCurePoison              Effect = 11
	EffectDamage                  Effect = 12
	EffectKillTarget              Effect = 13
	EffectDefrost                 Effect = 14
	EffectDexterityBonus          Effect = 15
	EffectHaste                   Effect = 16
	EffectCurrentHPBonus          Effect = 17
	EffectMaximumHPBonus          Effect = 18
	EffectIntelligenceBonus       Effect = 19
	EffectInvisibility            Effect = 20
	EffectLoreBonus               Effect = 21
	EffectLuckBonus               Effect = 22
	EffectResetMorale             Effect = 23
	EffectPanic                   Effect = 24
	EffectPoison                  Effect = 25
	EffectRemoveCurse             Effect = 26
	EffectAcidResistanceBonus     Effect = 27
	EffectColdResistanceBonus     Effect = 28
	EffectElectricityResistance   Effect = 29
	EffectFireResistanceBonus     Effect = 30
	EffectMagicDamageResistance   Effect = 31
	EffectRaiseDead               Effect = 32
	EffectSaveVsDeathBonus        Effect = 33
	EffectSaveVsWandsBonus        Effect = 34
	EffectSaveVsPolymorphBonus    Effect = 35
	EffectSaveVsBreathBonus       Effect = 36
	EffectSaveVsSpellBonus        Effect = 37
	EffectSilence                 Effect = 38
	EffectSleep                   Effect = 39
	EffectSlow                    Effect = 40
	EffectSparkle                 Effect = 41
	EffectBonusWizardSpells       Effect = 42
	EffectStoneToFlesh            Effect = 43
	EffectStrengthBonus           Effect = 44
	EffectStun                    Effect = 45
	EffectCureStun                Effect = 46
	EffectRemoveInvisibility      Effect = 47
	EffectVocalize                Effect = 48
	EffectWisdomBonus             Effect = 49
	EffectCharacterColorPulse     Effect = 50
	EffectCharacterTint           Effect = 51
	EffectCharacterLighten        Effect = 52
	EffectAnimationChange         Effect = 53
	EffectBaseTHAC0Bonus          Effect = 54
	EffectSlay                    Effect = 55
	EffectInvertAlignment         Effect = 56
	EffectChangeAlignment         Effect = 57
	EffectDispelEffects           Effect = 58
	EffectMoveSilentlyBonus       Effect = 59
	EffectCastingFailure          Effect = 60
	EffectUnknown61               Effect = 61
	EffectBonusPriestSpells       Effect = 62
	EffectInfravision             Effect = 63
	EffectRemoveInfravision       Effect = 64
	EffectBlur                    Effect = 65
	EffectTranslucency            Effect = 66
	EffectSummonCreature          Effect = 67
	EffectUnsummonCreature        Effect = 68
	EffectNondetection            Effect = 69
	EffectRemoveNondetection      Effect = 70
	EffectChangeGender            Effect = 71
	EffectChangeAIType            Effect = 72
	EffectAttackDamageBonus       Effect = 73
	EffectBlindness               Effect = 74
	EffectCureBlindness           Effect = 75
	EffectFeeblemindedness        Effect = 76
	EffectCureFeeblemindedness    Effect = 77
	EffectDisease                 Effect = 78
	EffectCureDisease             Effect = 79
	EffectDeafness                Effect = 80
	EffectCureDeafness            Effect = 81
	EffectSetAIScript             Effect = 82
	EffectImmunityToProjectile    Effect = 83
	EffectMagicalFireResistance   Effect = 84
	EffectMagicalColdResistance   Effect = 85
	EffectSlashingResistanceBonus Effect = 86
	EffectCrushingResistanceBonus Effect = 87
	EffectPiercingResistanceBonus Effect = 88
	EffectMissileResistanceBonus  Effect = 89
	EffectOpenLocksBonus          Effect = 90
	EffectFindTrapsBonus          Effect = 91
	EffectPickPocketsBonus        Effect = 92
	EffectFatigueBonus            Effect = 93
	EffectIntoxicationBonus       Effect = 94
	EffectTrackingBonus           Effect = 95
	EffectChangeLevel             Effect = 96
	EffectExceptionalStrength     Effect = 97
	EffectRegeneration            Effect = 98
	EffectModifyDuration          Effect = 99
	EffectProtectionFromCreature  Effect = 100
	EffectImmunityToEffect        Effect = 101
	EffectImmunityToSpellLevel    Effect = 102
	EffectChangeName              Effect = 103
	EffectXPBonus                 Effect = 104
	EffectRemoveGold              Effect = 105
	EffectMoraleBreak             Effect = 106
	EffectChangePortrait          Effect = 107
	EffectReputationBonus         Effect = 108
	EffectParalyze                Effect = 109
	EffectMirrorImage             Effect = 119
	EffectProtectionFromWeapons   Effect = 120
	EffectDisplayIcon             Effect = 142
	EffectCastSpell               Effect = 146
	EffectUseEFFFile              Effect = 177
	EffectProtectionFromSpell     Effect = 206
	EffectModifyProficiencies     Effect = 233
	EffectProtectionFromResource  Effect = 318
)

var Effects = enum.NewTable("Effect", map[Effect]string{
	EffectACBonus:                 "ACBonus",
	EffectAttacksPerRound:         "AttacksPerRound",
	EffectCureSleep:               "CureSleep",
	EffectBerserk:                 "Berserk",
	EffectCureBerserk:             "CureBerserk",
	EffectCharmCreature:           "CharmCreature",
	EffectCharismaBonus:           "CharismaBonus",
	EffectSetColor:                "SetColor",
	EffectSetColorGlowSolid:       "SetColorGlowSolid",
	EffectSetColorGlowPulse:       "SetColorGlowPulse",
	EffectConstitutionBonus:       "ConstitutionBonus",
	EffectCurePoison:              "CurePoison",
	EffectDamage:                  "Damage",
	EffectKillTarget:              "KillTarget",
	EffectDefrost:                 "Defrost",
	EffectDexterityBonus:          "DexterityBonus",
	EffectHaste:                   "Haste",
	EffectCurrentHPBonus:          "CurrentHPBonus",
	EffectMaximumHPBonus:          "MaximumHPBonus",
	EffectIntelligenceBonus:       "IntelligenceBonus",
	EffectInvisibility:            "Invisibility",
	EffectLoreBonus:               "LoreBonus",
	EffectLuckBonus:               "LuckBonus",
	EffectResetMorale:             "ResetMorale",
	EffectPanic:                   "Panic",
	EffectPoison:                  "Poison",
	EffectRemoveCurse:             "RemoveCurse",
	EffectAcidResistanceBonus:     "AcidResistanceBonus",
	EffectColdResistanceBonus:     "ColdResistanceBonus",
	EffectElectricityResistance:   "ElectricityResistance",
	EffectFireResistanceBonus:     "FireResistanceBonus",
	EffectMagicDamageResistance:   "MagicDamageResistance",
	EffectRaiseDead:               "RaiseDead",
	EffectSaveVsDeathBonus:        "SaveVsDeathBonus",
	EffectSaveVsWandsBonus:        "SaveVsWandsBonus",
	EffectSaveVsPolymorphBonus:    "SaveVsPolymorphBonus",
	EffectSaveVsBreathBonus:       "SaveVsBreathBonus",
	EffectSaveVsSpellBonus:        "SaveVsSpellBonus",
	EffectSilence:                 "Silence",
	EffectSleep:                   "Sleep",
	EffectSlow:                    "Slow",
	EffectSparkle:                 "Sparkle",
	EffectBonusWizardSpells:       "BonusWizardSpells",
	EffectStoneToFlesh:            "StoneToFlesh",
	EffectStrengthBonus:           "StrengthBonus",
	EffectStun:                    "Stun",
	EffectCureStun:                "CureStun",
	EffectRemoveInvisibility:      "RemoveInvisibility",
	EffectVocalize:                "Vocalize",
	EffectWisdomBonus:             "WisdomBonus",
	EffectCharacterColorPulse:     "CharacterColorPulse",
	EffectCharacterTint:           "CharacterTint",
	EffectCharacterLighten:        "CharacterLighten",
	EffectAnimationChange:         "AnimationChange",
	EffectBaseTHAC0Bonus:          "BaseTHAC0Bonus",
	EffectSlay:                    "Slay",
	EffectInvertAlignment:         "InvertAlignment",
	EffectChangeAlignment:         "ChangeAlignment",
	EffectDispelEffects:           "DispelEffects",
	EffectMoveSilentlyBonus:       "MoveSilentlyBonus",
	EffectCastingFailure:          "CastingFailure",
	EffectUnknown61:               "Unknown61",
	EffectBonusPriestSpells:       "BonusPriestSpells",
	EffectInfravision:             "Infravision",
	EffectRemoveInfravision:       "RemoveInfravision",
	EffectBlur:                    "Blur",
	EffectTranslucency:            "Translucency",
	EffectSummonCreature:          "SummonCreature",
	EffectUnsummonCreature:        "UnsummonCreature",
	EffectNondetection:            "Nondetection",
	EffectRemoveNondetection:      "RemoveNondetection",
	EffectChangeGender:            "ChangeGender",
	EffectChangeAIType:            "ChangeAIType",
	EffectAttackDamageBonus:       "AttackDamageBonus",
	EffectBlindness:               "Blindness",
	EffectCureBlindness:           "CureBlindness",
	EffectFeeblemindedness:        "Feeblemindedness",
	EffectCureFeeblemindedness:    "CureFeeblemindedness",
	EffectDisease:                 "Disease",
	EffectCureDisease:             "CureDisease",
	EffectDeafness:                "Deafness",
	EffectCureDeafness:            "CureDeafness",
	EffectSetAIScript:             "SetAIScript",
	EffectImmunityToProjectile:    "ImmunityToProjectile",
	EffectMagicalFireResistance:   "MagicalFireResistance",
	EffectMagicalColdResistance:   "MagicalColdResistance",
	EffectSlashingResistanceBonus: "SlashingResistanceBonus",
	EffectCrushingResistanceBonus: "CrushingResistanceBonus",
	EffectPiercingResistanceBonus: "PiercingResistanceBonus",
	EffectMissileResistanceBonus:  "MissileResistanceBonus",
	EffectOpenLocksBonus:          "OpenLocksBonus",
	EffectFindTrapsBonus:          "FindTrapsBonus",
	EffectPickPocketsBonus:        "PickPocketsBonus",
	EffectFatigueBonus:            "FatigueBonus",
	EffectIntoxicationBonus:       "IntoxicationBonus",
	EffectTrackingBonus:           "TrackingBonus",
	EffectChangeLevel:             "ChangeLevel",
	EffectExceptionalStrength:     "ExceptionalStrength",
	EffectRegeneration:            "Regeneration",
	EffectModifyDuration:          "ModifyDuration",
	EffectProtectionFromCreature:  "ProtectionFromCreature",
	EffectImmunityToEffect:        "ImmunityToEffect",
	EffectImmunityToSpellLevel:    "ImmunityToSpellLevel",
	EffectChangeName:              "ChangeName",
	EffectXPBonus:                 "XPBonus",
	EffectRemoveGold:              "RemoveGold",
	EffectMoraleBreak:             "MoraleBreak",
	EffectChangePortrait:          "ChangePortrait",
	EffectReputationBonus:         "ReputationBonus",
	EffectParalyze:                "Paralyze",
	EffectMirrorImage:             "MirrorImage",
	EffectProtectionFromWeapons:   "ProtectionFromWeapons",
	EffectDisplayIcon:             "DisplayIcon",
	EffectCastSpell:               "CastSpell",
	EffectUseEFFFile:              "UseEFFFile",
	EffectProtectionFromSpell:     "ProtectionFromSpell",
	EffectModifyProficiencies:     "ModifyProficiencies",
	EffectProtectionFromResource:  "ProtectionFromResource",
})

func (e Effect) String() string { return Effects.NameOf(e) }
