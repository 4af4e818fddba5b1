package ids

import "iemem/enum"

// ObjectType is the kind tag of a game object. It selects which specialized
// record the object decodes as.
type ObjectType uint8

const (
	ObjectTypeNone         ObjectType = 0x00
	ObjectTypeAIBase       ObjectType = 0x01
	ObjectTypeSound        ObjectType = 0x10
	ObjectTypeContainer    ObjectType = 0x11
	ObjectTypeSpawning     ObjectType = 0x20
	ObjectTypeDoor         ObjectType = 0x21
	ObjectTypeStatic       ObjectType = 0x30
	ObjectTypeSprite       ObjectType = 0x31
	ObjectTypeObjectMarker ObjectType = 0x40
	ObjectTypeTrigger      ObjectType = 0x41
	ObjectTypeTiledObject  ObjectType = 0x51
	ObjectTypeTemporal     ObjectType = 0x60
	ObjectTypeAreaAI       ObjectType = 0x61
	ObjectTypeFireball     ObjectType = 0x70
	ObjectTypeGameAI       ObjectType = 0x71
)

var ObjectTypes = enum.NewTable("ObjectType", map[ObjectType]string{
	ObjectTypeNone:         "None",
	ObjectTypeAIBase:       "AIBase",
	ObjectTypeSound:        "Sound",
	ObjectTypeContainer:    "Container",
	ObjectTypeSpawning:     "Spawning",
	ObjectTypeDoor:         "Door",
	ObjectTypeStatic:       "Static",
	ObjectTypeSprite:       "Sprite",
	ObjectTypeObjectMarker: "ObjectMarker",
	ObjectTypeTrigger:      "Trigger",
	ObjectTypeTiledObject:  "TiledObject",
	ObjectTypeTemporal:     "Temporal",
	ObjectTypeAreaAI:       "AreaAI",
	ObjectTypeFireball:     "Fireball",
	ObjectTypeGameAI:       "GameAI",
})

func (o ObjectType) String() string { return ObjectTypes.NameOf(o) }
