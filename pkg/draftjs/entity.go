package draftjs

type Mutability string

const (
	Immutable Mutability = "IMMUTABLE"
	Mutable   Mutability = "MUTABLE"
	Segmented Mutability = "SEGMENTED"
)

type Entity struct {
	Key        string
	Type       string
	Mutability Mutability
	Data       map[string]interface{}
}

func newEntity(key string, raw RawEntity) *Entity {
	return &Entity{
		Key:        key,
		Type:       raw.Type,
		Mutability: raw.Mutability,
		Data:       raw.Data,
	}
}

func (e *Entity) toRaw() RawEntity {
	return RawEntity{
		Type:       e.Type,
		Mutability: e.Mutability,
		Data:       e.Data,
	}
}
