package fromhtml

import (
	"github.com/stateful/draftjshtml/pkg/draftjs"
)

// NodeEntity is what an element converts into. Atomic entities occupy a
// placeholder character on a block of their own.
type NodeEntity struct {
	Type       string
	Mutability draftjs.Mutability
	Data       map[string]interface{}
	Atomic     bool
}

// NodeToEntityFunc classifies a closed element. content is the text the
// element enclosed. Returning false leaves the element without an entity.
type NodeToEntityFunc func(tag, content string, attrs map[string]string) (NodeEntity, bool)

// DefaultNodeToEntity turns anchors into links and images into atomic
// images. The element attributes become the entity data.
func DefaultNodeToEntity(tag, _ string, attrs map[string]string) (NodeEntity, bool) {
	switch tag {
	case "a":
		return NodeEntity{Type: "LINK", Mutability: draftjs.Mutable, Data: AttributeData(attrs)}, true
	case "img":
		return NodeEntity{Type: "IMAGE", Mutability: draftjs.Immutable, Data: AttributeData(attrs), Atomic: true}, true
	}
	return NodeEntity{}, false
}

// AttributeData converts element attributes into entity data.
func AttributeData(attrs map[string]string) map[string]interface{} {
	data := make(map[string]interface{}, len(attrs))
	for k, v := range attrs {
		data[k] = v
	}
	return data
}
