package draftjs

import (
	"bytes"
	"encoding/json"

	"github.com/pkg/errors"
)

// RawDraftJS is the wire format produced by Draft.js convertToRaw.
type RawDraftJS struct {
	Blocks    []RawBlock           `json:"blocks"`
	EntityMap map[string]RawEntity `json:"entityMap"`
}

type RawBlock struct {
	Key               string                 `json:"key"`
	Text              string                 `json:"text"`
	Type              string                 `json:"type"`
	Depth             int                    `json:"depth"`
	InlineStyleRanges []RawInlineStyleRange  `json:"inlineStyleRanges"`
	EntityRanges      []RawEntityRange       `json:"entityRanges"`
	Data              map[string]interface{} `json:"data,omitempty"`
}

type RawInlineStyleRange struct {
	Style  string `json:"style"`
	Offset int    `json:"offset"`
	Length int    `json:"length"`
}

type RawEntityRange struct {
	Key    string `json:"key"`
	Offset int    `json:"offset"`
	Length int    `json:"length"`
}

// UnmarshalJSON accepts both string and numeric keys.
// Draft.js itself emits numbers.
func (r *RawEntityRange) UnmarshalJSON(data []byte) error {
	var aux struct {
		Key    json.RawMessage `json:"key"`
		Offset int             `json:"offset"`
		Length int             `json:"length"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	r.Offset = aux.Offset
	r.Length = aux.Length
	r.Key = ""

	key := bytes.TrimSpace(aux.Key)
	if len(key) == 0 || bytes.Equal(key, []byte("null")) {
		return nil
	}

	if key[0] == '"' {
		return json.Unmarshal(key, &r.Key)
	}

	var num json.Number
	if err := json.Unmarshal(key, &num); err != nil {
		return errors.Wrapf(err, "entity range key %s", key)
	}
	r.Key = num.String()
	return nil
}

type RawEntity struct {
	Type       string                 `json:"type"`
	Mutability Mutability             `json:"mutability"`
	Data       map[string]interface{} `json:"data"`
}

// Parse decodes and validates a raw Draft.js JSON document.
func Parse(data []byte) (*Content, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, invalidf("empty input")
	}

	var top map[string]json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil {
		return nil, invalidf("document is not a JSON object: %v", err)
	}
	if top == nil {
		return nil, invalidf("document is null")
	}

	rawBlocks, ok := top["blocks"]
	if !ok {
		return nil, invalidf("missing blocks")
	}
	var blocks []json.RawMessage
	if err := json.Unmarshal(rawBlocks, &blocks); err != nil || blocks == nil {
		return nil, invalidf("blocks is not an array")
	}

	var raw RawDraftJS
	raw.Blocks = make([]RawBlock, 0, len(blocks))
	for i, b := range blocks {
		var block RawBlock
		if err := json.Unmarshal(b, &block); err != nil {
			return nil, invalidf("block %d: %v", i, err)
		}
		raw.Blocks = append(raw.Blocks, block)
	}

	if rawEntityMap, ok := top["entityMap"]; ok && !bytes.Equal(bytes.TrimSpace(rawEntityMap), []byte("null")) {
		var entityMap map[string]json.RawMessage
		if err := json.Unmarshal(rawEntityMap, &entityMap); err != nil {
			return nil, invalidf("entityMap is not an object")
		}

		raw.EntityMap = make(map[string]RawEntity, len(entityMap))
		for key, e := range entityMap {
			var entity RawEntity
			if err := json.Unmarshal(e, &entity); err != nil {
				return nil, invalidf("entity %q: %v", key, err)
			}
			raw.EntityMap[key] = entity
		}
	}

	return FromRaw(&raw)
}
