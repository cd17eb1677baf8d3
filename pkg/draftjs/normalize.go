package draftjs

import (
	"strconv"

	"golang.org/x/exp/slices"
)

// NormalizeKeys returns a copy of raw with generated keys replaced by
// predictable ones: blocks become "block-key-<i>" and entities
// "entity-key-<i>" in order of first reference. Entities nobody
// references follow in key order. Documents that differ only in
// generated keys normalize to equal values.
func NormalizeKeys(raw *RawDraftJS) *RawDraftJS {
	result := &RawDraftJS{
		Blocks:    make([]RawBlock, 0, len(raw.Blocks)),
		EntityMap: make(map[string]RawEntity, len(raw.EntityMap)),
	}

	renamed := make(map[string]string)
	rename := func(key string) string {
		if n, ok := renamed[key]; ok {
			return n
		}
		n := "entity-key-" + strconv.Itoa(len(renamed))
		renamed[key] = n
		return n
	}

	for i, b := range raw.Blocks {
		block := RawBlock{
			Key:               "block-key-" + strconv.Itoa(i),
			Text:              b.Text,
			Type:              b.Type,
			Depth:             b.Depth,
			InlineStyleRanges: append([]RawInlineStyleRange{}, b.InlineStyleRanges...),
			EntityRanges:      make([]RawEntityRange, 0, len(b.EntityRanges)),
			Data:              b.Data,
		}
		if block.Type == "" {
			block.Type = DefaultBlockType
		}
		for _, r := range b.EntityRanges {
			block.EntityRanges = append(block.EntityRanges, RawEntityRange{
				Key:    rename(r.Key),
				Offset: r.Offset,
				Length: r.Length,
			})
		}
		result.Blocks = append(result.Blocks, block)
	}

	var unreferenced []string
	for key := range raw.EntityMap {
		if _, ok := renamed[key]; !ok {
			unreferenced = append(unreferenced, key)
		}
	}
	slices.Sort(unreferenced)
	for _, key := range unreferenced {
		rename(key)
	}

	for key, e := range raw.EntityMap {
		if e.Data == nil {
			e.Data = map[string]interface{}{}
		}
		result.EntityMap[renamed[key]] = e
	}

	return result
}
