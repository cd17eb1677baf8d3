package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
	"golang.org/x/net/html"
	"golang.org/x/text/encoding/htmlindex"
	"gopkg.in/yaml.v3"

	"github.com/stateful/draftjshtml/pkg/draftjs"
	"github.com/stateful/draftjshtml/pkg/fromhtml"
	"github.com/stateful/draftjshtml/pkg/tohtml"
)

const Version = "v1"

// Config holds conversion options loaded from an options file.
type Config struct {
	Version  string   `yaml:"version" toml:"version" validate:"required,eq=v1"`
	ToHTML   ToHTML   `yaml:"tohtml" toml:"tohtml"`
	FromHTML FromHTML `yaml:"fromhtml" toml:"fromhtml"`
}

type ToHTML struct {
	// BlockTypes maps block types to element names.
	BlockTypes map[string]string `yaml:"block_types" toml:"block_types" validate:"dive,keys,required,endkeys,required"`
	// Styles maps inline styles to elements.
	Styles map[string]Element `yaml:"styles" toml:"styles" validate:"dive,keys,required,endkeys"`
	// Entities maps entity types to elements. Element attributes name
	// the entity data key providing the value.
	Entities        map[string]Element `yaml:"entities" toml:"entities" validate:"dive,keys,required,endkeys"`
	SqueezeNewlines bool               `yaml:"squeeze_newlines" toml:"squeeze_newlines"`
	Encoding        string             `yaml:"encoding" toml:"encoding" validate:"omitempty,encoding"`
}

type Element struct {
	Tag        string            `yaml:"tag" toml:"tag" validate:"required"`
	Attributes map[string]string `yaml:"attributes" toml:"attributes"`
	// Void entity elements drop the text they cover, like <img>.
	Void bool `yaml:"void" toml:"void"`
}

type FromHTML struct {
	SqueezeWhitespaceBlocks bool `yaml:"squeeze_whitespace_blocks" toml:"squeeze_whitespace_blocks"`
	// Entities are tried in order before the built-in link and image rules.
	Entities []EntityRule `yaml:"entities" toml:"entities" validate:"dive"`
}

// EntityRule turns matching elements into entities whose data are the
// element attributes.
type EntityRule struct {
	Tag string `yaml:"tag" toml:"tag" validate:"required"`
	// Attribute, when set, must be present on the element.
	Attribute  string `yaml:"attribute" toml:"attribute"`
	Type       string `yaml:"type" toml:"type" validate:"required"`
	Mutability string `yaml:"mutability" toml:"mutability" validate:"omitempty,oneof=IMMUTABLE MUTABLE SEGMENTED"`
	Atomic     bool   `yaml:"atomic" toml:"atomic"`
}

func ParseYAML(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal yaml")
	}
	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func ParseTOML(data []byte) (*Config, error) {
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal toml")
	}
	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func validate(cfg *Config) error {
	v := validator.New()
	if err := v.RegisterValidation("encoding", func(fl validator.FieldLevel) bool {
		_, err := htmlindex.Get(fl.Field().String())
		return err == nil
	}); err != nil {
		return errors.WithStack(err)
	}
	if err := v.Struct(cfg); err != nil {
		return errors.Wrap(err, "failed to validate config")
	}
	for _, name := range sortedKeys(cfg.ToHTML.Styles) {
		if err := v.Struct(cfg.ToHTML.Styles[name]); err != nil {
			return errors.Wrapf(err, "failed to validate style %q", name)
		}
	}
	for _, typ := range sortedKeys(cfg.ToHTML.Entities) {
		if err := v.Struct(cfg.ToHTML.Entities[typ]); err != nil {
			return errors.Wrapf(err, "failed to validate entity %q", typ)
		}
	}
	return nil
}

// ToHTMLOptions returns renderer options. The logger is left to the caller.
func (c *Config) ToHTMLOptions() tohtml.Options {
	opts := tohtml.Options{
		BlockTypeMapping: c.ToHTML.BlockTypes,
		SqueezeNewlines:  c.ToHTML.SqueezeNewlines,
		Encoding:         c.ToHTML.Encoding,
	}

	if len(c.ToHTML.Styles) > 0 {
		opts.StyleMapping = make(map[string]tohtml.StyleTag, len(c.ToHTML.Styles))
		for name, el := range c.ToHTML.Styles {
			var attrs []html.Attribute
			for _, key := range sortedKeys(el.Attributes) {
				attrs = append(attrs, tohtml.Attr(key, el.Attributes[key]))
			}
			opts.StyleMapping[name] = tohtml.StyleTag{Tag: el.Tag, Attrs: attrs}
		}
	}

	if len(c.ToHTML.Entities) > 0 {
		opts.EntityStyleMappings = make(map[string]tohtml.EntityRenderer, len(c.ToHTML.Entities))
		for typ, el := range c.ToHTML.Entities {
			opts.EntityStyleMappings[typ] = el.entityRenderer()
		}
	}

	return opts
}

func (e Element) entityRenderer() tohtml.EntityRenderer {
	names := sortedKeys(e.Attributes)
	return func(entity *draftjs.Entity, content tohtml.Node, _ *draftjs.Content) (tohtml.Node, bool) {
		var attrs []html.Attribute
		for _, name := range names {
			v, ok := entity.Data[e.Attributes[name]]
			if !ok || v == nil {
				continue
			}
			attrs = append(attrs, tohtml.Attr(name, fmt.Sprint(v)))
		}
		if e.Void {
			content = nil
		}
		return tohtml.Element(e.Tag, attrs, content), true
	}
}

// FromHTMLOptions returns parser options. The logger is left to the caller.
func (c *Config) FromHTMLOptions() fromhtml.Options {
	opts := fromhtml.Options{
		SqueezeWhitespaceBlocks: c.FromHTML.SqueezeWhitespaceBlocks,
	}

	rules := slices.Clone(c.FromHTML.Entities)
	if len(rules) > 0 {
		opts.NodeToEntity = func(tag, content string, attrs map[string]string) (fromhtml.NodeEntity, bool) {
			for _, r := range rules {
				if r.matches(tag, attrs) {
					return r.entity(attrs), true
				}
			}
			return fromhtml.DefaultNodeToEntity(tag, content, attrs)
		}
	}

	return opts
}

func (r EntityRule) matches(tag string, attrs map[string]string) bool {
	if !strings.EqualFold(r.Tag, tag) {
		return false
	}
	if r.Attribute == "" {
		return true
	}
	_, ok := attrs[r.Attribute]
	return ok
}

func (r EntityRule) entity(attrs map[string]string) fromhtml.NodeEntity {
	return fromhtml.NodeEntity{
		Type:       r.Type,
		Mutability: draftjs.Mutability(r.Mutability),
		Data:       fromhtml.AttributeData(attrs),
		Atomic:     r.Atomic,
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
