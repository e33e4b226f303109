package catalog

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/tool-replenish/internal/domain/tools"
	apperr "github.com/KirkDiggler/tool-replenish/internal/errors"
)

// Catalog holds the static tool definitions, in file order
type Catalog struct {
	tools []*tools.Tool
	index map[string]*tools.Tool
}

type file struct {
	Tools []*tools.Tool `yaml:"tools"`
}

//go:embed catalog.schema.json
var schemaJSON string

var schema = jsonschema.MustCompileString("catalog.schema.json", schemaJSON)

// Load reads and validates a YAML catalog file
func Load(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, apperr.Wrapf(err, "failed to read catalog %s", path)
	}
	return Parse(raw)
}

// Parse validates a YAML catalog document against the catalog schema, then
// decodes it
func Parse(raw []byte) (*Catalog, error) {
	if err := validate(raw); err != nil {
		return nil, err
	}

	var f file
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, apperr.WrapWithCode(err, apperr.CodeInvalidArgument, "catalog.yaml")
	}
	return New(f.Tools...)
}

// validate runs the schema over the document. YAML is converted to JSON
// values first so numbers reach the validator as json.Number.
func validate(raw []byte) error {
	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return apperr.WrapWithCode(err, apperr.CodeInvalidArgument, "catalog.yaml")
	}

	js, err := json.Marshal(doc)
	if err != nil {
		return apperr.WrapWithCode(err, apperr.CodeInvalidArgument, "catalog is not representable as JSON")
	}
	dec := json.NewDecoder(bytes.NewReader(js))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return apperr.WrapWithCode(err, apperr.CodeInvalidArgument, "catalog is not representable as JSON")
	}

	if err := schema.Validate(v); err != nil {
		return apperr.WrapWithCode(err, apperr.CodeInvalidArgument, "catalog does not match schema")
	}
	return nil
}

// New builds a catalog from definitions.
// A missing usage multiplier defaults to 1.
func New(defs ...*tools.Tool) (*Catalog, error) {
	c := &Catalog{
		index: make(map[string]*tools.Tool, len(defs)),
	}

	for i, def := range defs {
		if def == nil {
			return nil, apperr.InvalidArgumentf("tool #%d is empty", i)
		}
		if def.Name == "" {
			return nil, apperr.InvalidArgumentf("tool #%d has no name", i)
		}
		if _, exists := c.index[def.Name]; exists {
			return nil, apperr.AlreadyExistsf("tool %s defined twice", def.Name).
				WithMeta("tool", def.Name)
		}
		if !def.Usage.Valid() {
			return nil, apperr.InvalidArgumentf("tool %s has unknown usage %q", def.Name, def.Usage).
				WithMeta("tool", def.Name)
		}
		if def.BaseStorage < 0 {
			return nil, apperr.InvalidArgumentf("tool %s has negative storage", def.Name)
		}
		if def.UsageMultiplier < 0 {
			return nil, apperr.InvalidArgumentf("tool %s has negative usage multiplier", def.Name)
		}

		t := *def
		if t.UsageMultiplier == 0 {
			t.UsageMultiplier = 1
		}
		if def.Liquid != nil {
			liquid := *def.Liquid
			t.Liquid = &liquid
		}

		c.tools = append(c.tools, &t)
		c.index[t.Name] = &t
	}

	return c, nil
}

// Get returns a tool by name
func (c *Catalog) Get(name string) (*tools.Tool, bool) {
	t, ok := c.index[name]
	return t, ok
}

// MustGet returns a tool by name or panics
func (c *Catalog) MustGet(name string) *tools.Tool {
	t, ok := c.Get(name)
	if !ok {
		panic(fmt.Sprintf("catalog: unknown tool %s", name))
	}
	return t
}

// Tools returns every definition in file order
func (c *Catalog) Tools() []*tools.Tool {
	out := make([]*tools.Tool, len(c.tools))
	copy(out, c.tools)
	return out
}

// Currencies returns the distinct currency kinds the catalog uses
func (c *Catalog) Currencies() []tools.CurrencyKind {
	seen := make(map[tools.CurrencyKind]bool)
	var kinds []tools.CurrencyKind
	for _, t := range c.tools {
		if t.Resource == tools.CurrencyNone || seen[t.Resource] {
			continue
		}
		seen[t.Resource] = true
		kinds = append(kinds, t.Resource)
	}
	return kinds
}
