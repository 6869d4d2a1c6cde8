package tokens

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Store keeps the tables parsed from token documents, keyed by name. It is
// safe for concurrent readers once built.
type Store struct {
	tables map[string]Table
}

// Table returns the named table.
func (s *Store) Table(name string) (Table, bool) {
	if s == nil {
		return Table{}, false
	}
	t, ok := s.tables[name]
	return t, ok
}

// Names lists the loaded table names in sorted order.
func (s *Store) Names() []string {
	if s == nil {
		return nil
	}
	return sortedKeys(s.tables)
}

// Empty reports whether the store holds any tables.
func (s *Store) Empty() bool {
	return s == nil || len(s.tables) == 0
}

type document struct {
	Name   string                  `json:"name" yaml:"name" validate:"omitempty,max=64"`
	Colors map[string]string       `json:"colors" yaml:"colors" validate:"omitempty,dive,keys,required,endkeys,hexcolor"`
	Fonts  map[string]fontDocument `json:"fonts" yaml:"fonts" validate:"omitempty,dive"`
	Field  *fieldDocument          `json:"field,omitempty" yaml:"field,omitempty"`
}

type fontDocument struct {
	Family string  `json:"family" yaml:"family" validate:"omitempty,max=128"`
	Weight string  `json:"weight" yaml:"weight" validate:"omitempty,oneof=regular medium semibold bold heavy black 100 200 300 400 500 600 700 800 900"`
	Size   float64 `json:"size" yaml:"size" validate:"gt=0"`
}

type fieldDocument struct {
	CornerRadius *float64 `json:"cornerRadius,omitempty" yaml:"cornerRadius,omitempty" validate:"omitempty,gte=0"`
	BorderWidth  *float64 `json:"borderWidth,omitempty" yaml:"borderWidth,omitempty" validate:"omitempty,gte=0"`
	IconGap      *float64 `json:"iconGap,omitempty" yaml:"iconGap,omitempty" validate:"omitempty,gte=0"`
	IconSize     *float64 `json:"iconSize,omitempty" yaml:"iconSize,omitempty" validate:"omitempty,gt=0"`
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func documentValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// LoadFS walks fsys and parses every JSON/YAML token document into a table
// built on top of the stock tokens. A document without a name is keyed by its
// file name minus extension. When fsys is nil the store is empty.
func LoadFS(fsys fs.FS) (*Store, error) {
	store := &Store{tables: make(map[string]Table)}
	if fsys == nil {
		return store, nil
	}

	err := fs.WalkDir(fsys, ".", func(p string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isTokenFile(p) {
			return nil
		}
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return fmt.Errorf("tokens: read %s: %w", p, err)
		}
		table, err := Parse(data, p)
		if err != nil {
			return err
		}
		if _, exists := store.tables[table.name]; exists {
			return fmt.Errorf("tokens: duplicate table %q (file %s)", table.name, p)
		}
		store.tables[table.name] = table
		return nil
	})
	if err != nil {
		return nil, err
	}
	return store, nil
}

// Parse decodes a single JSON or YAML token document. source names the
// document in errors and provides the fallback table name.
func Parse(data []byte, source string) (Table, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return Table{}, fmt.Errorf("tokens: file %s is empty", source)
	}
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		doc = document{}
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return Table{}, fmt.Errorf("tokens: parse %s: invalid JSON or YAML", source)
		}
	}
	if err := documentValidator().Struct(doc); err != nil {
		return Table{}, fmt.Errorf("tokens: validate %s: %w", source, describeValidation(err))
	}

	name := strings.TrimSpace(doc.Name)
	if name == "" {
		base := path.Base(source)
		name = strings.TrimSuffix(base, path.Ext(base))
	}
	table := New(WithName(name))

	for _, key := range sortedKeys(doc.Colors) {
		slot, ok := colorSlots[normalizeKey(key)]
		if !ok {
			return Table{}, fmt.Errorf("tokens: %s: unknown color %q", source, key)
		}
		c, err := ParseHex(doc.Colors[key])
		if err != nil {
			return Table{}, fmt.Errorf("tokens: %s: color %q: %w", source, key, err)
		}
		*slot(&table) = c
	}

	for _, key := range sortedKeys(doc.Fonts) {
		slot, ok := fontSlots[normalizeKey(key)]
		if !ok {
			return Table{}, fmt.Errorf("tokens: %s: unknown font slot %q", source, key)
		}
		spec := doc.Fonts[key]
		f := slot(&table)
		if spec.Family != "" {
			f.Family = strings.TrimSpace(spec.Family)
		}
		if spec.Weight != "" {
			w, err := ParseWeight(spec.Weight)
			if err != nil {
				return Table{}, fmt.Errorf("tokens: %s: font %q: %w", source, key, err)
			}
			f.Weight = w
		}
		f.Size = spec.Size
	}

	if doc.Field != nil {
		m := &table.metrics
		setIf(&m.CornerRadius, doc.Field.CornerRadius)
		setIf(&m.BorderWidth, doc.Field.BorderWidth)
		setIf(&m.IconGap, doc.Field.IconGap)
		setIf(&m.IconSize, doc.Field.IconSize)
	}
	return table, nil
}

func describeValidation(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag()))
	}
	return errors.New(strings.Join(parts, "; "))
}

func setIf(dst *float64, src *float64) {
	if src != nil {
		*dst = *src
	}
}

func isTokenFile(p string) bool {
	switch strings.ToLower(path.Ext(p)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
