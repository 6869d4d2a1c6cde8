package layout

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formwidgets/pkg/tokens"
)

// LoadFS walks the provided filesystem and parses JSON/YAML resource files.
// When fsys is nil or no resource files are present, the returned store is
// empty.
func LoadFS(fsys fs.FS) (*Store, error) {
	store := &Store{resources: make(map[string]Resource)}
	if fsys == nil {
		return store, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() {
			return nil
		}
		if !isResourceFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("layout: read %s: %w", path, err)
		}

		doc, err := parseDocument(data, path)
		if err != nil {
			return err
		}

		for rawName, raw := range doc.Resources {
			name := strings.TrimSpace(rawName)
			if name == "" {
				return fmt.Errorf("layout: file %s defines an empty resource name", path)
			}
			if _, exists := store.resources[name]; exists {
				return fmt.Errorf("layout: duplicate resource %q (file %s)", name, path)
			}
			res, err := normaliseResource(raw, name, path)
			if err != nil {
				return err
			}
			store.resources[name] = res
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return store, nil
}

type documentFile struct {
	Resources map[string]resourceFile `json:"resources" yaml:"resources"`
}

type resourceFile struct {
	Size       Size              `json:"size" yaml:"size"`
	Outlets    []string          `json:"outlets" yaml:"outlets"`
	Pin        *Insets           `json:"pin,omitempty" yaml:"pin,omitempty"`
	Background string            `json:"background,omitempty" yaml:"background,omitempty"`
	Shadow     *shadowFile       `json:"shadow,omitempty" yaml:"shadow,omitempty"`
	Metadata   map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

type shadowFile struct {
	Color   string  `json:"color" yaml:"color"`
	Offset  Point   `json:"offset" yaml:"offset"`
	Opacity float64 `json:"opacity" yaml:"opacity"`
	Radius  float64 `json:"radius" yaml:"radius"`
}

func parseDocument(data []byte, source string) (documentFile, error) {
	var doc documentFile
	if len(strings.TrimSpace(string(data))) == 0 {
		return documentFile{}, fmt.Errorf("layout: file %s is empty", source)
	}

	if err := json.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}

	if err := yaml.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}

	return documentFile{}, fmt.Errorf("layout: parse %s: invalid JSON or YAML", source)
}

func normaliseResource(raw resourceFile, name, source string) (Resource, error) {
	if raw.Size.Width < 0 || raw.Size.Height < 0 {
		return Resource{}, fmt.Errorf("layout: resource %q (file %s) has a negative size", name, source)
	}

	res := Resource{
		Name:       name,
		Source:     source,
		Size:       raw.Size,
		Outlets:    make([]string, 0, len(raw.Outlets)),
		Background: tokens.Clear,
		Metadata:   cloneStrings(raw.Metadata),
	}

	seen := make(map[string]struct{}, len(raw.Outlets))
	for _, outlet := range raw.Outlets {
		trimmed := strings.TrimSpace(outlet)
		if trimmed == "" {
			return Resource{}, fmt.Errorf("layout: resource %q (file %s) declares an empty outlet", name, source)
		}
		if _, dup := seen[trimmed]; dup {
			return Resource{}, fmt.Errorf("layout: resource %q (file %s) declares duplicate outlet %q", name, source, trimmed)
		}
		seen[trimmed] = struct{}{}
		res.Outlets = append(res.Outlets, trimmed)
	}

	if raw.Pin != nil {
		res.Pin = *raw.Pin
	}

	if bg := strings.TrimSpace(raw.Background); bg != "" {
		color, err := tokens.ParseHex(bg)
		if err != nil {
			return Resource{}, fmt.Errorf("layout: resource %q (file %s) background: %w", name, source, err)
		}
		res.Background = color
	}

	if raw.Shadow != nil {
		shadow, err := normaliseShadow(*raw.Shadow)
		if err != nil {
			return Resource{}, fmt.Errorf("layout: resource %q (file %s) shadow: %w", name, source, err)
		}
		res.Shadow = shadow
	}

	return res, nil
}

func normaliseShadow(raw shadowFile) (Shadow, error) {
	shadow := Shadow{
		Color:   tokens.Black,
		Offset:  raw.Offset,
		Opacity: raw.Opacity,
		Radius:  raw.Radius,
	}
	if raw.Opacity < 0 || raw.Opacity > 1 {
		return Shadow{}, fmt.Errorf("opacity %g outside [0,1]", raw.Opacity)
	}
	if raw.Radius < 0 {
		return Shadow{}, fmt.Errorf("negative radius %g", raw.Radius)
	}
	if c := strings.TrimSpace(raw.Color); c != "" {
		color, err := tokens.ParseHex(c)
		if err != nil {
			return Shadow{}, err
		}
		shadow.Color = color
	}
	return shadow, nil
}

func cloneStrings(in map[string]string) map[string]string {
	if len(in) == 0 {
		return nil
	}
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func isResourceFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
