package layout

import (
	"encoding/xml"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

// ErrorIcon names the icon text field views show next to an error message.
const ErrorIcon = "Error"

// DefaultIconSize is used when an SVG declares neither width/height nor a
// viewBox.
var DefaultIconSize = Size{Width: 20, Height: 20}

// Icon is a sanitised SVG image.
type Icon struct {
	Name   string
	Markup string
	Size   Size
}

// IconSet is a read-only collection of icons keyed by file name without
// extension.
type IconSet struct {
	icons map[string]Icon
}

// LoadIcons reads every *.svg file in fsys. Markup is sanitised; files that
// sanitise to nothing are rejected.
func LoadIcons(fsys fs.FS) (*IconSet, error) {
	set := &IconSet{icons: make(map[string]Icon)}
	if fsys == nil {
		return set, nil
	}

	err := fs.WalkDir(fsys, ".", func(p string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !strings.EqualFold(path.Ext(p), ".svg") {
			return nil
		}
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return fmt.Errorf("layout: read icon %s: %w", p, err)
		}
		base := path.Base(p)
		name := strings.TrimSuffix(base, path.Ext(base))
		icon, err := NewIcon(name, string(data))
		if err != nil {
			return fmt.Errorf("layout: icon %s: %w", p, err)
		}
		if _, exists := set.icons[name]; exists {
			return fmt.Errorf("layout: duplicate icon %q (file %s)", name, p)
		}
		set.icons[name] = icon
		return nil
	})
	if err != nil {
		return nil, err
	}
	return set, nil
}

// NewIcon sanitises raw SVG markup and measures it.
func NewIcon(name, raw string) (Icon, error) {
	markup := SanitizeIconMarkup(raw)
	if markup == "" {
		return Icon{}, fmt.Errorf("markup for %q is empty after sanitising", name)
	}
	return Icon{Name: name, Markup: markup, Size: measureSVG(markup)}, nil
}

// Icon returns the named icon.
func (s *IconSet) Icon(name string) (Icon, bool) {
	if s == nil {
		return Icon{}, false
	}
	icon, ok := s.icons[name]
	return icon, ok
}

// Names lists the icons in sorted order.
func (s *IconSet) Names() []string {
	if s == nil {
		return nil
	}
	names := make([]string, 0, len(s.icons))
	for name := range s.icons {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var (
	iconPolicyOnce sync.Once
	iconPolicy     *bluemonday.Policy
)

// SanitizeIconMarkup strips everything but static SVG drawing elements from
// raw.
func SanitizeIconMarkup(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(iconSanitizer().Sanitize(trimmed))
}

func iconSanitizer() *bluemonday.Policy {
	iconPolicyOnce.Do(func() {
		policy := bluemonday.StrictPolicy()
		policy.AllowElements(
			"svg", "g", "path", "circle", "rect", "line", "polyline", "polygon",
			"ellipse", "title", "desc", "defs", "clipPath",
		)

		policy.AllowAttrs(
			"xmlns", "viewBox", "width", "height", "fill", "stroke",
			"stroke-width", "stroke-linecap", "stroke-linejoin", "aria-hidden",
			"role", "focusable", "class",
		).OnElements("svg")

		for _, el := range []string{"path", "circle", "rect", "line", "polyline", "polygon", "ellipse"} {
			policy.AllowAttrs(
				"d", "cx", "cy", "r", "x", "y", "x1", "y1", "x2", "y2",
				"points", "rx", "ry", "width", "height", "fill", "stroke",
				"stroke-width", "stroke-linecap", "stroke-linejoin", "clip-path",
			).OnElements(el)
		}

		policy.AllowAttrs("id", "clipPathUnits").OnElements("clipPath")
		policy.AllowAttrs("id", "fill", "stroke", "clip-path").OnElements("g")

		iconPolicy = policy
	})
	return iconPolicy
}

// measureSVG reads width/height from the root element, falling back to the
// viewBox and then DefaultIconSize.
func measureSVG(markup string) Size {
	decoder := xml.NewDecoder(strings.NewReader(markup))
	for {
		tok, err := decoder.Token()
		if err != nil {
			return DefaultIconSize
		}
		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		if !strings.EqualFold(start.Name.Local, "svg") {
			return DefaultIconSize
		}
		var width, height float64
		var viewBox string
		for _, attr := range start.Attr {
			switch strings.ToLower(attr.Name.Local) {
			case "width":
				width = parseLength(attr.Value)
			case "height":
				height = parseLength(attr.Value)
			case "viewbox":
				viewBox = attr.Value
			}
		}
		if width > 0 && height > 0 {
			return Size{Width: width, Height: height}
		}
		if fields := strings.Fields(strings.ReplaceAll(viewBox, ",", " ")); len(fields) == 4 {
			w := parseLength(fields[2])
			h := parseLength(fields[3])
			if w > 0 && h > 0 {
				return Size{Width: w, Height: h}
			}
		}
		return DefaultIconSize
	}
}

func parseLength(raw string) float64 {
	value := strings.TrimSuffix(strings.TrimSpace(raw), "px")
	v, err := strconv.ParseFloat(value, 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}
