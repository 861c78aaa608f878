// Package pathresolver implements the dotted `field[id].field…` path
// grammar used by every Layer-2 meta-engine to read and write scalars
// inside an untyped request document.
package pathresolver

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// idFields is the known set of id-bearing keys used to select a list
// element by bracketed segment, in the order they are tried.
var idFields = []string{"job_id", "task_id", "machine_id", "location_id", "vehicle_id", "item_id", "bin_id"}

// ErrNotFound is returned when a path segment cannot be located.
type ErrNotFound struct {
	Path string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("path not found: %s", e.Path)
}

// segment is one parsed path component: a bare field, or field[id].
type segment struct {
	field string
	id    string // empty when this segment has no bracket
	bracketed bool
}

// Path is a parsed ParameterPath.
type Path struct {
	raw      string
	segments []segment
}

// Parse parses the grammar `path := segment ('.' segment)*`,
// `segment := field | field '[' id ']'`.
func Parse(raw string) (*Path, error) {
	parts := strings.Split(raw, ".")
	segs := make([]segment, 0, len(parts))
	for _, part := range parts {
		if part == "" {
			return nil, fmt.Errorf("empty path segment in %q", raw)
		}
		open := strings.IndexByte(part, '[')
		if open == -1 {
			segs = append(segs, segment{field: part})
			continue
		}
		if !strings.HasSuffix(part, "]") {
			return nil, fmt.Errorf("malformed bracket in segment %q", part)
		}
		field := part[:open]
		id := part[open+1 : len(part)-1]
		if field == "" || id == "" {
			return nil, fmt.Errorf("malformed bracket in segment %q", part)
		}
		segs = append(segs, segment{field: field, id: id, bracketed: true})
	}
	return &Path{raw: raw, segments: segs}, nil
}

// String returns the original path expression.
func (p *Path) String() string { return p.raw }

// Resolve walks doc along p and returns the terminal scalar value.
func Resolve(doc any, raw string) (float64, error) {
	p, err := Parse(raw)
	if err != nil {
		return 0, err
	}
	cur := doc
	for i, seg := range p.segments {
		next, err := step(cur, seg)
		if err != nil {
			return 0, err
		}
		if i == len(p.segments)-1 {
			return toFloat(next, raw)
		}
		cur = next
	}
	return 0, &ErrNotFound{Path: raw}
}

// Set walks doc along p (which must already be an owned, deep-copied
// document) and mutates the terminal scalar, preserving its original
// numeric type: an integer scalar is re-coerced via rounding with a
// floor of 0; otherwise the value is rounded to 2 decimals with the
// same floor.
func Set(doc any, raw string, value float64) error {
	p, err := Parse(raw)
	if err != nil {
		return err
	}
	if len(p.segments) == 0 {
		return fmt.Errorf("empty path")
	}
	cur := doc
	for i := 0; i < len(p.segments)-1; i++ {
		next, err := step(cur, p.segments[i])
		if err != nil {
			return err
		}
		cur = next
	}
	last := p.segments[len(p.segments)-1]
	if last.bracketed {
		return fmt.Errorf("cannot set through a bracketed terminal segment %q", raw)
	}
	m, ok := cur.(map[string]any)
	if !ok {
		return fmt.Errorf("cannot set field %q: container is not an object", last.field)
	}
	existing, ok := m[last.field]
	if !ok {
		return &ErrNotFound{Path: raw}
	}
	m[last.field] = coerce(existing, value)
	return nil
}

// step navigates one segment from cur, returning the next node.
func step(cur any, seg segment) (any, error) {
	m, ok := cur.(map[string]any)
	if !ok {
		return nil, &ErrNotFound{Path: seg.field}
	}
	field, ok := m[seg.field]
	if !ok {
		return nil, &ErrNotFound{Path: seg.field}
	}
	if !seg.bracketed {
		return field, nil
	}
	list, ok := field.([]any)
	if !ok {
		return nil, &ErrNotFound{Path: seg.field}
	}
	for _, elem := range list {
		em, ok := elem.(map[string]any)
		if !ok {
			continue
		}
		for _, idField := range idFields {
			if v, ok := em[idField]; ok && stringify(v) == seg.id {
				return em, nil
			}
		}
	}
	return nil, &ErrNotFound{Path: fmt.Sprintf("%s[%s]", seg.field, seg.id)}
}

func stringify(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		if t == math.Trunc(t) {
			return strconv.FormatInt(int64(t), 10)
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	default:
		return fmt.Sprintf("%v", t)
	}
}

func toFloat(v any, raw string) (float64, error) {
	switch t := v.(type) {
	case float64:
		return t, nil
	case int:
		return float64(t), nil
	default:
		return 0, fmt.Errorf("terminal segment of %q is not a numeric scalar", raw)
	}
}

// coerce re-applies the original value's numeric type to a new float.
func coerce(original any, value float64) any {
	floored := value
	if floored < 0 {
		floored = 0
	}
	switch original.(type) {
	case int:
		return int(math.Round(floored))
	default:
		// JSON-decoded numbers land as float64; treat an integral
		// float64 (e.g. duration: 5) as an integer-typed scalar.
		if f, ok := original.(float64); ok && f == math.Trunc(f) {
			return math.Round(floored)
		}
		return math.Round(floored*100) / 100
	}
}
