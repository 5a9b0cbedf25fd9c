package layout

import (
	"strconv"
	"strings"

	"github.com/born-ml/strided/internal/errs"
)

// ParseSelectors parses a NumPy-style index expression such as
//
//	"-2:1:-1, None, None, ..., 1, :-2"
//
// Items are separated by commas: integers, start:stop[:step] slices with
// optional parts, "..." for Ellipsis and "None" or "newaxis" for NewAxis.
func ParseSelectors(expr string) ([]Selector, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil, nil
	}
	items := strings.Split(expr, ",")
	out := make([]Selector, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		switch {
		case item == "...":
			out = append(out, Ellipsis)
		case item == "None" || item == "newaxis":
			out = append(out, NewAxis)
		case strings.Contains(item, ":"):
			s, err := parseSlice(item)
			if err != nil {
				return nil, err
			}
			out = append(out, s)
		default:
			i, err := strconv.Atoi(item)
			if err != nil {
				return nil, errs.InvalidLayout("cannot parse index %q", item)
			}
			out = append(out, Index(i))
		}
	}
	return out, nil
}

func parseSlice(item string) (Slice, error) {
	parts := strings.Split(item, ":")
	if len(parts) > 3 {
		return Slice{}, errs.InvalidLayout("cannot parse slice %q", item)
	}
	vals := make([]int, 3)
	has := make([]bool, 3)
	for i, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		v, err := strconv.Atoi(p)
		if err != nil {
			return Slice{}, errs.InvalidLayout("cannot parse slice %q", item)
		}
		vals[i], has[i] = v, true
	}
	s := Slice{start: vals[0], hasStart: has[0], stop: vals[1], hasStop: has[1]}
	if has[2] {
		s = s.Step(vals[2])
	}
	return s, nil
}
