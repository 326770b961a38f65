package router

import (
	"fmt"
	"strings"
)

// EmptyValue replaces a missing or blank parameter value.
const EmptyValue = "Empty"

// Params maps a route's slot names to their concrete values.
type Params map[string]string

// Clone returns a copy of p. A nil Params clones to an empty, non-nil map.
func (p Params) Clone() Params {
	out := make(Params, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// RenderFunc produces the visual tree for a route from its resolved parameters.
// The router never inspects the returned value.
type RenderFunc func(params Params) any

type segment struct {
	literal string
	slot    string // non-empty for a {slot} segment
}

// Route is a registered navigation target. Its pattern is fixed once parsed.
type Route struct {
	pattern  string
	segments []segment
	slots    []string
	render   RenderFunc
}

// ParseRoute parses a pattern such as "SecondScreen/{customValue}".
//
// Segments are separated by "/" and are either literals or a slot written as
// {name}. Empty segments, stray braces and repeated slot names are rejected.
func ParseRoute(pattern string) (*Route, error) {
	if pattern == "" {
		return nil, fmt.Errorf("%w: empty pattern", ErrInvalidPattern)
	}

	parts := strings.Split(pattern, "/")
	route := &Route{pattern: pattern, segments: make([]segment, 0, len(parts))}
	seen := make(map[string]bool)

	for _, part := range parts {
		if part == "" {
			return nil, fmt.Errorf("%w: %q has an empty segment", ErrInvalidPattern, pattern)
		}

		if strings.HasPrefix(part, "{") && strings.HasSuffix(part, "}") {
			name := part[1 : len(part)-1]
			if name == "" || strings.ContainsAny(name, "{}") {
				return nil, fmt.Errorf("%w: %q has a malformed slot %q", ErrInvalidPattern, pattern, part)
			}
			if seen[name] {
				return nil, fmt.Errorf("%w: %q repeats slot %q", ErrInvalidPattern, pattern, name)
			}
			seen[name] = true
			route.segments = append(route.segments, segment{slot: name})
			route.slots = append(route.slots, name)
			continue
		}

		if strings.ContainsAny(part, "{}") {
			return nil, fmt.Errorf("%w: %q has a stray brace in %q", ErrInvalidPattern, pattern, part)
		}
		route.segments = append(route.segments, segment{literal: part})
	}

	return route, nil
}

// Pattern returns the pattern the route was registered with.
func (r *Route) Pattern() string {
	return r.pattern
}

// Slots returns the slot names in the order they appear in the pattern.
func (r *Route) Slots() []string {
	out := make([]string, len(r.slots))
	copy(out, r.slots)
	return out
}

// resolve binds every slot to a value from params, substituting EmptyValue
// for absent or blank values. Keys the pattern does not name are dropped.
func (r *Route) resolve(params Params) Params {
	resolved := make(Params, len(r.slots))
	for _, slot := range r.slots {
		value, ok := params[slot]
		if !ok || strings.TrimSpace(value) == "" {
			value = EmptyValue
		}
		resolved[slot] = value
	}
	return resolved
}

// match binds a concrete path against the pattern. Literals must match
// exactly; a trailing slot captures the remainder of the path, slashes included.
func (r *Route) match(path string) (Params, bool) {
	parts := strings.SplitN(path, "/", len(r.segments))
	if len(parts) != len(r.segments) {
		return nil, false
	}

	params := make(Params, len(r.slots))
	for i, seg := range r.segments {
		if seg.slot == "" {
			if parts[i] != seg.literal {
				return nil, false
			}
			continue
		}
		params[seg.slot] = parts[i]
	}

	return r.resolve(params), true
}

// path renders the concrete path for resolved parameters.
func (r *Route) path(params Params) string {
	parts := make([]string, len(r.segments))
	for i, seg := range r.segments {
		if seg.slot == "" {
			parts[i] = seg.literal
		} else {
			parts[i] = params[seg.slot]
		}
	}
	return strings.Join(parts, "/")
}
