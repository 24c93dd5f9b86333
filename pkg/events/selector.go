package events

// Selector decides whether a subscription receives an emitted event.
// Implementations must be pure functions of the topic name: no state, no
// side effects, same answer for the same topic every time.
type Selector interface {
	// Matches reports whether the selector accepts the emitted topic.
	Matches(t Topic) bool

	// String describes the selector for diagnostics.
	String() string
}

// Exact returns a selector matching one topic name exactly.
func Exact(t Topic) Selector {
	return exactSelector(t)
}

// Pattern returns a selector matching topics against a wildcard pattern.
// "*" matches exactly one segment, "**" matches zero or more trailing
// segments: "form.*.*.changed" matches "form.delivery.address.changed",
// "order.**" matches "order", "order.ready" and "order.delivery.ready".
func Pattern(p Topic) Selector {
	return patternSelector{pattern: p, segments: p.Segments()}
}

// Predicate returns a selector delegating to an arbitrary topic predicate.
// The name is used for diagnostics only.
func Predicate(name string, fn func(Topic) bool) Selector {
	return predicateSelector{name: name, fn: fn}
}

type exactSelector Topic

func (s exactSelector) Matches(t Topic) bool { return Topic(s) == t }
func (s exactSelector) String() string       { return string(s) }

type patternSelector struct {
	pattern  Topic
	segments []string
}

func (s patternSelector) Matches(t Topic) bool {
	return matchSegments(s.segments, t.Segments())
}

func (s patternSelector) String() string { return string(s.pattern) }

type predicateSelector struct {
	name string
	fn   func(Topic) bool
}

func (s predicateSelector) Matches(t Topic) bool { return s.fn(t) }
func (s predicateSelector) String() string       { return "predicate(" + s.name + ")" }

// matchSegments matches topic segments against pattern segments.
func matchSegments(pattern, topic []string) bool {
	for i, seg := range pattern {
		switch seg {
		case WildcardMulti:
			// "**" must be the last pattern segment; it absorbs the rest.
			if i == len(pattern)-1 {
				return true
			}
			// Try every possible split for a non-trailing "**".
			for skip := 0; skip <= len(topic)-i; skip++ {
				if matchSegments(pattern[i+1:], topic[i+skip:]) {
					return true
				}
			}
			return false
		case WildcardSingle:
			if i >= len(topic) {
				return false
			}
		default:
			if i >= len(topic) || topic[i] != seg {
				return false
			}
		}
	}
	return len(pattern) == len(topic)
}
