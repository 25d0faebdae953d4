// Package prompt builds user prompts from literal fragments and
// interpolated values, the way a fill-in-the-blanks template does.
package prompt

import (
	"fmt"
	"strings"
)

// Template holds the literal fragments and interpolated values of a
// prompt. Fragments always outnumber values by exactly one; value i is
// inserted immediately after fragment i when flattening.
type Template struct {
	fragments []string
	values    []any
}

// New creates a Template from fragments and values. It returns an error
// unless len(fragments) == len(values)+1.
func New(fragments []string, values ...any) (*Template, error) {
	if len(fragments) != len(values)+1 {
		return nil, fmt.Errorf("prompt: %d fragments require %d values, got %d",
			len(fragments), len(fragments)-1, len(values))
	}

	return &Template{fragments: fragments, values: values}, nil
}

// Text wraps a pre-built string as a template with a single fragment and
// no values.
func Text(s string) *Template {
	return &Template{fragments: []string{s}}
}

// Flatten concatenates fragments and stringified values left to right:
// fragment 0, value 0, fragment 1, value 1, ..., final fragment.
func (t *Template) Flatten() string {
	var sb strings.Builder
	for i, f := range t.fragments {
		sb.WriteString(f)
		if i < len(t.values) {
			sb.WriteString(fmt.Sprint(t.values[i]))
		}
	}

	return sb.String()
}
