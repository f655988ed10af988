package wayroute

import "sort"

// Params is the parameter mapping of a matched route: positional captures
// from :name segments plus any matrix pairs carried by the target URL.
// A match without optional parameters yields an empty, non-nil mapping.
type Params map[string]string

// Get returns the value for the named parameter, or "".
func (p Params) Get(name string) string {
	return p[name]
}

// Has reports whether the named parameter is present.
func (p Params) Has(name string) bool {
	_, ok := p[name]
	return ok
}

// Keys returns the parameter names in sorted order.
func (p Params) Keys() []string {
	keys := make([]string, 0, len(p))

	for key := range p {
		keys = append(keys, key)
	}

	sort.Strings(keys)
	return keys
}

// Equal reports whether both mappings hold the same entries.
func (p Params) Equal(other Params) bool {
	if len(p) != len(other) {
		return false
	}

	for key, value := range p {
		if otherValue, ok := other[key]; !ok || otherValue != value {
			return false
		}
	}

	return true
}

// clone returns an independent copy, never nil.
func (p Params) clone() Params {
	out := make(Params, len(p))

	for key, value := range p {
		out[key] = value
	}

	return out
}
