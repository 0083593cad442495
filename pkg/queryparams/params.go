// Package queryparams converts between URL query strings and typed
// application values. It keeps query parameters as an ordered multi-map,
// so repeated keys and insertion order survive every transform.
package queryparams

import (
	"net/url"
	"strings"
)

// Param is a single key/value pair of a query string.
type Param struct {
	Key   string
	Value string
}

// Params is an ordered multi-map of query parameters. A key may repeat
// to represent an array value. All transform methods return a new
// Params and never modify their receiver; only the small mutating
// primitives (Set, Add, Del) work in place.
type Params []Param

// Parse decodes a raw query string ("a=1&b=2&a=3") into Params,
// preserving the order pairs appear in. Malformed pairs that fail
// percent-decoding are skipped, matching net/url leniency.
func Parse(rawQuery string) Params {
	var p Params
	for rawQuery != "" {
		var pair string
		pair, rawQuery, _ = strings.Cut(rawQuery, "&")
		if pair == "" {
			continue
		}
		key, value, _ := strings.Cut(pair, "=")
		key, err := url.QueryUnescape(key)
		if err != nil {
			continue
		}
		value, err = url.QueryUnescape(value)
		if err != nil {
			continue
		}
		p = append(p, Param{Key: key, Value: value})
	}
	return p
}

// Get returns the value of the first occurrence of key, or "" when the
// key is not present. Callers that must distinguish "" from missing
// should use Has.
func (p Params) Get(key string) string {
	for i := range p {
		if p[i].Key == key {
			return p[i].Value
		}
	}
	return ""
}

// GetAll returns every value recorded under key, in insertion order.
func (p Params) GetAll(key string) []string {
	var values []string
	for i := range p {
		if p[i].Key == key {
			values = append(values, p[i].Value)
		}
	}
	return values
}

// Has reports whether at least one entry exists for key.
func (p Params) Has(key string) bool {
	for i := range p {
		if p[i].Key == key {
			return true
		}
	}
	return false
}

// Len returns the number of key/value pairs, counting repeats.
func (p Params) Len() int { return len(p) }

// Set overwrites the first occurrence of key with value and removes any
// further occurrences. When the key is not present it is appended.
func (p *Params) Set(key, value string) {
	out := *p
	found := false
	n := 0
	for i := range out {
		if out[i].Key == key {
			if found {
				continue // drop repeats beyond the first
			}
			out[i].Value = value
			found = true
		}
		out[n] = out[i]
		n++
	}
	out = out[:n]
	if !found {
		out = append(out, Param{Key: key, Value: value})
	}
	*p = out
}

// Add appends a new occurrence of key regardless of existing ones.
func (p *Params) Add(key, value string) {
	*p = append(*p, Param{Key: key, Value: value})
}

// Del removes every occurrence of key.
func (p *Params) Del(key string) {
	out := *p
	n := 0
	for i := range out {
		if out[i].Key == key {
			continue
		}
		out[n] = out[i]
		n++
	}
	*p = out[:n]
}

// Clone returns an independent copy with identical pairs in identical
// order. Mutating the copy never affects the original.
func (p Params) Clone() Params {
	if p == nil {
		return nil
	}
	out := make(Params, len(p))
	copy(out, p)
	return out
}

// DeleteKeys returns a copy with every occurrence of the given keys
// removed. The receiver is left untouched.
func (p Params) DeleteKeys(keys ...string) Params {
	drop := keySet(keys)
	out := make(Params, 0, len(p))
	for _, pair := range p {
		if drop[pair.Key] {
			continue
		}
		out = append(out, pair)
	}
	return out
}

// Filter returns a copy containing only entries whose key is in the
// keep set, preserving original relative order and repeat counts.
func (p Params) Filter(keep ...string) Params {
	keepSet := keySet(keep)
	out := make(Params, 0, len(p))
	for _, pair := range p {
		if !keepSet[pair.Key] {
			continue
		}
		out = append(out, pair)
	}
	return out
}

// ToMap converts the collection to a plain map. Keys listed in
// arrayKeys accumulate all their occurrences (in encounter order) as a
// []string; every other key is a string with last-value-wins on
// repeats.
func (p Params) ToMap(arrayKeys ...string) map[string]any {
	asArray := keySet(arrayKeys)
	out := make(map[string]any, len(p))
	for _, pair := range p {
		if asArray[pair.Key] {
			existing, _ := out[pair.Key].([]string)
			out[pair.Key] = append(existing, pair.Value)
			continue
		}
		out[pair.Key] = pair.Value
	}
	return out
}

// Encode serializes the collection back to a query string, keeping
// pair order. The result carries no leading "?".
func (p Params) Encode() string {
	var buf strings.Builder
	for _, pair := range p {
		if buf.Len() > 0 {
			buf.WriteByte('&')
		}
		buf.WriteString(url.QueryEscape(pair.Key))
		buf.WriteByte('=')
		buf.WriteString(url.QueryEscape(pair.Value))
	}
	return buf.String()
}

func keySet(keys []string) map[string]bool {
	set := make(map[string]bool, len(keys))
	for _, k := range keys {
		set[k] = true
	}
	return set
}
