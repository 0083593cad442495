package queryparams

import (
	"context"
	"strconv"
	"time"

	"querykit/pkg/log"
)

// Extractor pulls typed values out of a Params collection. Missing and
// empty values are reported as absent (ok == false) without noise;
// values that are present but fail coercion are logged with the
// offending key and also reported as absent. Extraction never panics
// and never returns an error.
type Extractor struct {
	l log.Logger
}

// NewExtractor creates an Extractor with the given diagnostic sink.
func NewExtractor(l log.Logger) Extractor {
	return Extractor{l: l}
}

// String returns the first value for key unchanged. Absent when the
// key is missing or its value is the empty string.
func (e Extractor) String(ctx context.Context, q Params, key string) (string, bool) {
	v := q.Get(key)
	if v == "" {
		return "", false
	}
	return v, true
}

// Int parses the leading numeric prefix of the first value for key, so
// "12abc" yields 12. Absent when missing or empty; a value with no
// leading number at all is logged and reported absent.
func (e Extractor) Int(ctx context.Context, q Params, key string) (int, bool) {
	v := q.Get(key)
	if v == "" {
		return 0, false
	}
	n, ok := parseLeadingInt(v)
	if !ok {
		e.l.Warnf(ctx, "queryparams: key %q: value is not an integer", key)
		return 0, false
	}
	return n, true
}

// Float parses the leading numeric prefix of the first value for key,
// accepting decimal point and exponent ("1.5e3kg" yields 1500).
func (e Extractor) Float(ctx context.Context, q Params, key string) (float64, bool) {
	v := q.Get(key)
	if v == "" {
		return 0, false
	}
	f, ok := parseLeadingFloat(v)
	if !ok {
		e.l.Warnf(ctx, "queryparams: key %q: value is not a number", key)
		return 0, false
	}
	return f, true
}

// Bool accepts exactly "true" or "false", case-sensitive. Anything
// else that is present and non-empty is logged and reported absent.
func (e Extractor) Bool(ctx context.Context, q Params, key string) (bool, bool) {
	v := q.Get(key)
	if v == "" {
		return false, false
	}
	b, ok := parseStrictBool(v)
	if !ok {
		e.l.Warnf(ctx, "queryparams: key %q: value is not a boolean", key)
		return false, false
	}
	return b, true
}

// Date parses the first value for key leniently against a set of
// common layouts. Input that matches no layout still reports ok: the
// returned time is the zero value, and callers must check IsZero
// themselves. Only missing or empty input is absent.
func (e Extractor) Date(ctx context.Context, q Params, key string) (time.Time, bool) {
	v := q.Get(key)
	if v == "" {
		return time.Time{}, false
	}
	return parseLenientDate(v), true
}

// StringArray returns every value for key in order. Absent only when
// the key has no occurrences; empty-string elements are kept.
func (e Extractor) StringArray(ctx context.Context, q Params, key string) ([]string, bool) {
	values := q.GetAll(key)
	if len(values) == 0 {
		return nil, false
	}
	return values, true
}

// IntArray parses every value for key. One unparseable element
// discards the whole array: a single log line, absent result.
func (e Extractor) IntArray(ctx context.Context, q Params, key string) ([]int, bool) {
	values := q.GetAll(key)
	if len(values) == 0 {
		return nil, false
	}
	out := make([]int, 0, len(values))
	for _, v := range values {
		n, ok := parseLeadingInt(v)
		if !ok {
			e.l.Warnf(ctx, "queryparams: key %q: array element is not an integer", key)
			return nil, false
		}
		out = append(out, n)
	}
	return out, true
}

// FloatArray parses every value for key with Float semantics; one bad
// element discards the whole array.
func (e Extractor) FloatArray(ctx context.Context, q Params, key string) ([]float64, bool) {
	values := q.GetAll(key)
	if len(values) == 0 {
		return nil, false
	}
	out := make([]float64, 0, len(values))
	for _, v := range values {
		f, ok := parseLeadingFloat(v)
		if !ok {
			e.l.Warnf(ctx, "queryparams: key %q: array element is not a number", key)
			return nil, false
		}
		out = append(out, f)
	}
	return out, true
}

// BoolArray parses every value for key with Bool semantics; one bad
// element discards the whole array.
func (e Extractor) BoolArray(ctx context.Context, q Params, key string) ([]bool, bool) {
	values := q.GetAll(key)
	if len(values) == 0 {
		return nil, false
	}
	out := make([]bool, 0, len(values))
	for _, v := range values {
		b, ok := parseStrictBool(v)
		if !ok {
			e.l.Warnf(ctx, "queryparams: key %q: array element is not a boolean", key)
			return nil, false
		}
		out = append(out, b)
	}
	return out, true
}

// DateArray parses every value for key with Date semantics. Elements
// that match no layout come back as the zero time; the array itself is
// absent only when the key has no occurrences.
func (e Extractor) DateArray(ctx context.Context, q Params, key string) ([]time.Time, bool) {
	values := q.GetAll(key)
	if len(values) == 0 {
		return nil, false
	}
	out := make([]time.Time, 0, len(values))
	for _, v := range values {
		out = append(out, parseLenientDate(v))
	}
	return out, true
}

// Pagination extracts the page and pageSize keys independently; each
// field is nil on missing, empty, or unparseable input.
func (e Extractor) Pagination(ctx context.Context, q Params) PageRequest {
	var req PageRequest
	if page, ok := e.Int(ctx, q, KeyPage); ok {
		req.Page = &page
	}
	if size, ok := e.Int(ctx, q, KeyPageSize); ok {
		req.PageSize = &size
	}
	return req
}

// Ordering extracts orderBy and orderDirection. The direction must be
// exactly "asc" or "desc"; any other non-empty value logs once and
// resets both fields to nil, not just the invalid one.
func (e Extractor) Ordering(ctx context.Context, q Params) OrderRequest {
	var req OrderRequest
	if orderBy, ok := e.String(ctx, q, KeyOrderBy); ok {
		req.OrderBy = &orderBy
	}
	raw := q.Get(KeyOrderDirection)
	if raw == "" {
		return req
	}
	dir := Direction(raw)
	if dir != DirectionAsc && dir != DirectionDesc {
		e.l.Warnf(ctx, "queryparams: key %q: value is not a sort direction", KeyOrderDirection)
		return OrderRequest{}
	}
	req.OrderDirection = &dir
	return req
}

// parseLeadingInt reads an optionally signed decimal prefix, ignoring
// trailing garbage. Fails only when no digit leads the value, or the
// prefix overflows int.
func parseLeadingInt(s string) (int, bool) {
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
		digits++
	}
	if digits == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}

// parseLeadingFloat reads an optionally signed decimal prefix with
// optional fraction and exponent, ignoring trailing garbage.
func parseLeadingFloat(s string) (float64, bool) {
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
		digits++
	}
	if end < len(s) && s[end] == '.' {
		end++
		for end < len(s) && s[end] >= '0' && s[end] <= '9' {
			end++
			digits++
		}
	}
	if digits == 0 {
		return 0, false
	}
	// Exponent only counts when at least one digit follows it.
	if end < len(s) && (s[end] == 'e' || s[end] == 'E') {
		expEnd := end + 1
		if expEnd < len(s) && (s[expEnd] == '+' || s[expEnd] == '-') {
			expEnd++
		}
		expDigits := 0
		for expEnd < len(s) && s[expEnd] >= '0' && s[expEnd] <= '9' {
			expEnd++
			expDigits++
		}
		if expDigits > 0 {
			end = expEnd
		}
	}
	f, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

func parseStrictBool(s string) (bool, bool) {
	switch s {
	case "true":
		return true, true
	case "false":
		return false, true
	}
	return false, false
}

// dateLayouts are tried in order by parseLenientDate.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	time.RFC1123,
	time.RFC1123Z,
}

// parseLenientDate returns the first layout match, or the zero time
// when nothing matches. It deliberately does not signal failure.
func parseLenientDate(s string) time.Time {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
