package queryparams

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"time"
)

// Values is a typed key/value mapping used to build query parameters.
// A nil value (or nil typed pointer) marks the key absent: it is
// skipped entirely. Slices expand to one entry per element. Supported
// element kinds are string, integers, floats, bool and time.Time;
// anything else falls back to fmt.Sprint.
type Values map[string]any

// Create builds a new Params collection from a typed mapping. Absent
// values are omitted; sequence values append one entry per element;
// scalar values set a single entry. Keys are emitted in sorted order
// so the result is deterministic.
func Create(vals Values) Params {
	var p Params
	for _, key := range slices.Sorted(maps.Keys(vals)) {
		elems, isSeq, ok := expand(vals[key])
		if !ok {
			continue
		}
		if isSeq {
			for _, elem := range elems {
				p.Add(key, elem)
			}
			continue
		}
		p.Set(key, elems[0])
	}
	return p
}

// AddInto merges a typed mapping into a copy of q with replace
// semantics: a sequence value first clears every existing occurrence
// of its key, then appends its elements — so an empty sequence removes
// the key outright. A scalar value overwrites the first occurrence and
// drops the rest. Absent values are skipped. q itself is never
// modified.
func AddInto(q Params, vals Values) Params {
	out := q.Clone()
	for _, key := range slices.Sorted(maps.Keys(vals)) {
		elems, isSeq, ok := expand(vals[key])
		if !ok {
			continue
		}
		if isSeq {
			if len(elems) == 0 || out.Has(key) {
				out.Del(key)
			}
			for _, elem := range elems {
				out.Add(key, elem)
			}
			continue
		}
		out.Set(key, elems[0])
	}
	return out
}

// expand normalizes a typed value to its stringified elements.
// ok == false marks the value absent.
func expand(v any) (elems []string, isSeq, ok bool) {
	switch val := v.(type) {
	case nil:
		return nil, false, false
	case *string:
		if val == nil {
			return nil, false, false
		}
		return []string{*val}, false, true
	case *int:
		if val == nil {
			return nil, false, false
		}
		return []string{strconv.Itoa(*val)}, false, true
	case *int64:
		if val == nil {
			return nil, false, false
		}
		return []string{strconv.FormatInt(*val, 10)}, false, true
	case *float64:
		if val == nil {
			return nil, false, false
		}
		return []string{formatFloat(*val)}, false, true
	case *bool:
		if val == nil {
			return nil, false, false
		}
		return []string{strconv.FormatBool(*val)}, false, true
	case *time.Time:
		if val == nil {
			return nil, false, false
		}
		return []string{formatTime(*val)}, false, true
	case []string:
		return val, true, true
	case []int:
		elems = make([]string, len(val))
		for i, n := range val {
			elems[i] = strconv.Itoa(n)
		}
		return elems, true, true
	case []int64:
		elems = make([]string, len(val))
		for i, n := range val {
			elems[i] = strconv.FormatInt(n, 10)
		}
		return elems, true, true
	case []float64:
		elems = make([]string, len(val))
		for i, f := range val {
			elems[i] = formatFloat(f)
		}
		return elems, true, true
	case []bool:
		elems = make([]string, len(val))
		for i, b := range val {
			elems[i] = strconv.FormatBool(b)
		}
		return elems, true, true
	case []time.Time:
		elems = make([]string, len(val))
		for i, t := range val {
			elems[i] = formatTime(t)
		}
		return elems, true, true
	case []any:
		elems = make([]string, len(val))
		for i, elem := range val {
			elems[i] = stringify(elem)
		}
		return elems, true, true
	}
	return []string{stringify(v)}, false, true
}

// stringify renders a scalar in its canonical wire form.
func stringify(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return formatFloat(val)
	case float32:
		return formatFloat(float64(val))
	case time.Time:
		return formatTime(val)
	}
	return fmt.Sprint(v)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func formatTime(t time.Time) string {
	return t.Format(time.RFC3339)
}
