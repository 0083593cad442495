package queryparams_test

import (
	"reflect"
	"testing"
	"time"

	"querykit/pkg/queryparams"
)

func TestCreate(t *testing.T) {
	tests := []struct {
		name string
		vals queryparams.Values
		want queryparams.Params
	}{
		{
			name: "Nil values are skipped entirely",
			vals: queryparams.Values{"a": nil, "b": 5},
			want: queryparams.Params{{Key: "b", Value: "5"}},
		},
		{
			name: "Nil typed pointer is absent",
			vals: queryparams.Values{"a": (*int)(nil), "b": "x"},
			want: queryparams.Params{{Key: "b", Value: "x"}},
		},
		{
			name: "Sequence expands to one entry per element",
			vals: queryparams.Values{"tag": []string{"x", "y"}},
			want: queryparams.Params{{Key: "tag", Value: "x"}, {Key: "tag", Value: "y"}},
		},
		{
			name: "Scalar kinds use canonical forms",
			vals: queryparams.Values{
				"s": "str",
				"i": 42,
				"f": 1.5,
				"b": true,
			},
			want: queryparams.Params{
				{Key: "b", Value: "true"},
				{Key: "f", Value: "1.5"},
				{Key: "i", Value: "42"},
				{Key: "s", Value: "str"},
			},
		},
		{
			name: "Int sequence",
			vals: queryparams.Values{"n": []int{1, 2, 3}},
			want: queryparams.Params{{Key: "n", Value: "1"}, {Key: "n", Value: "2"}, {Key: "n", Value: "3"}},
		},
		{
			name: "Empty sequence emits nothing",
			vals: queryparams.Values{"tag": []string{}},
			want: queryparams.Params{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := queryparams.Create(tt.vals)
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Create(%v) = %v, want %v", tt.vals, got, tt.want)
			}
		})
	}
}

func TestCreateFormatsTime(t *testing.T) {
	ts := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC)
	got := queryparams.Create(queryparams.Values{"since": ts})
	if v := got.Get("since"); v != "2024-05-01T15:30:00Z" {
		t.Errorf("time encoded as %q", v)
	}
}

func TestCreateToMapRoundTrip(t *testing.T) {
	p := queryparams.Create(queryparams.Values{"a": 1, "b": []string{"x", "y"}})

	got := p.ToMap("b")
	want := map[string]any{"a": "1", "b": []string{"x", "y"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("round trip = %v, want %v", got, want)
	}
}

func TestAddInto(t *testing.T) {
	base := queryparams.Parse("b=1&b=2&keep=yes")

	t.Run("Sequence replaces all prior occurrences", func(t *testing.T) {
		got := queryparams.AddInto(base, queryparams.Values{"b": []int{3, 4}})
		if all := got.GetAll("b"); !reflect.DeepEqual(all, []string{"3", "4"}) {
			t.Errorf("b occurrences = %v, want [3 4]", all)
		}
		if got.Get("keep") != "yes" {
			t.Errorf("unrelated key lost: %v", got)
		}
	})

	t.Run("Empty sequence clears the key", func(t *testing.T) {
		got := queryparams.AddInto(base, queryparams.Values{"b": []int{}})
		if got.Has("b") {
			t.Errorf("b still present: %v", got)
		}
	})

	t.Run("Scalar overwrites first and drops repeats", func(t *testing.T) {
		got := queryparams.AddInto(base, queryparams.Values{"b": 9})
		if all := got.GetAll("b"); !reflect.DeepEqual(all, []string{"9"}) {
			t.Errorf("b occurrences = %v, want [9]", all)
		}
	})

	t.Run("Absent value is a no-op", func(t *testing.T) {
		got := queryparams.AddInto(base, queryparams.Values{"b": nil})
		if all := got.GetAll("b"); !reflect.DeepEqual(all, []string{"1", "2"}) {
			t.Errorf("b occurrences = %v, want untouched [1 2]", all)
		}
	})

	t.Run("New sequence key appends in order", func(t *testing.T) {
		got := queryparams.AddInto(base, queryparams.Values{"tag": []string{"x", "y"}})
		if all := got.GetAll("tag"); !reflect.DeepEqual(all, []string{"x", "y"}) {
			t.Errorf("tag occurrences = %v", all)
		}
	})

	t.Run("Input collection is never modified", func(t *testing.T) {
		queryparams.AddInto(base, queryparams.Values{"b": []int{7}, "keep": "changed"})
		if all := base.GetAll("b"); !reflect.DeepEqual(all, []string{"1", "2"}) {
			t.Errorf("base mutated: %v", base)
		}
		if base.Get("keep") != "yes" {
			t.Errorf("base mutated: %v", base)
		}
	})
}
