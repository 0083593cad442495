package queryparams_test

import (
	"reflect"
	"testing"

	"querykit/pkg/queryparams"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want queryparams.Params
	}{
		{
			name: "Simple pairs keep order",
			raw:  "b=2&a=1",
			want: queryparams.Params{{Key: "b", Value: "2"}, {Key: "a", Value: "1"}},
		},
		{
			name: "Repeated key keeps every occurrence",
			raw:  "a=1&b=2&a=3",
			want: queryparams.Params{{Key: "a", Value: "1"}, {Key: "b", Value: "2"}, {Key: "a", Value: "3"}},
		},
		{
			name: "Missing value decodes as empty string",
			raw:  "a&b=2",
			want: queryparams.Params{{Key: "a", Value: ""}, {Key: "b", Value: "2"}},
		},
		{
			name: "Percent decoding",
			raw:  "q=hello+world&r=a%26b",
			want: queryparams.Params{{Key: "q", Value: "hello world"}, {Key: "r", Value: "a&b"}},
		},
		{
			name: "Empty query",
			raw:  "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := queryparams.Parse(tt.raw)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestGetAndGetAll(t *testing.T) {
	p := queryparams.Parse("a=1&b=2&a=3")

	if got := p.Get("a"); got != "1" {
		t.Errorf("Get(a) = %q, want first occurrence %q", got, "1")
	}
	if got := p.Get("missing"); got != "" {
		t.Errorf("Get(missing) = %q, want empty", got)
	}
	if got := p.GetAll("a"); !reflect.DeepEqual(got, []string{"1", "3"}) {
		t.Errorf("GetAll(a) = %v, want [1 3]", got)
	}
	if got := p.GetAll("missing"); got != nil {
		t.Errorf("GetAll(missing) = %v, want nil", got)
	}
	if !p.Has("b") || p.Has("missing") {
		t.Errorf("Has reported wrong presence")
	}
}

func TestSetOverwritesFirstAndDropsRepeats(t *testing.T) {
	p := queryparams.Parse("a=1&b=2&a=3")
	p.Set("a", "9")

	want := queryparams.Params{{Key: "a", Value: "9"}, {Key: "b", Value: "2"}}
	if !reflect.DeepEqual(p, want) {
		t.Errorf("after Set: %v, want %v", p, want)
	}

	p.Set("c", "7")
	if got := p.Get("c"); got != "7" {
		t.Errorf("Set appended wrong value: %q", got)
	}
}

func TestDelRemovesAllOccurrences(t *testing.T) {
	p := queryparams.Parse("a=1&b=2&a=3")
	p.Del("a")

	want := queryparams.Params{{Key: "b", Value: "2"}}
	if !reflect.DeepEqual(p, want) {
		t.Errorf("after Del: %v, want %v", p, want)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	p := queryparams.Parse("a=1&b=2&a=3")
	c := p.Clone()

	if !reflect.DeepEqual(c, p) {
		t.Fatalf("clone differs: %v vs %v", c, p)
	}

	c.Set("a", "changed")
	if p.Get("a") != "1" {
		t.Errorf("mutating the clone affected the original: %v", p)
	}
}

func TestDeleteKeysAndFilter(t *testing.T) {
	p := queryparams.Parse("a=1&b=2&a=3&c=4")

	deleted := p.DeleteKeys("a", "c")
	if want := queryparams.Parse("b=2"); !reflect.DeepEqual(deleted, want) {
		t.Errorf("DeleteKeys = %v, want %v", deleted, want)
	}

	kept := p.Filter("a", "b")
	if want := queryparams.Parse("a=1&b=2&a=3"); !reflect.DeepEqual(kept, want) {
		t.Errorf("Filter = %v, want %v", kept, want)
	}

	// The original survives both transforms untouched.
	if want := queryparams.Parse("a=1&b=2&a=3&c=4"); !reflect.DeepEqual(p, want) {
		t.Errorf("original mutated: %v", p)
	}
}

func TestToMap(t *testing.T) {
	p := queryparams.Parse("a=1&tag=x&a=2&tag=y&b=only")

	got := p.ToMap("tag")
	want := map[string]any{
		"a":   "2", // last value wins
		"b":   "only",
		"tag": []string{"x", "y"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ToMap = %v, want %v", got, want)
	}
}

func TestEncode(t *testing.T) {
	p := queryparams.Params{
		{Key: "q", Value: "hello world"},
		{Key: "a", Value: "1"},
		{Key: "a", Value: "2"},
	}

	if got, want := p.Encode(), "q=hello+world&a=1&a=2"; got != want {
		t.Errorf("Encode = %q, want %q", got, want)
	}

	if got := queryparams.Parse(p.Encode()); !reflect.DeepEqual(got, p) {
		t.Errorf("Parse(Encode) round trip = %v, want %v", got, p)
	}
}
