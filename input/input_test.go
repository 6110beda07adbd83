package input

import (
	"testing"
	"time"
)

func TestString(t *testing.T) {
	m := map[string]any{"name": "value", "num": 42}

	if got := String(m, "name", "def"); got != "value" {
		t.Errorf("String() = %q, want value", got)
	}
	if got := String(m, "missing", "def"); got != "def" {
		t.Errorf("String(missing) = %q, want def", got)
	}
	if got := String(m, "num", "def"); got != "def" {
		t.Errorf("String(non-string) = %q, want def", got)
	}
	if got := String(nil, "name", "def"); got != "def" {
		t.Errorf("String(nil map) = %q, want def", got)
	}
}

func TestInt(t *testing.T) {
	m := map[string]any{
		"int":     10,
		"int64":   int64(20),
		"float":   float64(30),
		"string":  "40",
		"invalid": "abc",
	}

	tests := []struct {
		key  string
		want int
	}{
		{"int", 10},
		{"int64", 20},
		{"float", 30},
		{"string", 40},
		{"invalid", -1},
		{"missing", -1},
	}

	for _, tt := range tests {
		if got := Int(m, tt.key, -1); got != tt.want {
			t.Errorf("Int(%s) = %d, want %d", tt.key, got, tt.want)
		}
	}
}

func TestFloat(t *testing.T) {
	m := map[string]any{"f": 1.5, "i": 2, "s": "3.5"}

	if got := Float(m, "f", 0); got != 1.5 {
		t.Errorf("Float(f) = %v", got)
	}
	if got := Float(m, "i", 0); got != 2 {
		t.Errorf("Float(i) = %v", got)
	}
	if got := Float(m, "s", 0); got != 3.5 {
		t.Errorf("Float(s) = %v", got)
	}
	if got := Float(m, "missing", 9.9); got != 9.9 {
		t.Errorf("Float(missing) = %v", got)
	}
}

func TestBool(t *testing.T) {
	m := map[string]any{"b": true, "s": "false", "bad": "maybe"}

	if got := Bool(m, "b", false); got != true {
		t.Errorf("Bool(b) = %v", got)
	}
	if got := Bool(m, "s", true); got != false {
		t.Errorf("Bool(s) = %v", got)
	}
	if got := Bool(m, "bad", true); got != true {
		t.Errorf("Bool(bad) = %v, want default", got)
	}
	if got := Bool(m, "missing", true); got != true {
		t.Errorf("Bool(missing) = %v, want default", got)
	}
}

func TestDuration(t *testing.T) {
	m := map[string]any{
		"str":   "30s",
		"milli": 1500,
		"float": float64(2000),
		"bad":   "soon",
	}

	if got := Duration(m, "str", 0); got != 30*time.Second {
		t.Errorf("Duration(str) = %v", got)
	}
	if got := Duration(m, "milli", 0); got != 1500*time.Millisecond {
		t.Errorf("Duration(milli) = %v", got)
	}
	if got := Duration(m, "float", 0); got != 2*time.Second {
		t.Errorf("Duration(float) = %v", got)
	}
	if got := Duration(m, "bad", time.Minute); got != time.Minute {
		t.Errorf("Duration(bad) = %v, want default", got)
	}
}

func TestStringSlice(t *testing.T) {
	m := map[string]any{
		"strings": []string{"a", "b"},
		"anys":    []any{"x", "y", 3},
		"csv":     "one, two , three",
		"empty":   " , ",
		"num":     42,
	}

	if got := StringSlice(m, "strings"); len(got) != 2 || got[0] != "a" {
		t.Errorf("StringSlice(strings) = %v", got)
	}
	if got := StringSlice(m, "anys"); len(got) != 2 || got[1] != "y" {
		t.Errorf("StringSlice(anys) = %v", got)
	}
	if got := StringSlice(m, "csv"); len(got) != 3 || got[1] != "two" {
		t.Errorf("StringSlice(csv) = %v", got)
	}
	if got := StringSlice(m, "empty"); got != nil {
		t.Errorf("StringSlice(empty) = %v, want nil", got)
	}
	if got := StringSlice(m, "num"); got != nil {
		t.Errorf("StringSlice(num) = %v, want nil", got)
	}
	if got := StringSlice(nil, "strings"); got != nil {
		t.Errorf("StringSlice(nil map) = %v, want nil", got)
	}
}
