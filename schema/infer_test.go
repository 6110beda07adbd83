package schema

import (
	"testing"
	"time"
)

func TestInfer_Ordering(t *testing.T) {
	type args struct {
		First  string `json:"first"`
		Second int    `json:"second"`
		Third  bool   `json:"third"`
	}

	params, err := Infer(args{})
	if err != nil {
		t.Fatalf("Infer() error = %v", err)
	}

	want := []string{"first", "second", "third"}
	if len(params) != len(want) {
		t.Fatalf("Infer() returned %d params, want %d", len(params), len(want))
	}
	for i, name := range want {
		if params[i].Name != name {
			t.Errorf("params[%d].Name = %q, want %q", i, params[i].Name, name)
		}
	}
}

func TestInfer_TypeMapping(t *testing.T) {
	type args struct {
		S    string         `json:"s"`
		I    int            `json:"i"`
		I64  int64          `json:"i64"`
		U    uint           `json:"u"`
		F    float64        `json:"f"`
		B    bool           `json:"b"`
		L    []string       `json:"l"`
		M    map[string]any `json:"m"`
		T    time.Time      `json:"t"`
		Next struct{}       `json:"next"`
	}

	params, err := Infer(args{})
	if err != nil {
		t.Fatalf("Infer() error = %v", err)
	}

	want := map[string]Type{
		"s": TypeString, "i": TypeInteger, "i64": TypeInteger, "u": TypeInteger,
		"f": TypeNumber, "b": TypeBoolean, "l": TypeArray, "m": TypeObject,
		"t": TypeString, "next": TypeObject,
	}
	for _, p := range params {
		if p.Type != want[p.Name] {
			t.Errorf("param %q type = %v, want %v", p.Name, p.Type, want[p.Name])
		}
	}
}

func TestInfer_Required(t *testing.T) {
	type args struct {
		Required   string  `json:"required"`
		Omitempty  string  `json:"omitempty_field,omitempty"`
		Pointer    *string `json:"pointer"`
		WithDefVal string  `json:"with_default" default:"x"`
	}

	params, err := Infer(args{})
	if err != nil {
		t.Fatalf("Infer() error = %v", err)
	}

	wantRequired := map[string]bool{
		"required": true, "omitempty_field": false, "pointer": false, "with_default": false,
	}
	for _, p := range params {
		if p.Required != wantRequired[p.Name] {
			t.Errorf("param %q required = %v, want %v", p.Name, p.Required, wantRequired[p.Name])
		}
	}
}

func TestInfer_Descriptions(t *testing.T) {
	type args struct {
		Described string `json:"described" description:"A described parameter"`
		Bare      string `json:"bare"`
	}

	params, err := Infer(args{})
	if err != nil {
		t.Fatalf("Infer() error = %v", err)
	}

	if params[0].Description != "A described parameter" {
		t.Errorf("described description = %q", params[0].Description)
	}
	if params[1].Description != "Parameter bare" {
		t.Errorf("bare description = %q, want %q", params[1].Description, "Parameter bare")
	}
}

func TestInfer_EnumAndDefault(t *testing.T) {
	type args struct {
		Units string `json:"units,omitempty" enum:"metric,imperial,standard" default:"metric"`
		Limit int    `json:"limit,omitempty" default:"10"`
		Flag  bool   `json:"flag,omitempty" default:"true"`
		Rate  float64 `json:"rate,omitempty" default:"0.5"`
	}

	params, err := Infer(args{})
	if err != nil {
		t.Fatalf("Infer() error = %v", err)
	}

	units, _ := Params(params).Get("units")
	if len(units.Enum) != 3 || units.Enum[0] != "metric" {
		t.Errorf("units enum = %v", units.Enum)
	}
	if units.Default != "metric" {
		t.Errorf("units default = %v", units.Default)
	}

	limit, _ := Params(params).Get("limit")
	if limit.Default != 10 {
		t.Errorf("limit default = %v (%T), want 10", limit.Default, limit.Default)
	}

	flag, _ := Params(params).Get("flag")
	if flag.Default != true {
		t.Errorf("flag default = %v", flag.Default)
	}

	rate, _ := Params(params).Get("rate")
	if rate.Default != 0.5 {
		t.Errorf("rate default = %v", rate.Default)
	}
}

func TestInfer_SkipsAndNames(t *testing.T) {
	type args struct {
		Skipped    string `json:"-"`
		unexported string
		MaxResults int
		CrawlID    string
	}
	_ = args{}.unexported

	params, err := Infer(args{})
	if err != nil {
		t.Fatalf("Infer() error = %v", err)
	}

	if len(params) != 2 {
		t.Fatalf("Infer() returned %d params, want 2", len(params))
	}
	if params[0].Name != "max_results" {
		t.Errorf("params[0].Name = %q, want max_results", params[0].Name)
	}
	if params[1].Name != "crawl_id" {
		t.Errorf("params[1].Name = %q, want crawl_id", params[1].Name)
	}
}

func TestInfer_EmptyStruct(t *testing.T) {
	params, err := Infer(struct{}{})
	if err != nil {
		t.Fatalf("Infer() error = %v", err)
	}
	if params == nil {
		t.Fatal("Infer() returned nil slice, want empty")
	}
	if len(params) != 0 {
		t.Errorf("Infer() returned %d params, want 0", len(params))
	}
}

func TestInfer_NonStruct(t *testing.T) {
	if _, err := Infer("not a struct"); err == nil {
		t.Error("Infer(string) error = nil, want error")
	}
	if _, err := Infer(nil); err == nil {
		t.Error("Infer(nil) error = nil, want error")
	}
}

func TestInfer_PointerToStruct(t *testing.T) {
	type args struct {
		Name string `json:"name"`
	}

	params, err := Infer(&args{})
	if err != nil {
		t.Fatalf("Infer() error = %v", err)
	}
	if len(params) != 1 || params[0].Name != "name" {
		t.Errorf("Infer(&args{}) = %v", params)
	}
}

func TestInfer_InvalidDefault(t *testing.T) {
	type args struct {
		Limit int `json:"limit" default:"not-a-number"`
	}

	if _, err := Infer(args{}); err == nil {
		t.Error("Infer() error = nil for invalid default, want error")
	}
}
