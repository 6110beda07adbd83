package enum

import "testing"

func TestNormalize(t *testing.T) {
	Reset()
	defer Reset()

	Register("ScrapeURL", "formats", map[string]string{
		"raw_html":  "rawHtml",
		"full_page": "screenshot@fullPage",
	})

	params := Normalize("ScrapeURL", map[string]any{"formats": "raw_html"})
	if params["formats"] != "rawHtml" {
		t.Errorf("formats = %v, want rawHtml", params["formats"])
	}
}

func TestNormalize_CaseInsensitive(t *testing.T) {
	Reset()
	defer Reset()

	Register("GetWeather", "units", map[string]string{"metric": "metric"})

	params := Normalize("GetWeather", map[string]any{"units": "Metric"})
	if params["units"] != "metric" {
		t.Errorf("units = %v, want metric", params["units"])
	}
}

func TestNormalize_UnknownValuePassesThrough(t *testing.T) {
	Reset()
	defer Reset()

	Register("GetWeather", "units", map[string]string{"metric": "metric"})

	params := Normalize("GetWeather", map[string]any{"units": "kelvin"})
	if params["units"] != "kelvin" {
		t.Errorf("units = %v, want kelvin unchanged", params["units"])
	}
}

func TestNormalize_NonStringSkipped(t *testing.T) {
	Reset()
	defer Reset()

	Register("T", "limit", map[string]string{"10": "ten"})

	params := Normalize("T", map[string]any{"limit": 10})
	if params["limit"] != 10 {
		t.Errorf("limit = %v, want 10 unchanged", params["limit"])
	}
}

func TestNormalize_NoMappings(t *testing.T) {
	Reset()
	defer Reset()

	input := map[string]any{"a": "b"}
	params := Normalize("Unregistered", input)
	if params["a"] != "b" {
		t.Errorf("params = %v", params)
	}
}

func TestNormalize_DoesNotMutateInput(t *testing.T) {
	Reset()
	defer Reset()

	Register("T", "field", map[string]string{"alias": "canonical"})

	input := map[string]any{"field": "alias"}
	_ = Normalize("T", input)
	if input["field"] != "alias" {
		t.Error("Normalize() mutated the input map")
	}
}

func TestRegisterBatch(t *testing.T) {
	Reset()
	defer Reset()

	RegisterBatch("T", map[string]map[string]string{
		"a": {"x": "X"},
		"b": {"y": "Y"},
	})

	params := Normalize("T", map[string]any{"a": "x", "b": "y"})
	if params["a"] != "X" || params["b"] != "Y" {
		t.Errorf("params = %v", params)
	}
}

func TestMappings(t *testing.T) {
	Reset()
	defer Reset()

	Register("T", "field", map[string]string{"alias": "canonical"})

	m := Mappings("T")
	if m["field"]["alias"] != "canonical" {
		t.Errorf("Mappings() = %v", m)
	}

	// Mutating the copy must not affect the registry.
	m["field"]["alias"] = "changed"
	if Mappings("T")["field"]["alias"] != "canonical" {
		t.Error("Mappings() returned a live reference to the registry")
	}

	if Mappings("missing") != nil {
		t.Error("Mappings(missing) != nil")
	}
}
