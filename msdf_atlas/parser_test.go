package msdf_atlas

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"unicode/utf8"
)

const sampleAtlasJSON = `{
	"atlas": {"type": "msdf", "distanceRange": 4, "size": 48, "width": 256, "height": 128, "yOrigin": "bottom"},
	"metrics": {"emSize": 1, "lineHeight": 1.171875, "ascender": 0.927734375, "descender": -0.244140625,
		"underlineY": -0.09765625, "underlineThickness": 0.048828125},
	"glyphs": [
		{"unicode": 32, "advance": 0.24755859375},
		{"unicode": 65, "advance": 0.65283203125,
			"planeBounds": {"left": -0.0673, "bottom": -0.0833, "right": 0.7204, "top": 0.7947},
			"atlasBounds": {"left": 0.5, "bottom": 84.5, "right": 38.5, "top": 126.5}},
		{"unicode": 86, "advance": 0.63623046875,
			"atlasBounds": {"left": 39.5, "bottom": 84.5, "right": 76.5, "top": 126.5}},
		{"unicode": 128512, "advance": 1}
	],
	"kerning": [
		{"unicode1": 65, "unicode2": 86, "advance": -0.0712890625},
		{"unicode1": 86, "unicode2": 65, "advance": -0.0693359375},
		{"unicode1": 65, "unicode2": 86, "advance": -0.05}
	]
}`

func writeJSON(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "atlas.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return path
}

func TestParseResult(t *testing.T) {
	path := writeJSON(t, sampleAtlasJSON)
	res, err := ParseResult(path, "atlas.png")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.ImagePath != "atlas.png" || res.JSONPath != path {
		t.Fatalf("unexpected paths %s %s", res.ImagePath, res.JSONPath)
	}
	if res.Type != "msdf" || res.Width != 256 || res.Height != 128 || res.DistanceRange != 4 {
		t.Fatalf("unexpected atlas info %+v", res)
	}
	wantMetrics := FontMetrics{
		EmSize:             1,
		LineHeight:         1.171875,
		Ascender:           0.927734375,
		Descender:          -0.244140625,
		UnderlineY:         -0.09765625,
		UnderlineThickness: 0.048828125,
	}
	if res.Metrics != wantMetrics {
		t.Fatalf("expected metrics %+v, got %+v", wantMetrics, res.Metrics)
	}
	if len(res.Glyphs) != 4 {
		t.Fatalf("expected 4 glyphs, got %d", len(res.Glyphs))
	}
	a := res.Glyphs[1]
	if a.Char != 'A' || a.Unicode != 65 || a.Advance != 0.65283203125 {
		t.Fatalf("unexpected glyph %+v", a)
	}
	if a.PlaneBounds != (Bounds{Left: -0.0673, Bottom: -0.0833, Right: 0.7204, Top: 0.7947}) {
		t.Fatalf("unexpected plane bounds %+v", a.PlaneBounds)
	}
	if a.AtlasBounds != (Bounds{Left: 0.5, Bottom: 84.5, Right: 38.5, Top: 126.5}) {
		t.Fatalf("unexpected atlas bounds %+v", a.AtlasBounds)
	}
}

func TestParseResultMissingBoundsAreZero(t *testing.T) {
	res, err := ParseResult(writeJSON(t, sampleAtlasJSON), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	space := res.Glyphs[0]
	if !space.PlaneBounds.IsZero() || !space.AtlasBounds.IsZero() {
		t.Fatalf("expected zero bounds for space, got %+v", space)
	}
	v := res.Glyphs[2]
	if !v.PlaneBounds.IsZero() {
		t.Fatalf("expected zero plane bounds, got %+v", v.PlaneBounds)
	}
	if v.AtlasBounds.IsZero() {
		t.Fatalf("expected atlas bounds to be kept")
	}
}

func TestParseResultKerningPassthrough(t *testing.T) {
	res, err := ParseResult(writeJSON(t, sampleAtlasJSON), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []KerningPair{
		{Unicode1: 65, Unicode2: 86, Advance: -0.0712890625},
		{Unicode1: 86, Unicode2: 65, Advance: -0.0693359375},
		{Unicode1: 65, Unicode2: 86, Advance: -0.05},
	}
	if len(res.Kerning) != len(want) {
		t.Fatalf("expected %d pairs, got %d", len(want), len(res.Kerning))
	}
	for i := range want {
		if res.Kerning[i] != want[i] {
			t.Fatalf("pair %d: expected %+v, got %+v", i, want[i], res.Kerning[i])
		}
	}
}

func TestParseResultWideCodepoint(t *testing.T) {
	res, err := ParseResult(writeJSON(t, sampleAtlasJSON), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	g := res.Glyphs[3]
	if g.Unicode != 128512 || g.Char != '\U0001F600' {
		t.Fatalf("expected the full code point to survive, got %+v", g)
	}
}

func TestParseResultInvalidCodepoint(t *testing.T) {
	doc := `{"atlas":{},"metrics":{},"glyphs":[{"unicode":55296},{"unicode":1114112},{"unicode":-1}]}`
	res, err := ParseResult(writeJSON(t, doc), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, want := range []int{0xD800, 0x110000, -1} {
		g := res.Glyphs[i]
		if g.Unicode != want || g.Char != utf8.RuneError {
			t.Errorf("glyph %d: expected raw %d and RuneError, got %+v", i, want, g)
		}
	}
	if len(res.Kerning) != 0 {
		t.Fatalf("expected no kerning, got %d", len(res.Kerning))
	}
}

func TestParseResultCaseInsensitiveKeys(t *testing.T) {
	doc := `{"ATLAS":{"Width":64,"HEIGHT":32,"DistanceRange":2},"Metrics":{"LINEHEIGHT":1.5},
		"Glyphs":[{"Unicode":66,"PlaneBounds":{"Left":1,"Bottom":2,"Right":3,"Top":4}}],
		"KERNING":[{"UNICODE1":66,"Unicode2":67,"ADVANCE":0.5}]}`
	res, err := ParseResult(writeJSON(t, doc), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Width != 64 || res.Height != 32 || res.DistanceRange != 2 || res.Metrics.LineHeight != 1.5 {
		t.Fatalf("unexpected result %+v", res)
	}
	if res.Glyphs[0].PlaneBounds != (Bounds{1, 2, 3, 4}) {
		t.Fatalf("unexpected bounds %+v", res.Glyphs[0].PlaneBounds)
	}
	if res.Kerning[0] != (KerningPair{66, 67, 0.5}) {
		t.Fatalf("unexpected kerning %+v", res.Kerning[0])
	}
}

func TestParseResultErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"malformed", `{"atlas":`},
		{"null", `null`},
		{"array", `[]`},
		{"empty object", `{}`},
		{"missing metrics", `{"atlas":{"width":1,"height":1},"glyphs":[],"kerning":[]}`},
		{"wrong type", `{"atlas":{"width":"wide"},"metrics":{}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseResult(writeJSON(t, tt.doc), "")
			if !errors.Is(err, ErrParse) {
				t.Fatalf("expected ErrParse, got %v", err)
			}
		})
	}
}

func TestParseResultMissingFile(t *testing.T) {
	_, err := ParseResult(filepath.Join(t.TempDir(), "nope.json"), "")
	if !errors.Is(err, ErrOutputMissing) {
		t.Fatalf("expected ErrOutputMissing, got %v", err)
	}
	if errors.Is(err, ErrParse) {
		t.Fatalf("missing output must not be a parse failure")
	}
}
