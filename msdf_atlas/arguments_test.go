package msdf_atlas

import (
	"slices"
	"testing"
)

var requiredFlags = []string{"-font", "-type", "-dimensions", "-size",
	"-pxrange", "-format", "-imageout", "-json"}

func flagPositions(args []string) map[string][]int {
	pos := map[string][]int{}
	for i, a := range args {
		if len(a) > 1 && a[0] == '-' && (a[1] < '0' || a[1] > '9') {
			pos[a] = append(pos[a], i)
		}
	}
	return pos
}

func TestBuildArguments(t *testing.T) {
	cfg := Config{
		FontPath:   "fonts/Roboto Regular.ttf",
		Type:       MTSDF,
		Width:      512,
		Height:     256,
		GlyphSize:  64,
		PixelRange: 6,
	}
	got := BuildArguments(cfg, "out/atlas.png", "out/atlas.json")
	want := []string{
		"-font", "fonts/Roboto Regular.ttf",
		"-type", "mtsdf",
		"-dimensions", "512", "256",
		"-size", "64",
		"-pxrange", "6",
		"-format", "png",
		"-imageout", "out/atlas.png",
		"-json", "out/atlas.json",
	}
	if !slices.Equal(got, want) {
		t.Fatalf("arguments mismatch\n got: %q\nwant: %q", got, want)
	}
}

func TestBuildArgumentsFlagOrder(t *testing.T) {
	tests := []struct {
		name    string
		charset string
	}{
		{"without charset", ""},
		{"with charset", "charset.txt"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.FontPath = "font.ttf"
			cfg.CharsetFile = tt.charset
			args := BuildArguments(cfg, "a.png", "a.json")
			pos := flagPositions(args)
			last := -1
			for _, f := range requiredFlags {
				if len(pos[f]) != 1 {
					t.Fatalf("expected exactly one %s, got %d in %q", f, len(pos[f]), args)
				}
				if pos[f][0] <= last {
					t.Fatalf("%s out of order in %q", f, args)
				}
				last = pos[f][0]
			}
			charset := pos["-charset"]
			if tt.charset == "" && len(charset) != 0 {
				t.Fatalf("unexpected -charset in %q", args)
			}
			if tt.charset != "" {
				if len(charset) != 1 || charset[0] <= last || args[charset[0]+1] != tt.charset {
					t.Fatalf("expected trailing -charset %s in %q", tt.charset, args)
				}
			}
		})
	}
}

func TestBuildArgumentsTypeNames(t *testing.T) {
	for typ, want := range map[Type]string{MSDF: "msdf", MTSDF: "mtsdf", SDF: "sdf", PSDF: "psdf"} {
		args := BuildArguments(Config{FontPath: "f.ttf", Type: typ}, "a.png", "a.json")
		if args[3] != want {
			t.Errorf("type %v: expected %q, got %q", typ, want, args[3])
		}
	}
}

func TestBuildArgumentsPassesInvalidValuesThrough(t *testing.T) {
	args := BuildArguments(Config{FontPath: "f.ttf", Width: -1, Height: 0, PixelRange: -4}, "a.png", "a.json")
	if args[5] != "-1" || args[6] != "0" || args[10] != "-4" {
		t.Fatalf("expected raw values, got %q", args)
	}
}

func TestCommandLineQuotesSpaces(t *testing.T) {
	got := CommandLine("/opt/tools/msdf-atlas-gen", []string{"-font", "My Fonts/a b.ttf", "-size", "48", "-charset", ""})
	want := `/opt/tools/msdf-atlas-gen -font "My Fonts/a b.ttf" -size 48 -charset ""`
	if got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}
}
