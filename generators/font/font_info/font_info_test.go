package font_info

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func goRegular(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "Go-Regular.ttf")
	if err := os.WriteFile(path, goregular.TTF, 0o644); err != nil {
		t.Fatalf("write font: %v", err)
	}
	return path
}

func TestDescribe(t *testing.T) {
	info, err := Describe(goRegular(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info.Family != "Go" {
		t.Fatalf("expected family Go, got %q", info.Family)
	}
	if info.UnitsPerEm != 2048 || info.NumGlyphs == 0 {
		t.Fatalf("unexpected info %+v", info)
	}
}

func TestDescribeNotAFont(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.ttf")
	os.WriteFile(path, []byte("definitely not a font"), 0o644)
	if _, err := Describe(path); err == nil {
		t.Fatalf("expected a parse error")
	}
	if _, err := Describe(filepath.Join(t.TempDir(), "missing.ttf")); err == nil {
		t.Fatalf("expected a read error")
	}
}

func TestCoverage(t *testing.T) {
	runes, err := Coverage(goRegular(t), 'A', 'Z')
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(runes) != 26 || runes[0] != 'A' || runes[25] != 'Z' {
		t.Fatalf("expected A..Z, got %q", runes)
	}
	if _, err := Coverage(goRegular(t), 'Z', 'A'); err == nil {
		t.Fatalf("expected an error for an inverted range")
	}
}

func TestWriteCharset(t *testing.T) {
	tests := []struct {
		runes []rune
		want  string
	}{
		{nil, "\n"},
		{[]rune{'A'}, "0x41\n"},
		{[]rune{0x22, 0x20, 0x21, 0x41, 0x43, 0x44, 0x41}, "[0x20, 0x22], 0x41, [0x43, 0x44]\n"},
		{[]rune{0x1F600, 0x7E}, "0x7E, 0x1F600\n"},
	}
	for _, tt := range tests {
		var buf bytes.Buffer
		if err := WriteCharset(&buf, tt.runes); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if buf.String() != tt.want {
			t.Errorf("%q: expected %q, got %q", tt.runes, tt.want, buf.String())
		}
	}
}
