package logtail

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func writeLog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "prais.log")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to create test log file: %v", err)
	}
	return path
}

func TestRead(t *testing.T) {
	var content strings.Builder
	var all []string
	for i := 1; i <= 10; i++ {
		line := fmt.Sprintf("Line %d", i)
		content.WriteString(line + "\n")
		all = append(all, line)
	}
	path := writeLog(t, content.String())

	tests := []struct {
		name string
		n    int
		want []string
	}{
		{name: "all (0)", n: 0, want: all},
		{name: "all (negative)", n: -1, want: all},
		{name: "partial", n: 5, want: all[5:]},
		{name: "exact", n: 10, want: all},
		{name: "more than exists", n: 20, want: all},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Read(path, tt.n)
			if err != nil {
				t.Fatalf("Read() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Read() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRead_SpansChunks(t *testing.T) {
	line := strings.Repeat("x", 1000)
	var content strings.Builder
	for i := 0; i < 100; i++ {
		fmt.Fprintf(&content, "%03d %s\n", i, line)
	}
	path := writeLog(t, content.String())

	got, err := Read(path, 60)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if len(got) != 60 {
		t.Fatalf("len(Read()) = %d, want 60", len(got))
	}
	if !strings.HasPrefix(got[0], "040 ") || !strings.HasPrefix(got[59], "099 ") {
		t.Fatalf("Read() window = %q..%q, want 040..099", got[0][:3], got[59][:3])
	}
}

func TestRead_NoTrailingNewlineAndCRLF(t *testing.T) {
	path := writeLog(t, "a\r\nb\r\nc")

	got, err := Read(path, 2)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if want := []string{"b", "c"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Read() = %v, want %v", got, want)
	}
}

func TestRead_MissingAndEmptyFiles(t *testing.T) {
	got, err := Read(filepath.Join(t.TempDir(), "nope.log"), 5)
	if err != nil || got != nil {
		t.Fatalf("Read(missing) = %v, %v; want nil, nil", got, err)
	}

	got, err = Read(writeLog(t, ""), 5)
	if err != nil || got != nil {
		t.Fatalf("Read(empty) = %v, %v; want nil, nil", got, err)
	}
}

func TestLineLevel(t *testing.T) {
	tests := []struct {
		line   string
		want   slog.Level
		wantOK bool
	}{
		{line: `time=2026-01-02T10:00:00Z level=INFO msg="catalog loaded" rows=3`, want: slog.LevelInfo, wantOK: true},
		{line: `{"time":"2026-01-02T10:00:00Z","level":"WARN","msg":"prefs"}`, want: slog.LevelWarn, wantOK: true},
		{line: `time=x level=DEBUG msg=sort`, want: slog.LevelDebug, wantOK: true},
		{line: `    continuation`, wantOK: false},
	}
	for _, tt := range tests {
		got, ok := LineLevel(tt.line)
		if ok != tt.wantOK || (ok && got != tt.want) {
			t.Errorf("LineLevel(%q) = %v, %v; want %v, %v", tt.line, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestAtLeast(t *testing.T) {
	lines := []string{
		`level=DEBUG msg=one`,
		`  detail of one`,
		`level=WARN msg=two`,
		`  detail of two`,
		`level=INFO msg=three`,
		`level=ERROR msg=four`,
	}
	got := AtLeast(lines, slog.LevelWarn)
	want := []string{
		`level=WARN msg=two`,
		`  detail of two`,
		`level=ERROR msg=four`,
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("AtLeast() = %v, want %v", got, want)
	}
}
