package appdirs

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/takma/takma-desktop/internal/constants"
)

func TestDir(t *testing.T) {
	tmp, err := Dir(Temp)
	if err != nil || tmp != os.TempDir() {
		t.Errorf("Dir(Temp) = (%q, %v), want %q", tmp, err, os.TempDir())
	}

	data, err := Dir(AppLocalData)
	if err != nil {
		t.Fatalf("Dir(AppLocalData): %v", err)
	}
	if filepath.Base(data) != constants.DefaultInstanceID {
		t.Errorf("Dir(AppLocalData) = %q, want it to end in %s", data, constants.DefaultInstanceID)
	}

	if _, err := Dir("resources"); !errors.Is(err, ErrUnknownBase) {
		t.Errorf("Dir(resources) error = %v, want ErrUnknownBase", err)
	}
}

func TestResolve(t *testing.T) {
	tmp := os.TempDir()

	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{name: "empty is the base", input: "", want: tmp},
		{name: "file", input: "board.json", want: filepath.Join(tmp, "board.json")},
		{name: "nested with slashes", input: "Takma/saves/board.json", want: filepath.Join(tmp, "Takma", "saves", "board.json")},
		{name: "inner dot-dot stays inside", input: "Takma/../board.json", want: filepath.Join(tmp, "board.json")},
		{name: "parent", input: "../etc/passwd", wantErr: ErrOutsideBase},
		{name: "absolute", input: "/etc/passwd", wantErr: ErrOutsideBase},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(Temp, tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Resolve(%q) error = %v, want %v", tt.input, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Resolve(%q): %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Resolve(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestResolveRejectsNullByte(t *testing.T) {
	_, err := Resolve(Temp, "board\x00.json")
	if err == nil || !strings.Contains(err.Error(), "null byte") {
		t.Errorf("Resolve with NUL = %v, want null byte error", err)
	}
}
