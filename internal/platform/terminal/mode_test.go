package terminal

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

func TestFits(t *testing.T) {
	tests := []struct {
		name    string
		window  core.Size
		grid    core.Size
		wantErr bool
	}{
		{"exact", core.Size{W: 40, H: 20}, core.Size{W: 40, H: 20}, false},
		{"larger", core.Size{W: 120, H: 40}, core.Size{W: 40, H: 20}, false},
		{"too narrow", core.Size{W: 39, H: 20}, core.Size{W: 40, H: 20}, true},
		{"too short", core.Size{W: 80, H: 10}, core.Size{W: 40, H: 20}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := fits(tt.window, tt.grid)
			if (err != nil) != tt.wantErr {
				t.Fatalf("fits() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrTooSmall) {
				t.Errorf("Error should wrap ErrTooSmall, got %v", err)
			}
		})
	}
}

func TestEnterModeRequiresTerminal(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "not-a-tty"))
	if err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}
	defer f.Close()

	if IsTerminal(f) {
		t.Fatal("A regular file should not be a terminal")
	}
	if _, err := EnterMode(f, f); err == nil {
		t.Error("EnterMode() should fail on a regular file")
	}
	if err := CheckSize(f, core.Size{W: 1, H: 1}); err == nil {
		t.Error("CheckSize() should fail on a regular file")
	}
}
