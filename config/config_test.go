package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "floorplan.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.GridSize != 1 || !cfg.SnapEnabled || cfg.MinArea != 0 {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    Config
		wantErr bool
	}{
		{
			name: "full config",
			body: "grid_size: 0.5\nsnap_enabled: false\nmin_area: 2.5\n",
			want: Config{GridSize: 0.5, SnapEnabled: false, MinArea: 2.5},
		},
		{
			name: "omitted fields keep defaults",
			body: "grid_size: 2\n",
			want: Config{GridSize: 2, SnapEnabled: true},
		},
		{
			name:    "negative grid rejected",
			body:    "grid_size: -1\n",
			wantErr: true,
		},
		{
			name:    "malformed yaml",
			body:    "grid_size: [oops\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Load(writeConfig(t, tt.body))
			if tt.wantErr {
				if err == nil {
					t.Error("Load succeeded, want error")
				}
				return
			}
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if got != tt.want {
				t.Errorf("Load = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("Load succeeded on a missing file")
	}
}
