package entity

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeProfile(t *testing.T, content string) string {
	t.Helper()
	file := filepath.Join(t.TempDir(), "profile.yml")
	if err := os.WriteFile(file, []byte(content), 0o644); err != nil {
		t.Fatalf("error writing profile: %v", err)
	}
	return file
}

func TestDefaultRequiredEntriesAreIsolated(t *testing.T) {
	entries := DefaultRequiredEntries()
	entries[0] = "changed"

	want := []string{"host.json", "package.json", "dist/index.js"}
	if got := DefaultRequiredEntries(); !reflect.DeepEqual(got, want) {
		t.Errorf("DefaultRequiredEntries() = %v, want %v", got, want)
	}
}

func TestReadProfile(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    Profile
		wantErr bool
	}{
		{
			name:    "Empty mapping falls back to defaults",
			content: "{}\n",
			want:    DefaultProfile(),
		},
		{
			name: "Strict deploy profile",
			content: `required:
  - host.json
  - package.json
  - dist/api/src/index.js
patterns:
  - dist/api/src/functions/*.js
prefixes:
  - node_modules/
max_listed: 5
`,
			want: Profile{
				MaxListed: 5,
				Patterns:  []string{"dist/api/src/functions/*.js"},
				Prefixes:  []string{"node_modules/"},
				Required:  []string{"host.json", "package.json", "dist/api/src/index.js"},
			},
		},
		{
			name:    "Empty file falls back to defaults",
			content: "",
			want:    DefaultProfile(),
		},
		{
			name:    "Non-positive limit uses default",
			content: "max_listed: 0\n",
			want:    DefaultProfile(),
		},
		{
			name:    "Invalid pattern",
			content: "patterns:\n  - \"dist/[\"\n",
			wantErr: true,
		},
		{
			name:    "Unknown key",
			content: "require: [host.json]\n",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadProfile(writeProfile(t, tt.content))
			if (err != nil) != tt.wantErr {
				t.Errorf("ReadProfile() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ReadProfile() got = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestReadProfileMissingFile(t *testing.T) {
	_, err := ReadProfile(filepath.Join(t.TempDir(), "absent.yml"))
	if !os.IsNotExist(err) {
		t.Errorf("ReadProfile() error = %v, want not exist", err)
	}
}
