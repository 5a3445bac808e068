package internal

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-git/go-git/v5"
)

func TestResolvePath(t *testing.T) {
	repo := t.TempDir()
	if _, err := git.PlainInit(repo, false); err != nil {
		t.Fatalf("error initializing repository: %v", err)
	}
	sub := filepath.Join(repo, "api", "src")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatalf("error creating subdirectory: %v", err)
	}

	type args struct {
		location     string
		cwd          string
		fromRepoRoot bool
	}
	tests := []struct {
		name    string
		args    args
		want    string
		wantErr bool
	}{
		{
			name: "Relative path kept without repo root",
			args: args{location: "out/deploy.zip", cwd: sub},
			want: "out/deploy.zip",
		},
		{
			name: "Relative path anchored at repo root",
			args: args{location: "out/deploy.zip", cwd: sub, fromRepoRoot: true},
			want: filepath.Join(repo, "out/deploy.zip"),
		},
		{
			name: "Absolute path kept",
			args: args{location: "/srv/deploy.zip", cwd: sub, fromRepoRoot: true},
			want: "/srv/deploy.zip",
		},
		{
			name: "Remote location kept",
			args: args{location: "https://example.com/deploy.zip", cwd: sub, fromRepoRoot: true},
			want: "https://example.com/deploy.zip",
		},
		{
			name:    "No enclosing repository",
			args:    args{location: "out/deploy.zip", cwd: t.TempDir(), fromRepoRoot: true},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolvePath(tt.args.location, tt.args.cwd, tt.args.fromRepoRoot)
			if (err != nil) != tt.wantErr {
				t.Errorf("ResolvePath() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if got != tt.want {
				t.Errorf("ResolvePath() got = %v, want %v", got, tt.want)
			}
		})
	}
}
