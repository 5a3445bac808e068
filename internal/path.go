package internal

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/femnad/mare"
	"github.com/go-git/go-git/v5"
)

var remoteSchemes = []string{"http://", "https://"}

func IsRemote(location string) bool {
	for _, scheme := range remoteSchemes {
		if strings.HasPrefix(location, scheme) {
			return true
		}
	}
	return false
}

// RepoRoot returns the worktree root of the git repository enclosing dir.
func RepoRoot(dir string) (string, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", fmt.Errorf("error finding git repository for %s: %w", dir, err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return "", err
	}

	return worktree.Filesystem.Root(), nil
}

// ResolvePath expands the user's home and, if fromRepoRoot is set, anchors relative paths at the git
// worktree root enclosing cwd. Remote locations are returned unchanged.
func ResolvePath(location, cwd string, fromRepoRoot bool) (string, error) {
	if IsRemote(location) {
		return location, nil
	}

	location = mare.ExpandUser(location)
	if !fromRepoRoot || filepath.IsAbs(location) {
		return location, nil
	}

	root, err := RepoRoot(cwd)
	if err != nil {
		return "", err
	}
	Log.Debugf("Resolving %s against repository root %s", location, root)

	return filepath.Join(root, location), nil
}
