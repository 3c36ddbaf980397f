package config

import (
	"os"
	"path/filepath"

	"github.com/go-git/go-git/v5"

	"github.com/teranos/enumgen/errors"
)

// Root sources
const (
	RootFromFlag = "flag"
	RootFromGit  = "git"
	RootFromCwd  = "cwd"
)

// ResolveRoot determines the workspace root: the explicit path when given,
// else the work tree of the git repository containing dir, else dir itself.
func ResolveRoot(explicit, dir string) (string, string, error) {
	if explicit != "" {
		abs, err := filepath.Abs(explicit)
		if err != nil {
			return "", "", errors.WrapConfig(err, "failed to resolve --root")
		}
		info, err := os.Stat(abs)
		if err != nil {
			return "", "", errors.WrapConfig(err, "workspace root is not accessible")
		}
		if !info.IsDir() {
			return "", "", errors.NewConfigError("workspace root %s is not a directory", abs)
		}
		return abs, RootFromFlag, nil
	}

	if top, ok := gitWorkTree(dir); ok {
		return top, RootFromGit, nil
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", "", errors.WrapConfig(err, "failed to resolve working directory")
	}
	return abs, RootFromCwd, nil
}

func gitWorkTree(dir string) (string, bool) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", false
	}
	wt, err := repo.Worktree()
	if err != nil {
		// bare repository
		return "", false
	}
	return wt.Filesystem.Root(), true
}
