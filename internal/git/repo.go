package git

import (
	"errors"
	"path/filepath"

	"github.com/aivibes/devkit/internal/models"

	"github.com/go-git/go-git/v5"
)

// ErrNotRepository is returned when no enclosing git repository exists
var ErrNotRepository = errors.New("not inside a git repository")

// IsGitRepo checks if the path is a git repository
func IsGitRepo(path string) bool {
	_, err := git.PlainOpen(path)
	return err == nil
}

// FindRepoRoot walks up from path to the repository working tree root
func FindRepoRoot(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	repo, err := git.PlainOpenWithOptions(abs, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return "", ErrNotRepository
		}
		return "", err
	}

	wt, err := repo.Worktree()
	if err != nil {
		// Bare repositories have no worktree
		return "", ErrNotRepository
	}

	return wt.Filesystem.Root(), nil
}

// GetRepoInfo gets info for the repository enclosing path
func GetRepoInfo(path string) (*models.RepoInfo, error) {
	root, err := FindRepoRoot(path)
	if err != nil {
		return nil, err
	}

	info := models.NewRepoInfo(root, filepath.Base(root))
	return &info, nil
}
