package services

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// SnapshotService commits saved diagrams into the vault's git history when
// the vault happens to be a repository. Vaults without one are skipped.
type SnapshotService struct {
	context context.Context
}

func NewSnapshotService() *SnapshotService {
	return &SnapshotService{}
}

func (s *SnapshotService) Startup(ctx context.Context) {
	s.context = ctx
}

// SnapshotFile stages path and commits it. A path outside any git worktree
// is not an error; everything else is reported to the caller.
func (s *SnapshotService) SnapshotFile(path string) error {
	repo, err := git.PlainOpenWithOptions(filepath.Dir(path), &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return nil
		}
		return fmt.Errorf("open repository for %s: %w", path, err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		return fmt.Errorf("worktree: %w", err)
	}

	rel, err := filepath.Rel(wt.Filesystem.Root(), path)
	if err != nil {
		return fmt.Errorf("relativize %s: %w", path, err)
	}

	if _, err := wt.Add(filepath.ToSlash(rel)); err != nil {
		return fmt.Errorf("stage %s: %w", rel, err)
	}

	message := fmt.Sprintf("drawdesk: save %s", filepath.Base(path))
	_, err = wt.Commit(message, &git.CommitOptions{
		Author: &object.Signature{
			Name:  "drawdesk",
			Email: "drawdesk@localhost",
			When:  time.Now(),
		},
	})
	if err != nil {
		return fmt.Errorf("commit %s: %w", rel, err)
	}
	return nil
}
