package services

import (
	"context"
	"time"

	"drawdesk/internal/models"
	"drawdesk/internal/repositories"
	"drawdesk/internal/utils"
)

type RecentDiagramService interface {
	TouchOpened(ctx context.Context, path string) error
	TouchSaved(ctx context.Context, path string) error
	List(ctx context.Context, limit int) ([]models.RecentDiagram, error)
	Startup(ctx context.Context)
}

type recentDiagramService struct {
	recents repositories.RecentDiagramRepository
	context context.Context
}

func NewRecentDiagramService(recents repositories.RecentDiagramRepository) RecentDiagramService {
	return &recentDiagramService{recents: recents}
}

func (s *recentDiagramService) Startup(ctx context.Context) {
	s.context = ctx
}

func (s *recentDiagramService) TouchOpened(ctx context.Context, path string) error {
	return s.recents.TouchOpened(ctx, path, time.Now())
}

func (s *recentDiagramService) TouchSaved(ctx context.Context, path string) error {
	return s.recents.TouchSaved(ctx, path, time.Now())
}

// List returns recents newest-first, pruning rows whose file no longer
// exists so a listed path always refers to a real file.
func (s *recentDiagramService) List(ctx context.Context, limit int) ([]models.RecentDiagram, error) {
	rows, err := s.recents.List(ctx, limit)
	if err != nil {
		return nil, err
	}
	alive := rows[:0]
	for _, row := range rows {
		if utils.FileExists(row.Path) {
			alive = append(alive, row)
			continue
		}
		if err := s.recents.Delete(ctx, row.Path); err != nil {
			return nil, err
		}
	}
	return alive, nil
}
