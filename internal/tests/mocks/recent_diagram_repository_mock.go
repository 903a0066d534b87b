package mocks

import (
	"context"
	"time"

	"drawdesk/internal/models"
)

type RecentDiagramRepositoryMock struct {
	TouchOpenedFunc func(ctx context.Context, path string, at time.Time) error
	TouchSavedFunc  func(ctx context.Context, path string, at time.Time) error
	ListFunc        func(ctx context.Context, limit int) ([]models.RecentDiagram, error)
	DeleteFunc      func(ctx context.Context, path string) error
}

func (m *RecentDiagramRepositoryMock) TouchOpened(ctx context.Context, path string, at time.Time) error {
	if m.TouchOpenedFunc != nil {
		return m.TouchOpenedFunc(ctx, path, at)
	}
	return nil
}

func (m *RecentDiagramRepositoryMock) TouchSaved(ctx context.Context, path string, at time.Time) error {
	if m.TouchSavedFunc != nil {
		return m.TouchSavedFunc(ctx, path, at)
	}
	return nil
}

func (m *RecentDiagramRepositoryMock) List(ctx context.Context, limit int) ([]models.RecentDiagram, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, limit)
	}
	return nil, nil
}

func (m *RecentDiagramRepositoryMock) Delete(ctx context.Context, path string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, path)
	}
	return nil
}
