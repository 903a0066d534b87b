package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"drawdesk/internal/models"
)

type RecentDiagramRepository interface {
	TouchOpened(ctx context.Context, path string, at time.Time) error
	TouchSaved(ctx context.Context, path string, at time.Time) error
	List(ctx context.Context, limit int) ([]models.RecentDiagram, error)
	Delete(ctx context.Context, path string) error
}

type recentDiagramRepository struct {
	db *gorm.DB
}

func NewRecentDiagramRepository(db *gorm.DB) RecentDiagramRepository {
	return &recentDiagramRepository{db: db}
}

func (r *recentDiagramRepository) TouchOpened(ctx context.Context, path string, at time.Time) error {
	rec := models.RecentDiagram{Path: path, LastOpenedAt: at}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "path"}},
		DoUpdates: clause.AssignmentColumns([]string{"last_opened_at"}),
	}).Create(&rec).Error
}

func (r *recentDiagramRepository) TouchSaved(ctx context.Context, path string, at time.Time) error {
	rec := models.RecentDiagram{Path: path, LastOpenedAt: at, LastSavedAt: at}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "path"}},
		DoUpdates: clause.AssignmentColumns([]string{"last_saved_at"}),
	}).Create(&rec).Error
}

func (r *recentDiagramRepository) List(ctx context.Context, limit int) ([]models.RecentDiagram, error) {
	var recents []models.RecentDiagram
	q := r.db.WithContext(ctx).Order("last_opened_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&recents).Error; err != nil {
		return nil, err
	}
	return recents, nil
}

func (r *recentDiagramRepository) Delete(ctx context.Context, path string) error {
	return r.db.WithContext(ctx).Where("path = ?", path).Delete(&models.RecentDiagram{}).Error
}
