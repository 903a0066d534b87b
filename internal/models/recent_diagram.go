package models

import "time"

// RecentDiagram records a diagram file the user has opened or saved, so the
// frontend can offer a newest-first reopen list.
type RecentDiagram struct {
	ID           uint   `gorm:"primaryKey"`
	Path         string `gorm:"uniqueIndex;size:1024"`
	LastOpenedAt time.Time
	LastSavedAt  time.Time
}
