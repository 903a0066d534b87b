package events

import (
	"time"

	"github.com/google/uuid"
)

type NoticeType string

const (
	NoticeInfo    NoticeType = "info"
	NoticeWarn    NoticeType = "warn"
	NoticeSuccess NoticeType = "success"
	NoticeError   NoticeType = "error"
)

// Notice is a transient user-facing notification payload.
type Notice struct {
	ID        string     `json:"id"`
	Type      NoticeType `json:"type"`
	Message   string     `json:"message"`
	Timestamp time.Time  `json:"timestamp"`
	PaneID    string     `json:"paneId,omitempty"`
}

func CreateNotice(noticeType NoticeType, message string) Notice {
	return Notice{
		ID:        uuid.NewString(),
		Type:      noticeType,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// NewInfo creates an info Notice.
func NewInfo(message string) Notice {
	return CreateNotice(NoticeInfo, message)
}

// NewWarn creates a warn Notice.
func NewWarn(message string) Notice {
	return CreateNotice(NoticeWarn, message)
}

// NewError creates an error Notice.
func NewError(message string) Notice {
	return CreateNotice(NoticeError, message)
}

// NewSuccess creates a success Notice.
func NewSuccess(message string) Notice {
	return CreateNotice(NoticeSuccess, message)
}
