// Package notification holds in-app notifications and the preference gate
// that decides whether one is created at all.
package notification

import (
	"fmt"
	"time"
	"unicode/utf8"

	vo "github.com/conseccomms/conseccomms/internal/domain/notification/valueobjects"
)

const (
	maxTitleLength   = 200
	maxMessageLength = 2000
)

type Notification struct {
	id               uint
	userID           uint
	category         vo.Category
	notificationType vo.NotificationType
	priority         vo.Priority
	title            string
	message          string
	readStatus       bool
	createdAt        time.Time
}

func NewNotification(
	userID uint,
	category vo.Category,
	notificationType vo.NotificationType,
	priority vo.Priority,
	title string,
	message string,
) (*Notification, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if !category.IsValid() {
		return nil, fmt.Errorf("invalid notification category: %s", category)
	}
	if !notificationType.IsValid() {
		return nil, fmt.Errorf("invalid notification type: %s", notificationType)
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid notification priority: %s", priority)
	}
	if title == "" {
		return nil, fmt.Errorf("title is required")
	}
	if utf8.RuneCountInString(title) > maxTitleLength {
		return nil, fmt.Errorf("title exceeds maximum length of %d characters", maxTitleLength)
	}
	if utf8.RuneCountInString(message) > maxMessageLength {
		return nil, fmt.Errorf("message exceeds maximum length of %d characters", maxMessageLength)
	}

	return &Notification{
		userID:           userID,
		category:         category,
		notificationType: notificationType,
		priority:         priority,
		title:            title,
		message:          message,
		createdAt:        time.Now().UTC(),
	}, nil
}

func ReconstructNotification(
	id, userID uint,
	category vo.Category,
	notificationType vo.NotificationType,
	priority vo.Priority,
	title, message string,
	readStatus bool,
	createdAt time.Time,
) (*Notification, error) {
	if id == 0 {
		return nil, fmt.Errorf("notification ID cannot be zero")
	}
	return &Notification{
		id:               id,
		userID:           userID,
		category:         category,
		notificationType: notificationType,
		priority:         priority,
		title:            title,
		message:          message,
		readStatus:       readStatus,
		createdAt:        createdAt,
	}, nil
}

func (n *Notification) ID() uint {
	return n.id
}

func (n *Notification) UserID() uint {
	return n.userID
}

func (n *Notification) Category() vo.Category {
	return n.category
}

func (n *Notification) Type() vo.NotificationType {
	return n.notificationType
}

func (n *Notification) Priority() vo.Priority {
	return n.priority
}

func (n *Notification) Title() string {
	return n.title
}

func (n *Notification) Message() string {
	return n.message
}

func (n *Notification) IsRead() bool {
	return n.readStatus
}

func (n *Notification) CreatedAt() time.Time {
	return n.createdAt
}

func (n *Notification) SetID(id uint) error {
	if n.id != 0 {
		return fmt.Errorf("notification ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("notification ID cannot be zero")
	}
	n.id = id
	return nil
}

// MarkAsRead is idempotent.
func (n *Notification) MarkAsRead() {
	n.readStatus = true
}
