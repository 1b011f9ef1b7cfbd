package valueobjects

import "fmt"

type NotificationType string

const (
	TypeInfo    NotificationType = "info"
	TypeSuccess NotificationType = "success"
	TypeWarning NotificationType = "warning"
	TypeError   NotificationType = "error"
	TypeSystem  NotificationType = "system"
)

var validNotificationTypes = map[NotificationType]bool{
	TypeInfo:    true,
	TypeSuccess: true,
	TypeWarning: true,
	TypeError:   true,
	TypeSystem:  true,
}

func (t NotificationType) String() string {
	return string(t)
}

func (t NotificationType) IsValid() bool {
	return validNotificationTypes[t]
}

// NewNotificationType defaults an empty value to info.
func NewNotificationType(s string) (NotificationType, error) {
	if s == "" {
		return TypeInfo, nil
	}
	t := NotificationType(s)
	if !t.IsValid() {
		return "", fmt.Errorf("invalid notification type: %s", s)
	}
	return t, nil
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityNormal Priority = "normal"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

func (p Priority) String() string {
	return string(p)
}

func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityNormal, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// IsCritical marks notifications that stay on screen until dismissed.
func (p Priority) IsCritical() bool {
	return p == PriorityHigh || p == PriorityUrgent
}

// NewPriority defaults an empty value to normal.
func NewPriority(s string) (Priority, error) {
	if s == "" {
		return PriorityNormal, nil
	}
	p := Priority(s)
	if !p.IsValid() {
		return "", fmt.Errorf("invalid notification priority: %s", s)
	}
	return p, nil
}
