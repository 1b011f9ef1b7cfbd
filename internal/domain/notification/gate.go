package notification

import (
	vo "github.com/conseccomms/conseccomms/internal/domain/notification/valueobjects"
	"github.com/conseccomms/conseccomms/internal/domain/setting"
)

// preferenceFor maps a category to the user preference that gates it.
// Categories without an entry are always delivered.
var preferenceFor = map[vo.Category]func(setting.NotificationPreferences) bool{
	vo.CategoryTicket:   func(p setting.NotificationPreferences) bool { return p.TicketUpdates },
	vo.CategoryAI:       func(p setting.NotificationPreferences) bool { return p.AIInsights },
	vo.CategoryProposal: func(p setting.NotificationPreferences) bool { return p.ProposalUpdates },
	vo.CategoryDrive:    func(p setting.NotificationPreferences) bool { return p.DriveActivity },
}

// Allow decides whether a notification may be created. System-typed and
// urgent notifications bypass the user's preferences.
func Allow(category vo.Category, notificationType vo.NotificationType, priority vo.Priority, prefs setting.NotificationPreferences) bool {
	if notificationType == vo.TypeSystem || priority == vo.PriorityUrgent {
		return true
	}
	check, gated := preferenceFor[category]
	if !gated {
		return true
	}
	return check(prefs)
}

// ShouldPush reports whether a created notification is also sent as a
// desktop push to the user's own target.
func ShouldPush(prefs setting.NotificationPreferences) bool {
	return prefs.Desktop && prefs.PushURL != ""
}
