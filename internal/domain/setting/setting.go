// Package setting holds per-user preferences. They are loaded once per
// session and passed explicitly to the code that needs them.
package setting

import (
	"fmt"
	"net/url"
	"time"
)

const maxPushURLLength = 2048

// DashboardApp names the app a user lands on.
type DashboardApp string

const (
	AppDesk   DashboardApp = "desk"
	AppDrive  DashboardApp = "drive"
	AppQuotes DashboardApp = "quotes"
)

func (a DashboardApp) IsValid() bool {
	return a == AppDesk || a == AppDrive || a == AppQuotes
}

type NotificationPreferences struct {
	TicketUpdates   bool `json:"ticketUpdates"`
	AIInsights      bool `json:"aiInsights"`
	ProposalUpdates bool `json:"proposalUpdates"`
	DriveActivity   bool `json:"driveActivity"`
	Email           bool `json:"email"`
	Desktop         bool `json:"desktop"`
	// PushURL is the user's own desktop push target in shoutrrr service
	// syntax. Pushes are only sent when it is set.
	PushURL string `json:"pushUrl,omitempty"`
}

type DashboardPreferences struct {
	DefaultApp   DashboardApp `json:"defaultApp"`
	CompactMode  bool         `json:"compactMode"`
	ShowInsights bool         `json:"showInsights"`
}

type PrivacyPreferences struct {
	ShareAnalytics bool `json:"shareAnalytics"`
	ProfileVisible bool `json:"profileVisible"`
}

// Settings is a value type; callers get copies, never shared pointers into
// a cache.
type Settings struct {
	Notifications NotificationPreferences `json:"notifications"`
	Dashboard     DashboardPreferences    `json:"dashboard"`
	Privacy       PrivacyPreferences      `json:"privacy"`
}

// Defaults are what a user has before saving anything. Desktop push is off
// until the user opts in.
func Defaults() Settings {
	return Settings{
		Notifications: NotificationPreferences{
			TicketUpdates:   true,
			AIInsights:      true,
			ProposalUpdates: true,
			DriveActivity:   true,
			Email:           true,
			Desktop:         false,
		},
		Dashboard: DashboardPreferences{
			DefaultApp:   AppDesk,
			ShowInsights: true,
		},
		Privacy: PrivacyPreferences{
			ProfileVisible: true,
		},
	}
}

func (s Settings) Validate() error {
	if !s.Dashboard.DefaultApp.IsValid() {
		return fmt.Errorf("invalid default app: %s", s.Dashboard.DefaultApp)
	}
	if raw := s.Notifications.PushURL; raw != "" {
		if len(raw) > maxPushURLLength {
			return fmt.Errorf("push URL exceeds maximum length of %d characters", maxPushURLLength)
		}
		u, err := url.Parse(raw)
		if err != nil || u.Scheme == "" {
			return fmt.Errorf("invalid push URL")
		}
	}
	return nil
}

// UserSettings is the persisted record for one user.
type UserSettings struct {
	UserID    uint
	Settings  Settings
	UpdatedAt time.Time
}
