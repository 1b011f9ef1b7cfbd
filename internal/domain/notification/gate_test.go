package notification

import (
	"testing"

	"github.com/stretchr/testify/assert"

	vo "github.com/conseccomms/conseccomms/internal/domain/notification/valueobjects"
	"github.com/conseccomms/conseccomms/internal/domain/setting"
)

func TestAllow(t *testing.T) {
	allOff := setting.NotificationPreferences{}
	allOn := setting.Defaults().Notifications

	tests := []struct {
		name     string
		category vo.Category
		typ      vo.NotificationType
		priority vo.Priority
		prefs    setting.NotificationPreferences
		want     bool
	}{
		{"ai suppressed when aiInsights off", vo.CategoryAI, vo.TypeInfo, vo.PriorityNormal, allOff, false},
		{"ai allowed when aiInsights on", vo.CategoryAI, vo.TypeInfo, vo.PriorityNormal, allOn, true},
		{"system type bypasses", vo.CategoryAI, vo.TypeSystem, vo.PriorityNormal, allOff, true},
		{"urgent bypasses", vo.CategoryAI, vo.TypeWarning, vo.PriorityUrgent, allOff, true},
		{"high priority does not bypass", vo.CategoryAI, vo.TypeWarning, vo.PriorityHigh, allOff, false},
		{"ticket gated", vo.CategoryTicket, vo.TypeInfo, vo.PriorityNormal, allOff, false},
		{"proposal gated", vo.CategoryProposal, vo.TypeSuccess, vo.PriorityLow, allOff, false},
		{"drive gated", vo.CategoryDrive, vo.TypeInfo, vo.PriorityNormal, allOff, false},
		{"security always", vo.CategorySecurity, vo.TypeWarning, vo.PriorityNormal, allOff, true},
		{"system category always", vo.CategorySystem, vo.TypeInfo, vo.PriorityLow, allOff, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Allow(tt.category, tt.typ, tt.priority, tt.prefs))
		})
	}
}

func TestAllow_EmailPreferenceDoesNotGateInApp(t *testing.T) {
	prefs := setting.Defaults().Notifications
	prefs.Email = false

	assert.True(t, Allow(vo.CategoryTicket, vo.TypeInfo, vo.PriorityNormal, prefs))
}

func TestAllow_OnlyMappedPreferenceMatters(t *testing.T) {
	prefs := setting.NotificationPreferences{TicketUpdates: true}

	assert.True(t, Allow(vo.CategoryTicket, vo.TypeInfo, vo.PriorityNormal, prefs))
	assert.False(t, Allow(vo.CategoryAI, vo.TypeInfo, vo.PriorityNormal, prefs))
}

func TestShouldPush_NeedsOwnTarget(t *testing.T) {
	prefs := setting.Defaults().Notifications
	assert.False(t, ShouldPush(prefs))

	prefs.Desktop = true
	assert.False(t, ShouldPush(prefs), "desktop without a target has nowhere to go")

	prefs.PushURL = "ntfy://ntfy.sh/ada"
	assert.True(t, ShouldPush(prefs))

	prefs.Desktop = false
	assert.False(t, ShouldPush(prefs))
}
