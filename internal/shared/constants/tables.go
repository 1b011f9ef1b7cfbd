package constants

const (
	TableUsers             = "users"
	TableUserSettings      = "user_settings"
	TableTickets           = "tickets"
	TableFiles             = "files"
	TableFolders           = "folders"
	TableProposals         = "proposals"
	TableProposalLineItems = "proposal_line_items"
	TableProposalSequences = "proposal_sequences"
	TableNotifications     = "notifications"
	TableFeedback          = "feedback"
	TableCasbinRules       = "casbin_rule"
)
