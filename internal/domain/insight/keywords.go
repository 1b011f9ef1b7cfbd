package insight

// Domain selects the keyword tables used by the classifier.
type Domain string

const (
	DomainTicket   Domain = "ticket"
	DomainFile     Domain = "file"
	DomainFeedback Domain = "feedback"
)

func (d Domain) String() string {
	return string(d)
}

func (d Domain) IsValid() bool {
	_, ok := domainTables[d]
	return ok
}

// FallbackCategory is returned when no keyword of any category matches.
const FallbackCategory = "general"

type categoryRule struct {
	name     string
	keywords []string
}

type subCategoryRule struct {
	name     string
	keywords []string
}

type domainTable struct {
	categories []categoryRule
	// subCategories maps a category to its secondary checks, evaluated in order.
	subCategories map[string][]subCategoryRule
	// subFallbacks is the fixed list a sub-category is picked from when no
	// secondary keyword matches.
	subFallbacks map[string][]string
	cap          float64
	weight       float64
}

const (
	confidenceBase  = 0.5
	confidenceStep  = 0.1
	confidenceLimit = 0.98
)

var domainTables = map[Domain]domainTable{
	DomainTicket: {
		cap:    0.95,
		weight: 1.0,
		categories: []categoryRule{
			{name: "login_issues", keywords: []string{"login", "log in", "sign in", "password", "forgot", "reset", "locked", "2fa", "authentication", "credentials", "username", "cannot access"}},
			{name: "billing", keywords: []string{"invoice", "charge", "charged", "refund", "payment", "billing", "subscription", "credit card", "price", "receipt", "overcharged"}},
			{name: "technical", keywords: []string{"error", "bug", "crash", "crashes", "broken", "not working", "slow", "timeout", "failed", "exception", "glitch", "freeze"}},
			{name: "feature_request", keywords: []string{"feature", "request", "suggestion", "would like", "improve", "enhancement", "wish", "could you add", "integration"}},
			{name: "account", keywords: []string{"account", "profile", "email address", "delete account", "settings", "deactivate", "rename", "upgrade", "downgrade"}},
			{name: "data", keywords: []string{"export", "import", "csv", "data", "sync", "backup", "missing", "lost", "restore"}},
		},
		subCategories: map[string][]subCategoryRule{
			"login_issues": {
				{name: "password_reset", keywords: []string{"forgot", "reset", "password"}},
				{name: "account_locked", keywords: []string{"locked", "blocked", "disabled"}},
				{name: "two_factor", keywords: []string{"2fa", "code", "authenticator"}},
			},
			"billing": {
				{name: "refund", keywords: []string{"refund", "money back"}},
				{name: "double_charge", keywords: []string{"twice", "double", "overcharged"}},
				{name: "plan_change", keywords: []string{"upgrade", "downgrade", "plan"}},
			},
			"technical": {
				{name: "performance", keywords: []string{"slow", "timeout", "lag", "freeze"}},
				{name: "crash", keywords: []string{"crash", "crashes", "exception"}},
			},
			"data": {
				{name: "data_loss", keywords: []string{"lost", "missing", "deleted"}},
				{name: "import_export", keywords: []string{"import", "export", "csv"}},
			},
		},
		subFallbacks: map[string][]string{
			"login_issues":    {"session", "sso", "general_access"},
			"billing":         {"invoice_question", "payment_method", "general_billing"},
			"technical":       {"ui_issue", "integration_issue", "general_technical"},
			"feature_request": {"ux_improvement", "new_capability", "integration_request"},
			"account":         {"profile_update", "account_lifecycle", "preferences"},
			"data":            {"sync_issue", "data_quality", "general_data"},
			FallbackCategory:  {"inquiry", "other", "unclassified"},
		},
	},
	DomainFile: {
		cap:    0.98,
		weight: 0.98,
		categories: []categoryRule{
			{name: "document", keywords: []string{"pdf", "doc", "docx", "txt", "md", "report", "contract", "agreement", "proposal", "memo", "letter", "notes"}},
			{name: "spreadsheet", keywords: []string{"xls", "xlsx", "csv", "ods", "budget", "forecast", "financial", "ledger", "invoice"}},
			{name: "image", keywords: []string{"jpg", "jpeg", "png", "gif", "svg", "webp", "photo", "screenshot", "logo", "image"}},
			{name: "presentation", keywords: []string{"ppt", "pptx", "key", "slides", "deck", "pitch", "presentation"}},
			{name: "media", keywords: []string{"mp4", "mov", "avi", "mp3", "wav", "video", "audio", "recording", "podcast"}},
			{name: "archive", keywords: []string{"zip", "tar", "gz", "rar", "7z", "backup", "archive"}},
			{name: "code", keywords: []string{"go", "js", "ts", "py", "java", "json", "yaml", "yml", "sql", "source"}},
		},
		subCategories: map[string][]subCategoryRule{
			"document": {
				{name: "legal", keywords: []string{"contract", "agreement", "nda"}},
				{name: "report", keywords: []string{"report", "summary", "analysis"}},
			},
			"spreadsheet": {
				{name: "finance", keywords: []string{"budget", "forecast", "financial", "invoice", "ledger"}},
			},
			"image": {
				{name: "branding", keywords: []string{"logo", "brand"}},
				{name: "screenshot", keywords: []string{"screenshot", "screen"}},
			},
		},
		subFallbacks: map[string][]string{
			"document":       {"general_document", "reference", "draft"},
			"spreadsheet":    {"tracking", "analysis", "list"},
			"image":          {"photo", "graphic", "illustration"},
			"presentation":   {"internal", "client_facing", "training"},
			"media":          {"recording", "marketing", "training"},
			"archive":        {"backup", "bundle", "export"},
			"code":           {"config", "script", "source"},
			FallbackCategory: {"misc", "uncategorized", "other"},
		},
	},
	DomainFeedback: {
		cap:    0.95,
		weight: 0.9,
		categories: []categoryRule{
			{name: "bug_report", keywords: []string{"bug", "error", "broken", "crash", "not working", "glitch", "fails", "failed"}},
			{name: "feature_request", keywords: []string{"feature", "would like", "please add", "wish", "suggest", "suggestion", "could you", "missing"}},
			{name: "praise", keywords: []string{"love", "great", "excellent", "awesome", "amazing", "thank", "thanks", "fantastic", "helpful"}},
			{name: "complaint", keywords: []string{"terrible", "awful", "worst", "disappointed", "frustrated", "angry", "unacceptable", "hate"}},
			{name: "usability", keywords: []string{"confusing", "hard to find", "difficult", "unclear", "navigation", "intuitive", "layout"}},
			{name: "performance", keywords: []string{"slow", "lag", "loading", "speed", "fast", "timeout", "performance"}},
		},
		subFallbacks: map[string][]string{
			"bug_report":      {"functional", "visual", "data"},
			"feature_request": {"workflow", "reporting", "integration"},
			"praise":          {"product", "support", "design"},
			"complaint":       {"service", "pricing", "quality"},
			"usability":       {"navigation", "forms", "onboarding"},
			"performance":     {"page_load", "search", "sync"},
			FallbackCategory:  {"general_feedback", "comment", "other"},
		},
	},
}

var positiveKeywords = []string{
	"great", "thanks", "thank", "love", "excellent", "awesome", "happy", "good",
	"helpful", "amazing", "perfect", "appreciate", "fantastic", "resolved",
}

var negativeKeywords = []string{
	"bad", "terrible", "angry", "frustrated", "annoyed", "broken", "worst", "hate",
	"cannot", "can't", "unable", "disappointed", "urgent", "problem", "fail", "failed",
	"error", "awful", "unacceptable", "not working",
}
