package httpx

// CurrentPage constants define the page identifiers used in templates and navigation.
const (
	PageDashboard     = "dashboard"
	PageAccounts      = "accounts"
	PageTasks         = "tasks"
	PageProxies       = "proxies"
	PageQuotas        = "quotas"
	PageRedisConfigs  = "redis-configs"
	PageCrawlerParams = "crawler-params"
	PageRawData       = "raw-data"
	PageSampleData    = "sample-data"
	PageExports       = "exports"
)

// Page sizes for list panels.
const (
	// ListPageSize is the backend page size of every paginated panel.
	ListPageSize = 20
	// RedisConfigPageSize is the client-side page size of the redis-configs panel.
	RedisConfigPageSize = 10
	// AccountNameMaxLen is where account names are cut in tables.
	AccountNameMaxLen = 20
)

// Template paths used for loading templates in tests and production.
const (
	TemplatePathFromRoot = "frontend/templates"       // From project root
	TemplatePathFromTest = "../../frontend/templates" // From internal/http test files
)

// FormMode represents the mode of a form (create or edit).
type FormMode string

const (
	// FormModeEdit indicates the form is in edit mode.
	FormModeEdit FormMode = "edit"
	// FormModeCreate indicates the form is in create mode.
	FormModeCreate FormMode = "create"
)

// Client-side events carried in the Hx-Trigger header.
const (
	EventShowToast  = "showToast"
	EventCloseModal = "closeModal"
	EventNavigate   = "nav:activate"
)

// ReloadEvent is the event a panel's content root listens on to reload itself.
func ReloadEvent(page string) string { return page + ":reload" }

//nolint:gochecknoglobals // static read-only lookup for templates
var contentTemplates = map[string]string{
	PageDashboard:     "dashboard-content",
	PageAccounts:      "accounts-content",
	PageTasks:         "tasks-content",
	PageProxies:       "proxies-content",
	PageQuotas:        "quotas-content",
	PageRedisConfigs:  "redis-configs-content",
	PageCrawlerParams: "crawler-params-content",
	PageRawData:       "records-content",
	PageSampleData:    "records-content",
	PageExports:       "exports-content",
}

// ContentTemplateMap returns the mapping from CurrentPage to template name.
func ContentTemplateMap() map[string]string { return contentTemplates }

// ContentTemplateFor returns the content template for the given CurrentPage.
// Falls back to dashboard-content for unknown pages.
func ContentTemplateFor(currentPage string) string {
	if name, ok := ContentTemplateMap()[currentPage]; ok {
		return name
	}
	return "dashboard-content"
}
