package viewmodel

// NavItem is one sidebar link.
type NavItem struct {
	Page  string
	Label string
	Path  string
}

// Layout captures shared chrome metadata (titles, navigation state).
type Layout struct {
	Title       string
	PageTitle   string
	CurrentPage string
	Nav         []NavItem
}

// LayoutProvider exposes layout metadata for renderer utilities.
type LayoutProvider interface {
	LayoutData() *Layout
}
