package app

// Screen represents the current view in the application
type Screen int

const (
	ScreenLoading Screen = iota
	ScreenBrowse
	ScreenError
)

func (s Screen) String() string {
	names := []string{
		"Loading",
		"Browse",
		"Error",
	}
	if int(s) < len(names) {
		return names[s]
	}
	return "Unknown"
}

// ViewMode selects how issue groups are listed
type ViewMode int

const (
	// ViewByTag lists the issues of each tag under a tag header
	ViewByTag ViewMode = iota
	// ViewAllIssues lists the issues of the whole history
	ViewAllIssues
)

func (v ViewMode) String() string {
	if v == ViewAllIssues {
		return "All issues"
	}
	return "By tag"
}
