package workflow

// Tab selects which slice of the pipeline a listing shows.
type Tab string

const (
	// TabProduction lists everything still moving through the pipeline.
	TabProduction Tab = "production"
	// TabPublished lists published videos only.
	TabPublished Tab = "published"
	// TabCancelled lists cancelled videos only.
	TabCancelled Tab = "cancelled"
)

// IsValid checks if the tab is a known value.
func (t Tab) IsValid() bool {
	return t == TabProduction || t == TabPublished || t == TabCancelled
}

// ParseTab maps a raw tab label to a Tab, defaulting to TabProduction.
func ParseTab(raw string) Tab {
	switch Tab(raw) {
	case TabPublished:
		return TabPublished
	case TabCancelled:
		return TabCancelled
	default:
		return TabProduction
	}
}
