package domain

type ParentType string

const (
	ParentMom ParentType = "mom"
	ParentDad ParentType = "dad"
)

// ValidParentTypes is the canonical set of accepted parent type strings.
var ValidParentTypes = map[string]bool{
	"mom": true, "dad": true,
}

type EventType string

const (
	// EventScheduled marks one-off activities created from the calendar grid.
	EventScheduled EventType = "scheduled"
)
