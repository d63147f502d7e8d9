package models

// AttributionStatus is the reported state of a single commit
type AttributionStatus int

const (
	// StatusNoMention means the message does not mention an AI tool
	StatusNoMention AttributionStatus = iota
	// StatusAttributed means an AI tool is mentioned with a structured marker
	StatusAttributed
	// StatusNeedsAttribution means an AI tool is mentioned without a marker
	StatusNeedsAttribution
)

func (s AttributionStatus) String() string {
	switch s {
	case StatusAttributed:
		return "attributed"
	case StatusNeedsAttribution:
		return "needs_attribution"
	default:
		return "no_mention"
	}
}

// AttributionResult is the classification of one commit message
type AttributionResult struct {
	HasAIMention   bool
	HasAttribution bool
}

// NeedsAttribution is true when an AI tool is mentioned but no marker is present
func (r AttributionResult) NeedsAttribution() bool {
	return r.HasAIMention && !r.HasAttribution
}

// Status collapses the result into the three reported states
func (r AttributionResult) Status() AttributionStatus {
	switch {
	case r.NeedsAttribution():
		return StatusNeedsAttribution
	case r.HasAIMention && r.HasAttribution:
		return StatusAttributed
	default:
		return StatusNoMention
	}
}
