package store

// Phase is the progress of the current checkout attempt. A field edit that
// reintroduces an error moves a step back from its valid phase to its
// in-progress phase; PhaseSubmitted is terminal for the draft and the next
// draft starts at PhaseEmpty.
type Phase int

// Checkout phases, in order of progress.
const (
	PhaseEmpty Phase = iota
	PhaseDeliveryInProgress
	PhaseDeliveryValid
	PhaseContactInProgress
	PhaseContactValid
	PhaseSubmitted
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseEmpty:
		return "empty"
	case PhaseDeliveryInProgress:
		return "delivery-in-progress"
	case PhaseDeliveryValid:
		return "delivery-valid"
	case PhaseContactInProgress:
		return "contact-in-progress"
	case PhaseContactValid:
		return "contact-valid"
	case PhaseSubmitted:
		return "submitted"
	default:
		return "unknown"
	}
}
