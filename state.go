package factura

// RunState tracks how far an extraction run has progressed. States advance
// strictly forward; StateFailed and StateDone are terminal.
type RunState int

const (
	// StateIdle is the initial state before any terminal operation runs.
	StateIdle RunState = iota
	// StateRecognizing means word recognition (or word intake) is underway.
	StateRecognizing
	// StateRegionDetected means the table region has been located.
	StateRegionDetected
	// StateRowsGrouped means in-region words have been grouped into rows.
	StateRowsGrouped
	// StateClassified means rows have been classified into line items.
	StateClassified
	// StateDone means the run completed and a result was produced.
	StateDone
	// StateFailed means the run stopped on an error. Failed is terminal;
	// a new Extractor is required to retry.
	StateFailed
)

// String returns the state name.
func (s RunState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRecognizing:
		return "recognizing"
	case StateRegionDetected:
		return "region-detected"
	case StateRowsGrouped:
		return "rows-grouped"
	case StateClassified:
		return "classified"
	case StateDone:
		return "done"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Terminal reports whether the state is final.
func (s RunState) Terminal() bool {
	return s == StateDone || s == StateFailed
}
