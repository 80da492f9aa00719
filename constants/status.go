package constants

// JobStatus is the canonical status for rows in scan_jobs.
type JobStatus string

// Stable values (store these exact strings in DB).
const (
	JobStatusQueued    JobStatus = "QUEUED"     // queued for processing
	JobStatusRunning   JobStatus = "RUNNING"    // in progress
	JobStatusDetectOK  JobStatus = "DETECT_OK"  // stage 1 completed (label localized, or advisory skip)
	JobStatusOCROK     JobStatus = "OCR_OK"     // stage 2 completed (text recognized)
	JobStatusExtractOK JobStatus = "EXTRACT_OK" // stage 3 completed (fields extracted)
	JobStatusFailed    JobStatus = "FAILED"     // terminal failure
)

// DrinkingStatus classifies where the current year sits relative to a
// wine's drinking window.
type DrinkingStatus string

const (
	StatusReady       DrinkingStatus = "READY"
	StatusApproaching DrinkingStatus = "APPROACHING"
	StatusTooYoung    DrinkingStatus = "TOO_YOUNG"
	StatusOverdue     DrinkingStatus = "OVERDUE"
	StatusUnknown     DrinkingStatus = "UNKNOWN"
)

func (s DrinkingStatus) DisplayName() string {
	switch s {
	case StatusReady:
		return "Redo att dricka"
	case StatusApproaching:
		return "Nästan redo"
	case StatusTooYoung:
		return "För ung"
	case StatusOverdue:
		return "Drick nu!"
	default:
		return "Okänd"
	}
}

// ColorHex is the fixed UI color code for each status.
func (s DrinkingStatus) ColorHex() string {
	switch s {
	case StatusReady:
		return "#4CAF50"
	case StatusApproaching:
		return "#FFC107"
	case StatusTooYoung:
		return "#2196F3"
	case StatusOverdue:
		return "#F44336"
	default:
		return "#9E9E9E"
	}
}

// PairingQuality is the ordered quality grade for a food pairing,
// EXCELLENT > VERY_GOOD > GOOD > FAIR.
type PairingQuality string

const (
	PairingExcellent PairingQuality = "EXCELLENT"
	PairingVeryGood  PairingQuality = "VERY_GOOD"
	PairingGood      PairingQuality = "GOOD"
	PairingFair      PairingQuality = "FAIR"
)

func (q PairingQuality) DisplayName() string {
	switch q {
	case PairingExcellent:
		return "Perfekt"
	case PairingVeryGood:
		return "Mycket bra"
	case PairingGood:
		return "Bra"
	default:
		return "OK"
	}
}

func (q PairingQuality) Stars() string {
	switch q {
	case PairingExcellent:
		return "★★★★★"
	case PairingVeryGood:
		return "★★★★☆"
	case PairingGood:
		return "★★★☆☆"
	default:
		return "★★☆☆☆"
	}
}
