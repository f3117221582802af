package dto

// ImportRequest carries the caller-configurable options of an import run.
type ImportRequest struct {
	// IgnoreErrors makes a run with failed lines still commit its successful
	// lines; when false any failure discards all staged writes of the run.
	IgnoreErrors bool `form:"ignoreErrors"`
}

// ImportResult is the outcome of a CNAB import run.
type ImportResult struct {
	TotalLines   int      `json:"totalLines"`   // Non-blank lines found in the file
	ValidLines   int      `json:"validLines"`   // Lines that became transactions
	InvalidLines int      `json:"invalidLines"` // Lines that failed
	Errors       []string `json:"errors"`       // One entry per failed line or group, in order
	IsSuccess    bool     `json:"isSuccess"`    // True when the run committed
}
