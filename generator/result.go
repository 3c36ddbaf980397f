package generator

// Status is the outcome for one module
type Status string

const (
	StatusCreated   Status = "created"
	StatusUpdated   Status = "updated"
	StatusUnchanged Status = "unchanged"
	StatusFailed    Status = "failed"
)

// ModuleResult is what happened to one module's output file
type ModuleResult struct {
	Module string `json:"module"`
	Path   string `json:"path"`
	Status Status `json:"status"`
	Enums  int    `json:"enums"`
	Err    error  `json:"-"`
}

// Result collects the module results of one pass, in configuration order
type Result struct {
	Modules []ModuleResult `json:"modules"`
}

// Count returns how many modules ended with status
func (r *Result) Count(status Status) int {
	n := 0
	for _, m := range r.Modules {
		if m.Status == status {
			n++
		}
	}
	return n
}

// Failed reports whether any module failed
func (r *Result) Failed() bool {
	return r.Count(StatusFailed) > 0
}
