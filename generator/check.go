package generator

import (
	"context"

	"github.com/teranos/enumgen/emit"
	"github.com/teranos/enumgen/errors"
)

// CheckResult holds the result of comparing generated output with disk
type CheckResult struct {
	UpToDate bool
	Stale    []emit.File // changed or missing, in configuration order
	Checked  int
}

// Check renders every module and compares it byte for byte with the file
// on disk. A missing output file is stale. Nothing is written.
func (g *Generator) Check(ctx context.Context) (*CheckResult, error) {
	plan, err := g.Plan(ctx)
	if err != nil {
		return nil, err
	}

	result := &CheckResult{Checked: len(plan.Files)}
	var combined error
	for _, p := range plan.Files {
		if p.Err != nil {
			combined = errors.CombineErrors(combined, p.Err)
			continue
		}
		if p.File.Changed() {
			result.Stale = append(result.Stale, p.File)
		}
	}
	if combined != nil {
		return nil, combined
	}

	result.UpToDate = len(result.Stale) == 0
	return result, nil
}

// Err returns ErrStale when any file is out of date
func (r *CheckResult) Err() error {
	if r.UpToDate {
		return nil
	}
	return errors.Mark(errors.Newf("%d of %d generated files are out of date", len(r.Stale), r.Checked), errors.ErrStale)
}
