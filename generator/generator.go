// Package generator runs a generation pass over the configured modules.
//
// A pass has two phases. Plan extracts and renders every module without
// touching the file system; a configuration or source error aborts there,
// so nothing is written. Apply then writes module by module, and a write
// failure affects only its own module.
package generator

import (
	"context"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/teranos/enumgen/config"
	"github.com/teranos/enumgen/emit"
	"github.com/teranos/enumgen/enumfmt"
	"github.com/teranos/enumgen/enumscan"
	"github.com/teranos/enumgen/errors"
	"github.com/teranos/enumgen/logger"
	"github.com/teranos/enumgen/sourcefs"
)

// Generator holds everything a pass needs. Paths in Modules are absolute.
type Generator struct {
	FS       sourcefs.FS
	Settings *config.Settings
	Modules  []config.Module
	Emitter  *emit.Emitter
}

// New creates a Generator writing through fsys with the wall clock
func New(fsys sourcefs.FS, settings *config.Settings, modules []config.Module) *Generator {
	return &Generator{
		FS:       fsys,
		Settings: settings,
		Modules:  modules,
		Emitter:  emit.New(fsys),
	}
}

// Select returns a Generator restricted to the named modules, in
// configuration order. Unknown names are an ErrNotFound.
func (g *Generator) Select(names ...string) (*Generator, error) {
	if len(names) == 0 {
		return g, nil
	}
	wanted := make(map[string]bool, len(names))
	for _, name := range names {
		wanted[name] = true
	}

	var modules []config.Module
	for _, m := range g.Modules {
		if wanted[m.Name] {
			modules = append(modules, m)
			delete(wanted, m.Name)
		}
	}
	if len(wanted) > 0 {
		unknown := make([]string, 0, len(wanted))
		for name := range wanted {
			unknown = append(unknown, name)
		}
		sort.Strings(unknown)
		return nil, errors.WithHint(
			errors.Mark(errors.Newf("modules not configured for generation: %s", strings.Join(unknown, ", ")), errors.ErrNotFound),
			"run 'enumgen modules' to list generating modules")
	}

	selected := *g
	selected.Modules = modules
	return &selected, nil
}

// OutputPath is where module m's generated file goes
func (g *Generator) OutputPath(m config.Module) string {
	return filepath.Join(m.OutputDir, g.Settings.OutputName)
}

// Planned is one module's rendered output
type Planned struct {
	Module config.Module
	Enums  int
	File   emit.File
	Err    error // output-side failure found while planning, fatal for this module only
}

// Plan is the rendered output of every module
type Plan struct {
	Files []Planned
}

// Plan extracts and renders all modules. Nothing is written.
func (g *Generator) Plan(ctx context.Context) (*Plan, error) {
	plan := &Plan{}
	for _, m := range g.Modules {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		enums, err := enumscan.Extract(g.FS, m.Root, g.Settings.SourceExt)
		if err != nil {
			return nil, errors.Wrapf(err, "module %s", m.Name)
		}

		header := emit.Header{
			FileName: g.Settings.OutputName,
			Project:  g.Settings.Header.Project,
			Holder:   g.Settings.Header.Holder,
			Year:     g.Settings.Header.Year,
		}
		file, err := g.Emitter.Prepare(g.OutputPath(m), header, enumfmt.Format(enums))

		logger.Debugw("Planned module",
			logger.FieldModule, m.Name,
			logger.FieldCount, len(enums),
			logger.FieldPath, file.Path)

		plan.Files = append(plan.Files, Planned{Module: m, Enums: len(enums), File: file, Err: err})
	}
	return plan, nil
}

// Apply writes every planned file whose content changed. All modules are
// attempted; failures are combined into the returned error.
func (g *Generator) Apply(ctx context.Context, plan *Plan) (*Result, error) {
	result := &Result{}
	var combined error

	for _, p := range plan.Files {
		if err := ctx.Err(); err != nil {
			return result, errors.CombineErrors(combined, err)
		}

		r := ModuleResult{Module: p.Module.Name, Path: p.File.Path, Enums: p.Enums}
		switch {
		case p.Err != nil:
			r.Status, r.Err = StatusFailed, p.Err
		case !p.File.Changed():
			r.Status = StatusUnchanged
		default:
			r.Status = StatusUpdated
			if !p.File.Exists {
				r.Status = StatusCreated
			}
			if err := g.Emitter.Write(p.File); err != nil {
				r.Status, r.Err = StatusFailed, errors.Wrapf(err, "module %s", p.Module.Name)
			}
		}

		if r.Err != nil {
			logger.Errorw("Module failed",
				logger.FieldModule, r.Module,
				logger.FieldPath, r.Path,
				logger.FieldError, r.Err)
			combined = errors.CombineErrors(combined, r.Err)
		} else {
			logger.Infow("Module generated",
				logger.FieldModule, r.Module,
				logger.FieldStatus, string(r.Status),
				logger.FieldCount, r.Enums)
		}
		result.Modules = append(result.Modules, r)
	}
	return result, combined
}

// Run is Plan followed by Apply
func (g *Generator) Run(ctx context.Context) (*Result, error) {
	start := time.Now()

	plan, err := g.Plan(ctx)
	if err != nil {
		return nil, err
	}
	result, err := g.Apply(ctx, plan)

	logger.Debugw("Generation pass finished",
		logger.FieldCount, len(result.Modules),
		logger.FieldDurationMS, time.Since(start).Milliseconds())
	return result, err
}
