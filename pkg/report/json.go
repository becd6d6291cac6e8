// Package report emits a machine-readable summary of a conversion run,
// the same shape the teacher repo's own pkg/report produces for its
// refactor runs, generalized from "files modified / errors handled" to
// this pass's own counters.
package report

import (
	"encoding/json"
	"io"
	"sort"
	"sync"

	"github.com/langtools/es6to5/pkg/diag"
)

// Data is the JSON report schema.
type Data struct {
	FilesProcessed       []string `json:"files_processed"`
	ClassesLowered       int      `json:"classes_lowered"`
	ForOfLowered         int      `json:"for_of_lowered"`
	RestParamsLowered    int      `json:"rest_params_lowered"`
	SpreadSitesLowered   int      `json:"spread_sites_lowered"`
	ComputedPropsLowered int      `json:"computed_props_lowered"`
	ShorthandsLowered    int      `json:"shorthands_lowered"`
	DiagnosticsEmitted   int      `json:"diagnostics_emitted"`
	NeedsRuntime         bool     `json:"needs_runtime"`
}

// Reporter accumulates Data across a run. It is safe for concurrent
// use, matching the mutex-guarded accumulator idiom the teacher uses
// for its own Reporter.
type Reporter struct {
	mu      sync.Mutex
	data    Data
	fileSet map[string]struct{}
}

// New creates an empty Reporter.
func New() *Reporter {
	return &Reporter{
		fileSet: make(map[string]struct{}),
		data:    Data{FilesProcessed: []string{}},
	}
}

// AddFile records a file path as processed, ignoring duplicates.
func (r *Reporter) AddFile(path string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.fileSet[path]; !exists {
		r.fileSet[path] = struct{}{}
		r.data.FilesProcessed = append(r.data.FilesProcessed, path)
	}
}

func (r *Reporter) IncClasses()       { r.inc(&r.data.ClassesLowered) }
func (r *Reporter) IncForOf()         { r.inc(&r.data.ForOfLowered) }
func (r *Reporter) IncRestParams()    { r.inc(&r.data.RestParamsLowered) }
func (r *Reporter) IncSpreadSites()   { r.inc(&r.data.SpreadSitesLowered) }
func (r *Reporter) IncComputedProps() { r.inc(&r.data.ComputedPropsLowered) }
func (r *Reporter) IncShorthands()    { r.inc(&r.data.ShorthandsLowered) }

func (r *Reporter) inc(counter *int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	*counter++
}

// SetNeedsRuntime records whether the run required the $jscomp runtime
// helpers.
func (r *Reporter) SetNeedsRuntime(v bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data.NeedsRuntime = r.data.NeedsRuntime || v
}

// AddDiagnostics records the number of diagnostics a sink collected
// during one file's conversion.
func (r *Reporter) AddDiagnostics(diags []diag.Diagnostic) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data.DiagnosticsEmitted += len(diags)
}

// WriteJSON serializes the collected statistics to w, sorting the file
// list first for deterministic output.
func (r *Reporter) WriteJSON(w io.Writer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	sort.Strings(r.data.FilesProcessed)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r.data)
}

// GetData returns a copy of the internal data, safe to mutate.
func (r *Reporter) GetData() Data {
	r.mu.Lock()
	defer r.mu.Unlock()
	files := make([]string, len(r.data.FilesProcessed))
	copy(files, r.data.FilesProcessed)
	sort.Strings(files)
	d := r.data
	d.FilesProcessed = files
	return d
}
