package rollcall

import (
	"fmt"
	"os"

	"github.com/rollcall-go/rollcall/attendance"
	"github.com/rollcall-go/rollcall/chart"
	"github.com/rollcall-go/rollcall/model"
	"github.com/rollcall-go/rollcall/reader"
	"github.com/rollcall-go/rollcall/tables"
)

// Pipeline provides a fluent interface for generating attendance reports
// from PDFs. Each configuration method returns a new Pipeline instance,
// making it safe for concurrent use and allowing method chaining. Distinct
// documents may be processed in parallel as long as their chart output paths
// differ; a pipeline holds no shared state.
type Pipeline struct {
	filename string
	data     []byte

	reader       *reader.Reader
	ownsReader   bool
	readerOpened bool

	options ReportOptions

	// Error from configuration, surfaced by the terminal operation
	err error

	// Warnings accumulated during processing
	warnings []Warning
}

// Report is the result of one pipeline run.
type Report struct {
	// Text is the fixed-template multi-line report
	Text string

	// ChartPath is the bar chart image written for this run. The caller
	// owns the file and deletes it when done.
	ChartPath string

	// Stats are the per-course statistics backing both outputs, in
	// first-seen course order.
	Stats []attendance.CourseStats
}

// clone creates a shallow copy of the Pipeline with a deep copy of options.
// This ensures immutability - each chain method returns a new instance.
func (p *Pipeline) clone() *Pipeline {
	return &Pipeline{
		filename:     p.filename,
		data:         p.data,
		reader:       p.reader,
		ownsReader:   p.ownsReader,
		readerOpened: p.readerOpened,
		options:      p.options.clone(),
		err:          p.err,
		warnings:     append([]Warning(nil), p.warnings...),
	}
}

// ensureReader opens the reader if not already open.
func (p *Pipeline) ensureReader() error {
	if p.readerOpened {
		return nil
	}

	var (
		r   *reader.Reader
		err error
	)
	if p.filename != "" {
		r, err = reader.Open(p.filename)
	} else {
		r, err = reader.FromBytes(p.data)
	}
	if err != nil {
		return err
	}

	p.reader = r
	p.ownsReader = true
	p.readerOpened = true
	return nil
}

// Close releases resources associated with the Pipeline. It is safe to call
// Close multiple times. Terminal operations close the pipeline implicitly.
func (p *Pipeline) Close() error {
	if p.reader == nil || !p.ownsReader {
		return nil
	}
	err := p.reader.Close()
	p.reader = nil
	p.readerOpened = false
	return err
}

// ============================================================================
// Configuration Methods (return new Pipeline instance)
// ============================================================================

// Pages specifies which pages to process (1-indexed). Multiple calls are
// cumulative.
//
// Example:
//
//	rollcall.Open("attendance.pdf").Pages(1, 2).Report()
func (p *Pipeline) Pages(pages ...int) *Pipeline {
	newP := p.clone()
	newP.options.pages = append(newP.options.pages, pages...)
	return newP
}

// ChartFile sets the path the bar chart is written to. Without it the chart
// goes to DefaultChartPath(os.TempDir()).
func (p *Pipeline) ChartFile(path string) *Pipeline {
	newP := p.clone()
	newP.options.chartPath = path
	return newP
}

// OnUnknownStatus selects the policy for status symbols outside the
// {"P", "A"} vocabulary. The default is attendance.Reject.
func (p *Pipeline) OnUnknownStatus(policy attendance.Policy) *Pipeline {
	newP := p.clone()
	newP.options.policy = policy
	return newP
}

// DetectorConfig overrides the table detection configuration. An invalid
// configuration surfaces as an error from the terminal operation.
func (p *Pipeline) DetectorConfig(config tables.Config) *Pipeline {
	newP := p.clone()
	if err := tables.NewDetector().Configure(config); err != nil {
		newP.err = err
		return newP
	}
	newP.options.detector = config
	return newP
}

// ============================================================================
// Terminal Operations (execute the pipeline and return results)
// ============================================================================

// Tables extracts the raw per-page tables from the configured pages. This is
// a terminal operation that closes the underlying reader. Zero tables is a
// valid result; it becomes an error only when merging.
func (p *Pipeline) Tables() ([]*model.Table, []Warning, error) {
	if p.err != nil {
		return nil, nil, p.err
	}
	if err := p.ensureReader(); err != nil {
		return nil, nil, err
	}
	defer p.Close()

	raw, err := p.collectTables()
	if err != nil {
		return nil, nil, err
	}
	return raw, p.warnings, nil
}

// Merged extracts and merges the per-page tables into one unified table.
// This is a terminal operation that closes the underlying reader.
func (p *Pipeline) Merged() (*model.UnifiedTable, []Warning, error) {
	if p.err != nil {
		return nil, nil, p.err
	}
	if err := p.ensureReader(); err != nil {
		return nil, nil, err
	}
	defer p.Close()

	unified, err := p.collectMerged()
	if err != nil {
		return nil, nil, err
	}
	return unified, p.warnings, nil
}

// Stats extracts, merges, and aggregates the document into per-course
// statistics. This is a terminal operation that closes the underlying
// reader.
func (p *Pipeline) Stats() ([]attendance.CourseStats, []Warning, error) {
	if p.err != nil {
		return nil, nil, p.err
	}
	if err := p.ensureReader(); err != nil {
		return nil, nil, err
	}
	defer p.Close()

	stats, err := p.collectStats()
	if err != nil {
		return nil, nil, err
	}
	return stats, p.warnings, nil
}

// Report runs the full pipeline: extract tables, merge them, aggregate
// per-course statistics, format the text report, and render the bar chart.
// This is a terminal operation that closes the underlying reader.
//
// On success the chart file exists at Report.ChartPath and belongs to the
// caller. On error no partial report is returned.
func (p *Pipeline) Report() (Report, []Warning, error) {
	if p.err != nil {
		return Report{}, nil, p.err
	}
	if err := p.ensureReader(); err != nil {
		return Report{}, nil, err
	}
	defer p.Close()

	stats, err := p.collectStats()
	if err != nil {
		return Report{}, nil, err
	}

	chartPath := p.options.chartPath
	if chartPath == "" {
		chartPath = DefaultChartPath(os.TempDir())
	}
	if err := chart.Render(stats, chartPath); err != nil {
		return Report{}, nil, err
	}

	return Report{
		Text:      attendance.FormatReport(stats),
		ChartPath: chartPath,
		Stats:     stats,
	}, p.warnings, nil
}

// ============================================================================
// Internal pipeline stages
// ============================================================================

// resolvePages returns the 1-indexed pages to process.
func (p *Pipeline) resolvePages() ([]int, error) {
	count := p.reader.PageCount()

	if len(p.options.pages) == 0 {
		all := make([]int, count)
		for i := range all {
			all[i] = i + 1
		}
		return all, nil
	}

	pages := make([]int, 0, len(p.options.pages))
	for _, n := range p.options.pages {
		if n < 1 || n > count {
			return nil, fmt.Errorf("rollcall: page %d out of range 1..%d", n, count)
		}
		pages = append(pages, n)
	}
	return pages, nil
}

// collectTables runs detection over the selected pages. Pages that cannot be
// read or hold no text produce warnings, not errors; a document-level parse
// failure has already been caught by ensureReader.
func (p *Pipeline) collectTables() ([]*model.Table, error) {
	pageNums, err := p.resolvePages()
	if err != nil {
		return nil, err
	}

	detector := tables.NewDetector()
	if err := detector.Configure(p.options.detector); err != nil {
		return nil, err
	}

	var raw []*model.Table
	for _, n := range pageNums {
		fragments, err := p.reader.PageFragments(n)
		if err != nil {
			p.warn(n, "unreadable page content, skipped")
			continue
		}
		if len(fragments) == 0 {
			p.warn(n, "no text content")
			continue
		}
		raw = append(raw, detector.Detect(n, fragments)...)
	}
	return raw, nil
}

// collectMerged extracts and merges, recording row-repair warnings.
func (p *Pipeline) collectMerged() (*model.UnifiedTable, error) {
	raw, err := p.collectTables()
	if err != nil {
		return nil, err
	}

	unified, stats, err := tables.Merge(raw)
	if err != nil {
		return nil, err
	}
	if stats.PaddedRows > 0 {
		p.warn(0, fmt.Sprintf("%d short rows padded during merge", stats.PaddedRows))
	}
	if stats.TruncatedRows > 0 {
		p.warn(0, fmt.Sprintf("%d long rows truncated during merge", stats.TruncatedRows))
	}
	if stats.DroppedColumns > 0 {
		p.warn(0, fmt.Sprintf("%d unaligned columns dropped during merge", stats.DroppedColumns))
	}
	return unified, nil
}

// collectStats merges and aggregates, recording skipped-row warnings.
func (p *Pipeline) collectStats() ([]attendance.CourseStats, error) {
	unified, err := p.collectMerged()
	if err != nil {
		return nil, err
	}

	stats, skipped, err := attendance.Aggregate(unified, p.options.policy)
	if err != nil {
		return nil, err
	}
	if skipped > 0 {
		p.warn(0, fmt.Sprintf("%d rows with unknown status skipped", skipped))
	}
	return stats, nil
}

func (p *Pipeline) warn(page int, message string) {
	p.warnings = append(p.warnings, Warning{Page: page, Message: message})
}
