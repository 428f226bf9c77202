// Package corpus orchestrates the document pipeline: load, tokenize, rank,
// fit. Documents are processed independently; under the default failure
// policy one unreadable or empty document never aborts the rest of the run.
package corpus

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"zipfstat/models"
	"zipfstat/pkg/freqrank"
	"zipfstat/pkg/langid"
	"zipfstat/pkg/mapreduce"
	"zipfstat/pkg/stopwords"
	"zipfstat/pkg/textload"
	"zipfstat/pkg/tokenizer"
	"zipfstat/pkg/zipf"
)

// ErrNotFound is returned when a named document is absent from the collection.
var ErrNotFound = errors.New("corpus: document not found")

// FailurePolicy decides what a per-document failure does to a corpus run.
type FailurePolicy int

const (
	// SkipFailed records the failure and continues with the other documents.
	SkipFailed FailurePolicy = iota
	// AbortOnError stops the run at the first failed document.
	AbortOnError
)

// ParsePolicy maps the CLI flag value to a policy.
func ParsePolicy(s string) (FailurePolicy, error) {
	switch s {
	case "skip", "":
		return SkipFailed, nil
	case "abort":
		return AbortOnError, nil
	default:
		return SkipFailed, fmt.Errorf("unknown failure policy %q (want skip or abort)", s)
	}
}

// Analyzer runs the pipeline over named documents.
type Analyzer struct {
	Loader    *textload.Loader
	Stopwords *stopwords.Config
	Detector  *langid.Detector // nil disables language reporting
	TopN      int
	Workers   int // <= 1 means sequential
	OnError   FailurePolicy
	Logger    *slog.Logger
}

// AnalyzeText runs tokenize → rank → fit for one document whose text is
// already decoded.
func (a *Analyzer) AnalyzeText(name, text string) (*models.Result, error) {
	result, _, err := a.analyze(name, text)
	return result, err
}

func (a *Analyzer) analyze(name, text string) (*models.Result, map[string]int, error) {
	tokens := tokenizer.Tokenize(text, a.Stopwords.Resolve(name))
	table := freqrank.Rank(tokens, a.TopN)

	fit, err := zipf.Estimate(table)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", name, err)
	}

	result := &models.Result{
		Name:        name,
		TotalWords:  table.Total,
		UniqueWords: table.Unique,
		CMean:       fit.CMean,
		COpt:        fit.COpt,
		MSE:         fit.MSE,
		Entries:     entries(table, fit),
	}
	if a.Detector != nil {
		result.Language = a.Detector.Detect(text)
	}

	return result, mapreduce.Map(tokens), nil
}

func entries(table freqrank.Table, fit *zipf.Fit) []models.RankEntry {
	out := make([]models.RankEntry, len(table.Entries))
	for i, e := range table.Entries {
		out[i] = models.RankEntry{
			Rank:        e.Rank,
			Word:        e.Word,
			Count:       e.Count,
			Freq:        fit.Freqs[i],
			Theoretical: fit.Theoretical[i],
		}
	}
	return out
}

// loadAndAnalyze runs the full pipeline for one file on disk.
func (a *Analyzer) loadAndAnalyze(dir, name string) (*models.Result, map[string]int, error) {
	text, encName, err := a.Loader.LoadFile(filepath.Join(dir, name))
	if err != nil {
		return nil, nil, err
	}

	result, counts, err := a.analyze(name, text)
	if err != nil {
		return nil, nil, err
	}
	result.Encoding = encName
	return result, counts, nil
}

type job struct {
	name string
}

type outcome struct {
	name   string
	result *models.Result
	counts map[string]int
	err    error
}

// AnalyzeDir analyzes every document in the directory. Iteration order is
// lexicographic by name so runs are reproducible. With Workers > 1 the
// documents are fanned out over a worker pool; results are still collected
// and reported in name order. When aggregate is true the per-document counts
// are merged and fitted as one synthetic "corpus" table.
func (a *Analyzer) AnalyzeDir(dir string, aggregate bool) (*models.CorpusReport, error) {
	names, err := ListDocuments(dir)
	if err != nil {
		return nil, err
	}

	report := &models.CorpusReport{
		Documents: make(map[string]*models.Result, len(names)),
		Failed:    make(map[string]string),
	}
	var perDoc []map[string]int

	handle := func(o outcome) error {
		if o.err != nil {
			a.logger().Error("document analysis failed", "document", o.name, "error", o.err)
			if a.OnError == AbortOnError {
				return o.err
			}
			report.Failed[o.name] = o.err.Error()
			return nil
		}
		a.logger().Info("analyzed document",
			"document", o.name,
			"total_words", o.result.TotalWords,
			"unique_words", o.result.UniqueWords,
			"encoding", o.result.Encoding)
		report.Documents[o.name] = o.result
		perDoc = append(perDoc, o.counts)
		return nil
	}

	if a.Workers > 1 {
		err = a.runPool(dir, names, handle)
	} else {
		for _, name := range names {
			result, counts, aerr := a.loadAndAnalyze(dir, name)
			if err = handle(outcome{name: name, result: result, counts: counts, err: aerr}); err != nil {
				break
			}
		}
	}
	if err != nil {
		return nil, err
	}

	if aggregate && len(perDoc) > 0 {
		agg, aggErr := a.aggregate(perDoc)
		if aggErr != nil {
			return nil, aggErr
		}
		report.Aggregate = agg
	}

	return report, nil
}

// runPool fans the documents out over Workers goroutines. Each task reads one
// document and writes one independent outcome; no state is shared between
// document analyses.
func (a *Analyzer) runPool(dir string, names []string, handle func(outcome) error) error {
	jobs := make(chan job, len(names))
	outcomes := make(chan outcome, len(names))

	var wg sync.WaitGroup
	for w := 0; w < a.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				result, counts, err := a.loadAndAnalyze(dir, j.name)
				outcomes <- outcome{name: j.name, result: result, counts: counts, err: err}
			}
		}()
	}

	for _, name := range names {
		jobs <- job{name: name}
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(outcomes)
	}()

	// Buffer the outcomes so handling happens in deterministic name order
	// regardless of which worker finished first.
	byName := make(map[string]outcome, len(names))
	for o := range outcomes {
		byName[o.name] = o
	}
	for _, name := range names {
		if err := handle(byName[name]); err != nil {
			return err
		}
	}
	return nil
}

// aggregate fits the merged counts of every analyzed document.
func (a *Analyzer) aggregate(perDoc []map[string]int) (*models.Result, error) {
	merged := mapreduce.Reduce(perDoc)
	table := freqrank.FromCounts(merged, a.TopN)

	fit, err := zipf.Estimate(table)
	if err != nil {
		return nil, fmt.Errorf("corpus aggregate: %w", err)
	}

	return &models.Result{
		Name:        "corpus",
		TotalWords:  table.Total,
		UniqueWords: table.Unique,
		CMean:       fit.CMean,
		COpt:        fit.COpt,
		MSE:         fit.MSE,
		Entries:     entries(table, fit),
	}, nil
}

// Compare analyzes exactly two named documents side by side. Both names are
// checked against the collection first: an unknown name fails with ErrNotFound
// before the other document is processed.
func (a *Analyzer) Compare(dir, first, second string) (*models.Comparison, error) {
	names, err := ListDocuments(dir)
	if err != nil {
		return nil, err
	}
	present := make(map[string]bool, len(names))
	for _, name := range names {
		present[name] = true
	}
	for _, name := range []string{first, second} {
		if !present[name] {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
		}
	}

	firstResult, _, err := a.loadAndAnalyze(dir, first)
	if err != nil {
		return nil, err
	}
	secondResult, _, err := a.loadAndAnalyze(dir, second)
	if err != nil {
		return nil, err
	}

	return &models.Comparison{First: firstResult, Second: secondResult}, nil
}

// ListDocuments returns the document file names in the directory, sorted
// lexicographically. Only plain-text and HTML files count as documents.
func ListDocuments(dir string) ([]string, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read corpus directory: %w", err)
	}

	var names []string
	for _, e := range dirEntries {
		if e.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(e.Name())) {
		case ".txt", ".html", ".htm":
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

func (a *Analyzer) logger() *slog.Logger {
	if a.Logger != nil {
		return a.Logger
	}
	return slog.Default()
}
