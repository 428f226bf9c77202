// Package models defines the value types produced by a corpus analysis run.
package models

// RankEntry is one row of the descending-frequency table.
type RankEntry struct {
	Rank        int     `json:"rank" yaml:"rank"`
	Word        string  `json:"word" yaml:"word"`
	Count       int     `json:"count" yaml:"count"`
	Freq        float64 `json:"freq" yaml:"freq"`               // count / total_words
	Theoretical float64 `json:"theoretical" yaml:"theoretical"` // c_opt / rank
}

// Result holds the full Zipf fit for a single document. Results are value
// objects: computed once per analysis call and never mutated afterwards.
type Result struct {
	Name        string      `json:"name" yaml:"name"`
	Language    string      `json:"language,omitempty" yaml:"language,omitempty"`
	Encoding    string      `json:"encoding,omitempty" yaml:"encoding,omitempty"`
	TotalWords  int         `json:"total_words" yaml:"total_words"`
	UniqueWords int         `json:"unique_words" yaml:"unique_words"`
	Entries     []RankEntry `json:"entries" yaml:"entries"`
	CMean       float64     `json:"c_mean" yaml:"c_mean"`
	COpt        float64     `json:"c_opt" yaml:"c_opt"`
	MSE         float64     `json:"mse" yaml:"mse"`
}

// TopWords returns the first k rank entries for reporting.
func (r *Result) TopWords(k int) []RankEntry {
	if k > len(r.Entries) {
		k = len(r.Entries)
	}
	return r.Entries[:k]
}

// Comparison pairs the fits of two named documents. It presents both triples
// side by side; judging which document fits Zipf's law better is left to the
// reader of the report.
type Comparison struct {
	First  *Result `json:"first" yaml:"first"`
	Second *Result `json:"second" yaml:"second"`
}

// CorpusReport is the outcome of analyzing a document collection. Failed maps
// document name to the error text for documents skipped under the isolating
// failure policy. Aggregate, when present, is the fit over the merged counts
// of every successfully analyzed document.
type CorpusReport struct {
	Documents map[string]*Result `json:"documents" yaml:"documents"`
	Failed    map[string]string  `json:"failed,omitempty" yaml:"failed,omitempty"`
	Aggregate *Result            `json:"aggregate,omitempty" yaml:"aggregate,omitempty"`
}

// Names returns the successfully analyzed document names in no particular
// order; callers sort for deterministic output.
func (cr *CorpusReport) Names() []string {
	names := make([]string, 0, len(cr.Documents))
	for name := range cr.Documents {
		names = append(names, name)
	}
	return names
}
