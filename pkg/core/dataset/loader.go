// Package dataset reads report metrics and labeled cases from the on-disk
// dataset layout and turns cases into prompts.
//
// Layout:
//
//	{root}/reports/metric/{cid}.json   metrics of one report ([]models.CodeGroup)
//	{cases_path}                       labeled cases ([]models.Case)
package dataset

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"report_vqa/pkg/core/company"
	"report_vqa/pkg/core/config"
	"report_vqa/pkg/core/metric"
	"report_vqa/pkg/core/prompt"
	"report_vqa/pkg/core/utils"
	"report_vqa/pkg/models"
)

// UnsupportedLanguageError is returned for a language with no data root.
type UnsupportedLanguageError struct {
	Language string
}

func (e *UnsupportedLanguageError) Error() string {
	return fmt.Sprintf("unsupported dataset language: %q", e.Language)
}

// Loader resolves dataset files per language and builds prompts for cases.
type Loader struct {
	roots   map[string]string
	lenient bool
	builder *prompt.Builder
}

// NewLoader creates a loader from cfg. Prompts are rendered with builder.
func NewLoader(cfg config.Config, builder *prompt.Builder) *Loader {
	roots := make(map[string]string, len(cfg.Roots))
	for lang, root := range cfg.Roots {
		roots[strings.ToLower(lang)] = root
	}
	return &Loader{roots: roots, lenient: cfg.LenientJSON, builder: builder}
}

// Languages returns the configured languages, sorted.
func (l *Loader) Languages() []string {
	langs := make([]string, 0, len(l.roots))
	for lang := range l.roots {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// DataRoot returns the directory configured for language, ignoring case.
func (l *Loader) DataRoot(language string) (string, error) {
	root, ok := l.roots[strings.ToLower(language)]
	if !ok {
		return "", &UnsupportedLanguageError{Language: language}
	}
	return root, nil
}

// MetricPath returns {root}/reports/metric/{cid}.json for language.
func (l *Loader) MetricPath(language, cid string) (string, error) {
	root, err := l.DataRoot(language)
	if err != nil {
		return "", err
	}
	return filepath.Join(root, "reports", "metric", cid+".json"), nil
}

// LoadMetrics reads the metrics file of report cid. I/O and JSON errors are
// returned as-is.
func (l *Loader) LoadMetrics(language, cid string) ([]models.CodeGroup, error) {
	path, err := l.MetricPath(language, cid)
	if err != nil {
		return nil, err
	}

	var groups []models.CodeGroup
	if err := readJSON(path, &groups, l.lenient); err != nil {
		return nil, err
	}

	if dups := metric.DuplicateSIDs(groups); len(dups) > 0 {
		log.Printf("[dataset.Loader] Warning: %s has duplicate sids %v; first occurrence wins\n", path, dups)
	}
	return groups, nil
}

// LoadPrompt builds the visual QA prompt for c from the metrics of its report.
func (l *Loader) LoadPrompt(language string, c models.Case) (string, error) {
	groups, err := l.LoadMetrics(language, c.CID)
	if err != nil {
		return "", err
	}

	if name, err := company.Resolve(c.CID); err == nil {
		log.Printf("[dataset.Loader] Building prompt for sid %s in %s report\n", c.SID, name)
	} else {
		log.Printf("[dataset.Loader] Warning: %v; building prompt for sid %s anyway\n", err, c.SID)
	}

	return l.builder.GeneratePrompt(c, groups)
}

// LoadCases reads a case-list file.
func (l *Loader) LoadCases(path string) ([]models.Case, error) {
	var cases []models.Case
	if err := readJSON(path, &cases, l.lenient); err != nil {
		return nil, err
	}
	return cases, nil
}

func readJSON(path string, v interface{}, lenient bool) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return err
	}

	if lenient {
		return utils.SmartParse(data, v)
	}
	return utils.DecodeStrict(data, v)
}
