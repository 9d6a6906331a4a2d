package dataset

import (
	"bytes"
	"encoding/json"
	"errors"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"report_vqa/pkg/core/config"
	"report_vqa/pkg/core/metric"
	"report_vqa/pkg/core/prompt"
	"report_vqa/pkg/models"
)

const sampleMetrics = `[{"codes":[{"metrics":[{"sid":"m1","topic":"Revenue","metric":"Net Sales"}]}]}]`

// newTestLoader lays out {root}/reports/metric/{cid}.json for each entry of
// files and returns a loader with "chinese" pointing at root.
func newTestLoader(t *testing.T, files map[string]string, lenient bool) *Loader {
	t.Helper()
	root := t.TempDir()
	metricDir := filepath.Join(root, "reports", "metric")
	if err := os.MkdirAll(metricDir, 0755); err != nil {
		t.Fatal(err)
	}
	for cid, content := range files {
		if err := os.WriteFile(filepath.Join(metricDir, cid+".json"), []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}

	cfg := config.Config{
		Roots:       map[string]string{"Chinese": root},
		LenientJSON: lenient,
	}
	return NewLoader(cfg, prompt.Default())
}

func TestLoadPrompt(t *testing.T) {
	loader := newTestLoader(t, map[string]string{"x": sampleMetrics}, false)
	c := models.Case{SID: "m1", CID: "x", Value: models.NewScalar("100"), Unit: models.NewScalar("USD")}

	got, err := loader.LoadPrompt("chinese", c)
	if err != nil {
		t.Fatalf("LoadPrompt: %v", err)
	}
	for _, want := range []string{"Topic: Revenue", "Metric: Net Sales", "Value: 100", "Unit: USD"} {
		if !strings.Contains(got, want) {
			t.Errorf("expected %q in prompt", want)
		}
	}

	upper, err := loader.LoadPrompt("CHINESE", c)
	if err != nil {
		t.Fatalf("LoadPrompt(CHINESE): %v", err)
	}
	if upper != got {
		t.Error("language lookup should ignore case")
	}
}

func TestLoadPromptLogsUnknownCID(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	loader := newTestLoader(t, map[string]string{"x": sampleMetrics}, false)
	if _, err := loader.LoadPrompt("chinese", models.Case{SID: "m1", CID: "x"}); err != nil {
		t.Fatalf("LoadPrompt: %v", err)
	}
	if out := buf.String(); !strings.Contains(out, `unknown document identifier: "x"`) || !strings.Contains(out, "sid m1") {
		t.Errorf("expected unknown cid warning, got log:\n%s", out)
	}
}

func TestLoadPromptUnsupportedLanguage(t *testing.T) {
	loader := newTestLoader(t, map[string]string{"x": sampleMetrics}, false)

	_, err := loader.LoadPrompt("french", models.Case{SID: "m1", CID: "x"})
	var unsupported *UnsupportedLanguageError
	if !errors.As(err, &unsupported) {
		t.Fatalf("expected UnsupportedLanguageError, got %v", err)
	}
	if unsupported.Language != "french" {
		t.Errorf("expected language 'french', got %q", unsupported.Language)
	}
}

func TestLoadPromptMissingMetric(t *testing.T) {
	loader := newTestLoader(t, map[string]string{"x": sampleMetrics}, false)

	_, err := loader.LoadPrompt("chinese", models.Case{SID: "missing", CID: "x"})
	var notFound *metric.NotFoundError
	if !errors.As(err, &notFound) || notFound.SID != "missing" {
		t.Fatalf("expected NotFoundError for 'missing', got %v", err)
	}
}

func TestLoadPromptMissingFile(t *testing.T) {
	loader := newTestLoader(t, nil, false)

	_, err := loader.LoadPrompt("chinese", models.Case{SID: "m1", CID: "tsmc"})
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
	var pathErr *fs.PathError
	if !errors.As(err, &pathErr) || !strings.HasSuffix(pathErr.Path, filepath.Join("reports", "metric", "tsmc.json")) {
		t.Errorf("unexpected path in error: %v", err)
	}
}

func TestLoadMetricsMalformed(t *testing.T) {
	malformed := `[{"codes":[{"metrics":[{"sid":"m1","topic":"Revenue","metric":"Net Sales",}]}]}]`

	strict := newTestLoader(t, map[string]string{"x": malformed}, false)
	_, err := strict.LoadMetrics("chinese", "x")
	var syntaxErr *json.SyntaxError
	if !errors.As(err, &syntaxErr) {
		t.Fatalf("expected json.SyntaxError, got %T: %v", err, err)
	}

	lenient := newTestLoader(t, map[string]string{"x": malformed}, true)
	groups, err := lenient.LoadMetrics("chinese", "x")
	if err != nil {
		t.Fatalf("lenient LoadMetrics: %v", err)
	}
	if _, ok := metric.Locate(groups, "m1"); !ok {
		t.Error("lenient decode lost the record")
	}
}

func TestLoadCases(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.json")
	content := `[
  {"sid": "m1", "cid": "tsmc", "value": 100, "unit": "USD"},
  {"sid": "m2", "cid": "esun", "value": NaN, "unit": NaN}
]`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	loader := newTestLoader(t, nil, false)
	cases, err := loader.LoadCases(path)
	if err != nil {
		t.Fatalf("LoadCases: %v", err)
	}
	if len(cases) != 2 {
		t.Fatalf("expected 2 cases, got %d", len(cases))
	}
	if cases[0].Value.String() != "100" || cases[0].Unit.String() != "USD" {
		t.Errorf("unexpected first case: %+v", cases[0])
	}
	if !cases[1].Value.IsEmpty() || !cases[1].Unit.IsEmpty() {
		t.Errorf("NaN should decode to empty, got %+v", cases[1])
	}
}

func TestMetricPathAndLanguages(t *testing.T) {
	loader := NewLoader(config.Config{Roots: map[string]string{"chinese": "/data/zh", "English": "/data/en"}}, prompt.Default())

	got, err := loader.MetricPath("Chinese", "tsmc")
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join("/data/zh", "reports", "metric", "tsmc.json"); got != want {
		t.Errorf("expected %s, got %s", want, got)
	}

	langs := loader.Languages()
	if len(langs) != 2 || langs[0] != "chinese" || langs[1] != "english" {
		t.Errorf("unexpected languages: %v", langs)
	}
}

func TestLoadCasesLenientHjson(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.hjson.json")
	content := "[\n  # exported by hand\n  {\n    sid: m1\n    cid: tsmc\n    value: NaN\n    unit: NaN\n  }\n]"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := newTestLoader(t, nil, false).LoadCases(path); err == nil {
		t.Error("strict loader should reject Hjson input")
	}

	cases, err := newTestLoader(t, nil, true).LoadCases(path)
	if err != nil {
		t.Fatalf("LoadCases: %v", err)
	}
	if len(cases) != 1 || cases[0].SID != "m1" || cases[0].CID != "tsmc" {
		t.Fatalf("unexpected cases: %+v", cases)
	}
	if !cases[0].Value.IsEmpty() || !cases[0].Unit.IsEmpty() {
		t.Errorf("NaN should decode to empty, got value=%q unit=%q", cases[0].Value.String(), cases[0].Unit.String())
	}
}
