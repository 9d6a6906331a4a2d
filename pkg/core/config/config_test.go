package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoadDefaultPathMissing(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load(DefaultPath)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Roots["chinese"] != "/path/to/data/Chinese" {
		t.Errorf("expected default chinese root, got %q", cfg.Roots["chinese"])
	}
}

func TestLoadExplicitPathMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); !os.IsNotExist(err) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

func TestLoadFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vqa.yaml")
	content := `roots:
  Chinese: /data/zh
  english: /data/en
cases_path: /data/test.json
prompt_dir: /data/library
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("VQA_ROOT_ENGLISH", "/mnt/en")
	t.Setenv(EnvLenientJSON, "true")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	want := Config{
		Roots: map[string]string{
			"chinese": "/data/zh",
			"english": "/mnt/en",
		},
		CasesPath:   "/data/test.json",
		PromptDir:   "/data/library",
		LenientJSON: true,
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vqa.yaml")
	if err := os.WriteFile(path, []byte("roots: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestApplyEnvBadBool(t *testing.T) {
	cfg := Default()
	if err := cfg.applyEnv([]string{EnvLenientJSON + "=maybe"}); err == nil {
		t.Error("expected error for invalid boolean")
	}
}

func TestApplyEnvIgnoresBarePrefix(t *testing.T) {
	cfg := Default()
	if err := cfg.applyEnv([]string{EnvRootPrefix + "=/x", "UNRELATED=1"}); err != nil {
		t.Fatal(err)
	}
	if len(cfg.Roots) != 1 {
		t.Errorf("unexpected roots: %v", cfg.Roots)
	}
}

// chdir changes the working directory for the duration of the test,
// mirroring testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatalf("restore working directory: %v", err)
		}
	})
}
