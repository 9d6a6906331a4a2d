package prompt

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path"
	"path/filepath"
	"strings"
	"text/template"
)

//go:embed library
var libraryFS embed.FS

// LoadEmbedded registers the prompts compiled into the binary.
func LoadEmbedded(r *Registry) error {
	sub, err := fs.Sub(libraryFS, "library")
	if err != nil {
		return err
	}
	return loadPrompts(r, sub)
}

// LoadFromDirectory loads prompts from a directory structure into the global
// registry. Entries replace embedded prompts with the same ID.
// Expected structure:
//
//	baseDir/
//	  prompts/
//	    category1/
//	      prompt1.json
func LoadFromDirectory(baseDir string) error {
	return LoadDirectory(Get(), baseDir)
}

// LoadDirectory is LoadFromDirectory for an explicit registry.
func LoadDirectory(r *Registry, baseDir string) error {
	promptDir := filepath.Join(baseDir, "prompts")
	if _, err := os.Stat(promptDir); os.IsNotExist(err) {
		return fmt.Errorf("prompts directory not found: %s", promptDir)
	}

	before := r.Count()
	if err := loadPrompts(r, os.DirFS(promptDir)); err != nil {
		return fmt.Errorf("failed to load prompts: %w", err)
	}

	log.Printf("[prompt.Loader] Loaded prompts from %s (%d -> %d registered)\n", baseDir, before, r.Count())
	return nil
}

// loadPrompts recursively loads all .json files from fsys
func loadPrompts(r *Registry, fsys fs.FS) error {
	return fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		// Skip directories and non-JSON files
		if d.IsDir() || path.Ext(p) != ".json" {
			return nil
		}

		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", p, err)
		}

		var pt PromptTemplate
		if err := json.Unmarshal(data, &pt); err != nil {
			return fmt.Errorf("failed to parse %s: %w", p, err)
		}

		// Auto-generate ID from path if not specified
		if pt.ID == "" {
			pt.ID = generateIDFromPath(p)
		}

		// Auto-detect category from folder name if not specified
		if pt.Category == "" {
			pt.Category = detectCategory(p)
		}

		if _, err := parseTemplate(&pt); err != nil {
			return fmt.Errorf("invalid template in %s: %w", p, err)
		}

		if err := r.Register(&pt); err != nil {
			return fmt.Errorf("failed to register %s: %w", pt.ID, err)
		}

		return nil
	})
}

// generateIDFromPath creates a prompt ID from a slash-separated relative path
// e.g., "vqa/visual_qa.json" -> "vqa.visual_qa"
func generateIDFromPath(p string) string {
	p = strings.TrimSuffix(p, ".json")
	return strings.ReplaceAll(p, "/", ".")
}

// detectCategory extracts the category from the folder structure
func detectCategory(p string) string {
	parts := strings.Split(p, "/")
	if len(parts) > 1 {
		return parts[0]
	}
	return "default"
}

func parseTemplate(pt *PromptTemplate) (*template.Template, error) {
	return template.New(pt.ID).Option("missingkey=error").Parse(pt.UserPromptTmpl)
}

// RenderUserPrompt executes the prompt template with the given context.
// Declared variables missing from ctx take their default; any other unknown
// key is an error.
func RenderUserPrompt(pt *PromptTemplate, ctx *PromptExecutionContext) (string, error) {
	if pt.UserPromptTmpl == "" {
		return "", nil
	}

	tmpl, err := parseTemplate(pt)
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}

	ctx.applyDefaults(pt)

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, ctx.Variables); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}
