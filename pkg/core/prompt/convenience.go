package prompt

import "report_vqa/pkg/models"

// Convenience functions backed by the global registry

// Default returns a Builder over the global registry
func Default() *Builder {
	return NewBuilder(Get())
}

// AssembleQuery formats the judgment question with the global registry
func AssembleQuery(args QueryArgs) (string, error) {
	return Default().AssembleQuery(args)
}

// AssemblePrompt wraps a question with the global registry
func AssemblePrompt(query string) (string, error) {
	return Default().AssemblePrompt(query)
}

// GeneratePrompt builds the prompt for one case with the global registry
func GeneratePrompt(c models.Case, groups []models.CodeGroup) (string, error) {
	return Default().GeneratePrompt(c, groups)
}

// MustAssemblePrompt is like AssemblePrompt but panics on error
func MustAssemblePrompt(query string) string {
	p, err := AssemblePrompt(query)
	if err != nil {
		panic(err)
	}
	return p
}
