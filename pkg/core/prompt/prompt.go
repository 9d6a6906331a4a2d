// Package prompt provides the prompt library for visual QA over company
// reports. Prompts are JSON documents compiled into the binary and can be
// overridden at runtime from a directory, so wording changes need no code
// changes.
package prompt

// PromptTemplate represents a reusable prompt with metadata
type PromptTemplate struct {
	ID             string           `json:"id"`                   // Unique identifier (e.g., "vqa.visual_qa")
	Name           string           `json:"name"`                 // Human-readable name
	Category       string           `json:"category"`             // Category, taken from the folder when omitted
	Description    string           `json:"description"`          // Description of prompt purpose
	UserPromptTmpl string           `json:"user_prompt_template"` // Go template for the prompt body
	Variables      []PromptVariable `json:"variables"`            // Variables used in template
	Version        string           `json:"version"`              // Version for tracking changes
}

// PromptVariable defines a variable used in a prompt template
type PromptVariable struct {
	Name        string `json:"name"`        // Variable name (e.g., "Topic")
	Type        string `json:"type"`        // Type: string, int, float, array, object
	Description string `json:"description"` // What this variable represents
	Required    bool   `json:"required"`    // Whether this variable is required
	Default     string `json:"default"`     // Default value if not provided
}

// PromptExecutionContext holds runtime values for prompt execution
type PromptExecutionContext struct {
	Variables map[string]interface{} // Key-value pairs for template substitution
}

// NewContext creates a new execution context
func NewContext() *PromptExecutionContext {
	return &PromptExecutionContext{
		Variables: make(map[string]interface{}),
	}
}

// Set adds a variable to the context
func (c *PromptExecutionContext) Set(key string, value interface{}) *PromptExecutionContext {
	c.Variables[key] = value
	return c
}

// applyDefaults fills declared variables the caller left unset.
func (c *PromptExecutionContext) applyDefaults(pt *PromptTemplate) {
	for _, v := range pt.Variables {
		if _, ok := c.Variables[v.Name]; !ok {
			c.Variables[v.Name] = v.Default
		}
	}
}

// Library IDs for the visual QA prompts
const (
	JudgmentQueryID = "vqa.judgment_query"
	VisualQAID      = "vqa.visual_qa"
)
