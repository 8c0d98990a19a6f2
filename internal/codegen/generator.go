// Package codegen produces code snippets tailored to a predicted intent and
// the user's learned style preferences. Generated snippets are Python, the
// language of the workflows the service observes.
package codegen

import (
	"fmt"
	"strings"
	"sync"
	"text/template"
)

// Request carries the details a template can substitute into the snippet.
// Every field has a sensible default; callers fill only what they know.
type Request struct {
	Intent       string   `json:"intent"`
	FilePath     string   `json:"file_path,omitempty"`
	FileType     string   `json:"file_type,omitempty"`
	URL          string   `json:"url,omitempty"`
	Auth         bool     `json:"auth,omitempty"`
	Filename     string   `json:"filename,omitempty"`
	ContentType  string   `json:"content_type,omitempty"`
	FunctionName string   `json:"function_name,omitempty"`
	Description  string   `json:"description,omitempty"`
	Operations   []string `json:"operations,omitempty"`
}

// Generator renders snippet templates keyed by intent.
type Generator struct {
	mu        sync.RWMutex
	templates map[string]*template.Template
	style     Style
}

// NewGenerator returns a generator with the built-in intent templates and
// default style preferences.
func NewGenerator() *Generator {
	g := &Generator{
		templates: make(map[string]*template.Template),
		style:     defaultStyle(),
	}
	for intent, text := range builtinTemplates {
		g.templates[intent] = template.Must(template.New(intent).Parse(text))
	}
	return g
}

// Intents lists the intents the generator has templates for.
func (g *Generator) Intents() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	intents := make([]string, 0, len(g.templates))
	for intent := range g.templates {
		intents = append(intents, intent)
	}
	return intents
}

// Generate renders the snippet for the request's intent. An intent with no
// template yields a placeholder comment rather than an error so callers can
// always show something.
func (g *Generator) Generate(req Request) (string, error) {
	req = withDefaults(req)

	g.mu.RLock()
	tmpl, ok := g.templates[req.Intent]
	g.mu.RUnlock()

	if !ok {
		return fmt.Sprintf("# No template for intent: %s\n", req.Intent), nil
	}

	var buf strings.Builder
	if err := tmpl.Execute(&buf, templateData(req)); err != nil {
		return "", fmt.Errorf("render %s template: %w", req.Intent, err)
	}
	return buf.String(), nil
}

type data struct {
	Request
	Loader    string
	HasClean  bool
	HasXform  bool
	JSONStyle bool
}

var loaders = map[string]string{
	"csv":     "pd.read_csv",
	"json":    "pd.read_json",
	"excel":   "pd.read_excel",
	"parquet": "pd.read_parquet",
}

func templateData(req Request) data {
	loader, ok := loaders[req.FileType]
	if !ok {
		loader = "pd.read_csv"
	}
	d := data{
		Request:   req,
		Loader:    loader,
		JSONStyle: req.ContentType == "json",
	}
	for _, op := range req.Operations {
		switch op {
		case "clean":
			d.HasClean = true
		case "transform":
			d.HasXform = true
		}
	}
	return d
}

func withDefaults(req Request) Request {
	if req.FilePath == "" {
		req.FilePath = "data.csv"
	}
	if req.FileType == "" {
		req.FileType = "csv"
	}
	if req.URL == "" {
		req.URL = "https://api.example.com/data"
	}
	if req.Filename == "" {
		req.Filename = "output.txt"
	}
	if req.ContentType == "" {
		req.ContentType = "text"
	}
	if req.FunctionName == "" {
		req.FunctionName = "my_function"
	}
	if req.Description == "" {
		req.Description = "Function description"
	}
	if len(req.Operations) == 0 {
		req.Operations = []string{"clean", "transform"}
	}
	return req
}
