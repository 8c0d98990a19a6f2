package codegen

import (
	"regexp"
	"strings"
)

// Style holds the coding preferences learned from a user's own code.
type Style struct {
	ImportsStyle     string   `json:"imports_style"`
	PreferredLibs    []string `json:"preferred_libs"`
	NamingConvention string   `json:"naming_convention"`
	AddTypeHints     bool     `json:"add_type_hints"`
	AddDocstrings    bool     `json:"add_docstrings"`
	ErrorHandling    string   `json:"error_handling"`
}

func defaultStyle() Style {
	return Style{
		ImportsStyle:     "grouped",
		PreferredLibs:    []string{"pandas", "requests", "asyncio"},
		NamingConvention: "snake_case",
		AddTypeHints:     true,
		AddDocstrings:    true,
		ErrorHandling:    "try_except",
	}
}

// Style returns a copy of the current preferences.
func (g *Generator) Style() Style {
	g.mu.RLock()
	defer g.mu.RUnlock()
	style := g.style
	style.PreferredLibs = append([]string(nil), g.style.PreferredLibs...)
	return style
}

var (
	snakeName = regexp.MustCompile(`\bdef ([a-z][a-z0-9_]*_[a-z0-9_]*)\(`)
	camelName = regexp.MustCompile(`\bdef ([a-z][a-zA-Z0-9]*[A-Z][a-zA-Z0-9]*)\(`)
	importLib = regexp.MustCompile(`(?m)^(?:import|from) ([a-zA-Z_][a-zA-Z0-9_]*)`)
	typeHint  = regexp.MustCompile(`def \w+\([^)]*: `)
)

// LearnStyle inspects a sample of the user's code and updates preferences:
// naming convention, type-hint usage, docstring usage, error handling, and
// the libraries they actually import.
func (g *Generator) LearnStyle(sample string) {
	if strings.TrimSpace(sample) == "" {
		return
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	snake := len(snakeName.FindAllString(sample, -1))
	camel := len(camelName.FindAllString(sample, -1))
	if snake > camel {
		g.style.NamingConvention = "snake_case"
	} else if camel > snake {
		g.style.NamingConvention = "camelCase"
	}

	g.style.AddTypeHints = typeHint.MatchString(sample)
	g.style.AddDocstrings = strings.Contains(sample, `"""`)

	if strings.Contains(sample, "try:") {
		g.style.ErrorHandling = "try_except"
	} else if strings.Contains(sample, "if ") && strings.Contains(sample, "is None") {
		g.style.ErrorHandling = "if_check"
	}

	seen := make(map[string]bool, len(g.style.PreferredLibs))
	for _, lib := range g.style.PreferredLibs {
		seen[lib] = true
	}
	for _, match := range importLib.FindAllStringSubmatch(sample, -1) {
		lib := match[1]
		if !seen[lib] {
			g.style.PreferredLibs = append(g.style.PreferredLibs, lib)
			seen[lib] = true
		}
	}
}
