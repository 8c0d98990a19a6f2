// Package intent maps free text to coarse intent labels using ordered
// pattern rules and keyword confidence boosters.
package intent

import (
	"regexp"
	"strings"
	"sync"
)

// IntentUnknown is the sentinel label returned when no rule matches.
// It is a valid terminal outcome, not an error.
const IntentUnknown = "unknown"

const (
	// baseConfidence is the fixed confidence assigned to any rule match.
	baseConfidence = 0.6
	// boosterStep is the confidence added per matched booster keyword.
	boosterStep = 0.1
	// boosterCap is the maximum total confidence added by booster keywords.
	boosterCap = 0.3
	// recentActionBonus is added when the intent appears in recent actions.
	recentActionBonus = 0.1
)

// Rule maps a regular expression to an intent label. Rules are evaluated in
// declaration order and the first match wins; order is a load-bearing
// contract, not an implementation accident.
type Rule struct {
	Pattern *regexp.Regexp
	Intent  string
}

// Matcher classifies free text into intent labels. The zero value is not
// usable; construct with NewMatcher.
type Matcher struct {
	mu       sync.RWMutex
	rules    []Rule
	boosters map[string][]string
}

// NewMatcher creates a Matcher with the built-in rule set and boosters.
func NewMatcher() *Matcher {
	return &Matcher{
		rules:    defaultRules(),
		boosters: defaultBoosters(),
	}
}

// Match evaluates the rules in order against text and returns the intent of
// the first matching rule with the base confidence. When no rule matches it
// returns (IntentUnknown, 0.0).
func (m *Matcher) Match(text string) (string, float64) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, rule := range m.rules {
		if rule.Pattern.MatchString(text) {
			return rule.Intent, baseConfidence
		}
	}
	return IntentUnknown, 0.0
}

// Boost raises base confidence using additional signals: each booster
// keyword found in text adds 0.1 (capped at +0.3 total), and the intent
// appearing in recentActions adds another 0.1. The result is clamped to
// [0, 1].
func (m *Matcher) Boost(intent, text string, base float64, recentActions []string) float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()

	confidence := base

	if keywords, ok := m.boosters[intent]; ok {
		lower := strings.ToLower(text)
		matches := 0
		for _, keyword := range keywords {
			if strings.Contains(lower, keyword) {
				matches++
			}
		}
		boost := float64(matches) * boosterStep
		if boost > boosterCap {
			boost = boosterCap
		}
		confidence += boost
	}

	for _, action := range recentActions {
		if action == intent {
			confidence += recentActionBonus
			break
		}
	}

	if confidence > 1.0 {
		confidence = 1.0
	}
	if confidence < 0.0 {
		confidence = 0.0
	}
	return confidence
}

// Predict combines Match and Boost: it classifies text and, on a match,
// boosts the base confidence with keyword and recent-action signals.
func (m *Matcher) Predict(text string, recentActions []string) (string, float64) {
	matched, base := m.Match(text)
	if matched == IntentUnknown {
		return IntentUnknown, 0.0
	}
	return matched, m.Boost(matched, text, base, recentActions)
}

// Rules returns a copy of the current rule set in evaluation order.
func (m *Matcher) Rules() []Rule {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Rule, len(m.rules))
	copy(out, m.rules)
	return out
}

// SetRules replaces the rule set, preserving the given order.
func (m *Matcher) SetRules(rules []Rule) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rules = rules
}

// defaultRules returns the built-in intent rules. Declaration order is the
// evaluation priority.
func defaultRules() []Rule {
	specs := []struct {
		pattern string
		intent  string
	}{
		// Data work
		{`(?i)(clean|process|transform|parse).{0,20}(data|csv|json|file)`, "data_processing"},
		{`(?i)(load|read|import).{0,20}(data|file|csv|json)`, "data_loading"},
		{`(?i)(analyze|visualize|plot|graph)`, "data_analysis"},

		// API and network
		{`(?i)(call|request|fetch|get).{0,20}(api|endpoint|url)`, "api_request"},
		{`(?i)(post|send|submit).{0,20}(to|data|api)`, "api_post"},

		// File operations
		{`(?i)(create|write|save).{0,20}(file|document)`, "file_creation"},
		{`(?i)(delete|remove).{0,20}(file|folder)`, "file_deletion"},
		{`(?i)(move|copy).{0,20}(file|folder)`, "file_manipulation"},

		// Code work
		{`(?i)(write|create|generate).{0,20}(function|class|code)`, "code_generation"},
		{`(?i)(fix|debug|solve).{0,20}(bug|error|issue)`, "debugging"},
		{`(?i)(refactor|optimize|improve)`, "code_optimization"},

		// Testing and validation
		{`(?i)(test|unit test|integration test)`, "testing"},
		{`(?i)(validate|verify|check)`, "validation"},

		// Shipping
		{`(?i)(deploy|release|publish)`, "deployment"},
		{`(?i)(build|compile|package)`, "build"},

		// Documentation
		{`(?i)(document|explain|comment)`, "documentation"},
		{`(?i)(help|guide|tutorial)`, "help_request"},
	}

	rules := make([]Rule, 0, len(specs))
	for _, s := range specs {
		rules = append(rules, Rule{
			Pattern: regexp.MustCompile(s.pattern),
			Intent:  s.intent,
		})
	}
	return rules
}

// defaultBoosters returns keywords that raise confidence for an intent when
// they appear in the input text.
func defaultBoosters() map[string][]string {
	return map[string][]string{
		"data_processing": {"pandas", "numpy", "clean", "transform"},
		"api_request":     {"requests", "http", "fetch", "endpoint"},
		"code_generation": {"function", "class", "method", "implement"},
		"testing":         {"pytest", "unittest", "test", "assert"},
	}
}
