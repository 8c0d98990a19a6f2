package intent

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/fsnotify/fsnotify"
	"gopkg.in/yaml.v3"
)

var (
	// ErrNoRules indicates a rules file contained no usable rules.
	ErrNoRules = errors.New("intent: rules file contains no rules")
)

// rulesFile represents the on-disk rules document. Rule order in the file is
// the evaluation order.
type rulesFile struct {
	Rules []struct {
		Pattern string `yaml:"pattern"`
		Intent  string `yaml:"intent"`
	} `yaml:"rules"`
	Boosters map[string][]string `yaml:"boosters"`
}

// LoadRules parses an ordered rule set from a YAML file. The declaration
// order in the file becomes the first-match-wins evaluation order.
func LoadRules(path string) ([]Rule, map[string][]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read rules file: %w", err)
	}

	var doc rulesFile
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, nil, fmt.Errorf("parse rules file: %w", err)
	}
	if len(doc.Rules) == 0 {
		return nil, nil, ErrNoRules
	}

	rules := make([]Rule, 0, len(doc.Rules))
	for i, r := range doc.Rules {
		if r.Intent == "" {
			return nil, nil, fmt.Errorf("rule %d: missing intent", i)
		}
		re, err := regexp.Compile(r.Pattern)
		if err != nil {
			return nil, nil, fmt.Errorf("rule %d (%s): %w", i, r.Intent, err)
		}
		rules = append(rules, Rule{Pattern: re, Intent: r.Intent})
	}

	return rules, doc.Boosters, nil
}

// LoadRulesInto loads rules from path and installs them on the matcher.
func LoadRulesInto(m *Matcher, path string) error {
	rules, boosters, err := LoadRules(path)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rules = rules
	if boosters != nil {
		m.boosters = boosters
	}
	return nil
}

// RuleWatcher reloads a matcher's rules when the rules file changes on disk.
type RuleWatcher struct {
	matcher *Matcher
	path    string
	watcher *fsnotify.Watcher
	done    chan struct{}
	onError func(error)
}

// WatchRules starts watching path and reloads the matcher's rules on every
// write. onError is called with reload failures (the previous rules stay
// active); pass nil to ignore them.
func WatchRules(m *Matcher, path string, onError func(error)) (*RuleWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	// Watch the directory rather than the file itself: editors that replace
	// the file on save would otherwise drop the watch.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watch rules dir: %w", err)
	}

	rw := &RuleWatcher{
		matcher: m,
		path:    path,
		watcher: watcher,
		done:    make(chan struct{}),
		onError: onError,
	}
	go rw.loop()
	return rw, nil
}

// loop handles filesystem events until Close is called.
func (rw *RuleWatcher) loop() {
	for {
		select {
		case <-rw.done:
			return
		case event, ok := <-rw.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != filepath.Clean(rw.path) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if err := LoadRulesInto(rw.matcher, rw.path); err != nil && rw.onError != nil {
				rw.onError(err)
			}
		case <-rw.watcher.Errors:
			// Keep watching; a missed reload is recoverable on the next write.
		}
	}
}

// Close stops the watcher.
func (rw *RuleWatcher) Close() error {
	close(rw.done)
	return rw.watcher.Close()
}
