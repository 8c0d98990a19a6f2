package codegen

import (
	"strings"
	"testing"
)

func TestGenerateKnownIntents(t *testing.T) {
	g := NewGenerator()

	tests := []struct {
		name     string
		req      Request
		contains []string
	}{
		{
			name: "data loading picks the right reader",
			req:  Request{Intent: "data_loading", FileType: "json", FilePath: "input.json"},
			contains: []string{
				"pd.read_json",
				`"input.json"`,
			},
		},
		{
			name: "data loading defaults to csv",
			req:  Request{Intent: "data_loading"},
			contains: []string{
				"pd.read_csv",
				`"data.csv"`,
			},
		},
		{
			name: "data processing includes requested operations",
			req:  Request{Intent: "data_processing", Operations: []string{"clean", "transform"}},
			contains: []string{
				"# Clean data",
				"# Transform data",
				"dropna",
			},
		},
		{
			name: "api request with auth",
			req:  Request{Intent: "api_request", URL: "https://svc.internal/items", Auth: true},
			contains: []string{
				"https://svc.internal/items",
				"Bearer YOUR_API_KEY",
			},
		},
		{
			name: "json file creation",
			req:  Request{Intent: "file_creation", ContentType: "json", Filename: "out.json"},
			contains: []string{
				"json.dump",
				`"out.json"`,
			},
		},
		{
			name: "test generation names the function",
			req:  Request{Intent: "testing", FunctionName: "parse_row"},
			contains: []string{
				"def test_parse_row()",
				"parse_row(10, 20)",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, err := g.Generate(tt.req)
			if err != nil {
				t.Fatalf("Generate() error = %v", err)
			}
			for _, want := range tt.contains {
				if !strings.Contains(code, want) {
					t.Errorf("generated code missing %q\n%s", want, code)
				}
			}
		})
	}
}

func TestGenerateUnknownIntent(t *testing.T) {
	g := NewGenerator()

	code, err := g.Generate(Request{Intent: "quantum_teleport"})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if !strings.Contains(code, "# No template for intent: quantum_teleport") {
		t.Errorf("got %q, want a placeholder comment", code)
	}
}

func TestGenerateOmitsUnrequestedOperations(t *testing.T) {
	g := NewGenerator()

	code, err := g.Generate(Request{Intent: "data_processing", Operations: []string{"clean"}})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if !strings.Contains(code, "# Clean data") {
		t.Error("clean section missing")
	}
	if strings.Contains(code, "# Transform data") {
		t.Error("transform section present but not requested")
	}
}

func TestLearnStyle(t *testing.T) {
	g := NewGenerator()

	g.LearnStyle(`
import polars

def loadData(path):
    if path is None:
        return None
    return polars.read_csv(path)

def cleanData(frame):
    return frame
`)

	style := g.Style()
	if style.NamingConvention != "camelCase" {
		t.Errorf("NamingConvention = %q, want camelCase", style.NamingConvention)
	}
	if style.AddTypeHints {
		t.Error("AddTypeHints = true, want false for unannotated sample")
	}
	if style.AddDocstrings {
		t.Error("AddDocstrings = true, want false for undocumented sample")
	}
	if style.ErrorHandling != "if_check" {
		t.Errorf("ErrorHandling = %q, want if_check", style.ErrorHandling)
	}

	found := false
	for _, lib := range style.PreferredLibs {
		if lib == "polars" {
			found = true
		}
	}
	if !found {
		t.Errorf("PreferredLibs = %v, want polars learned", style.PreferredLibs)
	}
}

func TestLearnStyleEmptySampleIsIgnored(t *testing.T) {
	g := NewGenerator()
	before := g.Style()

	g.LearnStyle("   \n\t ")

	after := g.Style()
	if after.NamingConvention != before.NamingConvention || after.ErrorHandling != before.ErrorHandling {
		t.Error("empty sample changed the learned style")
	}
}
