package interp

import (
	"os"
	"testing"

	"gopkg.in/yaml.v3"

	"ceval/pkg/compiler"
)

// fixtureFile is the layout of testdata/eval.yaml.
type fixtureFile struct {
	Tests []fixture `yaml:"tests"`
}

type fixture struct {
	Name     string   `yaml:"name"`
	Source   string   `yaml:"source"`
	Prints   []string `yaml:"prints"`
	Warnings int      `yaml:"warnings,omitempty"`
}

func TestEvalYAML(t *testing.T) {
	data, err := os.ReadFile("testdata/eval.yaml")
	if err != nil {
		t.Fatalf("failed to read eval.yaml: %v", err)
	}

	var file fixtureFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		t.Fatalf("failed to parse eval.yaml: %v", err)
	}
	if len(file.Tests) == 0 {
		t.Fatal("eval.yaml has no tests")
	}

	for _, tc := range file.Tests {
		t.Run(tc.Name, func(t *testing.T) {
			prog, lexWarnings, err := compiler.Compile(tc.Source)
			if err != nil {
				t.Fatalf("Compile failed: %v", err)
			}
			res, err := New(quiet()).Run(prog)
			if err != nil {
				t.Fatalf("Run failed: %v", err)
			}

			var got []string
			for _, v := range res.Prints {
				got = append(got, v.String())
			}
			if len(got) != len(tc.Prints) {
				t.Fatalf("prints: got %v, want %v", got, tc.Prints)
			}
			for i := range got {
				if got[i] != tc.Prints[i] {
					t.Errorf("print %d: got %s, want %s", i, got[i], tc.Prints[i])
				}
			}
			if n := len(lexWarnings) + len(res.Warnings); n != tc.Warnings {
				t.Errorf("warnings: got %d, want %d", n, tc.Warnings)
			}
		})
	}
}
