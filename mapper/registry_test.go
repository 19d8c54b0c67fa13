package mapper

import (
	"fmt"
	"testing"
)

func TestSelect(t *testing.T) {
	tests := []struct {
		languageID string
		fileName   string
		want       Mapper
		ok         bool
	}{
		{"json", "x", JSON{}, true},
		{"jsonc", "x", JSON{}, true},
		{"json5", "x", JSON{}, true},
		{"yaml", "x", YAML{}, true},
		{"yml", "x", YAML{}, true},
		{"csv", "x", CSV{}, true},
		{"tsv", "x", CSV{}, true},
		{"dotenv", "x", Env{}, true},
		{"ini", "x", INI{}, true},
		{"toml", "x", Env{}, true}, // TOML delegates to the line mapper
		{"xml", "x", XML{}, true},
		{"hcl", "x", HCL{}, true},
		// Unrecognized or generic language ids fall back to the extension.
		{"plaintext", "config.json", JSON{}, true},
		{"", "deploy.yml", YAML{}, true},
		{"", "data.TSV", CSV{}, true},
		{"", "app.properties", INI{}, true},
		{"", ".env", Env{}, true},
		{"", "main.tf", HCL{}, true},
		{"", "notes.txt", nil, false},
		{"", "Makefile", nil, false},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s_%s", tt.languageID, tt.fileName), func(t *testing.T) {
			got, ok := Select(tt.languageID, tt.fileName)
			if ok != tt.ok {
				t.Fatalf("Select(%q, %q) ok = %v, want %v", tt.languageID, tt.fileName, ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("Select(%q, %q) = %T, want %T", tt.languageID, tt.fileName, got, tt.want)
			}
		})
	}
}
