package mapper

import (
	"path/filepath"
	"strings"
)

// byLanguage is the fixed dispatch table. TOML entries route to the line
// mapper on purpose: no TOML-specific structure is modeled.
var byLanguage = map[string]Mapper{
	"json":       JSON{},
	"jsonc":      JSON{},
	"json5":      JSON{},
	"yaml":       YAML{},
	"yml":        YAML{},
	"csv":        CSV{},
	"tsv":        CSV{},
	"dotenv":     Env{},
	"env":        Env{},
	"ini":        INI{},
	"properties": INI{},
	"toml":       Env{},
	"xml":        XML{},
	"hcl":        HCL{},
}

var byExtension = map[string]Mapper{
	"json":       JSON{},
	"jsonc":      JSON{},
	"json5":      JSON{},
	"yaml":       YAML{},
	"yml":        YAML{},
	"csv":        CSV{},
	"tsv":        CSV{},
	"env":        Env{},
	"ini":        INI{},
	"properties": INI{},
	"toml":       Env{},
	"xml":        XML{},
	"hcl":        HCL{},
	"tf":         HCL{},
}

// Select picks the mapper for a language identifier, falling back to the
// file extension when the identifier is unrecognized or generic. It returns
// false for unsupported formats.
func Select(languageID, fileName string) (Mapper, bool) {
	if m, ok := byLanguage[strings.ToLower(languageID)]; ok {
		return m, true
	}
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(fileName)), ".")
	m, ok := byExtension[ext]
	return m, ok
}
