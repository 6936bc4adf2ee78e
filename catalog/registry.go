package catalog

import (
	"fmt"
	"sort"

	apiError "github.com/next-trace/scg-catalog/error"
)

// Definition describes one catalog entry: its stable code and constant status.
// Category is organisational only and never reaches the wire.
type Definition struct {
	Category string
	Code     string
	Status   apiError.Status
	Summary  string
}

// New builds the Error for this definition with already-resolved text.
func (d Definition) New(title, detail string) *apiError.Error {
	return apiError.E(d.Code, d.Status, apiError.WithTitle(title), apiError.WithDetail(detail))
}

// registry is written only during package initialisation.
var registry = map[string]Definition{}

func define(category, code string, status apiError.Status, summary string) Definition {
	if code == "" {
		panic(fmt.Sprintf("catalog: empty code in category %q", category))
	}

	if !status.Valid() {
		panic(fmt.Sprintf("catalog: %s has no valid status", code))
	}

	if prev, dup := registry[code]; dup {
		panic(fmt.Sprintf("catalog: duplicate code %s (categories %q and %q)", code, prev.Category, category))
	}

	d := Definition{Category: category, Code: code, Status: status, Summary: summary}
	registry[code] = d

	return d
}

// Definitions returns every registered definition ordered by code.
func Definitions() []Definition {
	out := make([]Definition, 0, len(registry))
	for _, d := range registry {
		out = append(out, d)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })

	return out
}

// Lookup finds the definition registered under code.
func Lookup(code string) (Definition, bool) {
	d, ok := registry[code]

	return d, ok
}

// Is reports whether err carries an Error produced from d.
func Is(err error, d Definition) bool { return apiError.HasCode(err, d.Code) }
