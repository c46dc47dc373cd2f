package catalog

import "strconv"

// ClarityVersion is the Clarity language version the templates target.
const ClarityVersion = "Clarity 3.0"

// Stat is one headline figure shown above the catalog.
type Stat struct {
	Value string `yaml:"value"`
	Label string `yaml:"label"`
}

// Summary returns the headline figures for a record table.
func Summary(rs []Record) []Stat {
	return []Stat{
		{Value: strconv.Itoa(len(rs)), Label: "Smart Contracts"},
		{Value: strconv.Itoa(len(categoryOrder)), Label: "Categories"},
		{Value: ClarityVersion, Label: "Version"},
		{Value: "Production", Label: "Ready"},
	}
}
