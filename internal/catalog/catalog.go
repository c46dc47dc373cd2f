package catalog

import "errors"

// ErrNotFound is returned when a contract id is not in the catalog.
var ErrNotFound = errors.New("not found")

// Category is the closed classification tag of a contract template.
type Category string

const (
	CategoryNFT     Category = "nft"
	CategoryToken   Category = "token"
	CategoryDeFi    Category = "defi"
	CategoryDAO     Category = "dao"
	CategoryUtility Category = "utility"
)

// CategoryMeta holds display metadata for a category.
type CategoryMeta struct {
	DisplayName string
	ColorToken  string // style token, e.g. "category-nft"
	Icon        string
}

// Record is a single catalog entry describing one contract template.
type Record struct {
	ID          string   `yaml:"id"`
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Category    Category `yaml:"category"`
	Features    []string `yaml:"features"`
	FileName    string   `yaml:"file_name"`
}

var categoryOrder = []Category{
	CategoryNFT,
	CategoryToken,
	CategoryDeFi,
	CategoryDAO,
	CategoryUtility,
}

var categoryMeta = map[Category]CategoryMeta{
	CategoryNFT:     {DisplayName: "NFT", ColorToken: "category-nft", Icon: "🖼️"},
	CategoryToken:   {DisplayName: "Token", ColorToken: "category-token", Icon: "🪙"},
	CategoryDeFi:    {DisplayName: "DeFi", ColorToken: "category-defi", Icon: "💰"},
	CategoryDAO:     {DisplayName: "DAO", ColorToken: "category-dao", Icon: "🏛️"},
	CategoryUtility: {DisplayName: "Utility", ColorToken: "category-utility", Icon: "🔧"},
}

// Categories returns every category key in display order.
func Categories() []Category {
	out := make([]Category, len(categoryOrder))
	copy(out, categoryOrder)
	return out
}

// Meta returns the display metadata for a category.
func Meta(c Category) (CategoryMeta, bool) {
	m, ok := categoryMeta[c]
	return m, ok
}

// ParseCategory converts user input ("DeFi", "dao") into a Category key.
func ParseCategory(s string) (Category, bool) {
	for _, c := range categoryOrder {
		if string(c) == s || categoryMeta[c].DisplayName == s {
			return c, true
		}
	}
	return "", false
}

// String returns the display name, falling back to the raw key.
func (c Category) String() string {
	if m, ok := categoryMeta[c]; ok {
		return m.DisplayName
	}
	return string(c)
}

// Records returns the compiled-in contract table in display order.
// The returned slice shares its backing array with the package table and
// must not be modified.
func Records() []Record {
	return records[:len(records):len(records)]
}

// Lookup finds a record by id.
func Lookup(id string) (Record, bool) {
	i, ok := recordIndex[id]
	if !ok {
		return Record{}, false
	}
	return records[i], true
}

// ByCategory returns the records in the given category, preserving order.
func ByCategory(rs []Record, c Category) []Record {
	var out []Record
	for _, r := range rs {
		if r.Category == c {
			out = append(out, r)
		}
	}
	return out
}

var recordIndex = func() map[string]int {
	idx := make(map[string]int, len(records))
	for i, r := range records {
		idx[r.ID] = i
	}
	return idx
}()
