package lexer

import (
	"fmt"
	"strings"
)

// Category is the highlight class assigned to a word.
type Category int

const (
	None Category = iota // no highlight; rendered with the default attribute
	Default
	Keyword
	Type
	Storage
	Comment
	String
	Char
	Number
)

var categoryNames = []string{
	None:    "none",
	Default: "default",
	Keyword: "keyword",
	Type:    "type",
	Storage: "storage",
	Comment: "comment",
	String:  "string",
	Char:    "char",
	Number:  "number",
}

func (c Category) String() string {
	if c >= 0 && int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

// Categories returns every category that has its own display attribute,
// in registration order. None is excluded; it shares Default's attribute.
func Categories() []Category {
	return []Category{Default, Keyword, Type, Storage, Comment, String, Char, Number}
}

// ParseCategory returns the category with the given (case-insensitive) name.
func ParseCategory(name string) (Category, error) {
	for i, n := range categoryNames {
		if strings.EqualFold(name, n) {
			return Category(i), nil
		}
	}
	return None, fmt.Errorf("unknown category %q", name)
}
