package lexer

import "strings"

const (
	blockCommentClose = "*/"
	stringQuote       = `"`
	charQuote         = "'"

	// staticLifetime is the one word that carries an apostrophe without
	// being part of a character literal.
	staticLifetime = "'static"
)

// State is the lexical state carried from one word to the next. The caller
// owns it and passes the same value to every Classify call for a file.
//
// The flags are independent; nothing stops more than one being set.
type State struct {
	InBlockComment bool
	InString       bool
	InChar         bool
}

// words maps every reserved word to its category.
var words = func() map[string]Category {
	m := make(map[string]Category)
	for _, w := range []string{
		"break", "continue", "do", "else", "extern", "in", "if", "impl", "let", "log",
		"loop", "match", "once", "priv", "pub", "return", "unsafe", "while", "use", "mod",
		"trait", "struct", "enum", "type", "fn",
	} {
		m[w] = Keyword
	}
	for _, w := range []string{
		"int", "uint", "char", "bool", "u8", "u16", "u32", "u64", "i16", "i32", "i64",
		"f32", "f64", "str", "self", "Self",
	} {
		m[w] = Type
	}
	for _, w := range []string{"const", "mut", "ref", "static"} {
		m[w] = Storage
	}
	return m
}()

// Lookup returns the category of a reserved word. The match is exact and
// case-sensitive.
func Lookup(word string) (Category, bool) {
	c, ok := words[word]
	return c, ok
}

// Classify returns the highlight category of word and updates st. The first
// matching rule wins:
//
//  1. inside a block comment everything is Comment; the word holding "*/"
//     closes it and is still Comment
//  2. unless inside a character literal, words touching a string literal are
//     String; a word with exactly one '"' opens a literal, the next word
//     with a '"' closes it
//  3. inside a character literal, words without an apostrophe and words
//     with exactly one apostrophe (other than 'static) are Char
//  4. a word that is only delimiters is None
//  5. a word starting with a digit is Number
//  6. reserved words map to Keyword, Type or Storage; anything else is None
//
// No rule opens a block comment or a character literal, and rule 3 never
// closes one. Both only happen through a State the caller sets up.
func Classify(word string, st *State) Category {
	if st.InBlockComment {
		if strings.Contains(word, blockCommentClose) {
			st.InBlockComment = false
		}
		return Comment
	}

	if !st.InChar {
		hasQuote := strings.Contains(word, stringQuote)
		switch {
		case st.InString && !hasQuote:
			return String
		case st.InString:
			st.InString = false
			return String
		case hasQuote:
			if strings.Index(word, stringQuote) == strings.LastIndex(word, stringQuote) {
				st.InString = true
			}
			return String
		}
	}

	if st.InChar {
		if !strings.Contains(word, charQuote) {
			return Char
		}
		if word != staticLifetime && strings.Count(word, charQuote) == 1 {
			return Char
		}
	}

	trimmed := Trim(word)
	if trimmed == "" {
		return None
	}
	if c := trimmed[0]; c >= '0' && c <= '9' {
		return Number
	}
	if c, ok := Lookup(trimmed); ok {
		return c
	}
	return None
}
