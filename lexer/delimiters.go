package lexer

// EndOfStream is the sentinel byte value that ends a word; it never occurs in
// valid UTF-8.
const EndOfStream byte = 0xFF

func init() {
	for _, ch := range []byte{' ', '(', ')', ':', ';', '&', '+', '-', ',', '.', '@', '~', '\\'} {
		delimiters[ch] = true
	}
	for _, ch := range []byte{'\n', '\r', 0, EndOfStream} {
		delimiters[ch] = true
	}
}

// delimiters is the single word-terminator table. The tokenizer's scan loop
// and Trim both read it.
var (
	delimiters = [256]bool{}
)

// IsDelimiter reports whether b ends a word.
func IsDelimiter(b byte) bool {
	return delimiters[b]
}

// Trim strips leading and trailing delimiter bytes from word.
func Trim(word string) string {
	start, end := 0, len(word)
	for start < end && delimiters[word[start]] {
		start++
	}
	for end > start && delimiters[word[end-1]] {
		end--
	}
	return word[start:end]
}
