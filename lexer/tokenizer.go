package lexer

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"
)

// ErrDecode is matched by errors.Is for every DecodeError.
var ErrDecode = errors.New("invalid utf-8")

// DecodeError reports a word that is not valid UTF-8.
type DecodeError struct {
	Offset int64 // byte offset of the first byte of the word
	Word   []byte
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("invalid utf-8 in word at byte %d: %q", e.Offset, e.Word)
}

func (e *DecodeError) Is(target error) bool {
	return target == ErrDecode
}

// Token is one word and the delimiter byte that ended it. The delimiter is
// not part of the word; the word may be empty.
type Token struct {
	Word  string
	Delim byte
}

// Tokenizer groups a byte stream into words separated by delimiter bytes.
// It owns its reader and only ever moves forward.
type Tokenizer struct {
	r      io.ByteReader
	offset int64
	err    error // first non-EOF read error
	word   []byte
}

// NewTokenizer returns a tokenizer reading from r. Readers that are not
// already byte readers are buffered.
func NewTokenizer(r io.Reader) *Tokenizer {
	br, ok := r.(io.ByteReader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &Tokenizer{r: br}
}

// Next returns the next word and its delimiter.
//
// When the reader runs out, Next returns io.EOF, including when a partial
// word has been read: a trailing word with no delimiter after it is dropped.
// A read failure is treated the same way as end of stream; the cause is
// available from Err. A word that is not valid UTF-8 yields a *DecodeError.
func (t *Tokenizer) Next() (Token, error) {
	if t.err != nil {
		return Token{}, io.EOF
	}

	start := t.offset
	t.word = t.word[:0]
	for {
		b, err := t.r.ReadByte()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				t.err = err
			}
			return Token{}, io.EOF
		}
		t.offset++

		if delimiters[b] {
			if !utf8.Valid(t.word) {
				return Token{}, &DecodeError{Offset: start, Word: append([]byte(nil), t.word...)}
			}
			return Token{Word: string(t.word), Delim: b}, nil
		}
		t.word = append(t.word, b)
	}
}

// Err returns the read error that ended the stream early, or nil if the
// stream ended normally.
func (t *Tokenizer) Err() error {
	return t.err
}

// Offset returns the number of bytes consumed so far.
func (t *Tokenizer) Offset() int64 {
	return t.offset
}
