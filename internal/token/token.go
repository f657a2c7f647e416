package token

import (
	"fmt"
	"os"
	"strings"
)

// Stream doles out the tokens of a companion text file one at a time,
// one per successful hit. Purely cosmetic.
type Stream struct {
	tokens []string
	next   int
}

func Load(path string) (*Stream, error) {
	data, err := os.ReadFile(path)
	if nil != err {
		return nil, fmt.Errorf("unable to read token source: %w", err)
	}
	return &Stream{tokens: strings.Fields(string(data))}, nil
}

// Advance returns the next token, wrapping around at the end. An empty
// source yields empty strings forever.
func (s *Stream) Advance() string {
	if len(s.tokens) == 0 {
		return ""
	}
	t := s.tokens[s.next]
	s.next = (s.next + 1) % len(s.tokens)
	return t
}

func (s *Stream) Len() int {
	return len(s.tokens)
}
