package ingest

import (
	"strings"
	"unicode/utf8"
)

const (
	// DefaultChunkSize is the maximum segment size in runes.
	DefaultChunkSize = 1000
	// DefaultChunkOverlap is the number of runes shared by adjacent segments.
	DefaultChunkOverlap = 200
)

// separators are tried coarsest first; a piece still longer than the
// maximum size is re-split with the next finer separator. The empty
// separator is the fixed-window fallback.
var separators = []string{"\n\n", "\n", " ", ""}

// Chunker splits raw document text into overlapping segments bounded by
// maxSize runes. Sizes are measured in runes so multibyte text does not
// get cut harder than ASCII.
type Chunker struct {
	maxSize int
	overlap int
}

// NewChunker creates a Chunker. Out-of-range parameters fall back to the
// defaults so a misconfigured caller still gets usable segments.
func NewChunker(maxSize, overlap int) *Chunker {
	if maxSize <= 0 {
		maxSize = DefaultChunkSize
	}
	if overlap < 0 || overlap >= maxSize {
		overlap = maxSize / 5
	}
	return &Chunker{maxSize: maxSize, overlap: overlap}
}

// Split returns the ordered sequence of segments for text. Segments are
// trimmed and whitespace-only segments are discarded. The same input always
// produces the same sequence. Empty input yields no segments; input shorter
// than the maximum size yields exactly one.
func (c *Chunker) Split(text string) []string {
	segments := c.split(text, separators)

	out := make([]string, 0, len(segments))
	for _, s := range segments {
		s = strings.TrimSpace(s)
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

func (c *Chunker) split(text string, seps []string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	if utf8.RuneCountInString(text) <= c.maxSize {
		return []string{text}
	}

	sep, finer := pickSeparator(text, seps)
	if sep == "" {
		return c.slide(text)
	}

	// Keep the separator attached to the preceding piece so rejoining
	// loses no characters of the original text.
	parts := strings.SplitAfter(text, sep)

	var segs []string
	var cur []rune
	seeded := 0 // runes carried over from the previous segment

	for _, part := range parts {
		runes := []rune(part)

		if len(runes) > c.maxSize {
			if len(cur) > seeded {
				segs = append(segs, string(cur))
			}
			segs = append(segs, c.split(part, finer)...)
			cur = nil
			seeded = 0
			continue
		}

		if len(cur)+len(runes) > c.maxSize {
			if len(cur) > seeded {
				segs = append(segs, string(cur))
				tail := overlapTail(cur, c.overlap)
				cur = tail
				seeded = len(tail)
			}
			if len(cur)+len(runes) > c.maxSize {
				// The overlap carry would push the segment past the
				// limit; give it up for this boundary.
				cur = nil
				seeded = 0
			}
		}

		cur = append(cur, runes...)
	}

	if len(cur) > seeded {
		segs = append(segs, string(cur))
	}
	return segs
}

// slide cuts fixed windows of maxSize runes stepping maxSize-overlap.
// Used when no separator is usable in the current piece.
func (c *Chunker) slide(text string) []string {
	runes := []rune(text)
	step := c.maxSize - c.overlap
	if step <= 0 {
		step = c.maxSize
	}

	var segs []string
	for start := 0; start < len(runes); start += step {
		end := start + c.maxSize
		if end > len(runes) {
			end = len(runes)
		}
		segs = append(segs, string(runes[start:end]))
		if end == len(runes) {
			break
		}
	}
	return segs
}

// pickSeparator returns the coarsest separator occurring in text plus the
// finer ones left to recurse with.
func pickSeparator(text string, seps []string) (string, []string) {
	for i, s := range seps {
		if s == "" {
			return "", nil
		}
		if strings.Contains(text, s) {
			return s, seps[i+1:]
		}
	}
	return "", nil
}

// overlapTail returns the last n runes of cur.
func overlapTail(cur []rune, n int) []rune {
	if n <= 0 || len(cur) == 0 {
		return nil
	}
	if n > len(cur) {
		n = len(cur)
	}
	return cur[len(cur)-n:]
}
