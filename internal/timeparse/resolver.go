package timeparse

import (
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
)

// Candidate is one resolved date/time reading of a piece of text: the absolute
// instant plus the span of the input the parser consumed to produce it.
type Candidate struct {
	Time  time.Time
	Index int    // byte offset of the consumed span within the input
	Text  string // the consumed span itself
}

// WhenResolver resolves natural-language dates using olebedev/when with the
// English and common rule sets. It yields at most one candidate, the parser's
// best match.
type WhenResolver struct {
	parser *when.Parser
}

func NewWhenResolver() *WhenResolver {
	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)
	return &WhenResolver{parser: w}
}

// Resolve parses text relative to base. A nil result means no date or time
// could be found in the text.
func (r *WhenResolver) Resolve(text string, base time.Time) []Candidate {
	res, err := r.parser.Parse(text, base)
	if err != nil || res == nil {
		return nil
	}
	return []Candidate{{Time: res.Time, Index: res.Index, Text: res.Text}}
}
