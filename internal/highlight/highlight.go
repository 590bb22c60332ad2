// Package highlight annotates rendered summary HTML with severity spans for
// known legal keywords. Matching runs only against text between tags, so
// generated markup is never re-entered and spans never nest.
package highlight

import (
	"regexp"
	"sort"
	"strings"
)

var (
	criticalRe = phrasePattern(CriticalPhrases)
	moderateRe = phrasePattern(ModeratePhrases)
)

// phrasePattern builds a case-insensitive whole-word alternation for the
// given phrases. Longer phrases are listed first so that they win over any
// of their own prefixes.
func phrasePattern(phrases []string) *regexp.Regexp {
	sorted := make([]string, len(phrases))
	copy(sorted, phrases)
	sort.Slice(sorted, func(i, j int) bool { return len(sorted[i]) > len(sorted[j]) })

	quoted := make([]string, len(sorted))
	for i, p := range sorted {
		quoted[i] = regexp.QuoteMeta(p)
	}
	return regexp.MustCompile(`(?i)\b(?:` + strings.Join(quoted, "|") + `)\b`)
}

// span is a keyword occurrence within a single text segment.
type span struct {
	start    int
	end      int
	severity Severity
}

// Highlight wraps every keyword occurrence in the prose of the given HTML in
// a severity span. Tags and attribute values are passed through untouched.
// Input with no keyword occurrences is returned unchanged.
func Highlight(html string) string {
	var b strings.Builder
	b.Grow(len(html))

	for i := 0; i < len(html); {
		open := strings.IndexByte(html[i:], '<')
		if open < 0 {
			b.WriteString(annotate(html[i:]))
			break
		}
		b.WriteString(annotate(html[i : i+open]))

		close := strings.IndexByte(html[i+open:], '>')
		if close < 0 {
			// Unterminated tag: emit as-is rather than guessing.
			b.WriteString(html[i+open:])
			break
		}
		b.WriteString(html[i+open : i+open+close+1])
		i += open + close + 1
	}
	return b.String()
}

// annotate wraps keyword matches in one text segment. Critical matches are
// collected first and win any overlap with moderate matches.
func annotate(text string) string {
	if text == "" {
		return text
	}

	var spans []span
	for _, m := range criticalRe.FindAllStringIndex(text, -1) {
		spans = append(spans, span{start: m[0], end: m[1], severity: SeverityCritical})
	}
	for _, m := range moderateRe.FindAllStringIndex(text, -1) {
		if overlapsAny(spans, m[0], m[1]) {
			continue
		}
		spans = append(spans, span{start: m[0], end: m[1], severity: SeverityModerate})
	}
	if len(spans) == 0 {
		return text
	}
	sort.Slice(spans, func(i, j int) bool { return spans[i].start < spans[j].start })

	var b strings.Builder
	b.Grow(len(text) + len(spans)*48)
	last := 0
	for _, s := range spans {
		b.WriteString(text[last:s.start])
		b.WriteString(`<span class="severity severity-`)
		b.WriteString(string(s.severity))
		b.WriteString(`">`)
		b.WriteString(text[s.start:s.end])
		b.WriteString(`</span>`)
		last = s.end
	}
	b.WriteString(text[last:])
	return b.String()
}

func overlapsAny(spans []span, start, end int) bool {
	for _, s := range spans {
		if start < s.end && end > s.start {
			return true
		}
	}
	return false
}
