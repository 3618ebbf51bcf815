package textmine

import (
	"regexp"
	"sort"
	"strings"
)

const maxKeywords = 50

// KeywordBreakdown explains which keywords came from the technical
// vocabulary and which from raw frequency.
type KeywordBreakdown struct {
	TechnicalTerms []string `json:"technical_terms,omitempty"`
	FrequencyTerms []string `json:"frequency_terms,omitempty"`
	Truncated      bool     `json:"truncated"`
}

var reWord = regexp.MustCompile(`[a-z][a-z0-9+#./-]{2,}`)

var stopwords = map[string]struct{}{}

func init() {
	for _, w := range []string{
		"the", "and", "for", "are", "but", "not", "you", "all", "any", "can",
		"had", "her", "was", "one", "our", "out", "day", "get", "has", "him",
		"his", "how", "its", "may", "new", "now", "old", "see", "two", "who",
		"this", "that", "with", "from", "they", "will", "have", "been", "were",
		"their", "which", "shall", "must", "should", "would", "could", "these",
		"those", "other", "such", "than", "then", "them", "when", "where",
		"each", "also", "into", "more", "most", "some", "only", "over", "under",
		"upon", "within", "without", "between", "during", "including", "include",
		"includes", "included", "per", "via", "any", "all", "government",
		"contractor", "contract", "solicitation", "proposal", "offeror",
		"offerors", "agency", "shall", "herein", "hereby", "pursuant",
		"section", "paragraph", "page", "date", "time", "work", "required",
		"requirements", "requirement", "provide", "provided", "providing",
		"services", "service", "support", "performance", "period",
	} {
		stopwords[w] = struct{}{}
	}
}

// ExtractKeywords pulls a ranked keyword list out of free text: every
// technical-vocabulary phrase present, then any other non-stopword word of
// three or more characters that appears at least twice, ordered by
// frequency. The list is capped at 50 entries.
func ExtractKeywords(text string) ([]string, KeywordBreakdown) {
	var bd KeywordBreakdown
	lower := strings.ToLower(text)

	words := reWord.FindAllString(lower, -1)
	tokens := make(map[string]struct{}, len(words))
	for i, w := range words {
		w = strings.TrimRight(w, "./-")
		words[i] = w
		tokens[w] = struct{}{}
	}

	seen := make(map[string]struct{})
	for _, term := range technicalVocab {
		if !vocabTermPresent(term, lower, tokens) {
			continue
		}
		if _, dup := seen[term]; dup {
			continue
		}
		seen[term] = struct{}{}
		bd.TechnicalTerms = append(bd.TechnicalTerms, term)
	}
	sort.Strings(bd.TechnicalTerms)

	counts := make(map[string]int)
	for _, w := range words {
		if len(w) < 3 {
			continue
		}
		if _, stop := stopwords[w]; stop {
			continue
		}
		if _, tech := seen[w]; tech {
			continue
		}
		counts[w]++
	}

	type wordCount struct {
		word string
		n    int
	}
	var frequent []wordCount
	for w, n := range counts {
		if n >= 2 {
			frequent = append(frequent, wordCount{w, n})
		}
	}
	sort.Slice(frequent, func(i, j int) bool {
		if frequent[i].n != frequent[j].n {
			return frequent[i].n > frequent[j].n
		}
		return frequent[i].word < frequent[j].word
	})

	keywords := make([]string, 0, len(bd.TechnicalTerms)+len(frequent))
	keywords = append(keywords, bd.TechnicalTerms...)
	for _, wc := range frequent {
		keywords = append(keywords, wc.word)
		bd.FrequencyTerms = append(bd.FrequencyTerms, wc.word)
	}

	if len(keywords) > maxKeywords {
		keywords = keywords[:maxKeywords]
		bd.Truncated = true
	}
	return keywords, bd
}

// vocabTermPresent decides whether a vocabulary term occurs in the text.
// Single-word terms must match a whole token, never a substring: "ato" must
// not fire inside "coordinator". Multi-word phrases are matched as
// substrings, and symbol terms the tokenizer cannot carry ("c#", ".net")
// get an explicit word-boundary scan.
func vocabTermPresent(term, lower string, tokens map[string]struct{}) bool {
	if strings.Contains(term, " ") {
		return strings.Contains(lower, term)
	}
	if reWord.FindString(term) == term {
		_, ok := tokens[term]
		return ok
	}
	return containsWholeWord(lower, term)
}

func containsWholeWord(text, term string) bool {
	for from := 0; ; {
		i := strings.Index(text[from:], term)
		if i < 0 {
			return false
		}
		i += from
		end := i + len(term)
		before := i == 0 || !isWordByte(text[i-1])
		after := end == len(text) || !isWordByte(text[end])
		if before && after {
			return true
		}
		from = i + 1
	}
}

func isWordByte(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= '0' && b <= '9')
}
