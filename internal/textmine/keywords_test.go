package textmine_test

import (
	"testing"

	"github.com/fedscout/fedscout/internal/textmine"
)

func TestExtractKeywords_TechnicalTermsFirst(t *testing.T) {
	text := "Migration migration migration of legacy systems to AWS with Kubernetes. Kubernetes experience required."
	kws, bd := textmine.ExtractKeywords(text)
	if len(kws) == 0 {
		t.Fatal("expected keywords")
	}

	if len(bd.TechnicalTerms) == 0 {
		t.Fatal("expected technical terms in breakdown")
	}
	// All technical terms must precede all frequency terms.
	for i, kw := range kws {
		if textmine.IsTechnicalTerm(kw) && i >= len(bd.TechnicalTerms) {
			t.Errorf("technical term %q at position %d, after frequency terms", kw, i)
		}
	}

	found := func(want string) bool {
		for _, k := range kws {
			if k == want {
				return true
			}
		}
		return false
	}
	if !found("aws") || !found("kubernetes") {
		t.Errorf("expected aws and kubernetes in %v", kws)
	}
	if !found("migration") {
		t.Errorf("expected frequency keyword migration in %v", kws)
	}
}

func TestExtractKeywords_VocabWholeWordOnly(t *testing.T) {
	// "coordinator" contains "ato", "logistics" contains "gis"; only the
	// standalone word may count as a technical term.
	kws, bd := textmine.ExtractKeywords("The coordinator will oversee logistics support for warehouse operations.")
	for _, k := range kws {
		if k == "ato" || k == "gis" || k == "sap" {
			t.Errorf("vocabulary term %q matched inside an ordinary word: %v", k, kws)
		}
	}

	found := false
	for _, k := range bd.TechnicalTerms {
		if k == "logistics" {
			found = true
		}
	}
	if !found {
		t.Errorf("logistics appears as a standalone word, expected it in %v", bd.TechnicalTerms)
	}
}

func TestExtractKeywords_SymbolTerms(t *testing.T) {
	_, bd := textmine.ExtractKeywords("Modernize legacy C# and .NET applications. C# expertise required.")
	got := map[string]bool{}
	for _, k := range bd.TechnicalTerms {
		got[k] = true
	}
	if !got["c#"] || !got[".net"] {
		t.Errorf("expected c# and .net as technical terms, got %v", bd.TechnicalTerms)
	}

	kws, _ := textmine.ExtractKeywords("Records may disappear during migration. Files disappear too.")
	for _, k := range kws {
		if k == "sap" {
			t.Errorf("sap matched inside disappear: %v", kws)
		}
	}
}

func TestExtractKeywords_SingleOccurrenceExcluded(t *testing.T) {
	kws, _ := textmine.ExtractKeywords("modernization happens once here")
	for _, k := range kws {
		if k == "modernization" {
			t.Error("word occurring once should not be a keyword")
		}
	}
}

func TestExtractKeywords_StopwordsExcluded(t *testing.T) {
	kws, _ := textmine.ExtractKeywords("the contractor shall provide services and the contractor shall provide support")
	for _, k := range kws {
		if k == "the" || k == "contractor" || k == "shall" || k == "services" {
			t.Errorf("stopword %q leaked into keywords", k)
		}
	}
}

func TestExtractKeywords_Cap(t *testing.T) {
	// Build text with many repeated distinct words.
	var text string
	words := []string{
		"alpha", "bravo", "charlie", "deltax", "echo", "foxtrot", "golf",
		"hotel", "india", "juliet", "kilo", "lima", "mike", "november",
		"oscar", "papa", "quebec", "romeo", "sierra", "tango", "uniform",
		"victor", "whiskey", "xray", "yankee", "zulu",
	}
	for _, w := range words {
		for _, s := range []string{"one", "two", "three"} {
			text += w + s + " " + w + s + " "
		}
	}
	kws, bd := textmine.ExtractKeywords(text)
	if len(kws) > 50 {
		t.Errorf("keywords not capped: got %d", len(kws))
	}
	if len(kws) == 50 && !bd.Truncated {
		t.Error("breakdown should flag truncation")
	}
}
