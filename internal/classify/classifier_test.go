package classify

import (
	"testing"

	"github.com/TadiwanasheNdombo/aura-document-system/constants"
)

func testRules() []Rule {
	return []Rule{
		{Type: "National ID", Keywords: []string{"NATIONAL REGISTRATION", "IDENTITY CARD"}},
		{Type: "Proof of Residence", Keywords: []string{"PROOF OF RESIDENCE", "UTILITY BILL"}},
		{Type: "Account Opening Form", Keywords: []string{"ACCOUNT OPENING", "MANDATE"}},
	}
}

func TestClassifyFirstMatchWins(t *testing.T) {
	c := NewClassifier(testRules())
	// text hits both the first and last rule; first declared wins
	text := "NATIONAL REGISTRATION attached to ACCOUNT OPENING form"
	if got := c.Classify(text); got != "National ID" {
		t.Errorf("Classify = %q, want National ID", got)
	}
}

func TestClassifyCaseInsensitive(t *testing.T) {
	c := NewClassifier(testRules())
	if got := c.Classify("monthly utility bill for stand 48"); got != "Proof of Residence" {
		t.Errorf("Classify = %q, want Proof of Residence", got)
	}
}

func TestClassifyUnknown(t *testing.T) {
	c := NewClassifier(testRules())
	if got := c.Classify("handwritten shopping list"); got != constants.UnknownDocument {
		t.Errorf("Classify = %q, want %q", got, constants.UnknownDocument)
	}
}

func TestClassifyDeterministic(t *testing.T) {
	c := NewClassifier(testRules())
	text := "MANDATE and UTILITY BILL and IDENTITY CARD"
	first := c.Classify(text)
	for i := 0; i < 100; i++ {
		if got := c.Classify(text); got != first {
			t.Fatalf("run %d: Classify = %q, earlier %q", i, got, first)
		}
	}
	if first != "National ID" {
		t.Errorf("Classify = %q, want rule order to decide", first)
	}
}

func companyKeywords() []string {
	return []string{"COMPANY", "COMPANIES ACT", "CERTIFICATE OF INCORPORATION", "BOARD RESOLUTION"}
}

func TestAccountType(t *testing.T) {
	company := []string{"some doc", "REGISTERED COMPANY NUMBER 4411"}
	if got := AccountType(company, companyKeywords()); got != constants.AccountCompany {
		t.Errorf("AccountType = %v, want COMPANY", got)
	}
	individual := []string{"national registration card", "utility bill"}
	if got := AccountType(individual, companyKeywords()); got != constants.AccountIndividual {
		t.Errorf("AccountType = %v, want INDIVIDUAL", got)
	}
}

func TestAccountTypeConfiguredKeyword(t *testing.T) {
	// markers beyond the bare COMPANY word come from the rule file
	texts := []string{"incorporated under the Companies Act [Chapter 24:03]"}
	if got := AccountType(texts, companyKeywords()); got != constants.AccountCompany {
		t.Errorf("AccountType = %v, want COMPANY for a configured marker", got)
	}
	if got := AccountType(texts, []string{"COMPANY"}); got != constants.AccountIndividual {
		t.Errorf("AccountType = %v, want INDIVIDUAL when the marker is not configured", got)
	}
}
