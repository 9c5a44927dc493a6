package classify

import (
	"strings"

	"github.com/TadiwanasheNdombo/aura-document-system/constants"
)

// Rule maps any of its keywords to a document type. Rules are checked
// in declaration order and the first hit wins, so classification is
// stable for a given rule file.
type Rule struct {
	Type     string
	Keywords []string
}

type Classifier struct {
	rules []Rule
}

func NewClassifier(rules []Rule) *Classifier {
	// keywords are matched case-insensitively; normalize once
	normalized := make([]Rule, len(rules))
	for i, r := range rules {
		kw := make([]string, len(r.Keywords))
		for j, k := range r.Keywords {
			kw[j] = strings.ToUpper(k)
		}
		normalized[i] = Rule{Type: r.Type, Keywords: kw}
	}
	return &Classifier{rules: normalized}
}

// Classify names the document type for the recognized text, or
// constants.UnknownDocument when no keyword matches.
func (c *Classifier) Classify(text string) string {
	upper := strings.ToUpper(text)
	for _, rule := range c.rules {
		for _, kw := range rule.Keywords {
			if strings.Contains(upper, kw) {
				return rule.Type
			}
		}
	}
	return constants.UnknownDocument
}

// Types lists the known document types in rule order.
func (c *Classifier) Types() []string {
	types := make([]string, len(c.rules))
	for i, r := range c.rules {
		types[i] = r.Type
	}
	return types
}

// AccountType decides the package account type: any configured company
// marker in any document makes the whole package a company account.
func AccountType(texts []string, companyKeywords []string) constants.AccountType {
	for _, t := range texts {
		upper := strings.ToUpper(t)
		for _, kw := range companyKeywords {
			if kw != "" && strings.Contains(upper, strings.ToUpper(kw)) {
				return constants.AccountCompany
			}
		}
	}
	return constants.AccountIndividual
}
