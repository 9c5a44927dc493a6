package triage

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/TadiwanasheNdombo/aura-document-system/constants"
	"github.com/TadiwanasheNdombo/aura-document-system/internal/classify"
	"github.com/TadiwanasheNdombo/aura-document-system/internal/common"
)

// DocumentRule is one classification entry in the rules file. The file
// holds a list, not a map, so rule order is exactly file order.
type DocumentRule struct {
	Type     string   `yaml:"type"`
	Keywords []string `yaml:"keywords"`
}

// RequiredDocs lists the checklist per account type.
type RequiredDocs struct {
	Company    []string `yaml:"company"`
	Individual []string `yaml:"individual"`
}

// Classification holds the keyword lists that decide the account type
// for a whole package.
type Classification struct {
	Company []string `yaml:"company"`
}

// Rules is the parsed triage rules file.
type Rules struct {
	Documents      []DocumentRule `yaml:"documents"`
	Required       RequiredDocs   `yaml:"required"`
	Classification Classification `yaml:"classification"`
}

// LoadRules reads and validates the YAML rules file.
func LoadRules(path string) (*Rules, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, common.NewAppError("CONFIG_ERROR",
			fmt.Sprintf("reading triage rules %s", path), common.ErrConfiguration)
	}
	var rules Rules
	if err := yaml.Unmarshal(raw, &rules); err != nil {
		return nil, common.NewAppError("CONFIG_ERROR",
			fmt.Sprintf("parsing triage rules %s: %v", path, err), common.ErrConfiguration)
	}
	if err := rules.validate(); err != nil {
		return nil, err
	}
	return &rules, nil
}

func (r *Rules) validate() error {
	if len(r.Documents) == 0 {
		return common.NewAppError("CONFIG_ERROR", "triage rules define no documents", common.ErrConfiguration)
	}
	seen := make(map[string]bool, len(r.Documents))
	for i, d := range r.Documents {
		if d.Type == "" {
			return common.NewAppError("CONFIG_ERROR",
				fmt.Sprintf("document rule %d has no type", i), common.ErrConfiguration)
		}
		if len(d.Keywords) == 0 {
			return common.NewAppError("CONFIG_ERROR",
				fmt.Sprintf("document rule %q has no keywords", d.Type), common.ErrConfiguration)
		}
		if seen[d.Type] {
			return common.NewAppError("CONFIG_ERROR",
				fmt.Sprintf("duplicate document rule %q", d.Type), common.ErrConfiguration)
		}
		seen[d.Type] = true
	}
	if len(r.Classification.Company) == 0 {
		return common.NewAppError("CONFIG_ERROR",
			"triage rules define no company classification keywords", common.ErrConfiguration)
	}
	for _, req := range append(append([]string{}, r.Required.Company...), r.Required.Individual...) {
		if !seen[req] {
			return common.NewAppError("CONFIG_ERROR",
				fmt.Sprintf("required document %q has no classification rule", req), common.ErrConfiguration)
		}
	}
	return nil
}

// ClassifierRules converts the file entries for the classifier.
func (r *Rules) ClassifierRules() []classify.Rule {
	rules := make([]classify.Rule, len(r.Documents))
	for i, d := range r.Documents {
		rules[i] = classify.Rule{Type: d.Type, Keywords: d.Keywords}
	}
	return rules
}

// Checklist returns the required documents for an account type.
func (r *Rules) Checklist(account constants.AccountType) []string {
	if account == constants.AccountCompany {
		return r.Required.Company
	}
	return r.Required.Individual
}
