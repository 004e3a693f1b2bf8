package provider

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/KevinNatera/l2assessment/internal/model"
)

// UrgencyRule maps a message pattern to an urgency level. Higher priority
// rules are checked first; the first match wins.
type UrgencyRule struct {
	Name     string
	Regex    string
	Urgency  string
	Priority int
}

type compiledUrgencyRule struct {
	compiledRegex *regexp.Regexp
	UrgencyRule
}

// RuleScorer implements UrgencyScorer with a deterministic, priority-ordered
// rule set. Messages matching no rule score Medium.
type RuleScorer struct {
	rules []compiledUrgencyRule
}

// NewRuleScorer compiles the given rules into a scorer.
func NewRuleScorer(rules []UrgencyRule) (*RuleScorer, error) {
	compiled := make([]compiledUrgencyRule, 0, len(rules))

	for _, r := range rules {
		regexStr := r.Regex
		if !strings.HasPrefix(regexStr, "(?i)") {
			regexStr = "(?i)" + regexStr
		}

		regex, err := regexp.Compile(regexStr)
		if err != nil {
			return nil, fmt.Errorf("failed to compile urgency rule %s: %w", r.Name, err)
		}

		compiled = append(compiled, compiledUrgencyRule{
			UrgencyRule:   r,
			compiledRegex: regex,
		})
	}

	sort.SliceStable(compiled, func(i, j int) bool {
		return compiled[i].Priority > compiled[j].Priority
	})

	return &RuleScorer{rules: compiled}, nil
}

// ScoreUrgency returns the urgency level for a message. The scorer is a
// total function: every input maps to a level.
func (s *RuleScorer) ScoreUrgency(message string) (string, error) {
	for _, rule := range s.rules {
		if rule.compiledRegex.MatchString(message) {
			return rule.Urgency, nil
		}
	}
	return model.UrgencyMedium, nil
}

// DefaultUrgencyRules returns the built-in urgency rule set.
func DefaultUrgencyRules() []UrgencyRule {
	return []UrgencyRule{
		{
			Name:     "outage",
			Regex:    `\b(outage|down|unavailable|cannot access|can't access|data loss|security|breach|hacked)\b`,
			Urgency:  model.UrgencyHigh,
			Priority: 100,
		},
		{
			Name:     "blocking",
			Regex:    `\b(urgent|asap|immediately|critical|emergency|blocked|production)\b`,
			Urgency:  model.UrgencyHigh,
			Priority: 90,
		},
		{
			Name:     "billing-dispute",
			Regex:    `\b(overcharged|double[ -]?charged?|unauthorized)\b`,
			Urgency:  model.UrgencyHigh,
			Priority: 80,
		},
		{
			Name:     "curiosity",
			Regex:    `\b(wondering|curious|someday|no rush|whenever|nice to have)\b`,
			Urgency:  model.UrgencyLow,
			Priority: 20,
		},
		{
			Name:     "feedback",
			Regex:    `\b(suggestion|feedback|feature request|idea)\b`,
			Urgency:  model.UrgencyLow,
			Priority: 10,
		},
	}
}
