/*
   Copyright 2026 The HRGrid Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package rewrite implements the ordered message-cleanup engine used by the
// classifier.
//
// A chain of rules is applied to a raw error message in a fixed sequence.
// Each rule either strips the matched text (cleaning client-library noise
// like "Error:" prefixes) or, for whole-match rules, replaces the entire
// message with a fixed guidance sentence (turning "Network Error" into
// something a person can act on). Chains are immutable after construction
// and safe for concurrent use.
package rewrite

import (
	"errors"
	"regexp"
	"strings"
)

var (
	// ErrInvalidSpec is returned when a rule spec has no name, no pattern,
	// or a pattern that does not compile.
	ErrInvalidSpec = errors.New("rewrite: invalid rule spec")
)

// Spec is the raw, caller-provided description of a rule. Specs are
// compiled into Rules when the classifier is built, so configuration
// mistakes surface at construction time, not on the classification hot
// path.
type Spec struct {
	// Name identifies the rule in Explain output and diagnostics.
	Name string

	// Pattern is the regular expression the rule matches against the
	// current message.
	Pattern string

	// Replace is the replacement text. For strip rules this is usually "";
	// for whole-match rules it is the full guidance sentence.
	Replace string

	// Whole makes a match replace the *entire* message with Replace,
	// instead of substituting only the matched span.
	Whole bool
}

// Rule is a compiled, immutable rewrite rule.
type Rule struct {
	name    string
	re      *regexp.Regexp
	replace string
	whole   bool
}

// Compile validates and compiles a spec into a Rule.
func Compile(s Spec) (Rule, error) {
	if s.Name == "" || s.Pattern == "" {
		return Rule{}, ErrInvalidSpec
	}
	re, err := regexp.Compile(s.Pattern)
	if err != nil {
		return Rule{}, errors.Join(ErrInvalidSpec, err)
	}
	return Rule{name: s.Name, re: re, replace: s.Replace, whole: s.Whole}, nil
}

// MustCompile is the panic-on-error variant of Compile. It is useful for
// declaring package-level default rules in var blocks.
func MustCompile(s Spec) Rule {
	r, err := Compile(s)
	if err != nil {
		panic(err)
	}
	return r
}

// Name returns the rule's identifier as used in Explain output.
func (r Rule) Name() string { return r.name }

// apply runs the rule against msg. It reports whether the rule matched.
func (r Rule) apply(msg string) (string, bool) {
	if !r.re.MatchString(msg) {
		return msg, false
	}
	if r.whole {
		return r.replace, true
	}
	return r.re.ReplaceAllString(msg, r.replace), true
}

// Chain is an immutable, ordered sequence of rules.
type Chain struct {
	rules []Rule
}

// NewChain copies the given rules into a frozen chain. Later mutations to
// the caller's slice cannot affect the chain.
func NewChain(rules []Rule) *Chain {
	cp := make([]Rule, len(rules))
	copy(cp, rules)
	return &Chain{rules: cp}
}

// Len returns the number of rules in the chain.
func (c *Chain) Len() int {
	if c == nil {
		return 0
	}
	return len(c.rules)
}

// Apply runs every rule in order against the message and returns the final
// text together with the names of the rules that matched, in application
// order. A whole-match rule short-circuits the chain: once the message has
// been replaced with a fixed sentence, later cleanup must not touch it.
func (c *Chain) Apply(msg string) (string, []string) {
	if c == nil {
		return msg, nil
	}
	var matched []string
	out := msg
	for _, r := range c.rules {
		next, hit := r.apply(out)
		if !hit {
			continue
		}
		matched = append(matched, r.name)
		out = next
		if r.whole {
			break
		}
		out = strings.TrimSpace(out)
	}
	return out, matched
}
