package validate

import (
	"fmt"
	"strings"
	"unicode"
)

// Rule identifies the check an address failed
type Rule int

const (
	// RuleNone means the address passed every check
	RuleNone Rule = iota
	// RuleMissingAt means no @ in the address
	RuleMissingAt
	// RuleMultipleAt means more than one @
	RuleMultipleAt
	// RuleEmptyPrefix means nothing before the @
	RuleEmptyPrefix
	// RuleEmptyDomain means nothing after the @
	RuleEmptyDomain
	// RulePrefixForbiddenChar means prefix contains a space or one of ( ) , : ; < > @ [ ] \ "
	RulePrefixForbiddenChar
	// RulePrefixBoundary means prefix starts or ends with . - or _
	RulePrefixBoundary
	// RulePrefixCharacter means prefix has a character other than a letter, digit, . - or _
	RulePrefixCharacter
	// RulePrefixConsecutiveSpecial means two of . - _ next to each other in the prefix
	RulePrefixConsecutiveSpecial
	// RuleDomainForbiddenChar means domain contains a space or a forbidden character
	RuleDomainForbiddenChar
	// RuleDomainDot means domain has no dot, or its last dot is the first or last character
	RuleDomainDot
	// RuleTLD means last domain segment is shorter than two letters or not all letters
	RuleTLD
	// RuleSubdomain means a segment before the TLD is empty, has a bad character or a dash at either end
	RuleSubdomain
)

var ruleNames = map[Rule]string{
	RuleNone:                     "valid",
	RuleMissingAt:                "missing @",
	RuleMultipleAt:               "more than one @",
	RuleEmptyPrefix:              "empty prefix",
	RuleEmptyDomain:              "empty domain",
	RulePrefixForbiddenChar:      "prefix contains a forbidden character",
	RulePrefixBoundary:           "prefix starts or ends with a special character",
	RulePrefixCharacter:          "prefix contains a character other than letters, digits, '.', '-' or '_'",
	RulePrefixConsecutiveSpecial: "prefix contains consecutive special characters",
	RuleDomainForbiddenChar:      "domain contains a forbidden character",
	RuleDomainDot:                "domain has no dot or starts or ends with one",
	RuleTLD:                      "top-level domain must be at least two letters",
	RuleSubdomain:                "subdomain must be letters, digits or inner dashes",
}

func (r Rule) String() string {
	if name, ok := ruleNames[r]; ok {
		return name
	}
	return fmt.Sprintf("rule(%d)", int(r))
}

// forbidden characters in both halves of an address
const forbiddenChars = `(),:;<>@[]\" `

// Result is the outcome of validating an address.
// Prefix, Domain, Subdomains and TLD are filled in as far as validation got.
type Result struct {
	Address    string
	Prefix     string
	Domain     string
	Subdomains []string
	TLD        string
	Failed     Rule
}

// Valid reports whether every rule passed
func (r Result) Valid() bool {
	return r.Failed == RuleNone
}

// Err returns nil for a valid address, otherwise an error naming the failed rule
func (r Result) Err() error {
	if r.Valid() {
		return nil
	}
	return fmt.Errorf("email address %q: %s", r.Address, r.Failed)
}

// IsValid reports whether address is acceptable. It never panics and treats
// the empty string as invalid.
func IsValid(address string) bool {
	return Validate(address).Valid()
}

// Validate decomposes address into prefix and domain and applies the prefix
// and domain rules, stopping at the first failure.
func Validate(address string) Result {
	res := Result{Address: address}

	parts := strings.Split(address, "@")
	switch {
	case len(parts) == 1:
		res.Failed = RuleMissingAt
		return res
	case len(parts) > 2:
		res.Failed = RuleMultipleAt
		return res
	}
	res.Prefix, res.Domain = parts[0], parts[1]

	if rule := checkPrefix(res.Prefix); rule != RuleNone {
		res.Failed = rule
		return res
	}
	res.Subdomains, res.TLD, res.Failed = checkDomain(res.Domain)
	return res
}

func isSpecial(c rune) bool {
	return c == '.' || c == '-' || c == '_'
}

func checkPrefix(prefix string) Rule {
	if prefix == "" {
		return RuleEmptyPrefix
	}
	if strings.ContainsAny(prefix, forbiddenChars) {
		return RulePrefixForbiddenChar
	}

	runes := []rune(prefix)
	if isSpecial(runes[0]) || isSpecial(runes[len(runes)-1]) {
		return RulePrefixBoundary
	}
	for _, c := range runes {
		if !unicode.IsLetter(c) && !unicode.IsDigit(c) && !isSpecial(c) {
			return RulePrefixCharacter
		}
	}
	for i := 0; i < len(runes)-1; i++ {
		if isSpecial(runes[i]) && isSpecial(runes[i+1]) {
			return RulePrefixConsecutiveSpecial
		}
	}
	return RuleNone
}

func checkDomain(domain string) ([]string, string, Rule) {
	if domain == "" {
		return nil, "", RuleEmptyDomain
	}
	if strings.ContainsAny(domain, forbiddenChars) {
		return nil, "", RuleDomainForbiddenChar
	}

	last := strings.LastIndexByte(domain, '.')
	if last <= 0 || last == len(domain)-1 {
		return nil, "", RuleDomainDot
	}

	segments := strings.Split(domain, ".")
	subdomains, tld := segments[:len(segments)-1], segments[len(segments)-1]

	if len([]rune(tld)) < 2 {
		return subdomains, tld, RuleTLD
	}
	for _, c := range tld {
		if !unicode.IsLetter(c) {
			return subdomains, tld, RuleTLD
		}
	}

	// Consecutive dots leave an empty segment here.
	for _, sub := range subdomains {
		if !validSubdomain(sub) {
			return subdomains, tld, RuleSubdomain
		}
	}
	return subdomains, tld, RuleNone
}

func validSubdomain(sub string) bool {
	if sub == "" || strings.HasPrefix(sub, "-") || strings.HasSuffix(sub, "-") {
		return false
	}
	for _, c := range sub {
		if !unicode.IsLetter(c) && !unicode.IsDigit(c) && c != '-' {
			return false
		}
	}
	return true
}
