package tablefmt

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
var (
	ErrSpecSyntax        = errors.New("invalid format spec")
	ErrColumnSyntax      = errors.New("invalid column format")
	ErrHeaderMismatch    = errors.New("header count mismatch")
	ErrRowCountMismatch  = errors.New("row count mismatch")
	ErrIncompatibleValue = errors.New("value incompatible with format spec")
	ErrUnknownHRule      = errors.New("unknown hrule policy")
)

// HRule controls where horizontal rule lines appear in column and table
// output. The constants form a total order; rule placement compares
// policies numerically (a policy at or above HRuleFrame emits leading and
// trailing frame rules), so the declaration order is semantic.
type HRule int

const (
	// HRuleNone emits no rules.
	HRuleNone HRule = iota
	// HRuleHeader emits one rule after the first rendered line.
	HRuleHeader
	// HRuleFrame emits rules at the top and bottom.
	HRuleFrame
	// HRuleFrameHeader combines frame and header rules. The header rule is
	// skipped when a single value is formatted.
	HRuleFrameHeader
	// HRuleAll emits a rule after every rendered line, plus a leading rule.
	HRuleAll
)

var hruleNames = []string{"none", "header", "frame", "frame-header", "all"}

// String returns the policy name.
func (h HRule) String() string {
	if h < HRuleNone || h > HRuleAll {
		return fmt.Sprintf("hrule(%d)", int(h))
	}
	return hruleNames[h]
}

// HRules returns all policies in increasing rule-density order.
func HRules() []HRule {
	return []HRule{HRuleNone, HRuleHeader, HRuleFrame, HRuleFrameHeader, HRuleAll}
}

// ParseHRule parses a policy name as returned by [HRule.String].
func ParseHRule(s string) (HRule, error) {
	for i, name := range hruleNames {
		if name == s {
			return HRule(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownHRule, s)
}

// Rule character sets: left junction, fill, right junction.
const (
	HRuleCharsASCII  = "+-+"
	HRuleCharsLight  = "├─┤"
	HRuleCharsHeavy  = "┣━┫"
	HRuleCharsDouble = "╠═╣"
)

// DefaultHRuleChars is the rule character set used when none is given.
const DefaultHRuleChars = HRuleCharsASCII
