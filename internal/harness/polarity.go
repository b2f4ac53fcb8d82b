package harness

import (
	"fmt"

	"github.com/roach88/chk/internal/registry"
)

// Indicator words printed at the end of each line.
const (
	IndicatorYes = "YES"
	IndicatorNo  = "NO"
)

// Polarity selects which indicator word a status maps to.
type Polarity int

const (
	// PolarityZeroIsYes prints YES for a zero (passing) status.
	PolarityZeroIsYes Polarity = iota

	// PolarityZeroIsNo prints NO for a zero status and YES otherwise.
	PolarityZeroIsNo
)

// DefaultPolarity is the mapping used unless configured otherwise.
const DefaultPolarity = PolarityZeroIsYes

// Indicator returns the word printed for status s.
func (p Polarity) Indicator(s registry.Status) string {
	yes := s.OK()
	if p == PolarityZeroIsNo {
		yes = !yes
	}
	if yes {
		return IndicatorYes
	}
	return IndicatorNo
}

func (p Polarity) String() string {
	switch p {
	case PolarityZeroIsYes:
		return "zero-is-yes"
	case PolarityZeroIsNo:
		return "zero-is-no"
	default:
		return fmt.Sprintf("Polarity(%d)", int(p))
	}
}

// ParsePolarity parses the String form of a polarity. The empty string
// yields DefaultPolarity.
func ParsePolarity(s string) (Polarity, error) {
	switch s {
	case "":
		return DefaultPolarity, nil
	case "zero-is-yes":
		return PolarityZeroIsYes, nil
	case "zero-is-no":
		return PolarityZeroIsNo, nil
	default:
		return DefaultPolarity, fmt.Errorf("invalid polarity %q: must be zero-is-yes or zero-is-no", s)
	}
}
