package symbol

import (
	"regexp"
	"strings"
)

// PowerUnit is the unit number of the power/special group.
const PowerUnit = 4

// gpioRule maps a GPIO bank name pattern to its unit number.
type gpioRule struct {
	pattern *regexp.Regexp
	unit    int
}

// gpioRules is evaluated in order; first match wins.
var gpioRules = []gpioRule{
	{regexp.MustCompile(`^P[AB][0-9]{1,2}$`), 1},
	{regexp.MustCompile(`^P[CD][0-9]{1,2}$`), 2},
	{regexp.MustCompile(`^P[EF][0-9]{1,2}$`), 3},
}

// powerPrefixes lists the name prefixes recognized as power/special pins.
// Anything else that reaches unit 4 is an unanticipated name.
var powerPrefixes = []string{
	"IOVD", "AVSS", "AVDD", "VSS", "VDD", "RESE", "DECO", "USB_",
}

// Classify maps a pin name to its unit. GPIO banks go to units 1-3; every
// other pin goes to the power unit. The second return value reports whether
// the name matched a GPIO pattern or a known power-group prefix: a false
// value means the pin fell into the power unit purely by the fallback
// policy and should be flagged as unclassified.
func Classify(name string) (unit int, known bool) {
	for _, r := range gpioRules {
		if r.pattern.MatchString(name) {
			return r.unit, true
		}
	}
	for _, prefix := range powerPrefixes {
		if strings.HasPrefix(name, prefix) {
			return PowerUnit, true
		}
	}
	return PowerUnit, false
}
