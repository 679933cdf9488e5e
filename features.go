package skema

import (
	"math"

	"github.com/reoring/skema/i18n"
)

// CleanGenOpt normalizes generator options. The last option set wins; a
// missing or non-positive MaxAmount becomes DefaultMaxAmount.
func CleanGenOpt(opts ...GenOpt) GenOpt {
	var o GenOpt
	if len(opts) > 0 {
		o = opts[len(opts)-1]
	}
	if o.MaxAmount <= 0 {
		o.MaxAmount = DefaultMaxAmount
	}
	return o
}

// CheckNumberProperty reports a declared numeric property that is not a
// number. It returns "" for a usable value.
func CheckNumberProperty(v float64, desc string) string {
	if math.IsNaN(v) {
		return i18n.T(i18n.CodeDeclNaN, map[string]string{"property": desc})
	}
	return ""
}

// CheckNonNegative reports a declared property that must not be negative.
func CheckNonNegative(v float64, desc string) string {
	if v < 0 {
		return i18n.T(i18n.CodeDeclNegative, map[string]string{"property": desc, "value": FormatNumber(v)})
	}
	return ""
}

// CollectErrors drops empty messages. The result is never nil so that an
// error-free schema reports an empty list.
func CollectErrors(msgs ...string) []string {
	out := make([]string, 0, len(msgs))
	for _, m := range msgs {
		if m != "" {
			out = append(out, m)
		}
	}
	return out
}
