package skema

import (
	"math"
	"math/rand/v2"

	json "github.com/goccy/go-json"
)

// Kind tags a schema variant. The value doubles as the display name used in
// subset reasons (for example "NumberSchema cannot be a subset of ...").
type Kind string

const (
	KindNumber  Kind = "NumberSchema"
	KindBoolean Kind = "BooleanSchema"
	KindString  Kind = "StringSchema"
)

func (k Kind) String() string { return string(k) }

// undefinedValue is the type of Undefined.
type undefinedValue struct{}

func (undefinedValue) String() string { return "undefined" }

// Undefined marks an absent value. It is distinct from nil, which stands for
// an explicit null.
var Undefined any = undefinedValue{}

// DefaultMaxAmount is the sample count used when GenOpt.MaxAmount is unset or
// not positive.
const DefaultMaxAmount = 100

// GenOpt configures the data generators.
type GenOpt struct {
	// MaxAmount bounds the number of generated samples.
	MaxAmount int
	// Rand, when set, makes random generation reproducible. The unseeded
	// global source is used otherwise.
	Rand *rand.Rand
}

// Float64 draws a uniform float in [0, 1) from the configured source.
func (o GenOpt) Float64() float64 {
	if o.Rand != nil {
		return o.Rand.Float64()
	}
	return rand.Float64()
}

// IntN draws a uniform int in [0, n) from the configured source.
func (o GenOpt) IntN(n int) int {
	if o.Rand != nil {
		return o.Rand.IntN(n)
	}
	return rand.IntN(n)
}

// Info is a descriptive snapshot of a schema: its kind name, optionality and
// current constraint values.
type Info struct {
	SchemaName  string
	Optional    bool
	Constraints map[string]any
}

// MarshalJSON flattens constraints next to schemaName/optional. Non-finite
// numbers are rendered as strings because JSON has no literal for them.
func (in Info) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(in.Constraints)+2)
	for k, v := range in.Constraints {
		if f, ok := v.(float64); ok && (math.IsInf(f, 0) || math.IsNaN(f)) {
			out[k] = FormatNumber(f)
			continue
		}
		out[k] = v
	}
	out["schemaName"] = in.SchemaName
	out["optional"] = in.Optional
	return json.Marshal(out)
}
