package i18n

import "strings"

// Message codes. Each code maps to a template whose {name} placeholders are
// filled from the data map passed to T.
const (
	CodeNullNotKind      = "null_not_kind"
	CodeUndefinedNotKind = "undefined_not_kind"
	CodeInvalidType      = "invalid_type"
	CodeNaN              = "nan"
	CodeTooBig           = "too_big"
	CodeTooSmall         = "too_small"
	CodeNotDivisible     = "not_divisible"
	CodeTooLong          = "too_long"
	CodeTooShort         = "too_short"

	CodeSubsetTargetNull      = "subset_target_null"
	CodeSubsetTargetUndefined = "subset_target_undefined"
	CodeSubsetTargetPrimitive = "subset_target_primitive"
	CodeSubsetTargetNotSchema = "subset_target_not_schema"
	CodeSubsetKindMismatch    = "subset_kind_mismatch"
	CodeSubsetOptional        = "subset_optional"
	CodeSubsetDivisor         = "subset_divisor"
	CodeSubsetMax             = "subset_max"
	CodeSubsetMin             = "subset_min"
	CodeSubsetMaxLength       = "subset_max_length"
	CodeSubsetMinLength       = "subset_min_length"

	CodeDeclNaN            = "decl_nan"
	CodeDeclNegative       = "decl_negative"
	CodeDeclMinGtMax       = "decl_min_gt_max"
	CodeDeclMinGtMaxLength = "decl_min_gt_max_length"
)

// Translator retrieves localized messages for message codes.
// data provides the values substituted into the template (for example,
// "value" or "max").
type Translator interface {
	Message(code string, data map[string]string) string
}

var catalogues = map[string]map[string]string{
	"en": {
		CodeNullNotKind:      "value = null is not a {kind}",
		CodeUndefinedNotKind: "value = undefined is not a {kind}",
		CodeInvalidType:      "value of type {type} is not a {kind}",
		CodeNaN:              `value is NaN, "not a number"`,
		CodeTooBig:           "number = {value} is bigger than required maximum = {max}",
		CodeTooSmall:         "number = {value} is smaller than required minimum = {min}",
		CodeNotDivisible:     "number = {value} is not divisible by = {divisor}",
		CodeTooLong:          "string length = {length} is bigger than required maximum length = {max}",
		CodeTooShort:         "string length = {length} is smaller than required minimum length = {min}",

		CodeSubsetTargetNull:      "target schema is null",
		CodeSubsetTargetUndefined: "target schema is undefined",
		CodeSubsetTargetPrimitive: "target of type {type} is not a schema",
		CodeSubsetTargetNotSchema: "target object is not a schema",
		CodeSubsetKindMismatch:    "{source} cannot be a subset of {target}",
		CodeSubsetOptional:        "source schema allows null values while target does not",
		CodeSubsetDivisor:         "source division check value = {source} is not divisible by target value = {target}",
		CodeSubsetMax:             "target maximum value = {target} is smaller than source value = {source}",
		CodeSubsetMin:             "target minimum value = {target} is bigger than source value = {source}",
		CodeSubsetMaxLength:       "target maximum length = {target} is smaller than source value = {source}",
		CodeSubsetMinLength:       "target minimum length = {target} is bigger than source value = {source}",

		CodeDeclNaN:            `{property} is NaN, "not a number"`,
		CodeDeclNegative:       "{property} = {value} is negative",
		CodeDeclMinGtMax:       "required minimum value = {min} is greater than required maximum = {max}",
		CodeDeclMinGtMaxLength: "required minimum length = {min} is greater than required maximum length = {max}",
	},
	"ja": {
		CodeNullNotKind:      "値 = null は{kind}ではありません",
		CodeUndefinedNotKind: "値 = undefined は{kind}ではありません",
		CodeInvalidType:      "型 {type} の値は{kind}ではありません",
		CodeNaN:              "値が NaN (非数) です",
		CodeTooBig:           "数値 = {value} が最大値 = {max} を超えています",
		CodeTooSmall:         "数値 = {value} が最小値 = {min} を下回っています",
		CodeNotDivisible:     "数値 = {value} は {divisor} で割り切れません",
		CodeTooLong:          "文字列長 = {length} が最大長 = {max} を超えています",
		CodeTooShort:         "文字列長 = {length} が最小長 = {min} を下回っています",

		CodeSubsetTargetNull:      "対象スキーマが null です",
		CodeSubsetTargetUndefined: "対象スキーマが undefined です",
		CodeSubsetTargetPrimitive: "型 {type} の対象はスキーマではありません",
		CodeSubsetTargetNotSchema: "対象オブジェクトはスキーマではありません",
		CodeSubsetKindMismatch:    "{source} は {target} の部分集合になれません",
		CodeSubsetOptional:        "元のスキーマは null を許容しますが対象は許容しません",
		CodeSubsetDivisor:         "元の除数 = {source} は対象の除数 = {target} で割り切れません",
		CodeSubsetMax:             "対象の最大値 = {target} が元の値 = {source} より小さいです",
		CodeSubsetMin:             "対象の最小値 = {target} が元の値 = {source} より大きいです",
		CodeSubsetMaxLength:       "対象の最大長 = {target} が元の値 = {source} より小さいです",
		CodeSubsetMinLength:       "対象の最小長 = {target} が元の値 = {source} より大きいです",

		CodeDeclNaN:            "{property} が NaN (非数) です",
		CodeDeclNegative:       "{property} = {value} が負の値です",
		CodeDeclMinGtMax:       "最小値 = {min} が最大値 = {max} より大きいです",
		CodeDeclMinGtMaxLength: "最小長 = {min} が最大長 = {max} より大きいです",
	},
}

// Property descriptions used in declaration messages, keyed by language.
var properties = map[string]map[string]string{
	"ja": {
		"maximum required value": "最大値",
		"minimum required value": "最小値",
		"divisor value":          "除数",
		"minimum length":         "最小長",
	},
}

// dictTranslator is the built-in catalogue-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	tmpl, ok := catalogues[t.lang][code]
	if !ok {
		tmpl, ok = catalogues["en"][code]
	}
	if !ok {
		return code
	}
	if len(data) == 0 {
		return tmpl
	}
	pairs := make([]string, 0, len(data)*2)
	for k, v := range data {
		if k == "property" {
			if p, ok := properties[t.lang][v]; ok {
				v = p
			}
		}
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(tmpl)
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
