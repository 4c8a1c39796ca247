// File: keys.go
// Title: Message Keys
// Description: Keys of the messages used by the built-in checks. Every key
//              resolves to a pattern in the message bundles.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package verify

// MessageKey identifies a message pattern in the bundles
type MessageKey string

// String returns the key
func (k MessageKey) String() string {
	return string(k)
}

// Report templates
const (
	KeyMust        MessageKey = "report.must"
	KeyMustNot     MessageKey = "report.must_not"
	KeyDefaultName MessageKey = "report.default_name"
	KeyFallback    MessageKey = "report.fallback"
	KeyCheck       MessageKey = "check"
)

// Object checks
const (
	KeyEqualTo       MessageKey = "object.equal_to"
	KeyEqualToAny    MessageKey = "object.equal_to_any"
	KeyNil           MessageKey = "object.nil"
	KeyZero          MessageKey = "object.zero"
	KeySameAs        MessageKey = "object.same_as"
	KeySameAsAny     MessageKey = "object.same_as_any"
	KeyInstanceOf    MessageKey = "object.instance_of"
	KeyInstanceOfAll MessageKey = "object.instance_of_all"
	KeyInstanceOfAny MessageKey = "object.instance_of_any"
	KeyThat          MessageKey = "object.that"
)

// Ordered checks
const (
	KeyBetween              MessageKey = "ordered.between"
	KeyBetweenExclusive     MessageKey = "ordered.between_exclusive"
	KeyGreaterThan          MessageKey = "ordered.greater_than"
	KeyGreaterThanOrEqualTo MessageKey = "ordered.greater_than_or_equal_to"
	KeyLessThan             MessageKey = "ordered.less_than"
	KeyLessThanOrEqualTo    MessageKey = "ordered.less_than_or_equal_to"
)

// Number checks
const (
	KeyEven     MessageKey = "number.even"
	KeyOdd      MessageKey = "number.odd"
	KeyPositive MessageKey = "number.positive"
	KeyNegative MessageKey = "number.negative"
	KeyOne      MessageKey = "number.one"
	KeyNaN      MessageKey = "number.nan"
	KeyInfinite MessageKey = "number.infinite"
	KeyWhole    MessageKey = "number.whole"
	KeyInteger  MessageKey = "number.integer"
	KeyMaxScale MessageKey = "number.max_scale"
)

// String checks
const (
	KeyAlpha                MessageKey = "string.alpha"
	KeyAlphanumeric         MessageKey = "string.alphanumeric"
	KeyAlphaSpace           MessageKey = "string.alpha_space"
	KeyAlphanumericSpace    MessageKey = "string.alphanumeric_space"
	KeyASCIIPrintable       MessageKey = "string.ascii_printable"
	KeyBlank                MessageKey = "string.blank"
	KeyEmpty                MessageKey = "string.empty"
	KeyContain              MessageKey = "string.contain"
	KeyContainAll           MessageKey = "string.contain_all"
	KeyContainAny           MessageKey = "string.contain_any"
	KeyContainIgnoreCase    MessageKey = "string.contain_ignore_case"
	KeyContainAllIgnoreCase MessageKey = "string.contain_all_ignore_case"
	KeyContainAnyIgnoreCase MessageKey = "string.contain_any_ignore_case"
	KeyStartWith            MessageKey = "string.start_with"
	KeyStartWithAny         MessageKey = "string.start_with_any"
	KeyStartWithIgnoreCase  MessageKey = "string.start_with_ignore_case"
	KeyEndWith              MessageKey = "string.end_with"
	KeyEndWithAny           MessageKey = "string.end_with_any"
	KeyEndWithIgnoreCase    MessageKey = "string.end_with_ignore_case"
	KeyEqualToIgnoreCase    MessageKey = "string.equal_to_ignore_case"
	KeyLowerCase            MessageKey = "string.lower_case"
	KeyUpperCase            MessageKey = "string.upper_case"
	KeyMatch                MessageKey = "string.match"
	KeyMatchAll             MessageKey = "string.match_all"
	KeyMatchAny             MessageKey = "string.match_any"
	KeyNumeric              MessageKey = "string.numeric"
	KeyNumericSpace         MessageKey = "string.numeric_space"
	KeyWhitespace           MessageKey = "string.whitespace"
	KeyLength               MessageKey = "string.size_of"
	KeyEmail                MessageKey = "string.email"
	KeyURL                  MessageKey = "string.url"
	KeyUUID                 MessageKey = "string.uuid"
)

// Bool checks
const (
	KeyTrue  MessageKey = "bool.true"
	KeyFalse MessageKey = "bool.false"
)

// Rune checks
const (
	KeyLetter         MessageKey = "rune.letter"
	KeyDigit          MessageKey = "rune.digit"
	KeyLetterOrDigit  MessageKey = "rune.letter_or_digit"
	KeyRuneLowerCase  MessageKey = "rune.lower_case"
	KeyRuneUpperCase  MessageKey = "rune.upper_case"
	KeyRuneWhitespace MessageKey = "rune.whitespace"
	KeyASCII          MessageKey = "rune.ascii"
	KeyRuneASCIIPrint MessageKey = "rune.ascii_printable"
)

// Collection and map checks
const (
	KeyElement          MessageKey = "collection.contain"
	KeyAllElements      MessageKey = "collection.contain_all"
	KeyAnyElement       MessageKey = "collection.contain_any"
	KeyCollectionEmpty  MessageKey = "collection.empty"
	KeySize             MessageKey = "collection.size_of"
	KeyContainKey       MessageKey = "map.contain_key"
	KeyContainAllKeys   MessageKey = "map.contain_all_keys"
	KeyContainAnyKey    MessageKey = "map.contain_any_key"
	KeyContainValue     MessageKey = "map.contain_value"
	KeyContainAllValues MessageKey = "map.contain_all_values"
	KeyContainAnyValue  MessageKey = "map.contain_any_value"
)

// Time checks
const (
	KeyAfter          MessageKey = "time.after"
	KeyAfterOrSameAs  MessageKey = "time.after_or_same_as"
	KeyBefore         MessageKey = "time.before"
	KeyBeforeOrSameAs MessageKey = "time.before_or_same_as"
	KeyTimeBetween    MessageKey = "time.between"
	KeySameDayAs      MessageKey = "time.same_day_as"
	KeyWeekday        MessageKey = "time.weekday"
	KeyPast           MessageKey = "time.past"
	KeyFuture         MessageKey = "time.future"
)

// Error checks
const (
	KeyErrorMessage        MessageKey = "error.message"
	KeyErrorMessageContain MessageKey = "error.message_contain"
	KeyCausedBy            MessageKey = "error.caused_by"
	KeyCausedByType        MessageKey = "error.caused_by_type"
	KeyCoded               MessageKey = "error.coded"
	KeyWrapped             MessageKey = "error.wrapped"
)

// Locale checks
const (
	KeyLocaleAvailable MessageKey = "locale.available"
	KeyLocaleDefault   MessageKey = "locale.default"
	KeyLocaleLanguage  MessageKey = "locale.language"
	KeyLocaleRegion    MessageKey = "locale.region"
	KeyLocaleScript    MessageKey = "locale.script"
	KeyLocaleRoot      MessageKey = "locale.root"
)

// Type checks
const (
	KeyAssignableTo   MessageKey = "type.assignable_to"
	KeyAssignableFrom MessageKey = "type.assignable_from"
	KeyImplements     MessageKey = "type.implements"
	KeyKind           MessageKey = "type.kind"
	KeyPointerType    MessageKey = "type.pointer"
	KeySliceType      MessageKey = "type.slice"
	KeyArrayType      MessageKey = "type.array"
	KeyMapType        MessageKey = "type.map"
	KeyStructType     MessageKey = "type.struct"
	KeyInterfaceType  MessageKey = "type.interface"
	KeyFuncType       MessageKey = "type.func"
	KeyChanType       MessageKey = "type.chan"
	KeyNumericType    MessageKey = "type.numeric"
	KeyNamedType      MessageKey = "type.named"
)
