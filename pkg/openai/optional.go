package openai

// Optional holds a parameter that may be left out of a request.
//
// The zero value is absent. A value wrapped with Some is always sent, including
// "", 0, false and empty slices, which are meaningful payloads for several
// endpoints. The one exception is an empty list in a multipart body: a form has
// no encoding for it, so it writes no "name[]" fields and reads as absent.
type Optional[T any] struct {
	value T
	set   bool
}

// Some returns a present Optional holding value.
func Some[T any](value T) Optional[T] {
	return Optional[T]{value: value, set: true}
}

// None returns an absent Optional. It is equivalent to the zero value.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// Get returns the value and whether it is present.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.set
}

// IsSet reports whether the value is present.
func (o Optional[T]) IsSet() bool {
	return o.set
}

// TextInput is a parameter that accepts either a single string or a list of strings.
type TextInput struct {
	text   string
	texts  []string
	isList bool
}

// Text returns a TextInput rendered as a single JSON string.
func Text(text string) TextInput {
	return TextInput{text: text}
}

// Texts returns a TextInput rendered as a JSON array, even with one element.
func Texts(texts ...string) TextInput {
	return TextInput{texts: texts, isList: true}
}

// IsList reports whether the input renders as an array.
func (t TextInput) IsList() bool {
	return t.isList
}

// Value returns the wire representation: a string or a []string.
func (t TextInput) Value() interface{} {
	if t.isList {
		if t.texts == nil {
			return []string{}
		}

		return t.texts
	}

	return t.text
}
