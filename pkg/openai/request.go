package openai

import (
	"errors"
	"net/url"
	"strconv"
)

// Request describes the shape of one API operation: its method, its path with
// identifiers already substituted, and its query and body.
//
// Identifiers are interpolated into paths as given. Callers must pass values that
// are valid path segments; they are not escaped.
type Request interface {
	Method() string
	Path() string
	// Query returns nil when the operation takes no query parameters.
	Query() url.Values
	// Body returns nil when the operation has no body. It fails only when a
	// file or data parameter cannot be coerced into a Part.
	Body() (*Body, error)
}

// BodyType is the encoding of a request body.
type BodyType int

// Body encodings.
const (
	BodyJSON BodyType = iota + 1
	BodyMultipart
)

// Body is the rendered body of a request. Only the field matching Type is set.
type Body struct {
	Type   BodyType
	JSON   map[string]interface{}
	Fields []FormField
}

// FormField is one named part of a multipart body.
type FormField struct {
	Name string
	Part Part
}

// Lookup returns the parts named name, in body order.
func (b *Body) Lookup(name string) []Part {
	var parts []Part

	for _, field := range b.Fields {
		if field.Name == name {
			parts = append(parts, field.Part)
		}
	}

	return parts
}

type jsonBody map[string]interface{}

func (b jsonBody) body() *Body {
	return &Body{Type: BodyJSON, JSON: b}
}

func setOptional[T any](body jsonBody, key string, value Optional[T]) {
	if v, ok := value.Get(); ok {
		body[key] = v
	}
}

func setOptionalText(body jsonBody, key string, value Optional[TextInput]) {
	if v, ok := value.Get(); ok {
		body[key] = v.Value()
	}
}

func queryString(q url.Values, key string, value Optional[string]) {
	if v, ok := value.Get(); ok {
		q.Set(key, v)
	}
}

func queryInt(q url.Values, key string, value Optional[int]) {
	if v, ok := value.Get(); ok {
		q.Set(key, strconv.Itoa(v))
	}
}

// cursorQuery renders the after/limit pair shared by list endpoints.
func cursorQuery(after Optional[string], limit Optional[int]) url.Values {
	q := url.Values{}
	queryString(q, "after", after)
	queryInt(q, "limit", limit)

	return q
}

type formBuilder struct {
	fields []FormField
	err    error
}

func (f *formBuilder) file(name string, input FileInput) {
	if f.err != nil {
		return
	}

	part, err := EnsureFile(input)
	if err != nil {
		f.err = withField(err, name)

		return
	}

	f.fields = append(f.fields, FormField{Name: name, Part: part})
}

func (f *formBuilder) optionalFile(name string, input Optional[FileInput]) {
	if v, ok := input.Get(); ok {
		f.file(name, v)
	}
}

func (f *formBuilder) data(name string, input DataInput) {
	if f.err != nil {
		return
	}

	part, err := EnsureData(input)
	if err != nil {
		f.err = withField(err, name)

		return
	}

	f.fields = append(f.fields, FormField{Name: name, Part: part})
}

func (f *formBuilder) text(name, value string) {
	f.fields = append(f.fields, FormField{Name: name, Part: StringPart("", value)})
}

func (f *formBuilder) optionalText(name string, value Optional[string]) {
	if v, ok := value.Get(); ok {
		f.text(name, v)
	}
}

func (f *formBuilder) optionalInt(name string, value Optional[int]) {
	if v, ok := value.Get(); ok {
		f.fields = append(f.fields, FormField{Name: name, Part: IntPart("", int64(v))})
	}
}

func (f *formBuilder) optionalFloat(name string, value Optional[float64]) {
	if v, ok := value.Get(); ok {
		f.text(name, strconv.FormatFloat(v, 'f', -1, 64))
	}
}

// optionalList writes one "name[]" field per element. An empty list writes
// nothing.
func (f *formBuilder) optionalList(name string, value Optional[[]string]) {
	if values, ok := value.Get(); ok {
		for _, v := range values {
			f.text(name+"[]", v)
		}
	}
}

func (f *formBuilder) body() (*Body, error) {
	if f.err != nil {
		return nil, f.err
	}

	return &Body{Type: BodyMultipart, Fields: f.fields}, nil
}

func withField(err error, field string) error {
	validationErr := &ValidationError{}
	if errors.As(err, &validationErr) {
		return &ValidationError{Field: field, Value: validationErr.Value, Reason: validationErr.Reason}
	}

	return err
}
