// Package outcome shapes the result of a bank slip operation into a
// transport-neutral value: a classification, named headers and a body.
package outcome

import (
	"errors"
	"reflect"
)

// Classification is the transport-neutral result class of an operation.
type Classification int

const (
	Unclassified Classification = iota
	Found
	Created
	BadRequest
	NotFound
	Unprocessable
	InternalError
)

var classificationNames = map[Classification]string{
	Unclassified:  "UNCLASSIFIED",
	Found:         "FOUND",
	Created:       "CREATED",
	BadRequest:    "BAD_REQUEST",
	NotFound:      "NOT_FOUND",
	Unprocessable: "UNPROCESSABLE",
	InternalError: "INTERNAL_ERROR",
}

func (c Classification) String() string {
	if name, ok := classificationNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}

// Builder errors
var (
	ErrEmptyKey     = errors.New("a header key must not be empty")
	ErrKeyRequired  = errors.New("a header key must be set first")
	ErrEmptyValue   = errors.New("a header value must not be empty")
	ErrAlreadyBuilt = errors.New("outcome already built")
)

// Outcome is the final result handed to the transport layer.
type Outcome struct {
	Classification Classification
	Headers        map[string][]string
	Body           any
}

// Header returns the first value of key, or "" when absent.
func (o Outcome) Header(key string) string {
	if values := o.Headers[key]; len(values) > 0 {
		return values[0]
	}
	return ""
}

// HasBody reports whether the outcome carries a body.
func (o Outcome) HasBody() bool {
	return o.Body != nil
}

// Builder accumulates an Outcome. It is not safe for concurrent use and
// builds exactly once.
//
// The first misuse (a value without a key, an empty key or value) is kept
// and reported by Build; later calls are ignored.
type Builder struct {
	headers  map[string][]string
	key      string
	body     any
	explicit Classification
	err      error
	built    bool
}

// New returns an empty Builder.
func New() *Builder {
	return &Builder{}
}

// Body sets the body. Without an explicit classification the outcome is
// Found, or NotFound when the body is nil or an empty sequence.
func (b *Builder) Body(body any) *Builder {
	b.body = body
	return b
}

// Key selects the header that the next Value call appends to.
func (b *Builder) Key(key string) *Builder {
	if b.err != nil {
		return b
	}
	if key == "" {
		b.err = ErrEmptyKey
		return b
	}
	b.key = key

	return b
}

// Value appends value to the header selected by the preceding Key call.
func (b *Builder) Value(value string) *Builder {
	if b.err != nil {
		return b
	}
	if b.key == "" {
		b.err = ErrKeyRequired
		return b
	}
	if value == "" {
		b.err = ErrEmptyValue
		return b
	}
	if b.headers == nil {
		b.headers = make(map[string][]string)
	}
	b.headers[b.key] = append(b.headers[b.key], value)
	b.key = ""

	return b
}

// Header is shorthand for Key(key) followed by Value for each value.
func (b *Builder) Header(key string, values ...string) *Builder {
	for _, v := range values {
		b.Key(key).Value(v)
	}
	return b
}

// Status sets an explicit classification, overriding the one derived from the body.
func (b *Builder) Status(c Classification) *Builder {
	b.explicit = c
	return b
}

func (b *Builder) Found() *Builder         { return b.Status(Found) }
func (b *Builder) Created() *Builder       { return b.Status(Created) }
func (b *Builder) BadRequest() *Builder    { return b.Status(BadRequest) }
func (b *Builder) NotFound() *Builder      { return b.Status(NotFound) }
func (b *Builder) Unprocessable() *Builder { return b.Status(Unprocessable) }
func (b *Builder) InternalError() *Builder { return b.Status(InternalError) }

// Build produces the Outcome. A Builder can be built only once.
func (b *Builder) Build() (Outcome, error) {
	if b.built {
		return Outcome{}, ErrAlreadyBuilt
	}
	b.built = true

	if b.err != nil {
		return Outcome{}, b.err
	}

	class := b.explicit
	if class == Unclassified {
		class = classify(b.body)
	}

	return Outcome{
		Classification: class,
		Headers:        b.headers,
		Body:           b.body,
	}, nil
}

func classify(body any) Classification {
	if body == nil || isEmptySequence(body) {
		return NotFound
	}
	return Found
}

func isEmptySequence(body any) bool {
	v := reflect.ValueOf(body)
	switch v.Kind() {
	case reflect.Slice, reflect.Array:
		return v.Len() == 0
	default:
		return false
	}
}
