package hrid

import (
	"errors"
	"fmt"
)

// ErrSpaceOverflow indicates the identifier space of the configured elements
// exceeds the encodable uint64 range. Generate still works; Encode and Decode
// do not.
var ErrSpaceOverflow = errors.New("identifier space exceeds the encodable range")

// ErrUnknownElement indicates a configured element name has no category in
// the active catalog.
type ErrUnknownElement struct {
	Element string
}

func (e *ErrUnknownElement) Error() string {
	return fmt.Sprintf("unknown element '%s': no such category in the active word lists", e.Element)
}

func NewErrUnknownElement(element string) *ErrUnknownElement {
	return &ErrUnknownElement{Element: element}
}

// ErrInvalidCatalog indicates a catalog category is structurally invalid:
// an empty word list or an inverted number range.
type ErrInvalidCatalog struct {
	Category string
}

func (e *ErrInvalidCatalog) Error() string {
	return fmt.Sprintf("invalid catalog: category '%s' has no candidates", e.Category)
}

func NewErrInvalidCatalog(category string) *ErrInvalidCatalog {
	return &ErrInvalidCatalog{Category: category}
}

// ErrValueOutOfRange indicates the value passed to Encode is larger than the
// generator's MaxValue.
type ErrValueOutOfRange struct {
	Value uint64
	Max   uint64
}

func (e *ErrValueOutOfRange) Error() string {
	return fmt.Sprintf("value %d out of range: must be at most %d", e.Value, e.Max)
}

func NewErrValueOutOfRange(value, max uint64) *ErrValueOutOfRange {
	return &ErrValueOutOfRange{Value: value, Max: max}
}

// ErrSegmentCount indicates a decoded identifier does not split into as many
// segments as the generator has elements.
type ErrSegmentCount struct {
	Want int
	Got  int
}

func (e *ErrSegmentCount) Error() string {
	return fmt.Sprintf("expected %d segments, got %d", e.Want, e.Got)
}

func NewErrSegmentCount(want, got int) *ErrSegmentCount {
	return &ErrSegmentCount{Want: want, Got: got}
}

// ErrUnknownWord indicates a decoded segment is not a candidate of the
// category at its position.
type ErrUnknownWord struct {
	Word    string
	Element string
}

func (e *ErrUnknownWord) Error() string {
	return fmt.Sprintf("word '%s' not found in category '%s'", e.Word, e.Element)
}

func NewErrUnknownWord(word, element string) *ErrUnknownWord {
	return &ErrUnknownWord{Word: word, Element: element}
}

func IsUnknownElementError(err error) bool {
	var e *ErrUnknownElement
	return errors.As(err, &e)
}

func IsInvalidCatalogError(err error) bool {
	var e *ErrInvalidCatalog
	return errors.As(err, &e)
}

func IsValueOutOfRangeError(err error) bool {
	var e *ErrValueOutOfRange
	return errors.As(err, &e)
}

func IsUnknownWordError(err error) bool {
	var e *ErrUnknownWord
	return errors.As(err, &e)
}
