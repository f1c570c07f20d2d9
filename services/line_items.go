package services

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strings"
	"unicode"

	"github.com/google/uuid"
	"github.com/spf13/cast"
)

var (
	// ErrItemNotFound is returned when no line item has the requested ID.
	ErrItemNotFound = errors.New("line item not found")

	// ErrUnknownField is returned by ItemList.Update for a field that cannot be edited.
	ErrUnknownField = errors.New("unknown line item field")
)

// Editable line item fields.
const (
	FieldDescription = "description"
	FieldQuantity    = "quantity"
	FieldRate        = "rate"
)

// ItemList is the working list of line items for one estimate. It is owned
// by a single caller and is not safe for concurrent mutation. Pass Items()
// to CalculateEstimate to price it.
type ItemList struct {
	items []LineItem
}

// NewItemList returns a list seeded with copies of items. Items without an ID
// are given one.
func NewItemList(items ...LineItem) *ItemList {
	l := &ItemList{}
	for _, item := range items {
		if item.ID == "" {
			item.ID = uuid.NewString()
		}
		item.Total = 0
		l.items = append(l.items, item)
	}
	return l
}

// Add appends a line for a rate card entry with a quantity of 1.
func (l *ItemList) Add(entry RateEntry) LineItem {
	item := LineItem{
		ID:          uuid.NewString(),
		Description: entry.Description,
		Quantity:    1,
		Unit:        entry.Unit,
		Rate:        entry.Rate,
	}
	l.items = append(l.items, item)
	return item
}

// AddCustom appends a blank priced line for work that is not on the rate card.
func (l *ItemList) AddCustom() LineItem {
	item := LineItem{
		ID:          uuid.NewString(),
		Description: "Custom item",
		Quantity:    1,
		Unit:        "item",
		Rate:        0,
	}
	l.items = append(l.items, item)
	return item
}

// Update sets one field of the item with the given ID from a raw form value.
// Quantity and rate take the leading number of the value, so "12 m" is 12;
// values with no leading number are stored as 0.
func (l *ItemList) Update(id, field, value string) error {
	idx := l.indexOf(id)
	if idx < 0 {
		return fmt.Errorf("update %s: %w", id, ErrItemNotFound)
	}

	switch field {
	case FieldDescription:
		l.items[idx].Description = value
	case FieldQuantity:
		l.items[idx].Quantity = leadingFloat(value)
	case FieldRate:
		l.items[idx].Rate = leadingFloat(value)
	default:
		return fmt.Errorf("update %s: %q: %w", id, field, ErrUnknownField)
	}
	return nil
}

// Items returns a copy of the current line items in insertion order.
func (l *ItemList) Items() []LineItem {
	out := make([]LineItem, len(l.items))
	copy(out, l.items)
	return out
}

// Len returns the number of line items.
func (l *ItemList) Len() int {
	return len(l.items)
}

func (l *ItemList) setUnit(id, unit string) {
	if idx := l.indexOf(id); idx >= 0 {
		l.items[idx].Unit = unit
	}
}

var leadingNumber = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// leadingFloat parses the decimal number at the start of s after leading
// whitespace, ignoring anything after it. A leading "Infinity" gives ±Inf.
// It returns 0 when s does not start with a number.
func leadingFloat(s string) float64 {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	if m := leadingNumber.FindString(s); m != "" {
		return cast.ToFloat64(m)
	}
	sign, rest := 1.0, s
	if r := strings.TrimPrefix(s, "-"); r != s {
		sign, rest = -1, r
	} else {
		rest = strings.TrimPrefix(s, "+")
	}
	if strings.HasPrefix(rest, "Infinity") {
		return math.Inf(int(sign))
	}
	return 0
}

func (l *ItemList) indexOf(id string) int {
	for i, item := range l.items {
		if item.ID == id {
			return i
		}
	}
	return -1
}
