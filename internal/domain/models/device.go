package models

import (
	"cmp"

	"github.com/mamadbah2/avinventory/internal/i18n"
)

// Kind identifies the concrete record variant. It is fixed at creation.
type Kind string

const (
	KindEquipment  Kind = "equipment"
	KindTelevision Kind = "television"
	KindRadio      Kind = "radio"
)

// KindFromChoice maps the 1-based menu selector to a record kind.
func KindFromChoice(choice int) (Kind, bool) {
	switch choice {
	case 1:
		return KindEquipment, true
	case 2:
		return KindTelevision, true
	case 3:
		return KindRadio, true
	default:
		return "", false
	}
}

// Device is the capability set shared by every inventory record. Callers hold
// a Device and never need the concrete variant.
type Device interface {
	Kind() Kind

	Brand() string
	Model() string
	Price() int
	PowerConsumption() int

	SetBrand(brand string)
	SetModel(model string)
	SetPrice(price int)
	SetPowerConsumption(power int)

	// Render returns the multi-line description block for the record.
	Render(c *i18n.Catalog) string
	// Summary returns the one-line "brand model" form.
	Summary() string
}

// withinOr returns v when lo <= v <= hi and fallback otherwise.
// NaN is never within bounds.
func withinOr[T cmp.Ordered](v, lo, hi, fallback T) T {
	if v >= lo && v <= hi {
		return v
	}
	return fallback
}

func nonEmptyOr(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
