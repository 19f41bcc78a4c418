package models

import (
	"fmt"
	"strings"

	"github.com/mamadbah2/avinventory/internal/i18n"
)

// Equipment bounds and defaults. Out-of-range values reset to the default,
// not to the nearest bound.
const (
	MinPrice = 0
	MaxPrice = 100000
	MinPower = 0
	MaxPower = 2000

	DefaultBrand = "Unknown"
	DefaultModel = "Unknown"
	DefaultPrice = 0
	DefaultPower = 0
)

// EquipmentOptions lists the fields of a base record.
type EquipmentOptions struct {
	Brand            string
	Model            string
	Price            int
	PowerConsumption int
}

// DefaultEquipmentOptions returns the options of an unspecified device.
func DefaultEquipmentOptions() EquipmentOptions {
	return EquipmentOptions{
		Brand:            DefaultBrand,
		Model:            DefaultModel,
		Price:            DefaultPrice,
		PowerConsumption: DefaultPower,
	}
}

// Equipment is the base audio/video record.
type Equipment struct {
	brand            string
	model            string
	price            int
	powerConsumption int
}

var _ Device = (*Equipment)(nil)

// NewEquipment builds a base record, normalizing every field.
func NewEquipment(opts EquipmentOptions) *Equipment {
	e := &Equipment{}
	e.apply(opts)
	return e
}

func (e *Equipment) apply(opts EquipmentOptions) {
	e.SetBrand(opts.Brand)
	e.SetModel(opts.Model)
	e.SetPrice(opts.Price)
	e.SetPowerConsumption(opts.PowerConsumption)
}

func (e *Equipment) Kind() Kind { return KindEquipment }

func (e *Equipment) Brand() string         { return e.brand }
func (e *Equipment) Model() string         { return e.model }
func (e *Equipment) Price() int            { return e.price }
func (e *Equipment) PowerConsumption() int { return e.powerConsumption }

// SetBrand stores brand, or DefaultBrand when empty.
func (e *Equipment) SetBrand(brand string) { e.brand = nonEmptyOr(brand, DefaultBrand) }

// SetModel stores model, or DefaultModel when empty.
func (e *Equipment) SetModel(model string) { e.model = nonEmptyOr(model, DefaultModel) }

// SetPrice stores price, or DefaultPrice when outside [MinPrice, MaxPrice].
func (e *Equipment) SetPrice(price int) {
	e.price = withinOr(price, MinPrice, MaxPrice, DefaultPrice)
}

// SetPowerConsumption stores power, or DefaultPower when outside [MinPower, MaxPower].
func (e *Equipment) SetPowerConsumption(power int) {
	e.powerConsumption = withinOr(power, MinPower, MaxPower, DefaultPower)
}

func (e *Equipment) Summary() string {
	return e.brand + " " + e.model
}

func (e *Equipment) Render(c *i18n.Catalog) string {
	var b strings.Builder
	e.renderHeader(&b, c, c.TypeEquipment)
	renderFooter(&b, c)
	return b.String()
}

// renderHeader writes the type label followed by the base fields.
func (e *Equipment) renderHeader(b *strings.Builder, c *i18n.Catalog, typeLabel string) {
	fmt.Fprintf(b, "%s: %s\n", c.TypeLabel, typeLabel)
	fmt.Fprintf(b, "%s: %s\n", c.Brand, e.brand)
	fmt.Fprintf(b, "%s: %s\n", c.Model, e.model)
	fmt.Fprintf(b, "%s: %d %s\n", c.Price, e.price, c.Currency)
	fmt.Fprintf(b, "%s: %d %s\n", c.Power, e.powerConsumption, c.PowerUnit)
}

func renderFooter(b *strings.Builder, c *i18n.Catalog) {
	b.WriteString(c.Separator)
	b.WriteByte('\n')
}
