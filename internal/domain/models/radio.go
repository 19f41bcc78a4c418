package models

import (
	"fmt"
	"strings"

	"github.com/mamadbah2/avinventory/internal/i18n"
)

// Radio bounds and defaults.
const (
	MinPresets = 0
	MaxPresets = 100

	DefaultPresets        = 10
	DefaultFrequencyRange = "FM"
)

// RadioOptions lists the fields of a radio receiver record.
type RadioOptions struct {
	EquipmentOptions
	FrequencyRange string
	Bluetooth      bool
	Presets        int
}

// DefaultRadioOptions returns the options of an unspecified radio receiver.
// Start from it rather than a zero value: zero presets is a valid count.
func DefaultRadioOptions() RadioOptions {
	return RadioOptions{
		EquipmentOptions: DefaultEquipmentOptions(),
		FrequencyRange:   DefaultFrequencyRange,
		Presets:          DefaultPresets,
	}
}

// Radio extends Equipment with tuner characteristics.
type Radio struct {
	Equipment
	frequencyRange string
	bluetooth      bool
	presets        int
}

var _ Device = (*Radio)(nil)

// NewRadio builds a radio receiver record, normalizing every field.
func NewRadio(opts RadioOptions) *Radio {
	r := &Radio{}
	r.apply(opts.EquipmentOptions)
	r.SetFrequencyRange(opts.FrequencyRange)
	r.SetBluetooth(opts.Bluetooth)
	r.SetPresets(opts.Presets)
	return r
}

func (r *Radio) Kind() Kind { return KindRadio }

func (r *Radio) FrequencyRange() string { return r.frequencyRange }
func (r *Radio) Bluetooth() bool        { return r.bluetooth }
func (r *Radio) Presets() int           { return r.presets }

// SetFrequencyRange stores the range, or DefaultFrequencyRange when empty.
func (r *Radio) SetFrequencyRange(frequencyRange string) {
	r.frequencyRange = nonEmptyOr(frequencyRange, DefaultFrequencyRange)
}

func (r *Radio) SetBluetooth(bluetooth bool) { r.bluetooth = bluetooth }

// SetPresets stores n, or DefaultPresets when outside [MinPresets, MaxPresets].
func (r *Radio) SetPresets(n int) {
	r.presets = withinOr(n, MinPresets, MaxPresets, DefaultPresets)
}

func (r *Radio) Render(c *i18n.Catalog) string {
	var b strings.Builder
	r.renderHeader(&b, c, c.TypeRadio)
	fmt.Fprintf(&b, "%s: %s\n", c.FrequencyRange, r.frequencyRange)
	fmt.Fprintf(&b, "%s: %s\n", c.Bluetooth, c.FormatBool(r.bluetooth))
	fmt.Fprintf(&b, "%s: %d\n", c.Presets, r.presets)
	renderFooter(&b, c)
	return b.String()
}
