package models

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mamadbah2/avinventory/internal/i18n"
)

// Television bounds and defaults.
const (
	MinScreenSize = 10.0
	MaxScreenSize = 100.0

	DefaultScreenSize = 32.0
	DefaultResolution = "1920x1080"
)

// TelevisionOptions lists the fields of a television record.
type TelevisionOptions struct {
	EquipmentOptions
	ScreenSize float64
	Resolution string
	SmartTV    bool
}

// DefaultTelevisionOptions returns the options of an unspecified television.
func DefaultTelevisionOptions() TelevisionOptions {
	return TelevisionOptions{
		EquipmentOptions: DefaultEquipmentOptions(),
		ScreenSize:       DefaultScreenSize,
		Resolution:       DefaultResolution,
	}
}

// Television extends Equipment with screen characteristics.
type Television struct {
	Equipment
	screenSize float64
	resolution string
	smartTV    bool
}

var _ Device = (*Television)(nil)

// NewTelevision builds a television record, normalizing every field.
func NewTelevision(opts TelevisionOptions) *Television {
	tv := &Television{}
	tv.apply(opts.EquipmentOptions)
	tv.SetScreenSize(opts.ScreenSize)
	tv.SetResolution(opts.Resolution)
	tv.SetSmartTV(opts.SmartTV)
	return tv
}

func (t *Television) Kind() Kind { return KindTelevision }

func (t *Television) ScreenSize() float64 { return t.screenSize }
func (t *Television) Resolution() string  { return t.resolution }
func (t *Television) SmartTV() bool       { return t.smartTV }

// SetScreenSize stores size, or DefaultScreenSize when outside
// [MinScreenSize, MaxScreenSize].
func (t *Television) SetScreenSize(size float64) {
	t.screenSize = withinOr(size, MinScreenSize, MaxScreenSize, DefaultScreenSize)
}

// SetResolution stores resolution, or DefaultResolution when empty.
func (t *Television) SetResolution(resolution string) {
	t.resolution = nonEmptyOr(resolution, DefaultResolution)
}

func (t *Television) SetSmartTV(smart bool) { t.smartTV = smart }

func (t *Television) Render(c *i18n.Catalog) string {
	var b strings.Builder
	t.renderHeader(&b, c, c.TypeTelevision)
	fmt.Fprintf(&b, "%s: %s\"\n", c.ScreenSize, strconv.FormatFloat(t.screenSize, 'f', -1, 64))
	fmt.Fprintf(&b, "%s: %s\n", c.Resolution, t.resolution)
	fmt.Fprintf(&b, "%s: %s\n", c.SmartTV, c.FormatBool(t.smartTV))
	renderFooter(&b, c)
	return b.String()
}
