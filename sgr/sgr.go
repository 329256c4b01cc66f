/*
Package sgr models terminal colors and attributes as values which emit
their own SGR escape sequences. A Color is one of the variants of the
taxonomy below: a foreground (optionally with attribute modifiers), a
background, one of five underline shapes, superscript or subscript text,
inverse or invisible rendition, or a reset. Every Color knows the byte
sequences that switch it on and off.

Colors are grouped into classes. The terminal printer in package term
keeps one stack per stacked class, so that closing an inner color
restores the enclosing color of the same class automatically:

	foreground: Foreground, Plain, Superscript, Subscript
	background: Background
	underline:  Underline, DoubleUnderline, CurlyUnderline,
	            DottedUnderline, DashedUnderline
	style:      Inverse, Invisible, Reset (emitted, never stacked)

The attribute modifiers (Bold, Italic, …) apply to foreground-class
colors only; calling one on any other variant is a programming error and
panics.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2023–25, the obelizmo authors

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package sgr

import (
	"fmt"
	"strconv"
)

// Class partitions colors by the terminal state they affect. The printer
// in package term keeps one style stack per class except StyleClass,
// whose off-sequences are independent of any enclosing color.
type Class uint8

const (
	FgClass Class = iota
	BgClass
	UlClass
	StyleClass
)

// Base enumerates the eight basic terminal colors.
type Base uint8

const (
	Black Base = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
)

// --- Hue -------------------------------------------------------------------

type hueForm uint8

const (
	hueDefault hueForm = iota
	hueBasic
	huePalette
	hueRGB
)

// Hue selects a concrete color value: the terminal's default, one of the
// eight basic colors, a 256-palette index, or a 24-bit RGB triple. The
// zero Hue is the default.
type Hue struct {
	form    hueForm
	base    Base
	index   uint8
	r, g, b uint8
}

// Default is the terminal's default color.
func Default() Hue {
	return Hue{}
}

// Basic is one of the eight basic colors.
func Basic(b Base) Hue {
	return Hue{form: hueBasic, base: b}
}

// Palette is a 256-color palette index.
func Palette(n uint8) Hue {
	return Hue{form: huePalette, index: n}
}

// RGB is a 24-bit color.
func RGB(r, g, b uint8) Hue {
	return Hue{form: hueRGB, r: r, g: g, b: b}
}

// --- Color -----------------------------------------------------------------

type variant uint8

const (
	vForeground variant = iota
	vSuperscript
	vSubscript
	vBackground
	vUnderline
	vDoubleUnderline
	vCurlyUnderline
	vDottedUnderline
	vDashedUnderline
	vInverse
	vInvisible
	vReset
)

type styleFlag uint8

const (
	flagBold styleFlag = 1 << iota
	flagFaint
	flagItalic
	flagBlink
	flagRapidBlink
	flagStrikethrough
	flagOverline
)

// Resets selects which attribute groups a Reset color switches off. The
// zero value means a full reset (SGR 0).
type Resets struct {
	All            bool
	Neutral        bool // bold and faint
	Upright        bool // italic
	Steady         bool // blink
	Baseline       bool // superscript and subscript
	Foreground     bool
	Background     bool
	Underline      bool
	UnderlineColor bool
}

// Color is one variant of the style taxonomy. The zero Color is a plain
// foreground with no hue and no attributes; it emits nothing.
type Color struct {
	v      variant
	hue    Hue
	hasHue bool
	styles styleFlag
	resets Resets
}

// Foreground colors the text itself.
func Foreground(h Hue) Color {
	return Color{v: vForeground, hue: h, hasHue: true}
}

// Plain is a foreground carrying no color of its own, a base for the
// attribute modifiers: Plain().Bold(), Plain().Italic() and so on.
func Plain() Color {
	return Color{v: vForeground}
}

// Superscript raises the text to superscript, optionally colored.
func Superscript(h Hue) Color {
	return Color{v: vSuperscript, hue: h, hasHue: true}
}

// Subscript lowers the text to subscript, optionally colored.
func Subscript(h Hue) Color {
	return Color{v: vSubscript, hue: h, hasHue: true}
}

// Background colors the cell background.
func Background(h Hue) Color {
	return Color{v: vBackground, hue: h}
}

// Underline underlines with a single line. Basic hues are emulated
// through the palette, which shares its first eight indices with the
// basic colors.
func Underline(h Hue) Color {
	return Color{v: vUnderline, hue: h}
}

// DoubleUnderline underlines with a double line.
func DoubleUnderline(h Hue) Color {
	return Color{v: vDoubleUnderline, hue: h}
}

// CurlyUnderline underlines with a curly line.
func CurlyUnderline(h Hue) Color {
	return Color{v: vCurlyUnderline, hue: h}
}

// DottedUnderline underlines with a dotted line.
func DottedUnderline(h Hue) Color {
	return Color{v: vDottedUnderline, hue: h}
}

// DashedUnderline underlines with a dashed line.
func DashedUnderline(h Hue) Color {
	return Color{v: vDashedUnderline, hue: h}
}

// Inverse swaps foreground and background.
func Inverse() Color {
	return Color{v: vInverse}
}

// Invisible hides the text.
func Invisible() Color {
	return Color{v: vInvisible}
}

// Reset switches attribute groups off. Reset's on-sequence does the
// resetting; its off-sequence is empty.
func Reset(r Resets) Color {
	return Color{v: vReset, resets: r}
}

// ResetAll is Reset with every group selected, SGR 0.
func ResetAll() Color {
	return Color{v: vReset, resets: Resets{All: true}}
}

// Class returns the color's class.
func (c Color) Class() Class {
	switch c.v {
	case vForeground, vSuperscript, vSubscript:
		return FgClass
	case vBackground:
		return BgClass
	case vUnderline, vDoubleUnderline, vCurlyUnderline, vDottedUnderline, vDashedUnderline:
		return UlClass
	}
	return StyleClass
}

// --- Modifiers -------------------------------------------------------------

func (c Color) mustForeground(op string) {
	if c.Class() != FgClass {
		panic("sgr: " + op + " applies to foreground colors only")
	}
}

// Bold renders bold. Panics unless c is foreground-class.
func (c Color) Bold() Color {
	c.mustForeground("Bold")
	c.styles |= flagBold
	return c
}

// Faint renders faint. Panics unless c is foreground-class.
func (c Color) Faint() Color {
	c.mustForeground("Faint")
	c.styles |= flagFaint
	return c
}

// Italic renders italic. Panics unless c is foreground-class.
func (c Color) Italic() Color {
	c.mustForeground("Italic")
	c.styles |= flagItalic
	return c
}

// Blink renders blinking. Panics unless c is foreground-class.
func (c Color) Blink() Color {
	c.mustForeground("Blink")
	c.styles |= flagBlink
	return c
}

// RapidBlink renders rapidly blinking. Panics unless c is foreground-class.
func (c Color) RapidBlink() Color {
	c.mustForeground("RapidBlink")
	c.styles |= flagRapidBlink
	return c
}

// Strikethrough renders struck through. Panics unless c is foreground-class.
func (c Color) Strikethrough() Color {
	c.mustForeground("Strikethrough")
	c.styles |= flagStrikethrough
	return c
}

// Overline renders overlined. Panics unless c is foreground-class.
func (c Color) Overline() Color {
	c.mustForeground("Overline")
	c.styles |= flagOverline
	return c
}

// --- Emission --------------------------------------------------------------

const esc = "\x1b["

// On returns the escape sequence which switches the color on.
func (c Color) On() []byte {
	return c.AppendOn(nil)
}

// Off returns the escape sequence which switches the color off.
func (c Color) Off() []byte {
	return c.AppendOff(nil)
}

// AppendOn appends the on-sequence to dst and returns the extended buffer.
func (c Color) AppendOn(dst []byte) []byte {
	switch c.v {
	case vForeground:
		dst = c.appendFgOn(dst)
	case vSuperscript:
		dst = append(dst, esc+"73m"...)
		dst = c.appendFgOn(dst)
	case vSubscript:
		dst = append(dst, esc+"74m"...)
		dst = c.appendFgOn(dst)
	case vBackground:
		dst = c.hue.appendSeq(dst, bgChannel)
	case vUnderline:
		dst = append(dst, esc+"4m"...)
		dst = c.hue.appendSeq(dst, ulChannel)
	case vDoubleUnderline:
		dst = append(dst, esc+"4:2m"...)
		dst = c.hue.appendSeq(dst, ulChannel)
	case vCurlyUnderline:
		dst = append(dst, esc+"4:3m"...)
		dst = c.hue.appendSeq(dst, ulChannel)
	case vDottedUnderline:
		dst = append(dst, esc+"4:4m"...)
		dst = c.hue.appendSeq(dst, ulChannel)
	case vDashedUnderline:
		dst = append(dst, esc+"4:5m"...)
		dst = c.hue.appendSeq(dst, ulChannel)
	case vInverse:
		dst = append(dst, esc+"7m"...)
	case vInvisible:
		dst = append(dst, esc+"8m"...)
	case vReset:
		dst = c.resets.append(dst)
	}
	return dst
}

// AppendOff appends the off-sequence to dst and returns the extended
// buffer.
func (c Color) AppendOff(dst []byte) []byte {
	switch c.v {
	case vForeground:
		dst = c.appendFgOff(dst)
	case vSuperscript, vSubscript:
		dst = append(dst, esc+"75m"...)
		dst = c.appendFgOff(dst)
	case vBackground:
		dst = append(dst, esc+"49m"...)
	case vUnderline, vDoubleUnderline, vCurlyUnderline, vDottedUnderline, vDashedUnderline:
		dst = append(dst, esc+"24m"...)
		dst = append(dst, esc+"59m"...)
	case vInverse:
		dst = append(dst, esc+"27m"...)
	case vInvisible:
		dst = append(dst, esc+"28m"...)
	case vReset:
		// a reset has nothing to undo
	}
	return dst
}

func (c Color) appendFgOn(dst []byte) []byte {
	if c.hasHue {
		dst = c.hue.appendSeq(dst, fgChannel)
	}
	if c.styles&flagBold != 0 {
		dst = append(dst, esc+"1m"...)
	}
	if c.styles&flagFaint != 0 {
		dst = append(dst, esc+"2m"...)
	}
	if c.styles&flagItalic != 0 {
		dst = append(dst, esc+"3m"...)
	}
	if c.styles&flagBlink != 0 {
		dst = append(dst, esc+"5m"...)
	}
	if c.styles&flagRapidBlink != 0 {
		dst = append(dst, esc+"6m"...)
	}
	if c.styles&flagStrikethrough != 0 {
		dst = append(dst, esc+"9m"...)
	}
	if c.styles&flagOverline != 0 {
		dst = append(dst, esc+"53m"...)
	}
	return dst
}

func (c Color) appendFgOff(dst []byte) []byte {
	if c.hasHue {
		dst = append(dst, esc+"39m"...)
	}
	if c.styles&(flagBold|flagFaint) != 0 {
		dst = append(dst, esc+"22m"...)
	}
	if c.styles&flagItalic != 0 {
		dst = append(dst, esc+"23m"...)
	}
	if c.styles&(flagBlink|flagRapidBlink) != 0 {
		dst = append(dst, esc+"25m"...)
	}
	if c.styles&flagStrikethrough != 0 {
		dst = append(dst, esc+"29m"...)
	}
	if c.styles&flagOverline != 0 {
		dst = append(dst, esc+"55m"...)
	}
	return dst
}

// channel distinguishes the three color channels a Hue can be sent to.
type channel uint8

const (
	fgChannel channel = iota
	bgChannel
	ulChannel
)

// appendSeq appends the hue's escape sequence for the given channel.
// Underline has no basic-color form; basic hues on that channel go
// through the palette, whose first eight indices are the basic colors.
func (h Hue) appendSeq(dst []byte, ch channel) []byte {
	switch h.form {
	case hueDefault:
		switch ch {
		case fgChannel:
			dst = append(dst, esc+"39m"...)
		case bgChannel:
			dst = append(dst, esc+"49m"...)
		case ulChannel:
			dst = append(dst, esc+"59m"...)
		}
	case hueBasic:
		switch ch {
		case fgChannel:
			dst = append(dst, esc...)
			dst = append(dst, '3', '0'+byte(h.base), 'm')
		case bgChannel:
			dst = append(dst, esc...)
			dst = append(dst, '4', '0'+byte(h.base), 'm')
		case ulChannel:
			dst = append(dst, esc+"58:5:"...)
			dst = append(dst, '0'+byte(h.base), 'm')
		}
	case huePalette:
		dst = append(dst, esc...)
		dst = append(dst, channelIntro(ch)...)
		dst = append(dst, ":5:"...)
		dst = strconv.AppendUint(dst, uint64(h.index), 10)
		dst = append(dst, 'm')
	case hueRGB:
		dst = append(dst, esc...)
		dst = append(dst, channelIntro(ch)...)
		dst = append(dst, ":2::"...)
		dst = strconv.AppendUint(dst, uint64(h.r), 10)
		dst = append(dst, ':')
		dst = strconv.AppendUint(dst, uint64(h.g), 10)
		dst = append(dst, ':')
		dst = strconv.AppendUint(dst, uint64(h.b), 10)
		dst = append(dst, 'm')
	}
	return dst
}

func channelIntro(ch channel) string {
	switch ch {
	case bgChannel:
		return "48"
	case ulChannel:
		return "58"
	}
	return "38"
}

func (r Resets) append(dst []byte) []byte {
	if r.All || r == (Resets{}) {
		return append(dst, esc+"0m"...)
	}
	if r.Neutral {
		dst = append(dst, esc+"22m"...)
	}
	if r.Upright {
		dst = append(dst, esc+"23m"...)
	}
	if r.Steady {
		dst = append(dst, esc+"25m"...)
	}
	if r.Baseline {
		dst = append(dst, esc+"75m"...)
	}
	if r.Foreground {
		dst = append(dst, esc+"39m"...)
	}
	if r.Background {
		dst = append(dst, esc+"49m"...)
	}
	if r.Underline {
		dst = append(dst, esc+"24m"...)
	}
	if r.UnderlineColor {
		dst = append(dst, esc+"59m"...)
	}
	return dst
}

// --- Stringers -------------------------------------------------------------

var variantNames = [...]string{
	"foreground", "superscript", "subscript", "background",
	"underline", "double underline", "curly underline",
	"dotted underline", "dashed underline", "inverse", "invisible", "reset",
}

func (c Color) String() string {
	name := variantNames[c.v]
	switch c.v {
	case vForeground, vSuperscript, vSubscript:
		if c.hasHue {
			name += " " + c.hue.String()
		}
	case vBackground, vUnderline, vDoubleUnderline, vCurlyUnderline,
		vDottedUnderline, vDashedUnderline:
		name += " " + c.hue.String()
	}
	return name
}

var baseNames = [...]string{
	"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white",
}

func (h Hue) String() string {
	switch h.form {
	case hueBasic:
		return baseNames[h.base]
	case huePalette:
		return fmt.Sprintf("palette(%d)", h.index)
	case hueRGB:
		return fmt.Sprintf("rgb(%d,%d,%d)", h.r, h.g, h.b)
	}
	return "default"
}
