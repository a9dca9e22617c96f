// Package icon maps a battery level to a Nerd Font battery glyph.
package icon

import "sort"

// Threshold is one row of the icon table. A level selects the glyph of the
// greatest Threshold whose Level does not exceed it.
type Threshold struct {
	Level int
	Glyph string
}

// The glyphs are Material Design battery icons from Nerd Fonts. 70 and 100
// share the 90 glyph, and 0 uses the plain battery outline.
var levels = map[int]string{
	100: "\U000F0080",
	90:  "\U000F0080",
	80:  "\U000F0081",
	70:  "\U000F0080",
	60:  "\U000F007F",
	50:  "\U000F007E",
	40:  "\U000F007D",
	30:  "\U000F007C",
	20:  "\U000F007B",
	10:  "\U000F007A",
	0:   "\U000F0079",
}

// table is sorted by Level, highest first. It is never modified after init.
var table = func() []Threshold {
	t := make([]Threshold, 0, len(levels))
	for level, glyph := range levels {
		t = append(t, Threshold{Level: level, Glyph: glyph})
	}
	sort.Slice(t, func(i, j int) bool {
		return t[i].Level > t[j].Level
	})
	return t
}()

// Lookup returns the glyph for level. ok is false only for negative levels,
// which no threshold covers.
func Lookup(level int) (glyph string, ok bool) {
	for _, th := range table {
		if level >= th.Level {
			return th.Glyph, true
		}
	}
	return "", false
}

// Thresholds returns a copy of the table, highest level first.
func Thresholds() []Threshold {
	t := make([]Threshold, len(table))
	copy(t, table)
	return t
}
