// Copyright (c) 2026, The Orange3 Prototypes Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package featstats

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Formatter renders cell values under an explicit locale, so output is
// deterministic regardless of the host environment. NaN renders as a
// literal "NaN" marker, infinities as a sign-prefixed infinity symbol,
// and floats with two decimal places and locale thousands grouping.
type Formatter struct {
	tag language.Tag
	pr  *message.Printer
}

// NewFormatter returns a formatter for the given locale.
func NewFormatter(tag language.Tag) *Formatter {
	return &Formatter{tag: tag, pr: message.NewPrinter(tag)}
}

// Locale returns the formatter's locale.
func (fm *Formatter) Locale() language.Tag { return fm.tag }

// Float renders a float64 cell value.
func (fm *Formatter) Float(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "∞"
	case math.IsInf(v, -1):
		return "-∞"
	}
	return fm.pr.Sprint(number.Decimal(v,
		number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}

// Int renders an integer with locale thousands grouping.
func (fm *Formatter) Int(n int64) string {
	return fm.pr.Sprint(number.Decimal(n))
}

// Missing renders a missing-value count as "count (percent%)" of the
// given number of instances, with the percentage truncated to an
// integer. A zero instance count renders as 0%.
func (fm *Formatter) Missing(count float64, rows int) string {
	if math.IsNaN(count) {
		return "NaN"
	}
	pct := 0
	if rows > 0 {
		pct = int(100 * count / float64(rows))
	}
	return fm.pr.Sprintf("%s (%d%%)", fm.Int(int64(count)), pct)
}
