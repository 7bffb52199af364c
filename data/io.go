// Copyright (c) 2026, The Orange3 Prototypes Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package data

import (
	"bufio"
	"encoding/csv"
	"io"
	"math"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// Delims are standard CSV delimiter options (Tab, Comma, Space).
type Delims int32

const (
	// Tab is the tab rune delimiter, for TSV tab separated values.
	Tab Delims = iota

	// Comma is the comma rune delimiter, for CSV comma separated values.
	Comma

	// Space is the space rune delimiter, for SSV space separated values.
	Space

	// Detect reads the first line and detects tabs or commas.
	Detect
)

func (dl Delims) Rune() rune {
	switch dl {
	case Tab:
		return '\t'
	case Comma:
		return ','
	case Space:
		return ' '
	}
	return '\t'
}

// missingStrings are cell values read as a missing numeric value.
var missingStrings = map[string]bool{"": true, "?": true, "NA": true, "nan": true, "NaN": true}

// maxCategoricalValues is the largest vocabulary size inferred as
// categorical; columns with more distinct non-numeric values are text.
const maxCategoricalValues = 100

// OpenCSV reads a table from a character-separated file. The first row
// holds headers carrying variable kind and role information in the
// form "[flags#]name", where flags may contain a role letter
// ('c' class, 'm' meta, 'i' ignore) and a kind letter ('C' continuous,
// 'D' categorical, 'T' time, 'S' string). Unflagged columns become
// attributes with kinds inferred from the data.
func OpenCSV(filename string, delim Delims) (*Table, error) {
	fp, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrap(err, "data.OpenCSV")
	}
	defer fp.Close()
	dt, err := ReadCSV(bufio.NewReader(fp), delim)
	if err != nil {
		return nil, err
	}
	nm := filename
	if i := strings.LastIndexByte(nm, '/'); i >= 0 {
		nm = nm[i+1:]
	}
	dt.Name = strings.TrimSuffix(nm, ".csv")
	return dt, nil
}

// headerSpec is the parsed form of one header cell.
type headerSpec struct {
	name    string
	role    VarRole
	kind    VarKind
	hasKind bool
	ignore  bool
}

func parseHeader(cell string) headerSpec {
	hs := headerSpec{name: cell, role: RoleAttribute}
	flags, name, ok := strings.Cut(cell, "#")
	if !ok {
		return hs
	}
	hs.name = name
	for _, r := range flags {
		switch r {
		case 'c':
			hs.role = RoleClassVar
		case 'm':
			hs.role = RoleMeta
		case 'i':
			hs.ignore = true
		case 'C':
			hs.kind, hs.hasKind = Numeric, true
		case 'D':
			hs.kind, hs.hasKind = Categorical, true
		case 'T':
			hs.kind, hs.hasKind = Time, true
		case 'S':
			hs.kind, hs.hasKind = Text, true
		}
	}
	return hs
}

// ReadCSV reads a table from the given reader; see [OpenCSV] for the
// header conventions.
func ReadCSV(r io.Reader, delim Delims) (*Table, error) {
	br := bufio.NewReader(r)
	if delim == Detect {
		peek, _ := br.Peek(1024)
		if strings.ContainsRune(string(peek), '\t') {
			delim = Tab
		} else {
			delim = Comma
		}
	}
	cr := csv.NewReader(br)
	cr.Comma = delim.Rune()
	recs, err := cr.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "data.ReadCSV")
	}
	if len(recs) == 0 {
		return nil, errors.New("data.ReadCSV: no header row")
	}
	header := recs[0]
	rows := recs[1:]
	specs := make([]headerSpec, len(header))
	for j, cell := range header {
		specs[j] = parseHeader(cell)
	}

	var groupVars [RoleN][]*Variable
	var groupCols [RoleN][]Column
	for j, hs := range specs {
		if hs.ignore {
			continue
		}
		cells := make([]string, len(rows))
		for i, rec := range rows {
			if j < len(rec) {
				cells[i] = rec[j]
			}
		}
		kind := hs.kind
		if !hs.hasKind {
			kind = inferKind(cells)
		}
		vr, cl, err := buildColumn(hs.name, kind, cells)
		if err != nil {
			return nil, err
		}
		groupVars[hs.role] = append(groupVars[hs.role], vr)
		groupCols[hs.role] = append(groupCols[hs.role], cl)
	}

	domain, err := NewDomain(groupVars[RoleAttribute], groupVars[RoleClassVar], groupVars[RoleMeta])
	if err != nil {
		return nil, err
	}
	var mxs [RoleN]*Matrix
	for rl := VarRole(0); rl < RoleN; rl++ {
		mxs[rl], err = NewMatrix(len(rows), groupCols[rl]...)
		if err != nil {
			return nil, err
		}
	}
	return NewTable("", domain, mxs[RoleAttribute], mxs[RoleClassVar], mxs[RoleMeta])
}

// inferKind decides the variable kind for an untyped column:
// numeric if all non-missing cells parse as numbers, time if they
// parse as RFC 3339 or date-only timestamps, categorical if the
// distinct values are few, text otherwise.
func inferKind(cells []string) VarKind {
	numeric, timed, seen := true, true, 0
	distinct := map[string]bool{}
	for _, c := range cells {
		if missingStrings[c] {
			continue
		}
		seen++
		if _, err := strconv.ParseFloat(c, 64); err != nil {
			numeric = false
		}
		if _, err := parseTime(c); err != nil {
			timed = false
		}
		if len(distinct) <= maxCategoricalValues {
			distinct[c] = true
		}
	}
	switch {
	case seen == 0 || numeric:
		return Numeric
	case timed:
		return Time
	case len(distinct) <= maxCategoricalValues:
		return Categorical
	}
	return Text
}

func parseTime(s string) (time.Time, error) {
	if tm, err := time.Parse(time.RFC3339, s); err == nil {
		return tm, nil
	}
	return time.Parse("2006-01-02", s)
}

func buildColumn(name string, kind VarKind, cells []string) (*Variable, Column, error) {
	switch kind {
	case Text:
		return NewText(name), StringColumn(cells), nil
	case Categorical:
		var values []string
		seen := map[string]int{}
		for _, c := range cells {
			if missingStrings[c] {
				continue
			}
			if _, ok := seen[c]; !ok {
				seen[c] = len(values)
				values = append(values, c)
			}
		}
		// Vocabulary in sorted order so value encoding is input-order independent.
		slices.Sort(values)
		for i, v := range values {
			seen[v] = i
		}
		vr := NewCategorical(name, values, false)
		cl := make(Float64Column, len(cells))
		for i, c := range cells {
			if missingStrings[c] {
				cl[i] = math.NaN()
			} else {
				cl[i] = float64(seen[c])
			}
		}
		return vr, cl, nil
	case Time:
		vr := NewTime(name)
		cl := make(Float64Column, len(cells))
		for i, c := range cells {
			if missingStrings[c] {
				cl[i] = math.NaN()
				continue
			}
			tm, err := parseTime(c)
			if err != nil {
				return nil, nil, errors.Wrapf(err, "data.ReadCSV: column %q row %d", name, i)
			}
			cl[i] = float64(tm.Unix())
		}
		return vr, cl, nil
	default:
		vr := NewNumeric(name)
		cl := make(Float64Column, len(cells))
		for i, c := range cells {
			if missingStrings[c] {
				cl[i] = math.NaN()
				continue
			}
			v, err := strconv.ParseFloat(c, 64)
			if err != nil {
				return nil, nil, errors.Wrapf(err, "data.ReadCSV: column %q row %d", name, i)
			}
			cl[i] = v
		}
		return vr, cl, nil
	}
}

// SaveCSV writes the table to a character-separated file with headers
// that capture variable kind and role, enabling exact reloading.
func (dt *Table) SaveCSV(filename string, delim Delims) error {
	fp, err := os.Create(filename)
	if err != nil {
		return errors.Wrap(err, "data.Table.SaveCSV")
	}
	defer fp.Close()
	bw := bufio.NewWriter(fp)
	if err := dt.WriteCSV(bw, delim); err != nil {
		return err
	}
	return bw.Flush()
}

// WriteCSV writes the table to the given writer; see [Table.SaveCSV].
func (dt *Table) WriteCSV(w io.Writer, delim Delims) error {
	cw := csv.NewWriter(w)
	cw.Comma = delim.Rune()

	var header []string
	var cols []Column
	var vars []*Variable
	for rl := VarRole(0); rl < RoleN; rl++ {
		gvars, mx := dt.Group(rl)
		for i, vr := range gvars {
			header = append(header, headerFor(vr, rl))
			cols = append(cols, mx.Column(i))
			vars = append(vars, vr)
		}
	}
	if err := cw.Write(header); err != nil {
		return errors.Wrap(err, "data.Table.WriteCSV")
	}
	rec := make([]string, len(cols))
	for i := 0; i < dt.NumRows(); i++ {
		for j, cl := range cols {
			rec[j] = writeCell(vars[j], cl, i)
		}
		if err := cw.Write(rec); err != nil {
			return errors.Wrap(err, "data.Table.WriteCSV")
		}
	}
	cw.Flush()
	return errors.Wrap(cw.Error(), "data.Table.WriteCSV")
}

func headerFor(vr *Variable, rl VarRole) string {
	flags := ""
	switch rl {
	case RoleClassVar:
		flags = "c"
	case RoleMeta:
		flags = "m"
	}
	switch vr.Kind {
	case Categorical:
		flags += "D"
	case Numeric:
		flags += "C"
	case Time:
		flags += "T"
	case Text:
		flags += "S"
	}
	return flags + "#" + vr.Name
}

func writeCell(vr *Variable, cl Column, i int) string {
	if cl.IsString() {
		return cl.String(i)
	}
	v := cl.Float(i)
	if math.IsNaN(v) {
		return "?"
	}
	switch vr.Kind {
	case Categorical:
		return vr.StrVal(v)
	case Time:
		return time.Unix(int64(v), 0).UTC().Format(time.RFC3339)
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
