// seehuhn.de/go/cidfont - glyph selection for composite PDF fonts
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package cidfont

import (
	"log/slog"

	"seehuhn.de/go/cidfont/glyphdata"
	"seehuhn.de/go/cidfont/glyphdata/cffglyphs"
	"seehuhn.de/go/cidfont/glyphdata/sfntglyphs"
)

// acquire selects the glyph program for a CIDFont.
//
// An error is only returned if the embedded font data uses a feature which
// is not supported.  All other problems are reported via the logger and
// lead to a damaged, substituted or blank font.
func acquire(d *Dict, opt *Options, logger *slog.Logger) (*Resolved, error) {
	if ff := d.FontFile; ff != nil && ff.Type != glyphdata.None {
		var usable bool
		switch d.Subtype {
		case CIDFontType0:
			usable = ff.Type.IsCFF()
		case CIDFontType2:
			usable = ff.Type.IsTrueType()
		}
		if usable {
			return acquireEmbedded(d, opt, logger)
		}
		logger.Warn("ignoring embedded font data of wrong type",
			"subtype", d.Subtype, "type", ff.Type)
	}

	sub := opt.Substituter
	ros := rosKey(d)
	switch d.Subtype {
	case CIDFontType0:
		if p := sub.CFFByName(d.BaseFont); p != nil {
			logger.Warn("using substitute font", "substitute", p.PostScriptName())
			return resolvedCFF(p, Substitute), nil
		}
		p := sub.CFFFallback(ros, d.Descriptor)
		if p == nil {
			p = cffglyphs.Blank()
		}
		return resolvedCFF(p, fallbackSource(p, ros, logger)), nil

	default:
		if p := sub.TrueTypeByName(d.BaseFont); p != nil {
			logger.Warn("using substitute font", "substitute", p.PostScriptName())
			return resolvedTrueType(p, Substitute), nil
		}
		p := sub.TrueTypeFallback(ros, d.Descriptor)
		if p == nil {
			p = sfntglyphs.Blank()
		}
		return resolvedTrueType(p, fallbackSource(p, ros, logger)), nil
	}
}

func acquireEmbedded(d *Dict, opt *Options, logger *slog.Logger) (*Resolved, error) {
	tp := d.FontFile.Type
	data, readErr := d.FontFile.read()

	if d.Subtype == CIDFontType0 {
		var p glyphdata.CFFProgram
		err := readErr
		if err == nil {
			p, err = opt.DecodeCFF(data, tp)
		}
		if glyphdata.IsUnsupported(err) {
			return nil, err
		} else if err != nil {
			logger.Error("damaged embedded font", "type", tp, "error", err)
			res := resolvedCFF(cffglyphs.Empty(), Embedded)
			res.IsDamaged = true
			return res, nil
		}
		return resolvedCFF(p, Embedded), nil
	}

	var p glyphdata.TrueTypeProgram
	err := readErr
	if err == nil {
		p, err = opt.DecodeTrueType(data, tp)
	}
	if glyphdata.IsUnsupported(err) {
		return nil, err
	} else if err != nil {
		logger.Error("damaged embedded font", "type", tp, "error", err)
		res := resolvedTrueType(sfntglyphs.Empty(), Embedded)
		res.IsDamaged = true
		return res, nil
	}
	if tp == glyphdata.OpenTypeGlyf && p.HasLayoutTables() {
		logger.Warn("ignoring OpenType layout tables")
	}
	return resolvedTrueType(p, Embedded), nil
}

func fallbackSource(p glyphdata.Program, ros string, logger *slog.Logger) Source {
	if glyphdata.IsBlank(p) {
		logger.Error("no glyph data available, using blank font", "ros", ros)
		return Blank
	}
	logger.Warn("using fallback font", "fallback", p.PostScriptName(), "ros", ros)
	return Fallback
}

// rosKey returns the character collection of a font in the form
// "Registry-Ordering", or "" if this is not known.
func rosKey(d *Dict) string {
	if d.ROS == nil || d.ROS.Registry == "" || d.ROS.Ordering == "" {
		return ""
	}
	return d.ROS.Registry + "-" + d.ROS.Ordering
}
