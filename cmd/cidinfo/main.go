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

// Cidinfo shows how the character codes of a composite font are mapped to
// glyphs.
//
// Usage:
//
//	cidinfo [options] [font-file] [code ...]
//
// The font file is treated as the embedded font program of a CIDFont with
// an Identity-H encoding.  If no font file is given, the font given by
// the -name option is looked up as if the font was not embedded.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"golang.org/x/term"

	"seehuhn.de/go/postscript/cid"

	"seehuhn.de/go/cidfont"
	"seehuhn.de/go/cidfont/glyphdata"
	"seehuhn.de/go/cidfont/loader"
)

func main() {
	baseFont := flag.String("name", "", "PostScript name of the font")
	ros := flag.String("ros", "", "character collection, e.g. Adobe-Japan1")
	configFile := flag.String("config", "", "font configuration file (YAML)")
	cidToGIDFile := flag.String("cidtogid", "", "file with CIDToGIDMap data")
	identity := flag.Bool("identity", false, "use the Identity CIDToGIDMap")
	text := flag.String("text", "", "show the encoding of this text")
	verbose := flag.Bool("v", false, "show diagnostic messages")
	flag.Parse()

	level := slog.LevelError
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	fl := loader.New()
	fl.Logger = logger
	if *configFile != "" {
		conf, err := loader.LoadConfig(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading configuration: %v\n", err)
			os.Exit(1)
		}
		err = fl.Configure(conf)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error in configuration: %v\n", err)
			os.Exit(1)
		}
	}

	args := flag.Args()
	d := &cidfont.Dict{
		Subtype:          cidfont.CIDFontType2,
		BaseFont:         *baseFont,
		IdentityCIDToGID: *identity,
		Parent:           &cidfont.Type0{Encoding: cidfont.IdentityH},
	}
	if reg, ord, ok := strings.Cut(*ros, "-"); ok {
		d.ROS = &cid.SystemInfo{Registry: reg, Ordering: ord}
	}
	if len(args) > 0 && !isCode(args[0]) {
		data, err := os.ReadFile(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading font file: %v\n", err)
			os.Exit(1)
		}
		tp := detectType(data)
		if tp.IsCFF() {
			d.Subtype = cidfont.CIDFontType0
		}
		d.FontFile = cidfont.DataFile(tp, data)
		args = args[1:]
	} else if *baseFont == "" {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] [font-file] [code ...]\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}
	if *cidToGIDFile != "" {
		data, err := os.ReadFile(*cidToGIDFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading CIDToGIDMap: %v\n", err)
			os.Exit(1)
		}
		d.CIDToGIDMap = data
	}

	F, err := cidfont.New(d, &cidfont.Options{Logger: logger, Substituter: fl})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading font: %v\n", err)
		os.Exit(1)
	}

	var codes []cidfont.Code
	for _, arg := range args {
		code, err := strconv.ParseUint(arg, 0, 32)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Invalid character code %q\n", arg)
			os.Exit(1)
		}
		codes = append(codes, cidfont.Code(code))
	}
	isTerm := term.IsTerminal(int(os.Stdout.Fd()))
	if len(codes) == 0 && *text == "" {
		n := F.Program().Program().NumGlyphs()
		if isTerm {
			if _, height, err := term.GetSize(int(os.Stdout.Fd())); err == nil && height > 12 {
				n = min(n, height-12)
			}
		}
		for i := range n {
			codes = append(codes, cidfont.Code(i))
		}
	}

	var out io.Writer = os.Stdout
	var tw *tabwriter.Writer
	if isTerm {
		tw = tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
		out = tw
	}

	res := F.Program()
	fmt.Fprintf(out, "font\t%s\n", F.BaseFont())
	fmt.Fprintf(out, "program\t%s\t%s\n", res.Kind, res.Program().PostScriptName())
	fmt.Fprintf(out, "source\t%s\n", res.Source)
	fmt.Fprintf(out, "embedded\t%t\n", F.IsEmbedded())
	fmt.Fprintf(out, "damaged\t%t\n", F.IsDamaged())
	fmt.Fprintf(out, "matrix\t%v\n", F.FontMatrix())
	fmt.Fprintf(out, "bbox\t%v\n", F.FontBBox())
	fmt.Fprintf(out, "avg. width\t%g\n", F.AverageWidth())
	fmt.Fprintln(out)

	if len(codes) > 0 {
		fmt.Fprintln(out, "code\tCID\tGID\twidth\theight")
		for _, code := range codes {
			fmt.Fprintf(out, "%d\t%d\t%d\t%g\t%g\n",
				code, F.CID(code), F.GID(code), F.Width(code), F.Height(code))
		}
	}

	if *text != "" {
		if len(codes) > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprintln(out, "char\tcode")
		for _, r := range *text {
			code, err := F.Encode(r)
			if err != nil {
				fmt.Fprintf(out, "%q\t-\n", r)
				continue
			}
			fmt.Fprintf(out, "%q\t<%x>\n", r, code)
		}
	}

	if tw != nil {
		tw.Flush()
	}
}

func isCode(s string) bool {
	_, err := strconv.ParseUint(s, 0, 32)
	return err == nil
}

// detectType guesses the container format of font data.
func detectType(data []byte) glyphdata.Type {
	switch {
	case bytes.HasPrefix(data, []byte("OTTO")):
		return glyphdata.OpenTypeCFF
	case bytes.HasPrefix(data, []byte{0, 1, 0, 0}),
		bytes.HasPrefix(data, []byte("true")):
		return glyphdata.TrueType
	default:
		return glyphdata.CFF
	}
}
