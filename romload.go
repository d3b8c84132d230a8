// This file is part of Romload.
//
// Romload is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Romload is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Romload.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/charmbracelet/lipgloss"
	"github.com/jetsetilly/romload/archivefs"
	"github.com/jetsetilly/romload/byteorder"
	"github.com/jetsetilly/romload/cartridgeloader"
	"github.com/jetsetilly/romload/curated"
	"github.com/jetsetilly/romload/logger"
	"github.com/jetsetilly/romload/modalflag"
	"github.com/jetsetilly/romload/statsview"
	"github.com/jetsetilly/romload/version"
)

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	os.Exit(launch(md, os.Args[1:]))
}

// launch parses the arguments and runs the selected mode. returns the value to
// be used with os.Exit()
func launch(md *modalflag.Modes, args []string) int {
	md.NewArgs(args)
	md.AddSubModes("INFO", "NORMALISE", "LIST", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0
	case modalflag.ParseError:
		fmt.Fprintf(md.Output, "* error: %v\n", err)
		return 10
	}

	switch md.Mode() {
	case "INFO":
		err = info(md)
	case "NORMALISE":
		err = normalise(md)
	case "LIST":
		err = list(md)
	case "VERSION":
		fmt.Fprintln(md.Output, version.String())
	}

	if err != nil {
		fmt.Fprintf(md.Output, "* error in %s mode: %s\n", md, err)
		return 20
	}

	return 0
}

// ambient flags shared by every mode that loads cartridges
type ambient struct {
	log       *bool
	statsview *bool
}

func addAmbient(md *modalflag.Modes) ambient {
	a := ambient{
		log: md.AddBool("log", false, "echo log to stdout"),
	}
	if statsview.Available() {
		a.statsview = md.AddBool("statsview", false, "run stats server")
	}
	return a
}

func (a ambient) apply(md *modalflag.Modes) {
	if *a.log {
		logger.SetEcho(logger.NewColorizer(md.Output))
	}
	if a.statsview != nil && *a.statsview {
		statsview.Launch(md.Output)
	}
}

func info(md *modalflag.Modes) error {
	md.NewMode()
	amb := addAmbient(md)
	mviz := md.AddString("memviz", "", "write memviz graph of the loader to file")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}
	amb.apply(md)
	defer logger.SetEcho(nil)

	if len(md.RemainingArgs()) == 0 {
		return curated.Errorf("cartridge required for %s mode", md)
	}

	st := newStyles()

	for _, fn := range md.RemainingArgs() {
		cl := cartridgeloader.NewLoader(fn)
		err := cl.Load()
		cl.Close()
		if err != nil {
			return err
		}

		report(md.Output, st, &cl)

		if *mviz != "" {
			err = writeMemviz(*mviz, &cl)
			if err != nil {
				return err
			}
		}
	}

	return nil
}

// writeMemviz writes a graph of the loader structure, without the cartridge
// data, in the dot format
func writeMemviz(filename string, cl *cartridgeloader.Loader) error {
	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf("memviz: %v", err)
	}
	defer f.Close()

	c := *cl
	c.Data = nil
	memviz.Map(f, &c)

	return nil
}

func layoutStyle(st styles, m byteorder.Magic) lipgloss.Style {
	switch m.Layout() {
	case byteorder.LayoutNative:
		return st.native
	case byteorder.LayoutUnrecognised:
		return st.unknown
	}
	return st.swapped
}

func report(output io.Writer, st styles, cl *cartridgeloader.Loader) {
	line := func(label string, value string) {
		fmt.Fprintf(output, "%s%s\n", st.label.Render(label), st.value.Render(value))
	}

	fmt.Fprintln(output, st.filename.Render(cl.Filename))
	line("container", cl.Container.String())

	if m, ok := cl.Magic(); ok {
		line("layout", layoutStyle(st, m).Render(fmt.Sprintf("%s (%s)", m.Layout(), m)))
	}

	line("size", fmt.Sprintf("%d bytes", len(cl.Data)))
	line("sha1", cl.Hash)

	hdr, err := cl.Header()
	if err != nil {
		line("header", st.err.Render(err.Error()))
		return
	}
	line("title", hdr.Title)
	line("game code", hdr.GameCode)
	line("version", fmt.Sprintf("1.%d", hdr.Version))
	line("crc", fmt.Sprintf("%08x %08x", hdr.CRC1, hdr.CRC2))
}

func normalise(md *modalflag.Modes) error {
	md.NewMode()
	amb := addAmbient(md)
	out := md.AddString("out", "", "output file (default is the cartridge name with .z64 extension)")
	force := md.AddBool("force", false, "overwrite output file if it exists")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}
	amb.apply(md)
	defer logger.SetEcho(nil)

	switch len(md.RemainingArgs()) {
	case 0:
		return curated.Errorf("cartridge required for %s mode", md)
	case 1:
	default:
		return curated.Errorf("too many arguments for %s mode", md)
	}

	fn := md.GetArg(0)
	cl := cartridgeloader.NewLoader(fn)
	err = cl.Load()
	cl.Close()
	if err != nil {
		return err
	}

	output := *out
	if output == "" {
		dir := filepath.Dir(archivefs.TrimArchiveExt(fn))
		output = filepath.Join(dir, fmt.Sprintf("%s.z64", cl.ShortName()))
	}

	if filepath.Clean(output) == filepath.Clean(fn) {
		return curated.Errorf("output file is the same as the input file (%s)", output)
	}

	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !*force {
		flags |= os.O_EXCL
	}

	f, err := os.OpenFile(output, flags, 0o644)
	if err != nil {
		return curated.Errorf("normalise: %v", err)
	}
	defer f.Close()

	_, err = f.Write(cl.Data)
	if err != nil {
		return curated.Errorf("normalise: %v", err)
	}

	fmt.Fprintf(md.Output, "%s -> %s\n", fn, output)

	return nil
}

func list(md *modalflag.Modes) error {
	md.NewMode()
	check := md.AddBool("check", false, "load each cartridge and show the byte order")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	dir := "."
	switch len(md.RemainingArgs()) {
	case 0:
	case 1:
		dir = md.GetArg(0)
	default:
		return curated.Errorf("too many arguments for %s mode", md)
	}

	var afs archivefs.Path
	defer afs.Close()

	err = afs.Set(dir)
	if err != nil {
		return err
	}

	entries, err := afs.List()
	if err != nil {
		return err
	}

	st := newStyles()

	for _, e := range entries {
		if !cartridgeloader.IsROMFilename(e.Name) {
			continue
		}

		if !*check {
			fmt.Fprintln(md.Output, e.Name)
			continue
		}

		cl := cartridgeloader.NewLoader(filepath.Join(afs.String(), e.Name))
		hdr := make([]byte, cartridgeloader.HeaderSize)

		var diagnostics strings.Builder
		if !cl.LoadData(cartridgeloader.HeaderSize, hdr, &diagnostics) {
			cl.Close()
			fmt.Fprintf(md.Output, "%s %s", e.Name, st.err.Render(diagnostics.String()))
			continue
		}
		cl.Close()

		m, err := byteorder.ReadMagic(hdr)
		if err != nil {
			fmt.Fprintf(md.Output, "%s %s\n", e.Name, st.err.Render(err.Error()))
			continue
		}
		cl.SetHeaderMagic(m)
		fmt.Fprintf(md.Output, "%s %s\n", e.Name, layoutStyle(st, m).Render(m.Layout().String()))
	}

	return nil
}
