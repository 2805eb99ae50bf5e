// This file is part of ramus.
//
// ramus is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// ramus is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with ramus.  If not, see <https://www.gnu.org/licenses/>.


package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/dustin/go-humanize"
	"github.com/ramus-patch/ramus/chain"
	"github.com/ramus-patch/ramus/curated"
	"github.com/ramus-patch/ramus/digest"
	"github.com/ramus-patch/ramus/logger"
	"github.com/ramus-patch/ramus/modalflag"
	"github.com/ramus-patch/ramus/msu1"
	"github.com/ramus-patch/ramus/patch"
	"github.com/ramus-patch/ramus/paths"
	"github.com/ramus-patch/ramus/prefs"
	"github.com/ramus-patch/ramus/romloader"
	"github.com/ramus-patch/ramus/statsview"
	"github.com/ramus-patch/ramus/terminal"
	"github.com/ramus-patch/ramus/version"
)

// exit values returned by launch()
const (
	exitArgs = 10
	exitMode = 20
)

func main() {
	// ctrl-c cancels the context. long running modes stop at the earliest
	// opportunity
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	exitVal := launch(ctx, os.Args[1:], os.Stdout)
	stop()
	os.Exit(exitVal)
}

// launch the mode selected by the arguments. returns the exit value for the
// process
func launch(ctx context.Context, args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("APPLY", "INFO", "CHAIN", "MSU1", "VERSION")

	log := md.AddBool("log", false, "echo log to stdout")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsviewHelp()))
	override := md.AddString("prefs", "", `override preferences for this session ("key::value; key::value")`)

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0

	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitArgs
	}

	if *stats {
		statsview.Launch(ctx, output)
	}

	if err := prefs.PushOverrides(*override); err != nil {
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitArgs
	}

	pref, err := newPreferences(output)
	unused := prefs.PopOverrides()
	if err != nil {
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitArgs
	}
	if len(unused) > 0 {
		fmt.Fprintf(output, "* error: unknown preferences (%s)\n", strings.Join(unused, ", "))
		return exitArgs
	}
	defer setEcho(nil, false)

	// the -log flag takes priority over the log.echo preference
	if *log {
		setEcho(output, true)
	}

	switch md.Mode() {
	case "APPLY":
		err = apply(md, pref)

	case "INFO":
		err = info(md)

	case "CHAIN":
		err = runChain(md)

	case "MSU1":
		err = exportMSU1(ctx, md, pref)

	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md.String(), err)
		return exitMode
	}

	return 0
}

func statsviewHelp() string {
	if statsview.Available() {
		return statsview.Address
	}
	return "not available in this build"
}

func apply(md *modalflag.Modes, pref *preferences) error {
	md.NewMode()
	md.AdditionalHelp("Apply a BPS or IPS patch to the source data.\n\n  ramus APPLY [flags] <source> <patch>")

	lenient := md.AddBool("lenient", pref.lenient.Get().(bool), "ignore BPS source and target checksums")
	out := md.AddString("o", "", "output filename (default: generated from the source filename)")
	save := md.AddBool("save", false, "save flag values as the new defaults")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *save {
		err = pref.save(md, map[string]setter{
			"lenient": &pref.lenient,
		})
		if err != nil {
			return err
		}
	}

	switch len(md.RemainingArgs()) {
	case 0, 1:
		return fmt.Errorf("source and patch required for %s mode", md)
	case 2:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	if romloader.IsPatch(md.GetArg(0)) && !romloader.IsPatch(md.GetArg(1)) {
		return fmt.Errorf("the source must come before the patch (%s)", md.GetArg(0))
	}

	src := romloader.NewLoader(md.GetArg(0))
	if err := src.Load(); err != nil {
		return err
	}

	format, err := romloader.PatchFormat(md.GetArg(1), *lenient)
	if err != nil {
		return err
	}

	pld := romloader.NewLoader(md.GetArg(1))
	if err := pld.Load(); err != nil {
		return err
	}

	data, res := patch.Apply(format, pld.Data, src.Data)
	if res != patch.Success {
		if res.Advisory() {
			return curated.Errorf("%v: the patch was made for different data (see the -lenient flag)", res)
		}
		if res.Recoverable() {
			return curated.Errorf("%v: the patch cannot be used with %s", res, src.ShortName())
		}
		return res
	}

	filename := *out
	if filename == "" {
		filename = paths.UniqueFilename("patched", src.Filename)
	}

	if err := romloader.WriteFile(filename, data); err != nil {
		return err
	}

	fmt.Fprintf(md.Output, "%s patch applied. %s written to %s\n", format.Name(), humanize.Bytes(uint64(len(data))), filename)

	return nil
}

func info(md *modalflag.Modes) error {
	md.NewMode()
	md.AdditionalHelp("Show the contents of a BPS or IPS patch.\n\n  ramus INFO [flags] <patch>")

	dot := md.AddString("memviz", "", "write a graphviz dot file of the patch structure")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("patch required for %s mode", md)
	case 1:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	format, err := romloader.PatchFormat(md.GetArg(0), false)
	if err != nil {
		return err
	}

	ld := romloader.NewLoader(md.GetArg(0))
	if err := ld.Load(); err != nil {
		return err
	}

	pch, res := format.Load(ld.Data)
	if res != patch.Success {
		return res
	}

	fmt.Fprintln(md.Output, pch)
	fmt.Fprintf(md.Output, "patch: %s [%s]\n", humanize.Bytes(uint64(len(ld.Data))), ld.Hash)

	switch pch := pch.(type) {
	case *patch.BPSPatch:
		fmt.Fprintf(md.Output, "source: %s\n", humanize.Bytes(pch.DeclaredSourceSize))
		fmt.Fprintf(md.Output, "target: %s\n", humanize.Bytes(pch.DeclaredTargetSize))
		if pch.Metadata != "" {
			fmt.Fprintf(md.Output, "metadata:\n%s\n", pch.Metadata)
		}
	case *patch.IPSPatch:
		for _, r := range pch.Records {
			fmt.Fprintf(md.Output, "  %s\n", r)
		}
	}

	if *dot != "" {
		f, err := os.Create(*dot)
		if err != nil {
			return err
		}
		memviz.Map(f, pch)
		if err := f.Close(); err != nil {
			return err
		}
		logger.Logf(logger.Allow, "info", "structure written to %s", *dot)
	}

	return nil
}

func runChain(md *modalflag.Modes) error {
	md.NewMode()
	md.AdditionalHelp("Apply the patches listed in a YAML script.\n\n  ramus CHAIN <script>")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("script required for %s mode", md)
	case 1:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	s, err := chain.Load(md.GetArg(0))
	if err != nil {
		return err
	}

	data, steps, err := s.Run(logger.Allow)
	for i, st := range steps {
		fmt.Fprintf(md.Output, "%d: %s (%s) %s\n", i+1, st.Patch, st.Format, humanize.Bytes(uint64(st.Size)))
	}
	if err != nil {
		return err
	}

	if s.Target == "" {
		fmt.Fprintf(md.Output, "result: %s [%s]\n", humanize.Bytes(uint64(len(data))), digest.SHA1(data))
	} else {
		fmt.Fprintf(md.Output, "result written to %s\n", s.Target)
	}

	return nil
}

func exportMSU1(ctx context.Context, md *modalflag.Modes, pref *preferences) error {
	md.NewMode()
	md.AdditionalHelp("Export an MSU-1 pack. The ROM is required if the pack contains a patch.\n\n  ramus MSU1 [flags] <pack> [rom]")

	method := md.AddString("method", pref.method.String(), "export method: GamePak, SD2SNES")
	name := md.AddString("name", "", "output name (default: filename of the pack)")
	violate := md.AddBool("violate", false, "apply the patch without checking BPS checksums or ROM size")
	loop := md.AddInt("loop", pref.loop.Get().(int), "loop point (in samples) of converted audio tracks")
	workers := md.AddInt("workers", pref.workers.Get().(int), "number of files exported at once (0 for the number of CPUs)")
	save := md.AddBool("save", false, "save flag values as the new defaults")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *save {
		err = pref.save(md, map[string]setter{
			"method":  &pref.method,
			"loop":    &pref.loop,
			"workers": &pref.workers,
		})
		if err != nil {
			return err
		}
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("MSU-1 pack required for %s mode", md)
	case 1, 2:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	m, err := msu1.ParseMethod(*method)
	if err != nil {
		return err
	}

	if *loop < 0 || uint64(*loop) > 0xffffffff {
		return fmt.Errorf("loop point out of range (%d)", *loop)
	}

	opts := msu1.Options{
		Pack:       md.GetArg(0),
		ROM:        md.GetArg(1),
		Method:     m,
		Name:       *name,
		ViolateBPS: *violate,
		Loop:       uint32(*loop),
		Workers:    *workers,
		Log:        logger.Allow,
	}

	if err := msu1.Validate(opts); err != nil {
		return err
	}

	// progress bar only if the output is a terminal
	if f, ok := md.Output.(*os.File); ok && terminal.IsTerminal(f) {
		opts.Progress = terminal.NewProgress(f, "exporting", terminal.Width(f)).Update
	}

	rep, err := msu1.Export(ctx, opts)
	if err != nil {
		return err
	}

	fmt.Fprintf(md.Output, "MSU-1 pack exported to %s\n", rep.Destination)
	fmt.Fprintf(md.Output, "program: %s\n", rep.ROM)
	if len(rep.Tracks) > 0 {
		tracks := make([]string, len(rep.Tracks))
		for i, t := range rep.Tracks {
			tracks[i] = fmt.Sprint(t)
		}
		fmt.Fprintf(md.Output, "tracks: %s\n", strings.Join(tracks, ", "))
	}

	return nil
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()

	revision := md.AddBool("revision", false, "display revision information from version control")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	v, r, _ := version.Version()
	fmt.Fprintf(md.Output, "%s %s\n", version.ApplicationName, v)
	if *revision {
		fmt.Fprintln(md.Output, r)
	}

	return nil
}
