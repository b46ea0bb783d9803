// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"flag"
	"fmt"
	"io"
	"runtime/debug"

	"github.com/aibor/memarchive/internal/archive"
)

const (
	name = "memarchive"

	jobsDefault = 4
	jobsMin     = 1
	jobsMax     = 64

	usageMessage = `Usage of 'memarchive':
    memarchive [flags...] archive [files...]

Create an archive from files:
	memarchive -action=create -method=zstd out.zip file1 file2

Add files to an existing archive:
	memarchive -action=append out.zip file3

Print entries or their content:
	memarchive out.zip
	memarchive -action=cat out.zip file1

Convert the archive into a CPIO archive:
	memarchive -action=export out.zip > initramfs.cpio
`
)

type flags struct {
	flagSet *flag.FlagSet

	archivePath string
	files       []string

	action  Action
	method  archive.Method
	comment string
	jobs    int

	version bool
	debug   bool
}

func newFlags(output io.Writer) *flags {
	flags := &flags{
		method: archive.Deflate,
		jobs:   jobsDefault,
	}

	flags.initFlagset(output)

	return flags
}

func (f *flags) ParseArgs(args []string) error {
	// Parses arguments up to the first one that is not prefixed with a "-" or
	// is "--".
	err := f.flagSet.Parse(args)
	if err != nil {
		return &ParseArgsError{msg: "flag parse", err: err}
	}

	// With version flag, just print the version and exit. Using [ErrHelp]
	// the main binary is supposed to return with a non error exit code.
	if f.version {
		err := f.printVersionInformation()
		return &ParseArgsError{msg: "version requested", err: err}
	}

	positionalArgs := f.flagSet.Args()

	// First positional argument is the archive file.
	if len(positionalArgs) < 1 {
		return f.fail("no archive given", nil)
	}

	archivePath, err := AbsoluteFilePath(positionalArgs[0])
	if err != nil {
		return f.fail("archive path", err)
	}

	f.archivePath = archivePath
	f.files = positionalArgs[1:]

	if f.action.modifies() && len(f.files) == 0 && f.comment == "" {
		return f.fail("no files given for "+f.action.String(), nil)
	}

	return nil
}

func (f *flags) initFlagset(output io.Writer) {
	flagSet := flag.NewFlagSet(name, flag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.Usage = f.usage

	flagSet.Var(
		&f.action,
		"action",
		"action to perform: list, create, append, cat, export",
	)

	flagSet.Var(
		&f.method,
		"method",
		"compression method for added files: store, deflate, zstd",
	)

	flagSet.StringVar(
		&f.comment,
		"comment",
		f.comment,
		"archive comment to set on create or append",
	)

	flagSet.Var(
		&limitedIntValue{
			Value: &f.jobs,
			min:   jobsMin,
			max:   jobsMax,
		},
		"jobs",
		"number of files to read concurrently",
	)

	flagSet.BoolVar(
		&f.debug,
		"debug",
		f.debug,
		"enable debug output",
	)

	flagSet.BoolVar(
		&f.version,
		"version",
		f.version,
		"show version and exit",
	)

	f.flagSet = flagSet
}

func (f *flags) usage() {
	fmt.Fprint(f.flagSet.Output(), usageMessage)
	fmt.Fprintln(f.flagSet.Output(), "\nFlags:")
	f.flagSet.PrintDefaults()
}

// fail fails like flag does. It prints the error first and then usage.
func (f *flags) fail(msg string, err error) error {
	err = &ParseArgsError{msg: msg, err: err}
	fmt.Fprintln(f.flagSet.Output(), err.Error())

	f.flagSet.Usage()

	return err
}

func (f *flags) printVersionInformation() error {
	buildInfo, ok := debug.ReadBuildInfo()
	if !ok {
		return ErrReadBuildInfo
	}

	fmt.Fprintf(f.flagSet.Output(), "Version: %s\n", buildInfo.Main.Version)

	return ErrHelp
}
