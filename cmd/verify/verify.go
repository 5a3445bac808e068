package verify

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"strings"

	"github.com/femnad/zipguard/archive"
	"github.com/femnad/zipguard/entity"
	"github.com/femnad/zipguard/internal"
	"github.com/femnad/zipguard/remote"
)

const (
	ExitOK        = 0
	ExitFailed    = 1
	ExitMalformed = 2
)

func unmatchedPatterns(names, patterns []string) []string {
	var unmatched []string
patterns:
	for _, pattern := range patterns {
		for _, name := range names {
			if ok, _ := path.Match(pattern, name); ok {
				continue patterns
			}
		}
		unmatched = append(unmatched, pattern)
	}
	return unmatched
}

func unmatchedPrefixes(names, prefixes []string) []string {
	var unmatched []string
prefixes:
	for _, prefix := range prefixes {
		for _, name := range names {
			if strings.HasPrefix(name, prefix) {
				continue prefixes
			}
		}
		unmatched = append(unmatched, prefix)
	}
	return unmatched
}

func backslashEntries(names []string) []string {
	var entries []string
	for _, name := range names {
		if strings.Contains(name, `\`) {
			entries = append(entries, name)
		}
	}
	return entries
}

// Check evaluates every rule of the profile against names, none of the checks short circuit.
func Check(names []string, profile entity.Profile) Report {
	required := internal.SetFromList(profile.Required)
	present := internal.SetFromList(names)

	return Report{
		BackslashEntries:  backslashEntries(names),
		EntryCount:        len(names),
		Missing:           internal.SortedDifference(required, present),
		UnmatchedPatterns: unmatchedPatterns(names, profile.Patterns),
		UnmatchedPrefixes: unmatchedPrefixes(names, profile.Prefixes),
	}
}

func fetch(location string) (string, func(), error) {
	noop := func() {}
	if !internal.IsRemote(location) {
		return location, noop, nil
	}

	internal.Log.Infof("Downloading %s", location)
	file, err := remote.DownloadTemp(location)
	if err != nil {
		return "", noop, fmt.Errorf("error downloading %s: %w", location, err)
	}

	return file, func() {
		if err := os.Remove(file); err != nil {
			internal.Log.Warningf("Error removing downloaded archive %s: %v", file, err)
		}
	}, nil
}

// Run verifies the archive at location, writing the success line to stdout and diagnostics to stderr. It
// returns the process exit code.
func Run(location string, profile entity.Profile, stdout, stderr io.Writer) int {
	prefix := internal.ErrorPrefix()

	file, cleanup, err := fetch(location)
	if err != nil {
		fmt.Fprintf(stderr, "%s %v\n", prefix, err)
		return ExitFailed
	}
	defer cleanup()

	internal.Log.Debugf("Listing entries of %s", file)
	names, err := archive.ListEntries(file)
	if errors.Is(err, archive.ErrNotFound) {
		fmt.Fprintf(stderr, "%s zip not found: %s\n", prefix, location)
		return ExitFailed
	} else if errors.Is(err, archive.ErrMalformed) {
		fmt.Fprintf(stderr, "%s %v\n", prefix, err)
		return ExitMalformed
	} else if err != nil {
		fmt.Fprintf(stderr, "%s %v\n", prefix, err)
		return ExitFailed
	}

	report := Check(names, profile)
	if report.Failed() {
		report.WriteDiagnostics(stderr, profile.MaxListed)
		return ExitFailed
	}

	fmt.Fprintf(stdout, "Verified %s (%d entries)\n", location, report.EntryCount)
	return ExitOK
}
