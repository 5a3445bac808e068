package main

import (
	"fmt"
	"log"
	"os"

	"github.com/alexflint/go-arg"

	"github.com/femnad/zipguard/cmd/verify"
	"github.com/femnad/zipguard/entity"
	"github.com/femnad/zipguard/internal"
)

type args struct {
	ZipPath  string `arg:"positional" help:"Deploy zip path or URL [default: .artifacts/deploy/familyscheduler-api.zip]"`
	Config   string `arg:"-c,--config" help:"Verification profile file path"`
	LogLevel int    `arg:"-l,--loglevel" default:"2"`
	NoColor  bool   `arg:"--no-color" help:"Disable colored output"`
	RepoRoot bool   `arg:"-r,--repo-root" help:"Resolve a relative zip path against the git repository root"`
}

func (args) Version() string {
	return "zipguard 0.1.0"
}

func (args) Description() string {
	return "Verifies a deploy zip has the required entries and no backslash entry names"
}

func readProfile(file string) (entity.Profile, error) {
	if file == "" {
		return entity.DefaultProfile(), nil
	}

	return entity.ReadProfile(file)
}

func main() {
	var parsed args
	arg.MustParse(&parsed)
	internal.InitLogging(parsed.LogLevel)
	internal.InitColor(parsed.NoColor)

	profile, err := readProfile(parsed.Config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s error reading profile: %v\n", internal.ErrorPrefix(), err)
		os.Exit(verify.ExitMalformed)
	}

	cwd, err := os.Getwd()
	if err != nil {
		log.Fatalf("%v\n", err)
	}

	if parsed.ZipPath == "" {
		parsed.ZipPath = entity.DefaultZipPath
	}

	zipPath, err := internal.ResolvePath(parsed.ZipPath, cwd, parsed.RepoRoot)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", internal.ErrorPrefix(), err)
		os.Exit(verify.ExitFailed)
	}

	os.Exit(verify.Run(zipPath, profile, os.Stdout, os.Stderr))
}
