package main

import (
	"log"
	"os"

	"github.com/alexflint/go-arg"

	"github.com/femnad/zipguard/pack"
	"github.com/femnad/zipguard/cmd/verify"
	"github.com/femnad/zipguard/entity"
	"github.com/femnad/zipguard/internal"
)

type args struct {
	Source   string `arg:"required,-s,--source" help:"Staging directory to pack"`
	Output   string `arg:"-o,--output" default:".artifacts/deploy/familyscheduler-api.zip" help:"Zip file to create"`
	Verify   bool   `arg:"--verify" help:"Verify the created zip with the default profile"`
	LogLevel int    `arg:"-l,--loglevel" default:"4"`
}

func main() {
	var parsed args
	arg.MustParse(&parsed)
	internal.InitLogging(parsed.LogLevel)
	internal.InitColor(false)

	count, err := pack.CreateFromDirectory(parsed.Source, parsed.Output)
	if err != nil {
		log.Fatalf("Error packing %s: %v\n", parsed.Source, err)
	}
	internal.Log.Noticef("Created %s with %d entries", parsed.Output, count)

	if parsed.Verify {
		os.Exit(verify.Run(parsed.Output, entity.DefaultProfile(), os.Stdout, os.Stderr))
	}
}
