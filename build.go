//go:build never
// +build never

package main

import (
	"errors"
	"flag"
	"os"
	"runtime"

	module "github.com/tensorworks/go-build-helpers/pkg/module"
	validation "github.com/tensorworks/go-build-helpers/pkg/validation"
)

// Alias validation.ExitIfError() as check()
var check = validation.ExitIfError

func main() {

	// Parse our command-line flags
	doClean := flag.Bool("clean", false, "removes the smb2mv binaries from the bin directory")
	flag.Parse()

	// smb2mv talks to the Linux CIFS client, so refuse to build anywhere else
	if runtime.GOOS != "linux" {
		check(errors.New("smb2mv can only be built for Linux hosts"))
	}

	// Locate the Go module in the current working directory
	mod, err := module.ModuleInCwd()
	check(err)

	if *doClean {
		check(mod.CleanAll())
		os.Exit(0)
	}

	// Build cmd/smb2mv into the bin directory
	check(mod.BuildBinariesForHost(module.DefaultBinDir, module.Undecorated))
}
