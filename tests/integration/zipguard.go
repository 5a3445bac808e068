package integration

import (
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/femnad/mare"
	marecmd "github.com/femnad/mare/cmd"
)

// binPath expects the binaries installed with `go install . ./cmd/pack`.
func binPath(name string) string {
	goPath := os.Getenv("GOPATH")
	if goPath == "" {
		goPath = mare.ExpandUser("~/go")
	}
	return path.Join(goPath, "bin", name)
}

func runZipguard(pwd string, args ...string) (marecmd.Output, error) {
	cmd := fmt.Sprintf("%s %s", binPath("zipguard"), strings.Join(args, " "))
	return marecmd.Run(marecmd.Input{Command: cmd, Pwd: pwd})
}

func runPack(source, output string) error {
	cmd := fmt.Sprintf("%s --source %s --output %s", binPath("pack"), source, output)
	return marecmd.RunErrOnly(marecmd.Input{Command: cmd})
}
