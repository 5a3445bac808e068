package internal

import (
	"os"

	"github.com/op/go-logging"
)

const logFormat = "%{color}%{time:15:04:05} %{level:.4s}%{color:reset} %{message}"

var Log = logging.MustGetLogger("zipguard")

// InitLogging sends log output to stderr, stdout is reserved for the verification result.
func InitLogging(level int) {
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	formatted := logging.NewBackendFormatter(backend, logging.MustStringFormatter(logFormat))
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(logging.Level(level), "")
	logging.SetBackend(leveled)
}
