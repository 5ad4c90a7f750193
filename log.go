package huffman

import (
	"github.com/op/go-logging"
)

// LogModule is the go-logging module name used by this package.
const LogModule = "huffpack"

var log = logging.MustGetLogger(LogModule)
