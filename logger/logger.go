package logger

import (
	"log"
	"os"
)

// WarningLogger emits a warning for each non fatal anomaly, like a float
// placement request wider than its containing block.
var WarningLogger = log.New(os.Stdout, "floatlayout.warning: ", log.Lmsgprefix)
