package whispermel

import (
	"os"

	"github.com/charmbracelet/log"
)

// logger is the package-wide diagnostic sink: non-fatal warnings and
// informational notes from within the pipeline (a degenerate filter
// width, a resampler bypass). The C ABI shell logs its terminal failures
// through its own logger in cmd/libwhispermel.
var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: false,
	ReportCaller:    false,
	Prefix:          "whispermel",
})

func logInfof(format string, args ...any) {
	logger.Infof(format, args...)
}

func logWarnf(format string, args ...any) {
	logger.Warnf(format, args...)
}

func logErrorf(format string, args ...any) {
	logger.Errorf(format, args...)
}
