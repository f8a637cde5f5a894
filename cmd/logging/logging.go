package logging

import (
	"github.com/kuberlab/vsprof/pkg/utils"
	"github.com/sirupsen/logrus"
)

var (
	LogLevel string
)

// InitLogging sets the text formatter and the level from LogLevel, falling
// back to fallback, then LOG_LEVEL, then debug. DEBUG=true forces debug.
func InitLogging(fallback string) {
	logrus.SetFormatter(&logrus.TextFormatter{TimestampFormat: "2006-01-02 15:04:05", FullTimestamp: true})

	level := LogLevel
	if level == "" {
		level = fallback
	}
	if level == "" {
		level = utils.LogLevel()
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil || utils.DebugEnabled() {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(lvl)
	}
}
