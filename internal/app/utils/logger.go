package utils

import (
	"github.com/sirupsen/logrus"
)

// InitLogger sets the global logrus level and formatter. An unknown level
// falls back to info.
func InitLogger(level string) {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		logrus.Warnf("unknown log level %q, using info", level)
		lvl = logrus.InfoLevel
	}
	logrus.SetLevel(lvl)
}
