package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// New builds the process-wide logger. JSON output in production, text
// otherwise, so local logs stay readable.
func New(production bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stdout)

	if production {
		log.SetFormatter(&logrus.JSONFormatter{})
		log.SetLevel(logrus.InfoLevel)
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
		log.SetLevel(logrus.DebugLevel)
	}

	return log
}
