package utils

import "github.com/sirupsen/logrus"

// Logger is shared by every package of the analyzer.
var Logger = logrus.New()

func SetVerbose() {
	Logger.SetLevel(logrus.DebugLevel)
}

// SetJSONLogs switches to machine readable logs.
func SetJSONLogs() {
	Logger.SetFormatter(&logrus.JSONFormatter{})
}
