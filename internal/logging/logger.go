package logging

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	logFileMaxSizeMB  = 50
	logFileMaxBackups = 5
)

type LoggerSetupParams struct {
	LogFileName   string
	LogToStdout   bool
	LogLevel      string
	LogFormatJSON bool
}

// Setup configures the global logrus logger used by the backend, the desktop
// launcher and the CLI.
func Setup(params LoggerSetupParams) {
	if params.LogFormatJSON {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	level, known := GetLevel(params.LogLevel)
	logrus.SetLevel(level)
	logrus.SetOutput(Output(params))

	if !known {
		logrus.Warnf("unknown log level [%s], using %s", params.LogLevel, level)
	}
	switch {
	case params.LogFileName == "":
		logrus.Debugln("writing logs only to STDOUT")
	case params.LogToStdout:
		logrus.Debugf("writing logs to %s and STDOUT", params.LogFileName)
	default:
		logrus.Debugf("writing logs to %s", params.LogFileName)
	}
}

// Output is stdout, a rotating file, or both.
func Output(params LoggerSetupParams) io.Writer {
	if params.LogFileName == "" {
		return os.Stdout
	}

	fileName := params.LogFileName
	if !strings.HasSuffix(fileName, ".log") {
		fileName += ".log"
	}

	rotating := &lumberjack.Logger{
		Filename:   fileName,
		MaxSize:    logFileMaxSizeMB,
		MaxBackups: logFileMaxBackups,
		LocalTime:  false, // UTC file names
		Compress:   true,
	}

	if params.LogToStdout {
		return newTeeWriter(os.Stdout, rotating)
	}
	return rotating
}

// GetLevel parses level names case-insensitively. An empty name is info,
// an unknown one is info too and reported as not known.
func GetLevel(level string) (logrus.Level, bool) {
	level = strings.TrimSpace(level)
	if level == "" {
		return logrus.InfoLevel, true
	}
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return logrus.InfoLevel, false
	}
	return parsed, true
}
