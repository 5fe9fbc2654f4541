package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"
	"gopkg.in/natefinch/lumberjack.v2"

	"go.viam.com/rrtplan/logging"
)

// printf prints a message with no prefix.
func printf(w io.Writer, format string, a ...interface{}) {
	//nolint:errcheck
	fmt.Fprintf(w, format+"\n", a...)
}

// infof prints a message prefixed with a bold cyan "Info: ".
func infof(w io.Writer, format string, a ...interface{}) {
	//nolint:errcheck
	fmt.Fprintf(w, color.New(color.Bold, color.FgCyan).Sprint("Info: ")+format+"\n", a...)
}

// warningf prints a message prefixed with a bold yellow "Warning: ".
func warningf(w io.Writer, format string, a ...interface{}) {
	//nolint:errcheck
	fmt.Fprintf(w, color.New(color.Bold, color.FgYellow).Sprint("Warning: ")+format+"\n", a...)
}

// newCLILogger returns a logger writing to the app's error stream, and to a rotated --log-file if one was given.
// --debug takes precedence over --log-level.
func newCLILogger(c *cli.Context) (logging.Logger, error) {
	level := logging.DEBUG
	if !c.Bool(debugFlag) {
		var err error
		if level, err = logging.LevelFromString(c.String(logLevelFlag)); err != nil {
			return nil, err
		}
	}
	logger := logging.NewBlankLogger("rrtplan")
	logger.SetLevel(level)
	logger.AddAppender(logging.NewWriterAppender(c.App.ErrWriter))
	if path := c.String(logFileFlag); path != "" {
		logger.AddAppender(logging.NewWriterAppender(&lumberjack.Logger{
			Filename:   path,
			MaxSize:    10,
			MaxBackups: 2,
		}))
	}
	return logger, nil
}
