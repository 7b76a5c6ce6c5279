package funwithbits

import (
	"github.com/MatusOllah/slogcolor"
	"github.com/fatih/color"
	"log/slog"
	"os"
)

var (
	logLevel = new(slog.LevelVar)
	logger   = slog.New(slogcolor.NewHandler(os.Stderr, &slogcolor.Options{
		Level:         logLevel,
		TimeFormat:    "15:04:05.000",
		SrcFileMode:   slogcolor.ShortFile,
		SrcFileLength: 16,
		MsgPrefix:     color.HiWhiteString("|"),
		MsgColor:      color.New(color.FgHiWhite),
		MsgLength:     24,
	}))
)

func init() {
	logLevel.Set(slog.LevelWarn)
}

// SetLogLevel changes the level of the package logger. Rejected calls are logged at debug level.
func SetLogLevel(level slog.Level) {
	logLevel.Set(level)
}
