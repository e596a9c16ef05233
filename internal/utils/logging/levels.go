package logging

import (
	"fmt"
	"io"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"songdl/internal/domain/consts"

	"github.com/rs/zerolog"
)

// E logs an error with the caller's function, file and line.
func (pl *ProgramLogger) E(format string, args ...any) string {
	return pl.tagged(zerolog.ErrorLevel, consts.RedError, pl.errOut, format, args...)
}

// W logs a warning.
func (pl *ProgramLogger) W(format string, args ...any) string {
	return pl.plain(zerolog.WarnLevel, consts.PurpleWarning, pl.errOut, format, args...)
}

// S logs a success message.
func (pl *ProgramLogger) S(format string, args ...any) string {
	return pl.plain(zerolog.InfoLevel, consts.GreenSuccess, pl.console, format, args...)
}

// I logs an info message.
func (pl *ProgramLogger) I(format string, args ...any) string {
	return pl.plain(zerolog.InfoLevel, consts.BlueInfo, pl.console, format, args...)
}

// P prints without a tag.
func (pl *ProgramLogger) P(format string, args ...any) string {
	return pl.plain(zerolog.InfoLevel, "", pl.console, format, args...)
}

// D logs a debug message if l is at or below the current debug level.
func (pl *ProgramLogger) D(l int, format string, args ...any) string {
	if l > pl.Level() {
		return ""
	}
	return pl.tagged(zerolog.DebugLevel, consts.YellowDebug, pl.console, format, args...)
}

func (pl *ProgramLogger) plain(lvl zerolog.Level, tag string, w io.Writer, format string, args ...any) string {
	pl.mu.Lock()
	defer pl.mu.Unlock()

	var b strings.Builder
	b.Grow(len(tag) + len(format) + 1 + (len(args) * 32))
	b.WriteString(tag)
	writeFormatted(&b, format, args...)
	b.WriteString("\n")

	msg := b.String()
	fmt.Fprint(w, msg)
	pl.writeLog(lvl, strings.TrimSuffix(msg, "\n"))
	return msg
}

func (pl *ProgramLogger) tagged(lvl zerolog.Level, tag string, w io.Writer, format string, args ...any) string {
	pc, file, line, _ := runtime.Caller(2)
	file = filepath.Base(file)
	funcName := "unknown"
	if fn := runtime.FuncForPC(pc); fn != nil {
		funcName = filepath.Base(fn.Name())
	}

	pl.mu.Lock()
	defer pl.mu.Unlock()

	var b strings.Builder
	b.Grow(len(tag) + len(format) + 64 + (len(args) * 32))
	b.WriteString(tag)
	writeFormatted(&b, format, args...)

	b.WriteString(" [")
	b.WriteString(consts.ColorBlue)
	b.WriteString("Function: ")
	b.WriteString(consts.ColorReset)
	b.WriteString(funcName)
	b.WriteString(" - ")
	b.WriteString(consts.ColorBlue)
	b.WriteString("File: ")
	b.WriteString(consts.ColorReset)
	b.WriteString(file)
	b.WriteString(" : ")
	b.WriteString(consts.ColorBlue)
	b.WriteString("Line: ")
	b.WriteString(consts.ColorReset)
	b.WriteString(strconv.Itoa(line))
	b.WriteString("]\n")

	msg := b.String()
	fmt.Fprint(w, msg)
	pl.writeLog(lvl, strings.TrimSuffix(msg, "\n"))
	return msg
}

func writeFormatted(b *strings.Builder, format string, args ...any) {
	if len(args) != 0 {
		fmt.Fprintf(b, format, args...)
		return
	}
	b.WriteString(format)
}
