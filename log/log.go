// Package log is a thin leveled logger over the standard library,
// with colored level tags.
package log

import (
	"fmt"
	"log"
	"os"

	"github.com/fatih/color"
)

var (
	std   = log.New(os.Stdout, "", log.LstdFlags)
	debug = false

	infoTag  = color.New(color.FgHiGreen).Sprint("[INFO]")
	errorTag = color.New(color.FgHiRed).Sprint("[ERROR]")
	debugTag = color.New(color.FgHiYellow).Sprint("[DEBUG]")
)

func SetDebug(on bool) {
	debug = on
}

func Info(v ...interface{}) {
	std.Println(infoTag, fmt.Sprint(v...))
}

func Infof(format string, v ...interface{}) {
	std.Print(infoTag, " ", fmt.Sprintf(format, v...))
}

func Error(v ...interface{}) {
	if len(v) == 1 && v[0] == nil {
		return
	}
	std.Println(errorTag, fmt.Sprint(v...))
}

func Errorf(format string, v ...interface{}) {
	std.Print(errorTag, " ", fmt.Sprintf(format, v...))
}

func Debugf(format string, v ...interface{}) {
	if !debug {
		return
	}
	std.Print(debugTag, " ", fmt.Sprintf(format, v...))
}
