package log

import (
	"fmt"
	"os"
)

const (
	reset  = "\033[0m"
	cyan   = "\033[36m"
	yellow = "\033[33m"
	red    = "\033[31m"
)

func Info(format string, args ...interface{}) {
	fmt.Printf("%s[alpm-setup]%s %s\n", cyan, reset, fmt.Sprintf(format, args...))
}

func Warn(format string, args ...interface{}) {
	fmt.Printf("%s[alpm-setup]%s %s\n", yellow, reset, fmt.Sprintf(format, args...))
}

func Error(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "%s[alpm-setup]%s %s\n", red, reset, fmt.Sprintf(format, args...))
}
