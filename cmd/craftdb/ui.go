package main

import (
	"fmt"
	"io"
	"os"
)

const (
	colorGreen  = "\033[0;32m"
	colorRed    = "\033[0;31m"
	colorYellow = "\033[1;33m"
	colorBlue   = "\033[0;34m"
	colorReset  = "\033[0m"
)

// UI writes status lines, coloured unless NO_COLOR is set
type UI struct {
	out   io.Writer
	color bool
}

func newUI(out io.Writer) *UI {
	_, noColor := os.LookupEnv("NO_COLOR")
	return &UI{out: out, color: !noColor}
}

func (u *UI) print(color, symbol, format string, a ...interface{}) {
	msg := fmt.Sprintf(format, a...)
	if u.color {
		fmt.Fprintf(u.out, "%s%s %s%s\n", color, symbol, msg, colorReset)
		return
	}
	fmt.Fprintf(u.out, "%s %s\n", symbol, msg)
}

func (u *UI) Info(format string, a ...interface{}) {
	u.print(colorBlue, "ℹ", format, a...)
}

func (u *UI) Success(format string, a ...interface{}) {
	u.print(colorGreen, "✓", format, a...)
}

func (u *UI) Warning(format string, a ...interface{}) {
	u.print(colorYellow, "⚠", format, a...)
}

func (u *UI) Error(format string, a ...interface{}) {
	u.print(colorRed, "✗", format, a...)
}

func (u *UI) Header(title string) {
	if u.color {
		fmt.Fprintf(u.out, "\n"+colorYellow+"=== %s ==="+colorReset+"\n", title)
		return
	}
	fmt.Fprintf(u.out, "\n=== %s ===\n", title)
}

// Println writes a plain line
func (u *UI) Println(a ...interface{}) {
	fmt.Fprintln(u.out, a...)
}
