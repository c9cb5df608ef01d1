package main

import (
	"io"
	"strings"

	"github.com/fatih/color"
)

// commandWriter prints rcon lines colored by command. Colors are dropped
// automatically when stdout is not a terminal.
type commandWriter struct {
	out    io.Writer
	colors map[string]*color.Color
	plain  *color.Color
}

func newCommandWriter(out io.Writer) *commandWriter {
	colors := map[string]*color.Color{
		"mute":  color.New(color.FgRed, color.Bold),
		"smite": color.New(color.FgRed),
		"set":   color.New(color.FgYellow),
		"exec":  color.New(color.FgYellow),
		"say":   color.New(color.FgGreen),
		"tell":  color.New(color.FgCyan),
	}
	return &commandWriter{out: out, colors: colors, plain: color.New(color.Reset)}
}

func (w *commandWriter) Write(p []byte) (int, error) {
	for line := range strings.Lines(string(p)) {
		line = strings.TrimRight(line, "\r\n")
		verb, _, _ := strings.Cut(line, " ")
		c, ok := w.colors[verb]
		if !ok {
			c = w.plain
		}
		if _, err := c.Fprintln(w.out, line); err != nil {
			return 0, err
		}
	}
	return len(p), nil
}
