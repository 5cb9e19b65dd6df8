// Package logging configures the logrus logger shared by every healthnet
// component.
package logging

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
)

// Output formats accepted by New.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Formatter renders an entry as `LEVEL [Jan _2 15:04:05.000] message key=value`.
// Fields are printed in key order.
type Formatter struct{}

// Format converts a logrus entry into a string for logging.
func (f Formatter) Format(entry *log.Entry) ([]byte, error) {
	b := &bytes.Buffer{}

	level := strings.ToUpper(entry.Level.String())
	fmt.Fprintf(b, "%s [%s] %-40s", level, entry.Time.Format(time.StampMilli), entry.Message)

	keys := make([]string, 0, len(entry.Data))
	for k := range entry.Data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(b, " %s=%+v", k, entry.Data[k])
	}

	b.WriteByte('\n')
	return b.Bytes(), nil
}

// New returns a logger writing to w at the given level ("debug", "info",
// "warn", ...) using FormatText or FormatJSON.
func New(w io.Writer, level, format string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}

	logger := log.New()
	logger.SetOutput(w)
	logger.SetLevel(lvl)
	switch format {
	case "", FormatText:
		logger.SetFormatter(Formatter{})
	case FormatJSON:
		logger.SetFormatter(&log.JSONFormatter{TimestampFormat: time.RFC3339Nano})
	default:
		return nil, fmt.Errorf("logging: unknown format %q", format)
	}

	return logger, nil
}

// Discard returns a logger that drops every entry. Handy for tests and for
// components constructed without a logger.
func Discard() *log.Logger {
	logger := log.New()
	logger.SetOutput(io.Discard)
	return logger
}
