package store

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/katalvlaran/healthnet/core"
)

// Load reads centers, then connections, into g.
func (s *Store) Load(g *core.Graph) (LoadReport, error) {
	var rep LoadReport
	n, skipped, err := s.LoadCenters(g)
	rep.Centers, rep.Skipped = n, append(rep.Skipped, skipped...)
	if err != nil {
		return rep, err
	}
	n, skipped, err = s.LoadConnections(g)
	rep.Connections, rep.Skipped = n, append(rep.Skipped, skipped...)

	return rep, err
}

// LoadCenters adds every valid center row to g and returns the number added.
func (s *Store) LoadCenters(g *core.Graph) (int, []*RowError, error) {
	return s.loadFile(FileCenters, s.paths.Centers, CentersHeader, func(text string) error {
		c, err := parseCenter(text)
		if err != nil {
			return err
		}
		if err = s.check(centerRecord{ID: c.ID, Capacity: c.Capacity}); err != nil {
			return err
		}
		return g.AddCenter(c)
	})
}

// LoadConnections adds every valid connection row to g. Rows naming unknown
// centers, self-loops and repeated pairs are skipped.
func (s *Store) LoadConnections(g *core.Graph) (int, []*RowError, error) {
	return s.loadFile(FileConnections, s.paths.Connections, ConnectionsHeader, func(text string) error {
		c, err := parseConnection(text)
		if err != nil {
			return err
		}
		if err = s.check(connectionRecord{From: c.From, To: c.To, Distance: c.Distance}); err != nil {
			return err
		}
		return g.AddConnection(c)
	})
}

// loadFile creates a missing file with header, otherwise feeds every
// non-blank line after the header to apply.
func (s *Store) loadFile(label, path, header string, apply func(string) error) (int, []*RowError, error) {
	data, err := afero.ReadFile(s.fs, path)
	if errors.Is(err, os.ErrNotExist) {
		s.log.WithFields(logrus.Fields{"file": label, "path": path}).Info("file missing, creating with header")
		return 0, nil, s.write(label, path, []byte(header+"\n"))
	}
	if err != nil {
		return 0, nil, fmt.Errorf("store: read %s: %w", path, err)
	}

	var (
		added   int
		skipped []*RowError
		lineNo  int
	)
	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		lineNo++
		text := strings.TrimRight(sc.Text(), "\r")
		if lineNo == 1 || strings.TrimSpace(text) == "" {
			continue // header or blank
		}
		if err = apply(text); err != nil {
			re := &RowError{File: label, Line: lineNo, Text: text, Err: err}
			s.log.WithFields(logrus.Fields{"file": label, "line": lineNo, "error": err}).Warn("skipping row")
			skipped = append(skipped, re)
			continue
		}
		added++
	}
	if err = sc.Err(); err != nil {
		return added, skipped, fmt.Errorf("store: scan %s: %w", path, err)
	}
	if s.obs != nil {
		s.obs.RecordSkippedRows(label, len(skipped))
	}
	s.log.WithFields(logrus.Fields{"file": label, "loaded": added, "skipped": len(skipped)}).Debug("loaded")

	return added, skipped, nil
}

// parseCenter splits ID,Name,District,Latitude,Longitude,Capacity.
// Capacity is the rest of the line.
func parseCenter(text string) (core.Center, error) {
	f := strings.SplitN(text, ",", 6)
	if len(f) < 6 {
		return core.Center{}, fmt.Errorf("%w: want 6 fields, got %d", ErrMalformedRow, len(f))
	}
	id, err := parseInt("ID", f[0])
	if err != nil {
		return core.Center{}, err
	}
	lat, err := parseFloat("Latitude", f[3])
	if err != nil {
		return core.Center{}, err
	}
	lon, err := parseFloat("Longitude", f[4])
	if err != nil {
		return core.Center{}, err
	}
	capacity, err := parseInt("Capacity", f[5])
	if err != nil {
		return core.Center{}, err
	}

	return core.Center{ID: id, Name: f[1], District: f[2], Lat: lat, Lon: lon, Capacity: capacity}, nil
}

// parseConnection splits FromID,ToID,DistanceKM,TimeMinutes,Description.
// Description is the rest of the line, trimmed, and may be absent.
func parseConnection(text string) (core.Connection, error) {
	f := strings.SplitN(text, ",", 5)
	if len(f) < 4 {
		return core.Connection{}, fmt.Errorf("%w: want at least 4 fields, got %d", ErrMalformedRow, len(f))
	}
	from, err := parseInt("FromID", f[0])
	if err != nil {
		return core.Connection{}, err
	}
	to, err := parseInt("ToID", f[1])
	if err != nil {
		return core.Connection{}, err
	}
	dist, err := parseFloat("DistanceKM", f[2])
	if err != nil {
		return core.Connection{}, err
	}
	minutes, err := parseInt("TimeMinutes", f[3])
	if err != nil {
		return core.Connection{}, err
	}
	var desc string
	if len(f) == 5 {
		desc = strings.TrimSpace(f[4])
	}

	return core.Connection{From: from, To: to, Distance: dist, Time: minutes, Description: desc}, nil
}

func parseInt(field, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q is not an integer", ErrMalformedRow, field, s)
	}
	return n, nil
}

func parseFloat(field, s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q is not a number", ErrMalformedRow, field, s)
	}
	return v, nil
}

// write replaces path with data, creating parent directories.
func (s *Store) write(label, path string, data []byte) error {
	err := s.fs.MkdirAll(filepath.Dir(path), 0o755)
	if err == nil {
		err = afero.WriteFile(s.fs, path, data, 0o644)
	}
	if s.obs != nil {
		s.obs.RecordStoreWrite(label, err)
	}
	if err != nil {
		return fmt.Errorf("store: write %s: %w", path, err)
	}

	return nil
}
