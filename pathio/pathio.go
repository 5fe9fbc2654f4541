// Package pathio reads and writes waypoint sequences as JSON or CSV files.
package pathio

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/golang/geo/r2"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// Format is a waypoint file encoding.
type Format string

// The supported waypoint file formats.
const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
)

var csvHeader = []string{"x", "y"}

// ParseFormat returns the Format named by s.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatJSON, FormatCSV:
		return f, nil
	default:
		return "", errors.Errorf("unknown waypoint format %q, expected one of %q or %q", s, FormatJSON, FormatCSV)
	}
}

// FormatFromPath guesses the format from a file extension, defaulting to JSON.
func FormatFromPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		return FormatCSV
	}
	return FormatJSON
}

type waypointsDocument struct {
	Waypoints [][2]float64 `json:"waypoints"`
}

// WriteJSON writes the waypoints as {"waypoints": [[x, y], ...]}.
func WriteJSON(w io.Writer, waypoints []r2.Point) error {
	doc := waypointsDocument{Waypoints: make([][2]float64, 0, len(waypoints))}
	for _, p := range waypoints {
		doc.Waypoints = append(doc.Waypoints, [2]float64{p.X, p.Y})
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(doc)
}

// ReadJSON reads waypoints written by WriteJSON.
func ReadJSON(r io.Reader) ([]r2.Point, error) {
	var doc waypointsDocument
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Wrap(err, "cannot decode waypoints")
	}
	waypoints := make([]r2.Point, 0, len(doc.Waypoints))
	for _, p := range doc.Waypoints {
		waypoints = append(waypoints, r2.Point{X: p[0], Y: p[1]})
	}
	return waypoints, nil
}

// WriteCSV writes the waypoints as x,y rows below a header row.
func WriteCSV(w io.Writer, waypoints []r2.Point) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(csvHeader); err != nil {
		return err
	}
	for _, p := range waypoints {
		row := []string{strconv.FormatFloat(p.X, 'g', -1, 64), strconv.FormatFloat(p.Y, 'g', -1, 64)}
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// ReadCSV reads waypoints written by WriteCSV.
func ReadCSV(r io.Reader) ([]r2.Point, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = len(csvHeader)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "cannot decode waypoints")
	}
	if len(records) == 0 || records[0][0] != csvHeader[0] || records[0][1] != csvHeader[1] {
		return nil, errors.Errorf("waypoint csv must start with header %v", csvHeader)
	}
	waypoints := make([]r2.Point, 0, len(records)-1)
	for i, record := range records[1:] {
		x, errX := strconv.ParseFloat(record[0], 64)
		y, errY := strconv.ParseFloat(record[1], 64)
		if err := multierr.Combine(errX, errY); err != nil {
			return nil, errors.Wrapf(err, "bad waypoint on row %d", i+2)
		}
		waypoints = append(waypoints, r2.Point{X: x, Y: y})
	}
	return waypoints, nil
}

// Write writes the waypoints to a new file at path in the given format.
func Write(path string, format Format, waypoints []r2.Point) (err error) {
	//nolint:gosec
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Combine(err, f.Close())
	}()
	switch format {
	case FormatCSV:
		return WriteCSV(f, waypoints)
	case FormatJSON:
		return WriteJSON(f, waypoints)
	default:
		return errors.Errorf("unknown waypoint format %q", format)
	}
}

// Read reads a waypoint file, choosing the format from its extension.
func Read(path string) ([]r2.Point, error) {
	//nolint:gosec
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		//nolint:errcheck
		f.Close()
	}()
	if FormatFromPath(path) == FormatCSV {
		return ReadCSV(f)
	}
	return ReadJSON(f)
}
