// Package workload loads process sets from YAML or CSV files.
package workload

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"cpu-scheduler-comparison/internal/requests"
)

// Process is one row of a workload file.
type Process struct {
	Burst   int `yaml:"burst"`
	Arrival int `yaml:"arrival"`
}

// File is the YAML workload layout.
type File struct {
	Quantum   *int      `yaml:"quantum"`
	Processes []Process `yaml:"processes"`
}

// Request converts the file into a schedule request.
func (f File) Request() requests.ScheduleRequest {
	req := requests.ScheduleRequest{
		BurstTimes:   make([]int, len(f.Processes)),
		ArrivalTimes: make([]int, len(f.Processes)),
		Quantum:      f.Quantum,
	}
	for i, p := range f.Processes {
		req.BurstTimes[i] = p.Burst
		req.ArrivalTimes[i] = p.Arrival
	}
	return req
}

// Load reads path as YAML (.yaml, .yml) or CSV (anything else).
func Load(path string) (requests.ScheduleRequest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return requests.ScheduleRequest{}, fmt.Errorf("reading workload %s: %w", path, err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		f, err := ParseYAML(bytes.NewReader(data))
		if err != nil {
			return requests.ScheduleRequest{}, fmt.Errorf("%s: %w", path, err)
		}
		return f.Request(), nil
	default:
		f, err := ParseCSV(bytes.NewReader(data))
		if err != nil {
			return requests.ScheduleRequest{}, fmt.Errorf("%s: %w", path, err)
		}
		return f.Request(), nil
	}
}

// ParseYAML decodes a workload, rejecting unknown fields so typos surface.
func ParseYAML(r io.Reader) (File, error) {
	var f File
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return File{}, errors.New("empty workload")
		}
		return File{}, fmt.Errorf("parsing workload YAML: %w", err)
	}
	return f, nil
}

// ParseCSV reads rows of "burst[,arrival]". A first row that does not start
// with a number is treated as a header.
func ParseCSV(r io.Reader) (File, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	rows, err := reader.ReadAll()
	if err != nil {
		return File{}, fmt.Errorf("reading CSV: %w", err)
	}

	var f File
	for i, row := range rows {
		if len(row) == 0 || (len(row) == 1 && strings.TrimSpace(row[0]) == "") {
			continue
		}
		if i == 0 && !isNumber(row[0]) {
			continue
		}
		if len(row) > 2 {
			return File{}, fmt.Errorf("line %d: want burst[,arrival], got %d fields", i+1, len(row))
		}
		burst, err := strconv.Atoi(strings.TrimSpace(row[0]))
		if err != nil {
			return File{}, fmt.Errorf("line %d: burst: %w", i+1, err)
		}
		p := Process{Burst: burst}
		if len(row) == 2 {
			if p.Arrival, err = strconv.Atoi(strings.TrimSpace(row[1])); err != nil {
				return File{}, fmt.Errorf("line %d: arrival: %w", i+1, err)
			}
		}
		f.Processes = append(f.Processes, p)
	}
	return f, nil
}

func isNumber(s string) bool {
	_, err := strconv.Atoi(strings.TrimSpace(s))
	return err == nil
}
