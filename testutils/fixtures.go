// Package testutils provides fixtures shared by the package tests.
package testutils

import (
	"bufio"
	"os"
	"strconv"
	"strings"
	"testing"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"go.viam.com/test"

	"go.viam.com/beaconmap/utils"
)

// ExampleScannersPath is the canonical five scanner fixture, relative to the module root.
const ExampleScannersPath = "mapping/testdata/example_scanners.txt"

// ReadScanners reads scanner blocks from path and fails the test on any error.
// Blocks start with a "--- scanner N ---" header followed by one x,y,z beacon per line.
func ReadScanners(tb testing.TB, path string) [][]r3.Vector {
	tb.Helper()
	//nolint:gosec
	f, err := os.Open(path)
	test.That(tb, err, test.ShouldBeNil)
	defer func() {
		test.That(tb, f.Close(), test.ShouldBeNil)
	}()

	scanners, err := parseScanners(bufio.NewScanner(f))
	test.That(tb, err, test.ShouldBeNil)
	return scanners
}

// ExampleScanners returns the canonical five scanner fixture.
func ExampleScanners(tb testing.TB) [][]r3.Vector {
	tb.Helper()
	return ReadScanners(tb, utils.ResolveFile(ExampleScannersPath))
}

func parseScanners(lines *bufio.Scanner) ([][]r3.Vector, error) {
	var scanners [][]r3.Vector
	lineNum := 0
	for lines.Scan() {
		lineNum++
		line := strings.TrimSpace(lines.Text())
		switch {
		case line == "":
			continue
		case strings.HasPrefix(line, "---"):
			fields := strings.Fields(line)
			if len(fields) != 4 || fields[1] != "scanner" {
				return nil, errors.Errorf("line %d: bad scanner header %q", lineNum, line)
			}
			id, err := strconv.Atoi(fields[2])
			if err != nil {
				return nil, errors.Wrapf(err, "line %d: bad scanner header %q", lineNum, line)
			}
			if id != len(scanners) {
				return nil, errors.Errorf("line %d: expected scanner %d, got %d", lineNum, len(scanners), id)
			}
			scanners = append(scanners, nil)
		default:
			if len(scanners) == 0 {
				return nil, errors.Errorf("line %d: beacon before first scanner header", lineNum)
			}
			p, err := parseBeacon(line)
			if err != nil {
				return nil, errors.Wrapf(err, "line %d", lineNum)
			}
			last := len(scanners) - 1
			scanners[last] = append(scanners[last], p)
		}
	}
	return scanners, lines.Err()
}

func parseBeacon(line string) (r3.Vector, error) {
	fields := strings.Split(line, ",")
	if len(fields) != 3 {
		return r3.Vector{}, errors.Errorf("expected x,y,z, got %q", line)
	}
	var coords [3]float64
	for i, field := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return r3.Vector{}, err
		}
		coords[i] = float64(v)
	}
	return r3.Vector{X: coords[0], Y: coords[1], Z: coords[2]}, nil
}
