// Package instance parses MS-TOP problem instance files into model.Problem
// values, reproducing the two formats the original tooling uses: a
// multi-source format with per-line role flags, and a single-source
// format where the first data line is always the lone source.
package instance

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"mstop/model"
)

// ErrMalformedHeader indicates the first three header lines (node count,
// vehicle count, Tmax) were missing or unparsable.
var ErrMalformedHeader = errors.New("instance: malformed header")

// ErrMalformedLine indicates a data line didn't carry enough whitespace-
// separated fields for its expected shape.
var ErrMalformedLine = errors.New("instance: malformed data line")

// header holds the three leading values every instance file starts with:
// total node count (sources + customers + depot), a vehicle count (global,
// meaningful only for the single-source format), and the shared Tmax.
type header struct {
	nNodes    int
	nVehicles int
	tmax      float64
}

func readHeader(lines [][]string) (header, error) {
	if len(lines) < 3 {
		return header{}, ErrMalformedHeader
	}
	nNodes, err := fieldInt(lines[0], 1)
	if err != nil {
		return header{}, fmt.Errorf("instance: node count: %w", err)
	}
	nVehicles, err := fieldInt(lines[1], 1)
	if err != nil {
		return header{}, fmt.Errorf("instance: vehicle count: %w", err)
	}
	tmax, err := fieldFloat(lines[2], 1)
	if err != nil {
		return header{}, fmt.Errorf("instance: Tmax: %w", err)
	}
	return header{nNodes: nNodes, nVehicles: nVehicles, tmax: tmax}, nil
}

func fieldInt(tokens []string, idx int) (int, error) {
	if idx >= len(tokens) {
		return 0, ErrMalformedLine
	}
	return strconv.Atoi(tokens[idx])
}

func fieldFloat(tokens []string, idx int) (float64, error) {
	if idx >= len(tokens) {
		return 0, ErrMalformedLine
	}
	return strconv.ParseFloat(tokens[idx], 64)
}

// tokenizeLines reads every line of r and splits it on whitespace (the
// original format mixes tabs and spaces as field separators; strings.Fields
// collapses both uniformly).
func tokenizeLines(r io.Reader) ([][]string, error) {
	scanner := bufio.NewScanner(r)
	var lines [][]string
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		lines = append(lines, strings.Fields(line))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// ParseMultiSource reads the multi-source instance format: after the
// three header lines, each data line up to the last carries x, y, revenue,
// an "is source" flag ("1"/"0"), and (for sources only) a vehicle count;
// the last data line is always the depot. Node ids follow raw file line
// order: sources and customers may interleave.
func ParseMultiSource(r io.Reader) (*model.Problem, error) {
	lines, err := tokenizeLines(r)
	if err != nil {
		return nil, err
	}
	h, err := readHeader(lines)
	if err != nil {
		return nil, err
	}

	lastDataLine := 2 + h.nNodes // index of the depot's line
	if len(lines) <= lastDataLine {
		return nil, ErrMalformedLine
	}

	nodes := make([]model.Node, h.nNodes)
	for i := 0; i < h.nNodes; i++ {
		lineIdx := 3 + i
		tokens := lines[lineIdx]

		x, err := fieldFloat(tokens, 0)
		if err != nil {
			return nil, err
		}
		y, err := fieldFloat(tokens, 1)
		if err != nil {
			return nil, err
		}
		revenue, err := fieldFloat(tokens, 2)
		if err != nil {
			return nil, err
		}

		if lineIdx == lastDataLine {
			nodes[i] = model.Node{ID: i, X: x, Y: y, Revenue: revenue, Role: model.RoleDepot}
			continue
		}

		isSource, err := fieldInt(tokens, 3)
		if err != nil {
			return nil, err
		}
		if isSource == 1 {
			nVehicles, err := fieldInt(tokens, 4)
			if err != nil {
				return nil, err
			}
			nodes[i] = model.Node{ID: i, X: x, Y: y, Revenue: revenue, Role: model.RoleSource, NVehicles: nVehicles}
		} else {
			nodes[i] = model.Node{ID: i, X: x, Y: y, Revenue: revenue, Role: model.RoleCustomer}
		}
	}

	return model.NewProblem(h.tmax, nodes)
}

// ParseSingleSource reads the single-source instance format: the first data line is always the lone source, using
// the header's vehicle count; every line between it and the depot is a
// customer; the depot is again the last data line.
func ParseSingleSource(r io.Reader) (*model.Problem, error) {
	lines, err := tokenizeLines(r)
	if err != nil {
		return nil, err
	}
	h, err := readHeader(lines)
	if err != nil {
		return nil, err
	}

	lastDataLine := 2 + h.nNodes
	if len(lines) <= lastDataLine {
		return nil, ErrMalformedLine
	}

	nodes := make([]model.Node, h.nNodes)
	for i := 0; i < h.nNodes; i++ {
		lineIdx := 3 + i
		tokens := lines[lineIdx]

		x, err := fieldFloat(tokens, 0)
		if err != nil {
			return nil, err
		}
		y, err := fieldFloat(tokens, 1)
		if err != nil {
			return nil, err
		}
		revenue, err := fieldFloat(tokens, 2)
		if err != nil {
			return nil, err
		}

		switch {
		case lineIdx == lastDataLine:
			nodes[i] = model.Node{ID: i, X: x, Y: y, Revenue: revenue, Role: model.RoleDepot}
		case lineIdx == 3:
			nodes[i] = model.Node{ID: i, X: x, Y: y, Revenue: revenue, Role: model.RoleSource, NVehicles: h.nVehicles}
		default:
			nodes[i] = model.Node{ID: i, X: x, Y: y, Revenue: revenue, Role: model.RoleCustomer}
		}
	}

	return model.NewProblem(h.tmax, nodes)
}
