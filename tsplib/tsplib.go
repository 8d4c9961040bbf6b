package tsplib

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/renormtsp/tsp"
)

// Sentinel errors.
var (
	ErrSyntax         = errors.New("tsplib: syntax error")
	ErrUnsupported    = errors.New("tsplib: unsupported problem")
	ErrDimension      = errors.New("tsplib: dimension mismatch")
	ErrMissingSection = errors.New("tsplib: missing NODE_COORD_SECTION")
)

// Instance is a parsed TSPLIB problem.
type Instance struct {
	Name    string
	Comment string
	Points  []tsp.Point
}

// Parse reads a TSPLIB problem from r.
//
// Contract:
//   - NODE_COORD_SECTION lines are "id x y"; ids must be 1..DIMENSION, each once.
//   - Memory grows with the node lines read, not with the declared DIMENSION.
//   - Unknown header keywords are ignored.
//   - Reading stops at EOF or at the end of input.
func Parse(r io.Reader) (*Instance, error) {
	var (
		sc        = bufio.NewScanner(r)
		inst      = &Instance{}
		dim       = -1
		inSection bool
		sectioned bool
		nodes     map[int]tsp.Point
		lineNo    int
	)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if line == "EOF" {
			break
		}

		if inSection {
			fields := strings.Fields(line)
			id, err := strconv.Atoi(fields[0])
			if err == nil {
				if len(fields) != 3 {
					return nil, fmt.Errorf("%w: line %d: want \"id x y\"", ErrSyntax, lineNo)
				}
				if _, dup := nodes[id]; dup || id < 1 || id > dim {
					return nil, fmt.Errorf("%w: line %d: node id %d", ErrDimension, lineNo, id)
				}
				x, errX := strconv.ParseFloat(fields[1], 64)
				y, errY := strconv.ParseFloat(fields[2], 64)
				if errX != nil || errY != nil {
					return nil, fmt.Errorf("%w: line %d: coordinates", ErrSyntax, lineNo)
				}
				nodes[id] = tsp.Point{x, y}
				continue
			}
			// a keyword line ends the coordinate section
			inSection = false
		}

		key, value := splitKeyword(line)
		switch key {
		case "NAME":
			inst.Name = value
		case "COMMENT":
			if inst.Comment != "" {
				inst.Comment += "\n"
			}
			inst.Comment += value
		case "TYPE":
			if value != "TSP" {
				return nil, fmt.Errorf("%w: TYPE %s", ErrUnsupported, value)
			}
		case "EDGE_WEIGHT_TYPE":
			if value != "EUC_2D" {
				return nil, fmt.Errorf("%w: EDGE_WEIGHT_TYPE %s", ErrUnsupported, value)
			}
		case "DIMENSION":
			n, err := strconv.Atoi(value)
			if err != nil || n < 1 {
				return nil, fmt.Errorf("%w: line %d: DIMENSION %q", ErrSyntax, lineNo, value)
			}
			dim = n
		case "NODE_COORD_SECTION":
			if dim < 1 {
				return nil, fmt.Errorf("%w: NODE_COORD_SECTION before DIMENSION", ErrSyntax)
			}
			if sectioned {
				return nil, fmt.Errorf("%w: line %d: repeated NODE_COORD_SECTION", ErrSyntax, lineNo)
			}
			inSection, sectioned = true, true
			nodes = make(map[int]tsp.Point)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("tsplib: reading: %w", err)
	}
	if !sectioned {
		return nil, ErrMissingSection
	}
	// DIMENSION is only trusted once every declared node has been read.
	if len(nodes) != dim {
		return nil, fmt.Errorf("%w: DIMENSION %d but %d nodes", ErrDimension, dim, len(nodes))
	}
	inst.Points = make([]tsp.Point, dim)
	for id, p := range nodes {
		inst.Points[id-1] = p
	}

	return inst, nil
}

// splitKeyword splits "KEY : value" and "KEY: value"; a bare keyword has an
// empty value.
func splitKeyword(line string) (string, string) {
	i := strings.IndexByte(line, ':')
	if i < 0 {
		return strings.TrimSpace(line), ""
	}
	return strings.TrimSpace(line[:i]), strings.TrimSpace(line[i+1:])
}

// WriteProblem writes inst as an EUC_2D problem.
func WriteProblem(w io.Writer, inst *Instance) error {
	bw := bufio.NewWriter(w)
	if inst.Name != "" {
		fmt.Fprintf(bw, "NAME : %s\n", inst.Name)
	}
	for _, c := range splitComment(inst.Comment) {
		fmt.Fprintf(bw, "COMMENT : %s\n", c)
	}
	fmt.Fprintf(bw, "TYPE : TSP\nDIMENSION : %d\nEDGE_WEIGHT_TYPE : EUC_2D\nNODE_COORD_SECTION\n", len(inst.Points))
	for i, p := range inst.Points {
		fmt.Fprintf(bw, "%d %s %s\n", i+1,
			strconv.FormatFloat(p[0], 'g', -1, 64), strconv.FormatFloat(p[1], 'g', -1, 64))
	}
	bw.WriteString("EOF\n")

	return bw.Flush()
}

// WriteTour writes tour (0-based indices) as a TSPLIB tour file.
// The tour is validated as a permutation of len(tour) nodes.
func WriteTour(w io.Writer, name string, tour []int, length float64) error {
	if err := tsp.ValidatePermutation(tour, len(tour)); err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	if name != "" {
		fmt.Fprintf(bw, "NAME : %s\n", name)
	}
	fmt.Fprintf(bw, "COMMENT : length %s\n", strconv.FormatFloat(length, 'f', 6, 64))
	fmt.Fprintf(bw, "TYPE : TOUR\nDIMENSION : %d\nTOUR_SECTION\n", len(tour))
	for _, v := range tour {
		fmt.Fprintf(bw, "%d\n", v+1)
	}
	bw.WriteString("-1\nEOF\n")

	return bw.Flush()
}

// ParseTour reads the TOUR_SECTION of a tour file and returns 0-based indices.
func ParseTour(r io.Reader) ([]int, error) {
	var (
		sc        = bufio.NewScanner(r)
		tour      []int
		inSection bool
		lineNo    int
	)
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if !inSection {
			if key, _ := splitKeyword(line); key == "TOUR_SECTION" {
				inSection = true
			}
			continue
		}
		for _, f := range strings.Fields(line) {
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: tour entry %q", ErrSyntax, lineNo, f)
			}
			if v == -1 {
				if err := tsp.ValidatePermutation(tour, len(tour)); err != nil {
					return nil, err
				}
				return tour, nil
			}
			tour = append(tour, v-1)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("tsplib: reading: %w", err)
	}

	return nil, fmt.Errorf("%w: unterminated TOUR_SECTION", ErrSyntax)
}

func splitComment(c string) []string {
	if c == "" {
		return nil
	}
	return strings.Split(c, "\n")
}
