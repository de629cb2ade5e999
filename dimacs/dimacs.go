// Package dimacs reads graphs in the DIMACS text format.
//
// A file consists of comment lines ("c ..."), exactly one problem line
// ("p <format> <vertices> <edges>") and edge lines ("e u v" or "a u v") with
// 1-based vertex ids:
//
//	c a path on four vertices
//	p edge 4 3
//	e 1 2
//	e 2 3
//	e 3 4
package dimacs

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/hupe1980/bitgraph"
	"github.com/hupe1980/bitgraph/adjacency"
)

// SyntaxError reports a malformed line. It unwraps to
// bitgraph.ErrInvalidArgument unless Err is more specific.
type SyntaxError struct {
	Line int
	Msg  string
	Err  error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("dimacs: line %d: %s", e.Line, e.Msg)
}

func (e *SyntaxError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return bitgraph.ErrInvalidArgument
}

// File is a parsed graph file. Edges are 0-based.
type File struct {
	Format        string
	Vertices      int
	DeclaredEdges int
	Edges         [][2]int
}

// Build inserts the file's edges into a new graph of the given kind.
func (f *File) Build(kind adjacency.Kind) (adjacency.Graph, error) {
	return adjacency.Build(kind, f.Vertices, f.Edges)
}

const maxLine = 1 << 20

// Read parses a DIMACS graph from r.
func Read(r io.Reader) (*File, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)

	var (
		f      *File
		lineNo int
	)
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)

		switch fields[0] {
		case "c":
			continue
		case "p":
			if f != nil {
				return nil, &SyntaxError{Line: lineNo, Msg: "duplicate problem line"}
			}
			parsed, err := parseProblem(lineNo, fields)
			if err != nil {
				return nil, err
			}
			f = parsed
		case "e", "a":
			if f == nil {
				return nil, &SyntaxError{Line: lineNo, Msg: "edge before problem line"}
			}
			e, err := parseEdge(lineNo, fields, f.Vertices)
			if err != nil {
				return nil, err
			}
			f.Edges = append(f.Edges, e)
		default:
			// Lines such as "n" (node descriptors) carry nothing a plain
			// graph needs.
			if len(fields[0]) != 1 {
				return nil, &SyntaxError{Line: lineNo, Msg: fmt.Sprintf("unknown line type %q", fields[0])}
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("dimacs: read: %w", err)
	}
	if f == nil {
		return nil, &SyntaxError{Line: lineNo, Msg: "missing problem line"}
	}
	return f, nil
}

func parseProblem(lineNo int, fields []string) (*File, error) {
	if len(fields) < 4 {
		return nil, &SyntaxError{Line: lineNo, Msg: "problem line needs format, vertex and edge counts"}
	}
	n, err := parseInt(lineNo, "vertex count", fields[2])
	if err != nil {
		return nil, err
	}
	m, err := parseInt(lineNo, "edge count", fields[3])
	if err != nil {
		return nil, err
	}
	if n <= 0 {
		return nil, &SyntaxError{Line: lineNo, Msg: fmt.Sprintf("vertex count must be positive, got %d", n)}
	}
	if m < 0 {
		return nil, &SyntaxError{Line: lineNo, Msg: fmt.Sprintf("negative edge count %d", m)}
	}
	return &File{
		Format:        fields[1],
		Vertices:      n,
		DeclaredEdges: m,
		Edges:         make([][2]int, 0, min(m, 1<<20)),
	}, nil
}

func parseEdge(lineNo int, fields []string, n int) ([2]int, error) {
	if len(fields) < 3 {
		return [2]int{}, &SyntaxError{Line: lineNo, Msg: "edge line needs two vertex ids"}
	}
	var e [2]int
	for i := range e {
		id, err := parseInt(lineNo, "vertex id", fields[1+i])
		if err != nil {
			return e, err
		}
		if id < 1 || id > n {
			return e, &SyntaxError{
				Line: lineNo,
				Msg:  fmt.Sprintf("vertex id %d outside [1, %d]", id, n),
				Err:  bitgraph.ErrOutOfRange,
			}
		}
		e[i] = id - 1
	}
	return e, nil
}

func parseInt(lineNo int, what, s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) {
			err = numErr.Err
		}
		return 0, &SyntaxError{Line: lineNo, Msg: fmt.Sprintf("bad %s %q: %v", what, s, err)}
	}
	return v, nil
}

// ReadFile parses the DIMACS graph at path.
func ReadFile(path string) (*File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()
	return Read(fh)
}

// ReadColors parses whitespace-separated integer colors, one per vertex.
func ReadColors(r io.Reader) ([]int, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)
	sc.Split(bufio.ScanWords)

	var colors []int
	for sc.Scan() {
		v, err := strconv.Atoi(sc.Text())
		if err != nil {
			return nil, fmt.Errorf("dimacs: color %d: %q is not an integer: %w",
				len(colors), sc.Text(), bitgraph.ErrInvalidArgument)
		}
		colors = append(colors, v)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("dimacs: read colors: %w", err)
	}
	return colors, nil
}

// ReadColorsFile parses the color file at path.
func ReadColorsFile(path string) ([]int, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()
	return ReadColors(fh)
}
