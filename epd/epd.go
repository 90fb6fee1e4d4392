// Package epd reads perft regression suites in two formats: the raw EPD
// line format ("<FEN> ;D1 <n> ;D2 <n> ...") and a YAML sibling format for
// declaring the same suites more readably. Running a suite drives
// chesscore.Perft per declared depth and reports the offending FEN, depth,
// expected and actual node counts for every mismatch.
package epd

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/corvidchess/chesscore"
	"github.com/corvidchess/chesscore/fen"
)

// Case is a single perft regression case: a position and the expected node
// count at one or more search depths, indexed 1..len(Expected).
type Case struct {
	FEN      string
	Expected []uint64 // Expected[i] is the expected count at depth i+1; 0 means "not asserted"
}

// Mismatch describes one perft depth at which the actual node count did not
// match the case's expectation.
type Mismatch struct {
	FEN      string
	Depth    int
	Expected uint64
	Actual   uint64
}

func (m Mismatch) String() string {
	return fmt.Sprintf("perft mismatch: fen=%q depth=%d expected=%d actual=%d",
		m.FEN, m.Depth, m.Expected, m.Actual)
}

// ParseFile reads the raw "<FEN> ;D1 <n> ;D2 <n> ..." EPD format, one case
// per line. Blank lines and lines starting with "#" are skipped.
func ParseFile(r io.Reader) ([]Case, error) {
	var cases []Case
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		c, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("epd: line %d: %w", lineNo, err)
		}
		cases = append(cases, c)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("epd: %w", err)
	}
	return cases, nil
}

func parseLine(line string) (Case, error) {
	parts := strings.Split(line, ";")
	if len(parts) < 1 {
		return Case{}, fmt.Errorf("empty line")
	}

	c := Case{FEN: strings.TrimSpace(parts[0])}

	for _, field := range parts[1:] {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		if field[0] != 'D' && field[0] != 'd' {
			return Case{}, fmt.Errorf("depth field %q does not start with 'D'", field)
		}
		sp := strings.Fields(field[1:])
		if len(sp) != 2 {
			return Case{}, fmt.Errorf("malformed depth field %q", field)
		}
		depth, err := strconv.Atoi(sp[0])
		if err != nil {
			return Case{}, fmt.Errorf("malformed depth in field %q: %w", field, err)
		}
		nodes, err := strconv.ParseUint(sp[1], 10, 64)
		if err != nil {
			return Case{}, fmt.Errorf("malformed node count in field %q: %w", field, err)
		}
		for len(c.Expected) < depth {
			c.Expected = append(c.Expected, 0)
		}
		c.Expected[depth-1] = nodes
	}

	return c, nil
}

// suiteYAML is the on-disk shape of the YAML regression-suite sibling
// format: a friendlier, nestable alternative to raw EPD lines.
type suiteYAML struct {
	Cases []struct {
		FEN    string           `yaml:"fen"`
		Depths map[int]uint64   `yaml:"depths"`
	} `yaml:"cases"`
}

// ParseYAML reads the declarative suite.yaml sibling format.
func ParseYAML(r io.Reader) ([]Case, error) {
	var doc suiteYAML
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("epd: invalid suite yaml: %w", err)
	}

	cases := make([]Case, 0, len(doc.Cases))
	for _, raw := range doc.Cases {
		maxDepth := 0
		for d := range raw.Depths {
			if d > maxDepth {
				maxDepth = d
			}
		}
		c := Case{FEN: raw.FEN, Expected: make([]uint64, maxDepth)}
		for d, nodes := range raw.Depths {
			c.Expected[d-1] = nodes
		}
		cases = append(cases, c)
	}
	return cases, nil
}

// Run drives chesscore.Perft for every declared depth of every case,
// returning one Mismatch per depth whose actual count disagrees with the
// case's expectation. A Case whose FEN fails to parse is reported as a
// single Mismatch at depth 0 with Actual left 0, so a malformed suite entry
// still surfaces instead of being silently skipped.
func Run(cases []Case) []Mismatch {
	var mismatches []Mismatch

	for _, c := range cases {
		src, err := fen.Parse(c.FEN)
		if err != nil {
			mismatches = append(mismatches, Mismatch{FEN: c.FEN, Depth: 0})
			continue
		}
		pos := chesscore.NewPosition(src)

		for i, expected := range c.Expected {
			if expected == 0 {
				continue
			}
			depth := i + 1
			actual := chesscore.Perft(depth, pos)
			if actual != expected {
				mismatches = append(mismatches, Mismatch{
					FEN:      c.FEN,
					Depth:    depth,
					Expected: expected,
					Actual:   actual,
				})
			}
		}
	}

	return mismatches
}
