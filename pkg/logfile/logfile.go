// Package logfile reads the append-only statistics log written by the profiler.
package logfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const timestampLayout = "2006-1-2 15:4:5"

var (
	headerRe = regexp.MustCompile(`^\d{4}-\d{1,2}-\d{1,2} \d{1,2}:\d{1,2}:\d{1,2}$`)
	lineRe   = regexp.MustCompile(`^(.*) \((\d+)\) Max = (\S+) Min = (\S+) Avg = (\S+)$`)
)

// Line is the statistics of one name within a block.
type Line struct {
	Name  string
	Count int
	Max   float64
	Min   float64
	Avg   float64
}

// Block is the output of a single save.
type Block struct {
	Time  time.Time
	Lines []Line
}

func (b *Block) Find(name string) (Line, bool) {
	for _, l := range b.Lines {
		if l.Name == name {
			return l, true
		}
	}
	return Line{}, false
}

func ReadFile(path string) ([]Block, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads every block from r. Timestamps are interpreted in local time.
func Parse(r io.Reader) ([]Block, error) {
	blocks := make([]Block, 0)
	var current *Block

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		text := strings.TrimRight(scanner.Text(), "\r")

		switch {
		case text == "":
			if current != nil {
				blocks = append(blocks, *current)
				current = nil
			}
		case current == nil:
			if !headerRe.MatchString(text) {
				return nil, fmt.Errorf("line %v: expected timestamp, got %q", lineNo, text)
			}
			ts, err := time.ParseInLocation(timestampLayout, text, time.Local)
			if err != nil {
				return nil, fmt.Errorf("line %v: %v", lineNo, err)
			}
			current = &Block{Time: ts, Lines: make([]Line, 0)}
		default:
			l, err := parseLine(text)
			if err != nil {
				return nil, fmt.Errorf("line %v: %v", lineNo, err)
			}
			current.Lines = append(current.Lines, l)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	// A block cut short by a crash has no trailing blank line.
	if current != nil {
		blocks = append(blocks, *current)
	}
	return blocks, nil
}

func parseLine(text string) (Line, error) {
	m := lineRe.FindStringSubmatch(text)
	if m == nil {
		return Line{}, fmt.Errorf("malformed statistics line %q", text)
	}
	count, err := strconv.Atoi(m[2])
	if err != nil {
		return Line{}, err
	}
	values := make([]float64, 3)
	for i, raw := range m[3:] {
		if values[i], err = strconv.ParseFloat(raw, 64); err != nil {
			return Line{}, fmt.Errorf("invalid number %q", raw)
		}
	}
	return Line{Name: m[1], Count: count, Max: values[0], Min: values[1], Avg: values[2]}, nil
}
