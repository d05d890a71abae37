package scanner

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"dashcheck/internal/model"
)

// FieldDelimiter separates the fields of a summary line. It is a plain
// positional split; the scanner does not quote or escape fields.
const FieldDelimiter = ", "

// Parser reads the scanner's summary output.
type Parser struct {
	delimiter string
}

// NewParser creates a Parser for the summary line format.
func NewParser() *Parser {
	return &Parser{delimiter: FieldDelimiter}
}

// Parse reads r line by line and returns a channel of entries in file order.
// It runs asynchronously; the entries channel is closed at end of input and a
// read error, if any, is delivered on the error channel first.
func (p *Parser) Parse(r io.Reader) (<-chan model.SummaryEntry, <-chan error) {
	entries := make(chan model.SummaryEntry)
	errs := make(chan error, 1) // Buffered to avoid blocking if receiver stops

	go func() {
		defer close(entries)
		defer close(errs)

		scanner := bufio.NewScanner(r)
		buf := make([]byte, 0, 64*1024)
		scanner.Buffer(buf, 1024*1024)

		for scanner.Scan() {
			entries <- p.parseLine(scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			errs <- err
		}
	}()

	return entries, errs
}

// ParseLine parses one summary line. Missing trailing fields are left empty
// and fields past the fourth are dropped.
func ParseLine(line string) model.SummaryEntry {
	return NewParser().parseLine(line)
}

func (p *Parser) parseLine(line string) model.SummaryEntry {
	fields := strings.Split(strings.TrimSuffix(line, "\r"), p.delimiter)
	field := func(i int) string {
		if i < len(fields) {
			return fields[i]
		}
		return ""
	}
	return model.SummaryEntry{
		Dependency: field(0),
		License:    field(1),
		Status:     field(2),
		Source:     field(3),
	}
}

// ReadSummary parses the summary file at path, draining the stream before it
// returns.
func ReadSummary(path string) ([]model.SummaryEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	entries, errs := NewParser().Parse(f)
	var all []model.SummaryEntry
	for e := range entries {
		all = append(all, e)
	}
	if err := <-errs; err != nil {
		return nil, fmt.Errorf("reading summary %s: %w", path, err)
	}
	return all, nil
}
