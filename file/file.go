package file

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
)

// ResultFile is the name of the results file inside the result directory.
const ResultFile = "results.txt"

// Pair is one reference/hypothesis sentence pair. Ref and Hyp are the raw
// lines; splitting into tokens happens in the sentence package.
type Pair struct {
	Ref string
	Hyp string
}

// ReadPairs reads the reference and hypothesis files line-by-line and
// pairs them up. The files must have the same number of lines; a mismatch
// means the two corpora are out of sync and scoring them would be silently
// wrong.
func ReadPairs(refPath, hypPath string) ([]Pair, error) {
	refLines, err := readLines(refPath)
	if err != nil {
		return nil, err
	}

	hypLines, err := readLines(hypPath)
	if err != nil {
		return nil, err
	}

	if len(refLines) != len(hypLines) {
		return nil, fmt.Errorf("sentence count mismatch: %s has %d lines, %s has %d",
			filepath.Base(refPath), len(refLines), filepath.Base(hypPath), len(hypLines))
	}

	pairs := make([]Pair, 0, len(refLines))
	for i, ref := range refLines {
		pairs = append(pairs, Pair{Ref: ref, Hyp: hypLines[i]})
	}

	return pairs, nil
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}

// ResultWriter appends rendered alignment blocks to the results file of a
// result directory. Blocks are written colorless, as rendered by a
// Renderer without color.
type ResultWriter struct {
	f *os.File
}

// NewResultWriter truncates or creates results.txt inside dir.
func NewResultWriter(dir string) (*ResultWriter, error) {
	f, err := os.Create(filepath.Join(dir, ResultFile))
	if err != nil {
		return nil, err
	}

	return &ResultWriter{f: f}, nil
}

// Write appends one rendered block.
func (w *ResultWriter) Write(block string) error {
	_, err := w.f.WriteString(block)
	return err
}

func (w *ResultWriter) Close() error {
	return w.f.Close()
}
