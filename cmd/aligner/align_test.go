package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/revelaction/aligner/align"
	"github.com/revelaction/aligner/file"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	return path
}

func TestAlignActionPlain(t *testing.T) {
	dir := t.TempDir()

	opts := alignOptions{
		RefPath: writeFile(t, dir, "ref.txt", "the cat sat\nyeah\n"),
		HypPath: writeFile(t, dir, "hyp.txt", "the cat sat\nyeah\n"),
		NoColor: true,
	}

	var out, errOut bytes.Buffer
	ui := UI{Out: &out, Err: &errOut}

	if err := alignAction(opts, align.Default(), ui); err != nil {
		t.Fatal(err)
	}

	got := out.String()
	if !strings.Contains(got, "Sent #1") || !strings.Contains(got, "Sent #2") {
		t.Fatalf("expected two sentence blocks in output:\n%s", got)
	}
	if !strings.Contains(got, "Word Error Rate (WER): 0/4 = 0.000") {
		t.Fatalf("expected a perfect WER summary in output:\n%s", got)
	}
}

func TestAlignActionModifiedWithResults(t *testing.T) {
	dir := t.TempDir()
	resultDir := t.TempDir()

	opts := alignOptions{
		RefPath:    writeFile(t, dir, "ref.txt", "THE THE THE the sad part about here is that winter starts in\n"),
		HypPath:    writeFile(t, dir, "hyp.txt", "the sad part about here is that winter starts in\n"),
		ResultPath: resultDir,
		NoColor:    true,
	}

	w := align.Default()
	w.Modified = true

	var out, errOut bytes.Buffer
	ui := UI{Out: &out, Err: &errOut}

	if err := alignAction(opts, w, ui); err != nil {
		t.Fatal(err)
	}

	got := out.String()
	if !strings.Contains(got, "Fluent Error Rate (FER): 0/10 = 0.000") {
		t.Fatalf("expected FER line in output:\n%s", got)
	}
	if !strings.Contains(got, "Disfluent Error Rate (DER): 0/3 = 0.000") {
		t.Fatalf("expected DER line in output:\n%s", got)
	}
	if !strings.Contains(got, "Recall: 3/3 = 1.000") {
		t.Fatalf("expected recall line in output:\n%s", got)
	}

	results, err := os.ReadFile(filepath.Join(resultDir, file.ResultFile))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(results), "Sent #1") {
		t.Fatalf("expected the block in the results file, got:\n%s", results)
	}
}

func TestAlignActionSkipsEmptyReference(t *testing.T) {
	dir := t.TempDir()

	opts := alignOptions{
		RefPath: writeFile(t, dir, "ref.txt", "\nyeah\n"),
		HypPath: writeFile(t, dir, "hyp.txt", "something\nyeah\n"),
		NoColor: true,
	}

	var out, errOut bytes.Buffer
	ui := UI{Out: &out, Err: &errOut}

	if err := alignAction(opts, align.Default(), ui); err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(errOut.String(), "skipping sentence 1") {
		t.Fatalf("expected the empty reference to be skipped, stderr:\n%s", errOut.String())
	}
	if !strings.Contains(out.String(), "Word Error Rate (WER): 0/1 = 0.000") {
		t.Fatalf("expected the remaining pair to be scored:\n%s", out.String())
	}
}

func TestTestActionRunsBundledCorpus(t *testing.T) {
	var out, errOut bytes.Buffer
	ui := UI{Out: &out, Err: &errOut}

	if err := testAction(ui); err != nil {
		t.Fatal(err)
	}

	got := out.String()
	for _, header := range []string{"Sent #1", "Sent #13"} {
		if !strings.Contains(got, header) {
			t.Fatalf("expected %s block in output", header)
		}
	}
	if !strings.Contains(got, "Fluent:    (#C #S #D #I) 10 0 0 0") {
		t.Fatalf("expected a full fluent match for the first sample pair:\n%s", got)
	}
}
