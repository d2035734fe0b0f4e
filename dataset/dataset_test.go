package dataset

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/agentfoundry/trajexec/rollout"
)

func TestBuildRow(t *testing.T) {
	rec := Record{
		Repo:             "astropy/astropy",
		InstanceID:       "astropy__astropy-12907",
		BaseCommit:       "d16bfe05a744909de4b27f5875fe0d4ed41ce607",
		ProblemStatement: "Modeling's separability_matrix does not compute separability correctly.",
	}

	row, err := BuildRow(rec, "dev", 3)
	if err != nil {
		t.Fatalf("BuildRow() error = %v", err)
	}

	if row.DataSource != DataSource {
		t.Errorf("DataSource = %q, want %q", row.DataSource, DataSource)
	}
	if row.Repo != rec.Repo || row.InstanceID != rec.InstanceID || row.BaseCommit != rec.BaseCommit {
		t.Errorf("identity columns = %q/%q/%q, want record fields", row.Repo, row.InstanceID, row.BaseCommit)
	}
	if row.Issue != rec.ProblemStatement {
		t.Errorf("Issue = %q, want problem statement", row.Issue)
	}

	var prompt []rollout.Message
	if err := json.Unmarshal([]byte(row.Prompt), &prompt); err != nil {
		t.Fatalf("decode Prompt: %v", err)
	}
	if len(prompt) != 2 {
		t.Fatalf("Prompt has %d messages, want 2", len(prompt))
	}
	if prompt[0].Role != "system" || prompt[0].Content != DefaultSystemContent {
		t.Errorf("prompt[0] = %+v, want system message", prompt[0])
	}
	if prompt[1].Role != "user" || !strings.Contains(prompt[1].Content, rec.ProblemStatement) {
		t.Errorf("prompt[1] = %+v, want user message with problem statement", prompt[1])
	}
	if !strings.Contains(prompt[1].Content, "<think>") {
		t.Errorf("prompt[1].Content missing reasoning instructions: %q", prompt[1].Content)
	}

	var kwargs map[string]map[string]map[string]any
	if err := json.Unmarshal([]byte(row.ToolsKwargs), &kwargs); err != nil {
		t.Fatalf("decode ToolsKwargs: %v", err)
	}
	if _, ok := kwargs["grep_search"]["create_kwargs"]; !ok {
		t.Errorf("ToolsKwargs = %q, want grep_search create_kwargs", row.ToolsKwargs)
	}

	var info struct {
		Index           int    `json:"index"`
		NeedToolsKwargs bool   `json:"need_tools_kwargs"`
		Split           string `json:"split"`
	}
	if err := json.Unmarshal([]byte(row.ExtraInfo), &info); err != nil {
		t.Fatalf("decode ExtraInfo: %v", err)
	}
	if info.Index != 3 || !info.NeedToolsKwargs || info.Split != "dev" {
		t.Errorf("ExtraInfo = %+v, want index 3, need_tools_kwargs, split dev", info)
	}
}

func TestReadRecords(t *testing.T) {
	input := `{"repo": "a/b", "instance_id": "a__b-1", "base_commit": "abc", "problem_statement": "it breaks"}

{"repo": "c/d", "instance_id": "c__d-2", "base_commit": "def", "problem_statement": "also breaks"}
`
	records, err := ReadRecords(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadRecords() error = %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("ReadRecords() returned %d records, want 2", len(records))
	}
	if records[0].InstanceID != "a__b-1" || records[1].InstanceID != "c__d-2" {
		t.Errorf("records = %+v, want both instance identifiers", records)
	}
}

func TestReadRecords_MalformedLine(t *testing.T) {
	input := `{"repo": "a/b", "instance_id": "a__b-1"}
{not json}
`
	if _, err := ReadRecords(strings.NewReader(input)); !errors.Is(err, ErrLoad) {
		t.Errorf("ReadRecords() error = %v, want ErrLoad", err)
	}
}

func TestReadRecordsFile_Missing(t *testing.T) {
	if _, err := ReadRecordsFile(filepath.Join(t.TempDir(), "nope.jsonl")); !errors.Is(err, ErrLoad) {
		t.Errorf("ReadRecordsFile() error = %v, want ErrLoad", err)
	}
}

func TestParquetRoundTrip(t *testing.T) {
	rows := []Row{
		{DataSource: DataSource, Repo: "a/b", InstanceID: "a__b-1", BaseCommit: "abc", Issue: "it breaks"},
		{DataSource: DataSource, Repo: "c/d", InstanceID: "c__d-2", BaseCommit: "def", Issue: "also breaks"},
	}
	path := filepath.Join(t.TempDir(), "dev.parquet")

	if err := WriteParquet(path, rows); err != nil {
		t.Fatalf("WriteParquet() error = %v", err)
	}
	got, err := ReadParquet(path)
	if err != nil {
		t.Fatalf("ReadParquet() error = %v", err)
	}
	if len(got) != len(rows) {
		t.Fatalf("ReadParquet() returned %d rows, want %d", len(got), len(rows))
	}
	for i := range rows {
		if got[i] != rows[i] {
			t.Errorf("row %d = %+v, want %+v", i, got[i], rows[i])
		}
	}
}

// memLogger collects log lines for assertions.
type memLogger struct {
	lines []string
}

func (l *memLogger) Logf(format string, args ...any) {
	l.lines = append(l.lines, fmt.Sprintf(format, args...))
}

func writeSplit(t *testing.T, dir, split, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, split+".jsonl"), []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
}

func TestProcessSplits(t *testing.T) {
	inputDir := t.TempDir()
	outputDir := t.TempDir()
	writeSplit(t, inputDir, "dev",
		`{"repo": "a/b", "instance_id": "a__b-1", "base_commit": "abc", "problem_statement": "p"}`+"\n")
	writeSplit(t, inputDir, "test",
		`{"repo": "c/d", "instance_id": "c__d-2", "base_commit": "def", "problem_statement": "q"}`+"\n")

	written, err := ProcessSplits(inputDir, outputDir, []string{"dev", "test"}, nil)
	if err != nil {
		t.Fatalf("ProcessSplits() error = %v", err)
	}
	if len(written) != 2 {
		t.Fatalf("ProcessSplits() wrote %d files, want 2", len(written))
	}

	rows, err := ReadParquet(filepath.Join(outputDir, "dev.parquet"))
	if err != nil {
		t.Fatalf("ReadParquet() error = %v", err)
	}
	if len(rows) != 1 || rows[0].InstanceID != "a__b-1" {
		t.Errorf("dev rows = %+v, want one a__b-1 row", rows)
	}
}

func TestProcessSplits_SkipsFailedSplit(t *testing.T) {
	inputDir := t.TempDir()
	outputDir := t.TempDir()
	writeSplit(t, inputDir, "dev",
		`{"repo": "a/b", "instance_id": "a__b-1", "base_commit": "abc", "problem_statement": "p"}`+"\n")

	logger := &memLogger{}
	written, err := ProcessSplits(inputDir, outputDir, []string{"missing", "dev"}, logger)
	if err != nil {
		t.Fatalf("ProcessSplits() error = %v", err)
	}
	if len(written) != 1 || !strings.HasSuffix(written[0], "dev.parquet") {
		t.Errorf("written = %v, want only dev.parquet", written)
	}
	if len(logger.lines) == 0 {
		t.Error("logger recorded nothing, want skip notice")
	}
}

func TestProcessSplits_AllFail(t *testing.T) {
	if _, err := ProcessSplits(t.TempDir(), t.TempDir(), []string{"dev", "test"}, nil); !errors.Is(err, ErrNoSplits) {
		t.Errorf("ProcessSplits() error = %v, want ErrNoSplits", err)
	}
}
