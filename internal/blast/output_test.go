package blast

import (
	"encoding/json"
	"encoding/xml"
	"strings"
	"testing"
)

func sampleOutput() *Output {
	return &Output{
		Program:  "blastn",
		Database: "nt",
		QueryDef: "query one",
		QueryLen: 60,
		Iterations: []Iteration{
			{
				Num:      1,
				QueryDef: "query one",
				QueryLen: 60,
				Hits: []Hit{
					{
						ID:   "gi|123|ref|NR_0001.1|",
						Def:  "Example 16S ribosomal RNA",
						Len:  1500,
						HSPs: []Hsp{
							{
								Score:     60,
								BitScore:  111.9,
								Evalue:    1.3e-22,
								QueryFrom: 1,
								QueryTo:   60,
								HitFrom:   101,
								HitTo:     160,
								QSeq:      "ACGT",
								Midline:   "||||",
								HSeq:      "ACGT",
							},
						},
					},
				},
			},
		},
	}
}

func TestUnmarshalReport(t *testing.T) {
	var out Output
	if err := xml.Unmarshal([]byte(blastReportXML), &out); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if out.Program != "blastn" {
		t.Errorf("Program = %q, want blastn", out.Program)
	}
	if out.Database != "nt" {
		t.Errorf("Database = %q, want nt", out.Database)
	}
	if out.QueryLen != 60 {
		t.Errorf("QueryLen = %d, want 60", out.QueryLen)
	}
	if len(out.Iterations) != 1 || len(out.Iterations[0].Hits) != 1 {
		t.Fatalf("unexpected report shape: %+v", out)
	}
	hsp := out.Iterations[0].Hits[0].HSPs[0]
	if hsp.QueryFrom != 1 || hsp.QueryTo != 60 || hsp.HitFrom != 101 || hsp.HitTo != 160 {
		t.Errorf("coordinates = %d-%d / %d-%d", hsp.QueryFrom, hsp.QueryTo, hsp.HitFrom, hsp.HitTo)
	}
	if hsp.Midline == "" {
		t.Error("midline should be populated")
	}
}

func TestBuildRecordsFull(t *testing.T) {
	records := buildRecords(sampleOutput(), true)
	if len(records) != 1 {
		t.Fatalf("records = %d, want 1", len(records))
	}

	record := records[0]
	if record.Query != "query one" {
		t.Errorf("Query = %q, want 'query one'", record.Query)
	}
	if record.QueryLength != 60 {
		t.Errorf("QueryLength = %d, want 60", record.QueryLength)
	}
	if len(record.Alignments) != 1 {
		t.Fatalf("alignments = %d, want 1", len(record.Alignments))
	}

	alignment := record.Alignments[0]
	if alignment.Title != "gi|123|ref|NR_0001.1| Example 16S ribosomal RNA" {
		t.Errorf("Title = %q", alignment.Title)
	}
	if alignment.Length != 1500 {
		t.Errorf("Length = %d, want 1500", alignment.Length)
	}

	hsp := alignment.HSPs[0]
	if hsp.Query != "ACGT" || hsp.Match != "||||" || hsp.Sbjct != "ACGT" {
		t.Errorf("full mode should carry alignment strings, got %+v", hsp)
	}
	if hsp.SbjctStart != 101 || hsp.SbjctEnd != 160 {
		t.Errorf("sbjct coordinates = %d-%d, want 101-160", hsp.SbjctStart, hsp.SbjctEnd)
	}
}

func TestBuildRecordsSummary(t *testing.T) {
	records := buildRecords(sampleOutput(), false)
	hsp := records[0].Alignments[0].HSPs[0]

	if hsp.Query != "" || hsp.Match != "" || hsp.Sbjct != "" {
		t.Errorf("summary mode should drop alignment strings, got %+v", hsp)
	}
	if hsp.Score != 60 || hsp.Bits != 111.9 || hsp.Expect != 1.3e-22 {
		t.Errorf("scores should survive summary mode, got %+v", hsp)
	}
	if hsp.QueryStart != 1 || hsp.QueryEnd != 60 {
		t.Errorf("coordinates should survive summary mode, got %+v", hsp)
	}
}

func TestSummaryMarshalOmitsAlignmentKeys(t *testing.T) {
	summary, err := json.Marshal(buildRecords(sampleOutput(), false))
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	for _, key := range []string{`"query":"ACGT"`, `"match":`, `"sbjct":`} {
		if strings.Contains(string(summary), key) {
			t.Errorf("summary JSON should omit %s, got %s", key, summary)
		}
	}

	full, err := json.Marshal(buildRecords(sampleOutput(), true))
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	for _, key := range []string{`"match":"||||"`, `"sbjct":"ACGT"`} {
		if !strings.Contains(string(full), key) {
			t.Errorf("full JSON should carry %s, got %s", key, full)
		}
	}
}

func TestBuildRecordsEmptyReport(t *testing.T) {
	records := buildRecords(&Output{}, true)
	if records == nil {
		t.Fatal("records should be empty, not nil")
	}
	if len(records) != 0 {
		t.Errorf("records = %v, want empty", records)
	}
}

func TestBuildRecordsNoHits(t *testing.T) {
	out := &Output{Iterations: []Iteration{{QueryDef: "q", QueryLen: 10}}}
	records := buildRecords(out, true)
	if len(records) != 1 {
		t.Fatalf("records = %d, want 1", len(records))
	}
	if records[0].Alignments == nil {
		t.Fatal("Alignments should be empty, not nil")
	}
	if len(records[0].Alignments) != 0 {
		t.Errorf("alignments = %v, want empty", records[0].Alignments)
	}
}

func TestBuildRecordsQueryFallback(t *testing.T) {
	out := &Output{
		QueryDef:   "outer def",
		QueryLen:   42,
		Iterations: []Iteration{{Num: 1}},
	}
	records := buildRecords(out, true)
	if records[0].Query != "outer def" {
		t.Errorf("Query = %q, want fallback to report header", records[0].Query)
	}
	if records[0].QueryLength != 42 {
		t.Errorf("QueryLength = %d, want 42", records[0].QueryLength)
	}
}
