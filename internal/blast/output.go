package blast

import (
	"encoding/xml"
	"strings"
)

// Output is the root of a QBlast XML report (NCBI_BlastOutput DTD)
type Output struct {
	XMLName    xml.Name    `xml:"BlastOutput"`
	Program    string      `xml:"BlastOutput_program"`
	Version    string      `xml:"BlastOutput_version"`
	Database   string      `xml:"BlastOutput_db"`
	QueryID    string      `xml:"BlastOutput_query-ID"`
	QueryDef   string      `xml:"BlastOutput_query-def"`
	QueryLen   int         `xml:"BlastOutput_query-len"`
	Iterations []Iteration `xml:"BlastOutput_iterations>Iteration"`
}

// Iteration is one query's result set within a report
type Iteration struct {
	Num      int    `xml:"Iteration_iter-num"`
	QueryID  string `xml:"Iteration_query-ID"`
	QueryDef string `xml:"Iteration_query-def"`
	QueryLen int    `xml:"Iteration_query-len"`
	Hits     []Hit  `xml:"Iteration_hits>Hit"`
}

// Hit is one matched database sequence
type Hit struct {
	Num       int    `xml:"Hit_num"`
	ID        string `xml:"Hit_id"`
	Def       string `xml:"Hit_def"`
	Accession string `xml:"Hit_accession"`
	Len       int    `xml:"Hit_len"`
	HSPs      []Hsp  `xml:"Hit_hsps>Hsp"`
}

// Hsp is one high-scoring pair within a hit
type Hsp struct {
	Num       int     `xml:"Hsp_num"`
	BitScore  float64 `xml:"Hsp_bit-score"`
	Score     float64 `xml:"Hsp_score"`
	Evalue    float64 `xml:"Hsp_evalue"`
	QueryFrom int     `xml:"Hsp_query-from"`
	QueryTo   int     `xml:"Hsp_query-to"`
	HitFrom   int     `xml:"Hsp_hit-from"`
	HitTo     int     `xml:"Hsp_hit-to"`
	Identity  int     `xml:"Hsp_identity"`
	AlignLen  int     `xml:"Hsp_align-len"`
	QSeq      string  `xml:"Hsp_qseq"`
	Midline   string  `xml:"Hsp_midline"`
	HSeq      string  `xml:"Hsp_hseq"`
}

// Record is the envelope form of one query's results
type Record struct {
	Query       string      `json:"query"`
	QueryLength int         `json:"query_length"`
	Alignments  []Alignment `json:"alignments"`
}

// Alignment is the envelope form of one hit
type Alignment struct {
	Title  string `json:"title"`
	Length int    `json:"length"`
	HSPs   []HSP  `json:"hsps"`
}

// HSP is the envelope form of one high-scoring pair. The alignment
// strings are carried only in full output mode.
type HSP struct {
	Score      float64 `json:"score"`
	Bits       float64 `json:"bits"`
	Expect     float64 `json:"expect"`
	QueryStart int     `json:"query_start"`
	QueryEnd   int     `json:"query_end"`
	SbjctStart int     `json:"sbjct_start"`
	SbjctEnd   int     `json:"sbjct_end"`
	Query      string  `json:"query,omitempty"`
	Match      string  `json:"match,omitempty"`
	Sbjct      string  `json:"sbjct,omitempty"`
}

// buildRecords reduces a report to envelope records. full controls
// whether HSPs carry the aligned sequence strings.
func buildRecords(out *Output, full bool) []Record {
	records := []Record{}
	for _, it := range out.Iterations {
		record := Record{
			Query:       it.QueryDef,
			QueryLength: it.QueryLen,
			Alignments:  []Alignment{},
		}
		if record.Query == "" {
			record.Query = out.QueryDef
		}
		if record.QueryLength == 0 {
			record.QueryLength = out.QueryLen
		}

		for _, hit := range it.Hits {
			alignment := Alignment{
				Title:  hitTitle(hit),
				Length: hit.Len,
				HSPs:   []HSP{},
			}
			for _, h := range hit.HSPs {
				hsp := HSP{
					Score:      h.Score,
					Bits:       h.BitScore,
					Expect:     h.Evalue,
					QueryStart: h.QueryFrom,
					QueryEnd:   h.QueryTo,
					SbjctStart: h.HitFrom,
					SbjctEnd:   h.HitTo,
				}
				if full {
					hsp.Query = h.QSeq
					hsp.Match = h.Midline
					hsp.Sbjct = h.HSeq
				}
				alignment.HSPs = append(alignment.HSPs, hsp)
			}
			record.Alignments = append(record.Alignments, alignment)
		}
		records = append(records, record)
	}
	return records
}

// hitTitle joins the hit identifier and definition line the way BLAST
// report headers render them.
func hitTitle(hit Hit) string {
	return strings.TrimSpace(hit.ID + " " + hit.Def)
}
