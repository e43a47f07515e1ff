package entrez

// fallbackCatalog returns the well-known E-utilities databases, served
// when EInfo itself is unreachable. The list tracks the NCBI catalog
// as of 2025 and is deliberately generous: a stale extra name costs an
// agent one failed search, a missing one hides a database entirely.
func fallbackCatalog() []string {
	return []string{
		"pubmed",
		"protein",
		"nucleotide",
		"nuccore",
		"nucest",
		"nucgss",
		"genome",
		"assembly",
		"bioproject",
		"biosample",
		"books",
		"cdd",
		"clinvar",
		"gap",
		"gapplus",
		"grasp",
		"dbvar",
		"gene",
		"gds",
		"geoprofiles",
		"homologene",
		"mesh",
		"nlmcatalog",
		"omim",
		"pmc",
		"popset",
		"probe",
		"proteinclusters",
		"pcassay",
		"pccompound",
		"pcsubstance",
		"snp",
		"sra",
		"taxonomy",
		"unigene",
	}
}
