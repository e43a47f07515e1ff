package entrez

import (
	"github.com/olgasafonova/ncbi-mcp-server/internal/apierrors"
	"github.com/olgasafonova/ncbi-mcp-server/internal/xmltree"
)

// parseSearch reduces an ESearch response to a SearchResult. An empty
// IdList is a legitimate empty result set, not a shape error.
func parseSearch(body []byte) (*SearchResult, error) {
	doc, err := xmltree.Parse(body)
	if err != nil {
		return nil, err
	}

	root, ok := doc["eSearchResult"].(map[string]any)
	if !ok {
		return nil, apierrors.NewShapeError("esearch", "missing eSearchResult element")
	}

	result := &SearchResult{
		Count:            xmltree.Int(root["Count"]),
		RetMax:           xmltree.Int(root["RetMax"]),
		RetStart:         xmltree.Int(root["RetStart"]),
		IDs:              []string{},
		QueryTranslation: xmltree.Text(root["QueryTranslation"]),
		WebEnv:           xmltree.Text(root["WebEnv"]),
		QueryKey:         xmltree.Text(root["QueryKey"]),
	}

	for _, id := range xmltree.EnsureList(xmltree.Child(root["IdList"], "Id")) {
		result.IDs = append(result.IDs, xmltree.Text(id))
	}
	return result, nil
}

// parseSummaries reduces an ESummary response to document summaries.
// ESummary keys every field by an Item element's Name attribute; only
// the fields agents actually ask about are kept.
func parseSummaries(body []byte) ([]DocumentSummary, error) {
	doc, err := xmltree.Parse(body)
	if err != nil {
		return nil, err
	}

	root, ok := doc["eSummaryResult"].(map[string]any)
	if !ok {
		return nil, apierrors.NewShapeError("esummary", "missing eSummaryResult element")
	}

	summaries := []DocumentSummary{}
	for _, ds := range xmltree.EnsureList(root["DocSum"]) {
		summary := DocumentSummary{
			UID:     xmltree.Text(xmltree.Child(ds, "Id")),
			Authors: []string{},
		}

		for _, item := range xmltree.EnsureList(xmltree.Child(ds, "Item")) {
			m, ok := item.(map[string]any)
			if !ok {
				continue
			}
			switch m["@Name"] {
			case "Title":
				summary.Title = xmltree.Text(item)
			case "AuthorList":
				summary.Authors = authorNames(m)
			case "FullJournalName":
				summary.Journal = xmltree.Text(item)
			case "PubDate":
				summary.PubDate = xmltree.Text(item)
			case "DOI":
				summary.DOI = xmltree.Text(item)
			case "PMID":
				summary.PMID = xmltree.Text(item)
			}
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

// authorNames extracts author names from an AuthorList Item, which
// nests one Item per author. A flat text value is kept as a single
// author for the odd database that returns one.
func authorNames(list map[string]any) []string {
	authors := []string{}
	for _, item := range xmltree.EnsureList(list["Item"]) {
		if name := xmltree.Text(item); name != "" {
			authors = append(authors, name)
		}
	}
	if len(authors) == 0 {
		if name := xmltree.Text(list); name != "" {
			authors = append(authors, name)
		}
	}
	return authors
}

// parseLinks flattens an ELink response to the related IDs across all
// link sets, in document order.
func parseLinks(body []byte) ([]string, error) {
	doc, err := xmltree.Parse(body)
	if err != nil {
		return nil, err
	}

	root, ok := doc["eLinkResult"].(map[string]any)
	if !ok {
		return nil, apierrors.NewShapeError("elink", "missing eLinkResult element")
	}

	related := []string{}
	for _, linkSet := range xmltree.EnsureList(root["LinkSet"]) {
		for _, linkSetDB := range xmltree.EnsureList(xmltree.Child(linkSet, "LinkSetDb")) {
			for _, link := range xmltree.EnsureList(xmltree.Child(linkSetDB, "Link")) {
				if id := xmltree.Text(xmltree.Child(link, "Id")); id != "" {
					related = append(related, id)
				}
			}
		}
	}
	return related, nil
}

// parseInfo returns the full EInfo tree. Field and link descriptions
// vary too much across databases to reduce to fixed types.
func parseInfo(body []byte) (map[string]any, error) {
	doc, err := xmltree.Parse(body)
	if err != nil {
		return nil, err
	}

	if _, ok := doc["eInfoResult"]; !ok {
		return nil, apierrors.NewShapeError("einfo", "missing eInfoResult element")
	}
	return doc, nil
}

// parseDatabaseList extracts database names from a bare EInfo response.
// An empty list is treated as a shape error so the caller falls back
// to the built-in catalog.
func parseDatabaseList(body []byte) ([]string, error) {
	doc, err := xmltree.Parse(body)
	if err != nil {
		return nil, err
	}

	root, ok := doc["eInfoResult"].(map[string]any)
	if !ok {
		return nil, apierrors.NewShapeError("einfo", "missing eInfoResult element")
	}

	names := []string{}
	for _, db := range xmltree.EnsureList(xmltree.Child(root["DbList"], "DbName")) {
		if name := xmltree.Text(db); name != "" {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return nil, apierrors.NewShapeError("einfo", "empty DbList element")
	}
	return names, nil
}
