package engine

import "github.com/matsen/citebridge/internal/dataset"

// DataQualityReport lists the joins the aggregation functions silently
// drop. The engine itself never surfaces these; this report exists so the
// gaps can be fed back upstream for data cleaning.
type DataQualityReport struct {
	UnknownLLMPaperIDs   []string `json:"unknown_llm_paper_ids,omitempty"`   // topic members with no metadata record
	UnknownPsychPaperIDs []string `json:"unknown_psych_paper_ids,omitempty"` // topic members with no metadata record
	UnresolvedTheoryRefs []string `json:"unresolved_theory_refs,omitempty"`  // subtopic references matching no pool entry
	OrphanDocumentTitles []string `json:"orphan_document_titles,omitempty"`  // theory titles matching no psych paper
}

// Clean reports whether every join resolved.
func (r *DataQualityReport) Clean() bool {
	return len(r.UnknownLLMPaperIDs) == 0 &&
		len(r.UnknownPsychPaperIDs) == 0 &&
		len(r.UnresolvedTheoryRefs) == 0 &&
		len(r.OrphanDocumentTitles) == 0
}

// CheckDataQuality runs the same joins as the aggregation views and
// collects everything they would drop.
func CheckDataQuality(ds *dataset.Dataset) *DataQualityReport {
	var r DataQualityReport

	for _, t := range ds.LLMTopics {
		for _, id := range t.PaperIDs {
			if _, ok := ds.LLMPaper(id); !ok {
				r.UnknownLLMPaperIDs = append(r.UnknownLLMPaperIDs, id)
			}
		}
	}
	for _, t := range ds.PsychTopics {
		for _, id := range t.PaperIDs {
			if !ds.HasPsychPaper(id) {
				r.UnknownPsychPaperIDs = append(r.UnknownPsychPaperIDs, id)
			}
		}
	}

	for _, t := range ds.PsychTopics {
		pool := ds.TheoriesOf(t.ClusterKey)
		byName := make(map[string]bool, len(pool))
		byNormalized := make(map[string]bool, len(pool))
		for _, th := range pool {
			byName[th.Name] = true
			byNormalized[NormalizeTheoryName(th.Name)] = true
		}
		for _, s := range ds.SubtopicsOf(t.ClusterKey) {
			for _, name := range s.TheoryNames {
				if !byName[name] && !byNormalized[NormalizeTheoryName(name)] {
					r.UnresolvedTheoryRefs = append(r.UnresolvedTheoryRefs, name)
				}
			}
		}
	}

	for _, th := range ds.Theories {
		for _, title := range th.DocumentTitles {
			if _, ok := ds.PsychPaperIDByTitle(title); !ok {
				r.OrphanDocumentTitles = append(r.OrphanDocumentTitles, title)
			}
		}
	}

	return &r
}
