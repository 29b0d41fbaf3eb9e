package engine

import (
	"sort"

	"github.com/matsen/citebridge/internal/dataset"
	"github.com/matsen/citebridge/internal/paper"
)

// SeriesPoint is one point of a cumulative citation time series.
type SeriesPoint struct {
	Month     string `json:"month"` // YYYY-MM
	Citations int    `json:"citations"`
}

// TopicSeries is a cumulative series attributed to one psychology topic.
type TopicSeries struct {
	TopicKey   string        `json:"topic_key"`
	TopicLabel string        `json:"topic_label"`
	Points     []SeriesPoint `json:"points"`
}

// CumulativeSeries produces the cumulative citation-volume series for one
// LLM topic, or for the union of all LLM topics when llmTopicKey is empty.
// Papers whose month cannot be resolved are excluded. One point is emitted
// per distinct month with at least one paper; the series is non-decreasing
// by construction. An unknown topic key yields an empty series.
func CumulativeSeries(ds *dataset.Dataset, llmTopicKey string) []SeriesPoint {
	member := llmTopicMemberSet(ds, llmTopicKey)
	if member == nil {
		return nil
	}

	perMonth := make(map[string]int)
	for _, p := range ds.LLMPapers {
		if !member[p.ID] {
			continue
		}
		month, ok := paper.Month(p)
		if !ok {
			continue
		}
		perMonth[month]++
	}

	return accumulate(perMonth)
}

// TopicSeriesByPsych produces, for one LLM topic, a cumulative series per
// psychology topic. Each month's count is the number of citation edges whose
// source paper falls in that month (by the LLM paper's date) and whose
// target paper belongs to the psychology topic. Psychology topics with zero
// total citations are omitted; the rest appear in declaration order.
func TopicSeriesByPsych(ds *dataset.Dataset, llmTopicKey string) []TopicSeries {
	member := llmTopicMemberSet(ds, llmTopicKey)
	if member == nil {
		return nil
	}

	targetTopic := paperTopicIndex(psychMembership(ds))

	perTopicMonth := make(map[string]map[string]int)
	for _, e := range DeriveCitationEdges(ds) {
		if !member[e.LLMPaperID] {
			continue
		}
		dst, ok := targetTopic[e.PsychPaperID]
		if !ok {
			continue
		}
		src, ok := ds.LLMPaper(e.LLMPaperID)
		if !ok {
			continue
		}
		month, ok := paper.Month(src)
		if !ok {
			continue
		}
		if perTopicMonth[dst] == nil {
			perTopicMonth[dst] = make(map[string]int)
		}
		perTopicMonth[dst][month]++
	}

	var series []TopicSeries
	for _, pt := range ds.PsychTopics {
		perMonth := perTopicMonth[pt.ClusterKey]
		if len(perMonth) == 0 {
			continue
		}
		series = append(series, TopicSeries{
			TopicKey:   pt.ClusterKey,
			TopicLabel: pt.Topic,
			Points:     accumulate(perMonth),
		})
	}
	return series
}

// llmTopicMemberSet returns the paper-ID membership set for one LLM topic,
// or the union over all topics for an empty key. Unknown keys return nil.
func llmTopicMemberSet(ds *dataset.Dataset, llmTopicKey string) map[string]bool {
	member := make(map[string]bool)
	if llmTopicKey == "" {
		for _, t := range ds.LLMTopics {
			for _, id := range t.PaperIDs {
				member[id] = true
			}
		}
		return member
	}

	t, ok := ds.LLMTopic(llmTopicKey)
	if !ok {
		return nil
	}
	for _, id := range t.PaperIDs {
		member[id] = true
	}
	return member
}

// accumulate sorts months lexicographically (chronological for YYYY-MM) and
// emits the running cumulative sum.
func accumulate(perMonth map[string]int) []SeriesPoint {
	if len(perMonth) == 0 {
		return nil
	}

	months := make([]string, 0, len(perMonth))
	for m := range perMonth {
		months = append(months, m)
	}
	sort.Strings(months)

	points := make([]SeriesPoint, 0, len(months))
	total := 0
	for _, m := range months {
		total += perMonth[m]
		points = append(points, SeriesPoint{Month: m, Citations: total})
	}
	return points
}
