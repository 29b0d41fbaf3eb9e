package engine

import "testing"

func TestCumulativeSeries_AllTopics(t *testing.T) {
	ds := testDataset()

	// a1 Jan 2023 by explicit date, a2 Feb 2023 by identifier fallback,
	// a3 Mar 2023 by explicit date.
	got := CumulativeSeries(ds, "")

	want := []SeriesPoint{
		{Month: "2023-01", Citations: 1},
		{Month: "2023-02", Citations: 2},
		{Month: "2023-03", Citations: 3},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d points, want %d: %v", len(got), len(want), got)
	}
	for i, p := range got {
		if p != want[i] {
			t.Errorf("point %d = %v, want %v", i, p, want[i])
		}
	}
}

func TestCumulativeSeries_SingleTopic(t *testing.T) {
	ds := testDataset()

	got := CumulativeSeries(ds, "agents")

	want := []SeriesPoint{
		{Month: "2023-01", Citations: 1},
		{Month: "2023-02", Citations: 2},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d points, want %d: %v", len(got), len(want), got)
	}
	for i, p := range got {
		if p != want[i] {
			t.Errorf("point %d = %v, want %v", i, p, want[i])
		}
	}
}

func TestCumulativeSeries_UnknownTopic(t *testing.T) {
	ds := testDataset()

	if got := CumulativeSeries(ds, "no-such-topic"); len(got) != 0 {
		t.Errorf("got %v, want empty series", got)
	}
}

func TestCumulativeSeries_NonDecreasing(t *testing.T) {
	ds := testDataset()

	points := CumulativeSeries(ds, "")
	for i := 1; i < len(points); i++ {
		if points[i].Citations < points[i-1].Citations {
			t.Errorf("series decreases at %d: %v", i, points)
		}
		if points[i].Month <= points[i-1].Month {
			t.Errorf("months out of order at %d: %v", i, points)
		}
	}
}

func TestTopicSeriesByPsych(t *testing.T) {
	ds := testDataset()

	got := TopicSeriesByPsych(ds, "agents")

	// Psychology topics in declaration order; cognition draws only one
	// citation from agents papers, social three.
	if len(got) != 2 {
		t.Fatalf("got %d series, want 2: %v", len(got), got)
	}

	social := got[0]
	if social.TopicKey != "social" || social.TopicLabel != "Social Psychology" {
		t.Fatalf("unexpected first series: %+v", social)
	}
	wantSocial := []SeriesPoint{
		{Month: "2023-01", Citations: 1},
		{Month: "2023-02", Citations: 3},
	}
	for i, p := range social.Points {
		if p != wantSocial[i] {
			t.Errorf("social point %d = %v, want %v", i, p, wantSocial[i])
		}
	}

	cognition := got[1]
	if cognition.TopicKey != "cognition" {
		t.Fatalf("unexpected second series: %+v", cognition)
	}
	if len(cognition.Points) != 1 || cognition.Points[0] != (SeriesPoint{Month: "2023-01", Citations: 1}) {
		t.Errorf("cognition points = %v", cognition.Points)
	}
}

// Psychology topics receiving no citations from the selected LLM topic
// are omitted rather than emitted as empty series.
func TestTopicSeriesByPsych_OmitsZeroTopics(t *testing.T) {
	ds := testDataset()

	got := TopicSeriesByPsych(ds, "reasoning")

	if len(got) != 1 {
		t.Fatalf("got %d series, want 1: %v", len(got), got)
	}
	if got[0].TopicKey != "cognition" {
		t.Errorf("series topic = %q, want cognition", got[0].TopicKey)
	}
}

func TestTopicSeriesByPsych_UnknownTopic(t *testing.T) {
	ds := testDataset()

	if got := TopicSeriesByPsych(ds, "no-such-topic"); len(got) != 0 {
		t.Errorf("got %v, want empty", got)
	}
}
