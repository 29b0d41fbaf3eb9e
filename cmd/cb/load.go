package main

import (
	"context"

	"github.com/matsen/citebridge/internal/dataset"
)

// mustLoadDataset loads all six relations from the repository's JSONL
// files, exiting on any failure. Aggregation never runs on partial data:
// either every relation loads or the command reports a load failure.
func mustLoadDataset(repoRoot string) *dataset.Dataset {
	ds, err := dataset.Load(context.Background(), &dataset.FileSource{Root: repoRoot})
	if err != nil {
		exitWithError(ExitDataError, "loading relations: %v", err)
	}
	return ds
}
