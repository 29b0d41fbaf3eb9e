package main

import (
	"fmt"
	"path/filepath"

	"github.com/matsen/citebridge/internal/config"
	"github.com/matsen/citebridge/internal/paper"
	"github.com/matsen/citebridge/internal/pdf"
	"github.com/matsen/citebridge/internal/storage"
	"github.com/spf13/cobra"
)

var metaTitle string
var metaDate string

var metaCmd = &cobra.Command{
	Use:   "meta",
	Short: "Paper-metadata maintenance commands",
	Long: `Commands for patching the psychology paper-metadata relation.

Theory document titles resolve to papers by title match, so a missing
metadata record silently drops every citation to that paper. These commands
fill such gaps without re-running the upstream export.`,
}

func init() {
	metaAddPDFCmd.Flags().StringVar(&metaTitle, "title", "", "Override the extracted title")
	metaAddPDFCmd.Flags().StringVar(&metaDate, "date", "", "Publication date (YYYY-MM-DD or YYYY-MM)")
	metaCmd.AddCommand(metaAddPDFCmd)
	rootCmd.AddCommand(metaCmd)
}

var metaAddPDFCmd = &cobra.Command{
	Use:   "addpdf <paper-id> <file.pdf>",
	Short: "Add a psychology paper record from a PDF",
	Long: `Extract a title from a PDF's first page and append a psychology
paper-metadata record for it.

The PDF path resolves against pdf_root from the repository config when it
is not absolute. Use --title when the heuristic extraction picks the wrong
line.

Example:
  cb meta addpdf piaget1952 papers/origins-of-intelligence.pdf`,
	Args: cobra.ExactArgs(2),
	RunE: runMetaAddPDF,
}

// MetaAddResult is the response for meta addpdf.
type MetaAddResult struct {
	Status  string `json:"status"`
	PaperID string `json:"paper_id"`
	Title   string `json:"title"`
}

func runMetaAddPDF(cmd *cobra.Command, args []string) error {
	paperID, pdfPath := args[0], args[1]
	repoRoot := mustFindRepository()
	cfg := mustLoadConfig(repoRoot)

	if !filepath.IsAbs(pdfPath) && cfg.PDFRoot != "" {
		pdfPath = filepath.Join(config.ExpandPath(cfg.PDFRoot), pdfPath)
	}

	title := metaTitle
	if title == "" {
		extracted, err := pdf.ExtractTitle(pdfPath)
		if err != nil {
			exitWithError(ExitError, "extracting title from %s: %v", pdfPath, err)
		}
		if extracted == "" {
			exitWithError(ExitDataError, "no title found in %s (use --title)", pdfPath)
		}
		title = extracted
	}

	metaPath := config.RelationPath(repoRoot, config.PsychPapersFile)

	// Reject duplicate IDs before appending
	existing, err := storage.ReadAllPsychPapers(metaPath)
	if err != nil {
		exitWithError(ExitDataError, "reading psych papers: %v", err)
	}
	for _, p := range existing {
		if p.ID == paperID {
			exitWithError(ExitError, "paper %q already exists", paperID)
		}
	}

	rec := paper.PsychPaper{ID: paperID, Title: title, PublicationDate: metaDate}
	if err := rec.ValidateForCreate(); err != nil {
		exitWithError(ExitDataError, "invalid record: %v", err)
	}
	if err := storage.AppendPsychPaper(metaPath, rec); err != nil {
		exitWithError(ExitError, "appending record: %v", err)
	}

	if humanOutput {
		fmt.Printf("Added %s: %s\n", paperID, truncateString(title, 70))
		return nil
	}
	return outputJSON(MetaAddResult{Status: "added", PaperID: paperID, Title: title})
}
