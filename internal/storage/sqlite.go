package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/matsen/citebridge/internal/cluster"
	"github.com/matsen/citebridge/internal/paper"
	_ "modernc.org/sqlite"
)

// DB wraps a SQLite database connection holding the ephemeral query cache.
// The cache is rebuilt from the JSONL relation files and never written back.
type DB struct {
	db *sql.DB
}

// OpenDB opens or creates a SQLite database at the given path.
func OpenDB(path string) (*DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// Set pragmas for better performance
	db.SetMaxOpenConns(1) // SQLite doesn't support concurrent writes

	// Create schema if needed
	if err := createSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &DB{db: db}, nil
}

// Close closes the database connection.
func (d *DB) Close() error {
	return d.db.Close()
}

// createSchema creates the database schema if it doesn't exist.
//
// Declaration order in the source JSONL is load-bearing for downstream
// aggregation (cluster indices, tie-breaking), so every table carries a pos
// column and all queries order by it.
func createSchema(db *sql.DB) error {
	schema := `
		CREATE TABLE IF NOT EXISTS topics (
			pos INTEGER NOT NULL,
			side TEXT NOT NULL,
			cluster_key TEXT NOT NULL,
			topic TEXT NOT NULL,
			size INTEGER NOT NULL,
			paper_ids_json TEXT NOT NULL,
			PRIMARY KEY (side, cluster_key)
		);

		CREATE TABLE IF NOT EXISTS subtopics (
			pos INTEGER NOT NULL,
			parent_cluster_key TEXT NOT NULL,
			sub_cluster_key TEXT NOT NULL,
			topic TEXT NOT NULL,
			size INTEGER NOT NULL,
			theory_names_json TEXT NOT NULL,
			PRIMARY KEY (parent_cluster_key, sub_cluster_key)
		);

		CREATE TABLE IF NOT EXISTS theories (
			pos INTEGER NOT NULL,
			parent_cluster_key TEXT NOT NULL,
			name TEXT NOT NULL,
			citation_count INTEGER NOT NULL,
			document_titles_json TEXT NOT NULL,
			PRIMARY KEY (parent_cluster_key, name)
		);

		CREATE TABLE IF NOT EXISTS llm_papers (
			pos INTEGER NOT NULL,
			paper_id TEXT PRIMARY KEY,
			referenced_paper_ids_json TEXT NOT NULL,
			publication_date TEXT,
			identifier_url TEXT
		);

		CREATE TABLE IF NOT EXISTS psych_papers (
			pos INTEGER NOT NULL,
			paper_id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			publication_date TEXT
		);

		CREATE INDEX IF NOT EXISTS idx_theories_parent ON theories(parent_cluster_key);
		CREATE INDEX IF NOT EXISTS idx_subtopics_parent ON subtopics(parent_cluster_key);
	`

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("executing schema: %w", err)
	}
	return nil
}

// RebuildTopics replaces all topics for one side of the graph.
func (d *DB) RebuildTopics(side cluster.Side, topics []cluster.Topic) (int, error) {
	tx, err := d.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM topics WHERE side = ?`, string(side)); err != nil {
		return 0, fmt.Errorf("clearing topics: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO topics (pos, side, cluster_key, topic, size, paper_ids_json)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return 0, fmt.Errorf("preparing topics insert: %w", err)
	}
	defer stmt.Close()

	for i, t := range topics {
		idsJSON, err := json.Marshal(t.PaperIDs)
		if err != nil {
			return 0, fmt.Errorf("marshaling paper ids for %s: %w", t.ClusterKey, err)
		}
		if _, err := stmt.Exec(i, string(side), t.ClusterKey, t.Topic, t.Size, string(idsJSON)); err != nil {
			return 0, fmt.Errorf("inserting topic %s: %w", t.ClusterKey, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing topics: %w", err)
	}
	return len(topics), nil
}

// GetAllTopics retrieves all topics for one side, in declaration order.
func (d *DB) GetAllTopics(side cluster.Side) ([]cluster.Topic, error) {
	rows, err := d.db.Query(`
		SELECT cluster_key, topic, size, paper_ids_json
		FROM topics WHERE side = ? ORDER BY pos
	`, string(side))
	if err != nil {
		return nil, fmt.Errorf("querying topics: %w", err)
	}
	defer rows.Close()

	var topics []cluster.Topic
	for rows.Next() {
		var t cluster.Topic
		var idsJSON string
		if err := rows.Scan(&t.ClusterKey, &t.Topic, &t.Size, &idsJSON); err != nil {
			return nil, fmt.Errorf("scanning topic: %w", err)
		}
		if err := json.Unmarshal([]byte(idsJSON), &t.PaperIDs); err != nil {
			return nil, fmt.Errorf("parsing paper ids for %s: %w", t.ClusterKey, err)
		}
		topics = append(topics, t)
	}
	return topics, rows.Err()
}

// RebuildSubtopics replaces all subtopics.
func (d *DB) RebuildSubtopics(subs []cluster.Subtopic) (int, error) {
	tx, err := d.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM subtopics`); err != nil {
		return 0, fmt.Errorf("clearing subtopics: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO subtopics (pos, parent_cluster_key, sub_cluster_key, topic, size, theory_names_json)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return 0, fmt.Errorf("preparing subtopics insert: %w", err)
	}
	defer stmt.Close()

	for i, s := range subs {
		namesJSON, err := json.Marshal(s.TheoryNames)
		if err != nil {
			return 0, fmt.Errorf("marshaling theory names for %s: %w", s.SubClusterKey, err)
		}
		if _, err := stmt.Exec(i, s.ParentClusterKey, s.SubClusterKey, s.Topic, s.Size, string(namesJSON)); err != nil {
			return 0, fmt.Errorf("inserting subtopic %s/%s: %w", s.ParentClusterKey, s.SubClusterKey, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing subtopics: %w", err)
	}
	return len(subs), nil
}

// GetAllSubtopics retrieves all subtopics in declaration order.
func (d *DB) GetAllSubtopics() ([]cluster.Subtopic, error) {
	rows, err := d.db.Query(`
		SELECT parent_cluster_key, sub_cluster_key, topic, size, theory_names_json
		FROM subtopics ORDER BY pos
	`)
	if err != nil {
		return nil, fmt.Errorf("querying subtopics: %w", err)
	}
	defer rows.Close()

	var subs []cluster.Subtopic
	for rows.Next() {
		var s cluster.Subtopic
		var namesJSON string
		if err := rows.Scan(&s.ParentClusterKey, &s.SubClusterKey, &s.Topic, &s.Size, &namesJSON); err != nil {
			return nil, fmt.Errorf("scanning subtopic: %w", err)
		}
		if err := json.Unmarshal([]byte(namesJSON), &s.TheoryNames); err != nil {
			return nil, fmt.Errorf("parsing theory names for %s: %w", s.SubClusterKey, err)
		}
		subs = append(subs, s)
	}
	return subs, rows.Err()
}

// RebuildTheories replaces all theory pool entries.
func (d *DB) RebuildTheories(theories []cluster.Theory) (int, error) {
	tx, err := d.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM theories`); err != nil {
		return 0, fmt.Errorf("clearing theories: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO theories (pos, parent_cluster_key, name, citation_count, document_titles_json)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return 0, fmt.Errorf("preparing theories insert: %w", err)
	}
	defer stmt.Close()

	for i, th := range theories {
		titlesJSON, err := json.Marshal(th.DocumentTitles)
		if err != nil {
			return 0, fmt.Errorf("marshaling document titles for %s: %w", th.Name, err)
		}
		if _, err := stmt.Exec(i, th.ParentClusterKey, th.Name, th.CitationCount, string(titlesJSON)); err != nil {
			return 0, fmt.Errorf("inserting theory %s: %w", th.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing theories: %w", err)
	}
	return len(theories), nil
}

// GetAllTheories retrieves all theory pool entries in declaration order.
func (d *DB) GetAllTheories() ([]cluster.Theory, error) {
	rows, err := d.db.Query(`
		SELECT parent_cluster_key, name, citation_count, document_titles_json
		FROM theories ORDER BY pos
	`)
	if err != nil {
		return nil, fmt.Errorf("querying theories: %w", err)
	}
	defer rows.Close()

	var theories []cluster.Theory
	for rows.Next() {
		var th cluster.Theory
		var titlesJSON string
		if err := rows.Scan(&th.ParentClusterKey, &th.Name, &th.CitationCount, &titlesJSON); err != nil {
			return nil, fmt.Errorf("scanning theory: %w", err)
		}
		if err := json.Unmarshal([]byte(titlesJSON), &th.DocumentTitles); err != nil {
			return nil, fmt.Errorf("parsing document titles for %s: %w", th.Name, err)
		}
		theories = append(theories, th)
	}
	return theories, rows.Err()
}

// RebuildLLMPapers replaces all LLM paper metadata records.
func (d *DB) RebuildLLMPapers(papers []paper.LLMPaper) (int, error) {
	tx, err := d.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM llm_papers`); err != nil {
		return 0, fmt.Errorf("clearing llm papers: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO llm_papers (pos, paper_id, referenced_paper_ids_json, publication_date, identifier_url)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return 0, fmt.Errorf("preparing llm papers insert: %w", err)
	}
	defer stmt.Close()

	for i, p := range papers {
		refsJSON, err := json.Marshal(p.ReferencedPaperIDs)
		if err != nil {
			return 0, fmt.Errorf("marshaling references for %s: %w", p.ID, err)
		}
		if _, err := stmt.Exec(i, p.ID, string(refsJSON), nullableStringValue(p.PublicationDate), nullableStringValue(p.IdentifierURL)); err != nil {
			return 0, fmt.Errorf("inserting llm paper %s: %w", p.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing llm papers: %w", err)
	}
	return len(papers), nil
}

// GetAllLLMPapers retrieves all LLM paper metadata records in declaration order.
func (d *DB) GetAllLLMPapers() ([]paper.LLMPaper, error) {
	rows, err := d.db.Query(`
		SELECT paper_id, referenced_paper_ids_json, publication_date, identifier_url
		FROM llm_papers ORDER BY pos
	`)
	if err != nil {
		return nil, fmt.Errorf("querying llm papers: %w", err)
	}
	defer rows.Close()

	var papers []paper.LLMPaper
	for rows.Next() {
		var p paper.LLMPaper
		var refsJSON string
		var pubDate, identURL sql.NullString
		if err := rows.Scan(&p.ID, &refsJSON, &pubDate, &identURL); err != nil {
			return nil, fmt.Errorf("scanning llm paper: %w", err)
		}
		if err := json.Unmarshal([]byte(refsJSON), &p.ReferencedPaperIDs); err != nil {
			return nil, fmt.Errorf("parsing references for %s: %w", p.ID, err)
		}
		p.PublicationDate = pubDate.String
		p.IdentifierURL = identURL.String
		papers = append(papers, p)
	}
	return papers, rows.Err()
}

// RebuildPsychPapers replaces all psychology paper metadata records.
func (d *DB) RebuildPsychPapers(papers []paper.PsychPaper) (int, error) {
	tx, err := d.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM psych_papers`); err != nil {
		return 0, fmt.Errorf("clearing psych papers: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO psych_papers (pos, paper_id, title, publication_date)
		VALUES (?, ?, ?, ?)
	`)
	if err != nil {
		return 0, fmt.Errorf("preparing psych papers insert: %w", err)
	}
	defer stmt.Close()

	for i, p := range papers {
		if _, err := stmt.Exec(i, p.ID, p.Title, nullableStringValue(p.PublicationDate)); err != nil {
			return 0, fmt.Errorf("inserting psych paper %s: %w", p.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing psych papers: %w", err)
	}
	return len(papers), nil
}

// GetAllPsychPapers retrieves all psychology paper metadata records in declaration order.
func (d *DB) GetAllPsychPapers() ([]paper.PsychPaper, error) {
	rows, err := d.db.Query(`
		SELECT paper_id, title, publication_date
		FROM psych_papers ORDER BY pos
	`)
	if err != nil {
		return nil, fmt.Errorf("querying psych papers: %w", err)
	}
	defer rows.Close()

	var papers []paper.PsychPaper
	for rows.Next() {
		var p paper.PsychPaper
		var pubDate sql.NullString
		if err := rows.Scan(&p.ID, &p.Title, &pubDate); err != nil {
			return nil, fmt.Errorf("scanning psych paper: %w", err)
		}
		p.PublicationDate = pubDate.String
		papers = append(papers, p)
	}
	return papers, rows.Err()
}

// nullableStringValue converts an empty string to nil for NULL storage.
func nullableStringValue(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
