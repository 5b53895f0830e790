// Command searchctl is a command-line driver over the search server: it
// loads a stop-word file and a document file, then answers one or more
// queries against the resulting index.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/rqust/searchserver/internal/batch"
	"github.com/rqust/searchserver/internal/dedup"
	"github.com/rqust/searchserver/internal/index"
	"github.com/rqust/searchserver/pkg/types"
)

func main() {
	config := types.DefaultConfig()

	docsPath := flag.String("docs", "", "path to the document file (required)")
	flag.StringVar(&config.Search.StopWordsFile, "stop-words", "", "path to a whitespace-delimited stop-word file")
	queriesPath := flag.String("queries", "", "path to a file of queries, one per line")
	query := flag.String("query", "", "a single query string")
	removeDuplicates := flag.Bool("remove-duplicates", false, "remove duplicate documents before querying")
	flag.BoolVar(&config.Log.Verbose, "verbose", config.Log.Verbose, "print indexing diagnostics")
	flag.Parse()

	if *docsPath == "" {
		log.Fatal("searchctl: -docs is required")
	}

	stopWords, err := loadStopWords(config.Search.StopWordsFile)
	if err != nil {
		log.Fatalf("searchctl: %v", err)
	}

	server, err := index.NewServerWithConfig(stopWords, config.Search)
	if err != nil {
		log.Fatalf("searchctl: %v", err)
	}

	if err := loadDocuments(server, *docsPath, config.Log.Verbose); err != nil {
		log.Fatalf("searchctl: %v", err)
	}

	if *removeDuplicates {
		if err := dedup.RemoveDuplicates(os.Stdout, server); err != nil {
			log.Fatalf("searchctl: %v", err)
		}
	}

	switch {
	case *query != "":
		runQuery(server, *query)
	case *queriesPath != "":
		if err := runQueriesFile(server, *queriesPath); err != nil {
			log.Fatalf("searchctl: %v", err)
		}
	default:
		log.Fatal("searchctl: one of -query or -queries is required")
	}
}

// loadStopWords reads a whitespace-delimited stop-word file. An empty path
// yields no stop-words.
func loadStopWords(path string) ([]string, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading stop-words file: %w", err)
	}
	return strings.Fields(string(data)), nil
}

// loadDocuments reads documents from path, one per line, in the format
//
//	id|rating,rating,...|content
//
// The ratings field may be empty. Lines are indexed in file order via
// AddDocument.
func loadDocuments(server *index.Server, path string, verbose bool) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening document file: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		id, ratings, content, err := parseDocumentLine(line)
		if err != nil {
			return fmt.Errorf("document file line %d: %w", lineNo, err)
		}

		if err := server.AddDocument(id, content, types.Actual, ratings); err != nil {
			return fmt.Errorf("document file line %d: %w", lineNo, err)
		}
		if verbose {
			log.Printf("indexed document %d (%d ratings)", id, len(ratings))
		}
	}

	return scanner.Err()
}

func parseDocumentLine(line string) (id int, ratings []int, content string, err error) {
	parts := strings.SplitN(line, "|", 3)
	if len(parts) != 3 {
		return 0, nil, "", fmt.Errorf("expected 3 fields separated by '|', got %d", len(parts))
	}

	id, err = strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, nil, "", fmt.Errorf("invalid document id %q: %w", parts[0], err)
	}

	if ratingsField := strings.TrimSpace(parts[1]); ratingsField != "" {
		for _, r := range strings.Split(ratingsField, ",") {
			v, err := strconv.Atoi(strings.TrimSpace(r))
			if err != nil {
				return 0, nil, "", fmt.Errorf("invalid rating %q: %w", r, err)
			}
			ratings = append(ratings, v)
		}
	}

	return id, ratings, parts[2], nil
}

func runQuery(server *index.Server, query string) {
	docs, err := server.FindTopDocumentsParallel(query, index.ActualOnly)
	if err != nil {
		log.Fatalf("searchctl: query %q: %v", query, err)
	}
	printResults(docs)
}

func runQueriesFile(server *index.Server, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading queries file: %w", err)
	}

	var queries []string
	for _, line := range strings.Split(string(data), "\n") {
		if strings.TrimSpace(line) != "" {
			queries = append(queries, line)
		}
	}

	results, err := batch.ProcessQueries(server, queries)
	if err != nil {
		return fmt.Errorf("processing queries: %w", err)
	}

	for i, docs := range results {
		fmt.Printf("query %q:\n", queries[i])
		printResults(docs)
	}
	return nil
}

func printResults(docs []index.Document) {
	for _, d := range docs {
		fmt.Printf("{ document_id = %d, relevance = %v, rating = %d }\n", d.ID, d.Relevance, d.Rating)
	}
}
