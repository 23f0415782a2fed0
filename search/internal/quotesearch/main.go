package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/hczhu/qute/search"
	"github.com/hczhu/qute/search/index"
)

const directory = "directory"

var quotes = []string{
	"A man is never more truthful than when he acknowledges himself a liar.",
	"I don't give a damn for a man that can only spell a word one way.",
	"The human race has one really effective weapon, and that is laughter.",
	"Loyalty to petrified opinion never yet broke a chain or freed a human soul.",
}

func main() {
	mode := flag.String("mode", "", "Mode to run: index or search")
	queryString := flag.String(
		"query",
		"(or (and tag:man_liar man liar) (diff tag:human-weapon human weapon))",
		"Query to evaluate in search mode")

	flag.Parse()

	switch *mode {
	case "index":
		runIndex()
	case "search":
		runSearch(*queryString)
	default:
		fmt.Println("Usage: go run main.go -mode=index|search [-query=...]")
		os.Exit(1)
	}
}

func runIndex() {
	if err := os.RemoveAll(directory); err != nil {
		log.Fatal(err)
	}

	if err := os.MkdirAll(directory, 0700); err != nil {
		log.Fatal(err)
	}

	docs := make([]index.Document, 0, len(quotes))
	for i, quote := range quotes {
		docs = append(docs, index.Document{Id: index.DocumentId(i), Text: []byte(quote)})
	}

	if err := index.NewIndexWriter(directory).AddDocuments(docs); err != nil {
		log.Fatal(err)
	}
}

func runSearch(q string) {
	reader, err := index.NewIndexReader(directory)
	if err != nil {
		log.Fatal(err)
	}

	defer reader.Close()

	matches, err := search.Search(q, reader)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("Search results:")

	for _, match := range matches {
		text, err := reader.Value(match.DocId)
		if err != nil {
			log.Fatal(err)
		}

		if len(match.Tags) > 0 {
			fmt.Printf("  %s (%s)\n", text, strings.Join(match.Tags, ", "))
		} else {
			fmt.Printf("  %s\n", text)
		}
	}
}
