// Command papercheck compares a reference document against a candidate
// document and writes a plagiarism similarity score.
//
// Usage:
//
//	papercheck [options] <original-file> <candidate-file> <output-file>
//
// The score, a value in [0, 1] formatted with two decimals, is written to
// the output file and echoed to standard output.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/baditaflorin/go_jaccard_similarity/internal/textio"
	"github.com/baditaflorin/go_jaccard_similarity/pkg/jaccard"
)

var (
	threshold float64
	verbose   bool
)

func init() {
	flag.Float64Var(&threshold, "threshold", 0.7, "similarity at or above which the candidate is flagged")
	flag.BoolVar(&verbose, "verbose", false, "print token statistics")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <original-file> <candidate-file> <output-file>\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nOptions:\n")
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()
	os.Exit(run(flag.Args()))
}

// run executes one comparison. All recoverable conditions are handled here,
// before the core pipeline runs; no output file is written on failure.
func run(args []string) int {
	if len(args) != 3 {
		fmt.Fprintln(os.Stderr, "input error: expected <original-file> <candidate-file> <output-file>")
		flag.Usage()
		return 1
	}
	originalPath, candidatePath, outputPath := args[0], args[1], args[2]

	original, err := textio.ReadDocument(originalPath)
	if err != nil {
		reportReadError(err, originalPath)
		return 1
	}
	candidate, err := textio.ReadDocument(candidatePath)
	if err != nil {
		reportReadError(err, candidatePath)
		return 1
	}

	ts, err := jaccard.New(jaccard.WithThreshold(threshold))
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	result := ts.Compute(ctx, original, candidate)

	if err := textio.WriteScore(outputPath, result.Score); err != nil {
		fmt.Fprintf(os.Stderr, "error writing result: %v\n", err)
		return 1
	}

	fmt.Printf("similarity: %s\n", textio.FormatScore(result.Score))
	if verbose {
		fmt.Printf("original tokens: %d\n", result.OriginalTokens)
		fmt.Printf("candidate tokens: %d\n", result.CandidateTokens)
		fmt.Printf("intersection: %d\n", result.Intersection)
		fmt.Printf("union: %d\n", result.Union)
		fmt.Printf("flagged: %v\n", result.Flagged)
	}
	return 0
}

func reportReadError(err error, path string) {
	if errors.Is(err, textio.ErrNotFound) {
		fmt.Fprintf(os.Stderr, "file not found: %s\n", path)
		return
	}
	fmt.Fprintf(os.Stderr, "error reading %s: %v\n", path, err)
}
