package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/graeme-hill/calcstuff-go/lib"
)

var (
	casesFile = flag.String("cases", "", "YAML file of named cases")
	exprDir   = flag.String("dir", "", "Directory of *.calc expression files")
	dsn       = flag.String("dsn", os.Getenv("CALC_DSN"), "PostgreSQL connection string to record results in")
	timeout   = flag.Duration("timeout", 30*time.Second, "Timeout for recording results")
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("calcbatch: ")
	flag.Parse()

	cases, err := loadCases(*casesFile, *exprDir)
	if err != nil {
		log.Fatal(err)
	}

	results := lib.RunCases(cases)
	failed := report(os.Stdout, results)

	if *dsn != "" {
		if err := record(*dsn, *timeout, results); err != nil {
			log.Fatal(err)
		}
		log.Printf("recorded %d results", len(results))
	}

	if failed > 0 {
		log.Printf("%d of %d cases failed", failed, len(results))
		os.Exit(1)
	}
}

func loadCases(casesFile string, dir string) ([]lib.Case, error) {
	switch {
	case casesFile != "" && dir != "":
		return nil, fmt.Errorf("Use only one of -cases and -dir")
	case casesFile != "":
		return lib.LoadCases(casesFile)
	case dir != "":
		return lib.ReadExpressionsDir(dir)
	default:
		return nil, fmt.Errorf("One of -cases or -dir is required")
	}
}

// report writes one line per result and returns how many failed.
func report(w io.Writer, results []lib.CaseResult) int {
	failed := 0
	for _, r := range results {
		status := "PASS"
		if !r.Passed {
			status = "FAIL"
			failed++
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", status, r.Case.Name, r.Display())
	}
	return failed
}

func record(dsn string, timeout time.Duration, results []lib.CaseResult) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	store, err := lib.OpenStore(ctx, dsn)
	if err != nil {
		return err
	}
	defer store.Close()

	return store.RecordAll(ctx, results)
}
