package main

import (
	"bytes"
	"log"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/cs16stats/statsweb/internal/csstats"
	"github.com/cs16stats/statsweb/internal/report"
)

func main() {
	flag.Parse()

	args := flag.Args()
	if len(args) < 1 || len(args) > 2 {
		log.Fatal("usage: stats-report <input-file> [output-file]")
	}

	records, err := csstats.DecodeFile(args[0])
	if err != nil {
		log.Fatalf("failed to read ranking file: %s", err)
	}

	// render fully before touching the output so a failure never leaves a
	// partially written table behind
	var table bytes.Buffer
	if err = report.RenderTable(&table, records); err != nil {
		log.Fatalf("failed to render stats table: %s", err)
	}

	out := os.Stdout
	if len(args) == 2 {
		if out, err = os.Create(args[1]); err != nil {
			log.Fatalf("failed to create output file: %s", err)
		}
		defer out.Close()
	}

	if _, err = out.Write(table.Bytes()); err != nil {
		log.Fatalf("failed to write output: %s", err)
	}
}
