package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/invopop/jsonschema"

	"chosenoffset.com/tilewalk/internal/world/store"
)

func main() {
	var outPath, kind string
	flag.StringVar(&outPath, "out", "", "path to write the JSON schema")
	flag.StringVar(&kind, "kind", "region", "document to describe: region or world")
	flag.Parse()

	if outPath == "" {
		fmt.Fprintln(os.Stderr, "--out is required")
		os.Exit(1)
	}

	var schema *jsonschema.Schema
	switch kind {
	case "region":
		schema = store.RegionSchema()
	case "world":
		schema = store.WorldSchema()
	default:
		fmt.Fprintf(os.Stderr, "unknown kind %q\n", kind)
		os.Exit(1)
	}

	if err := store.WriteSchema(outPath, schema); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write schema: %v\n", err)
		os.Exit(1)
	}
}
