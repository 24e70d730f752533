package main

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/premier-auto/site/listing"
)

var (
	//go:embed schema.json
	schemaJSON []byte

	//go:embed listings.json
	sampleListings []byte
)

const schemaURL = "listings.schema.json"

var listingsSchema = mustCompileSchema()

func mustCompileSchema() *jsonschema.Schema {
	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat = true
	if err := compiler.AddResource(schemaURL, bytes.NewReader(schemaJSON)); err != nil {
		panic(fmt.Sprintf("failed to add listings schema: %v", err))
	}
	return compiler.MustCompile(schemaURL)
}

// readListings loads listings from path, or the embedded sample when path is empty.
func readListings(path string) ([]listing.Listing, error) {
	if path == "" {
		return parseJSON(sampleListings)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		return parseJSON(data)
	case ".xlsx":
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return listing.ReadSheet(f)
	default:
		return nil, fmt.Errorf("unsupported file type %q, want .json or .xlsx", filepath.Ext(path))
	}
}

// parseJSON validates data against the listings schema before decoding it.
func parseJSON(data []byte) ([]listing.Listing, error) {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("listings file is not valid JSON: %w", err)
	}
	if err := listingsSchema.Validate(v); err != nil {
		return nil, fmt.Errorf("listings file failed schema validation: %w", err)
	}

	var listings []listing.Listing
	if err := json.Unmarshal(data, &listings); err != nil {
		return nil, fmt.Errorf("failed to decode listings: %w", err)
	}
	for i := range listings {
		if listings[i].Features == nil {
			listings[i].Features = []string{}
		}
	}
	return listings, nil
}
