package listing

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

const sheetName = "Listings"

// SheetColumns is the header row of exported and imported spreadsheets. Import
// matches columns by name, so order and extra columns do not matter there.
var SheetColumns = []string{
	"id", "make", "model", "year", "price", "mileage", "condition", "transmission",
	"fuel_type", "body_type", "exterior_color", "interior_color", "description",
	"features", "image_url", "location", "vin", "created_at",
}

var requiredSheetColumns = []string{"make", "model", "year", "price", "mileage", "condition"}

// featureSeparator joins features into a single cell.
const featureSeparator = ";"

// WriteSheet writes listings as an XLSX workbook with one header row.
func WriteSheet(w io.Writer, listings []Listing) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	header := make([]any, len(SheetColumns))
	for i, col := range SheetColumns {
		header[i] = col
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, l := range listings {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		vin := ""
		if l.VIN != nil {
			vin = *l.VIN
		}
		for _, feat := range l.Features {
			if strings.Contains(feat, featureSeparator) {
				return fmt.Errorf("row %d: feature %q contains %q", i+2, feat, featureSeparator)
			}
		}
		created := ""
		if !l.CreatedAt.IsZero() {
			created = l.CreatedAt.UTC().Format(time.RFC3339)
		}
		row := []any{
			l.ID, l.Make, l.Model, l.Year, l.Price, l.Mileage, string(l.Condition), l.Transmission,
			l.FuelType, l.BodyType, l.ExteriorColor, l.InteriorColor, l.Description,
			strings.Join(l.Features, featureSeparator+" "), l.ImageURL, l.Location, vin, created,
		}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	return f.Write(w)
}

// ReadSheet parses listings from the first sheet of an XLSX workbook. The first
// non-empty row is the header. Blank rows are skipped.
func ReadSheet(r io.Reader) ([]Listing, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open xlsx: %w", err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("excel file has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read rows from xlsx: %w", err)
	}
	return listingsFromRows(rows)
}

func listingsFromRows(rows [][]string) ([]Listing, error) {
	var (
		index    map[string]int
		listings = []Listing{}
	)

	for i, row := range rows {
		if isBlankRow(row) {
			continue
		}
		if index == nil {
			index = make(map[string]int, len(row))
			for col, name := range row {
				index[strings.ToLower(strings.TrimSpace(name))] = col
			}
			for _, req := range requiredSheetColumns {
				if _, ok := index[req]; !ok {
					return nil, fmt.Errorf("missing required column %q", req)
				}
			}
			continue
		}

		l, err := listingFromRow(index, row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		listings = append(listings, l)
	}

	if index == nil {
		return nil, errors.New("no rows found in file")
	}
	return listings, nil
}

func listingFromRow(index map[string]int, row []string) (Listing, error) {
	cell := func(name string) string {
		col, ok := index[name]
		if !ok || col >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[col])
	}

	l := Listing{
		ID:            cell("id"),
		Make:          cell("make"),
		Model:         cell("model"),
		Condition:     Condition(strings.ToLower(cell("condition"))),
		Transmission:  cell("transmission"),
		FuelType:      cell("fuel_type"),
		BodyType:      cell("body_type"),
		ExteriorColor: cell("exterior_color"),
		InteriorColor: cell("interior_color"),
		Description:   cell("description"),
		ImageURL:      cell("image_url"),
		Location:      cell("location"),
		Features:      splitFeatures(cell("features")),
	}

	var err error
	if l.Year, err = strconv.Atoi(cell("year")); err != nil {
		return Listing{}, fmt.Errorf("invalid year %q", cell("year"))
	}
	if l.Price, err = strconv.ParseFloat(cell("price"), 64); err != nil {
		return Listing{}, fmt.Errorf("invalid price %q", cell("price"))
	}
	if l.Mileage, err = strconv.Atoi(cell("mileage")); err != nil {
		return Listing{}, fmt.Errorf("invalid mileage %q", cell("mileage"))
	}
	if vin := cell("vin"); vin != "" {
		l.VIN = &vin
	}
	if created := cell("created_at"); created != "" {
		if l.CreatedAt, err = time.Parse(time.RFC3339, created); err != nil {
			return Listing{}, fmt.Errorf("invalid created_at %q", created)
		}
	}

	if err := l.Validate(); err != nil {
		return Listing{}, err
	}
	return l, nil
}

func splitFeatures(s string) []string {
	features := []string{}
	for _, f := range strings.Split(s, featureSeparator) {
		if f = strings.TrimSpace(f); f != "" {
			features = append(features, f)
		}
	}
	return features
}

func isBlankRow(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
