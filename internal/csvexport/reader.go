package csvexport

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrMissingEmailColumn is returned when an import has no email header
var ErrMissingEmailColumn = errors.New("email column is required")

// ContactRow is one data row of a contact import
type ContactRow struct {
	Line      int
	Email     string
	FirstName *string
	LastName  *string
	Custom    map[string]string
}

// ParseContacts reads a CSV whose header names an email column plus optional first and
// last name columns. Any other column is returned in Custom keyed by its header.
// Blank lines and rows without an email are skipped.
func ParseContacts(r io.Reader) ([]ContactRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	headers, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrMissingEmailColumn
		}
		return nil, fmt.Errorf("failed to read CSV headers: %w", err)
	}
	if len(headers) > 0 {
		headers[0] = strings.TrimPrefix(headers[0], bom)
	}

	emailIdx, firstNameIdx, lastNameIdx := -1, -1, -1
	for i, h := range headers {
		switch normalizeHeader(h) {
		case "email", "emailaddress":
			emailIdx = i
		case "firstname":
			firstNameIdx = i
		case "lastname":
			lastNameIdx = i
		}
	}
	if emailIdx == -1 {
		return nil, ErrMissingEmailColumn
	}

	var rows []ContactRow
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV: %w", err)
		}
		line, _ := reader.FieldPos(0)

		email := field(record, emailIdx)
		if email == "" {
			continue
		}

		row := ContactRow{Line: line, Email: email}
		if v := field(record, firstNameIdx); v != "" {
			row.FirstName = &v
		}
		if v := field(record, lastNameIdx); v != "" {
			row.LastName = &v
		}
		for i, h := range headers {
			if i == emailIdx || i == firstNameIdx || i == lastNameIdx {
				continue
			}
			if v := field(record, i); v != "" {
				if row.Custom == nil {
					row.Custom = make(map[string]string)
				}
				row.Custom[strings.TrimSpace(h)] = v
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// normalizeHeader folds firstName, first_name and "First Name" together
func normalizeHeader(h string) string {
	h = strings.ToLower(strings.TrimSpace(h))
	return strings.NewReplacer("_", "", " ", "", "-", "").Replace(h)
}

func field(record []string, idx int) string {
	if idx < 0 || idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}
