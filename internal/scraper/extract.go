package scraper

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"phonehub/pkg/models"
)

// Sections is the raw shape of a spec page: section name to label/value rows.
type Sections map[string]map[string]string

// ParseSections reads the spec tables of a detail page. Each table is one
// section; its <th> carries the section name, rows pair a td.ttl label with
// a td.nfo value. Rows missing either side are skipped.
func ParseSections(doc *goquery.Document) Sections {
	out := Sections{}
	doc.Find("#specs-list table").Each(func(_ int, table *goquery.Selection) {
		name := trimmed(table.Find("th").First().Text())
		if name == "" {
			return
		}
		rows, ok := out[name]
		if !ok {
			rows = make(map[string]string)
			out[name] = rows
		}
		table.Find("tr").Each(func(_ int, tr *goquery.Selection) {
			k := trimmed(tr.Find("td.ttl").Text())
			v := trimmed(tr.Find("td.nfo").Text())
			if k != "" && v != "" {
				rows[k] = v
			}
		})
	})
	return out
}

// Lookup returns the first present value for the given label chain in a
// section. Absence is normal: heterogeneous pages rename or drop labels
// all the time.
func (s Sections) Lookup(section string, labels ...string) (string, bool) {
	rows, ok := s[section]
	if !ok {
		return "", false
	}
	for _, l := range labels {
		if v, ok := rows[l]; ok {
			return v, true
		}
	}
	return "", false
}

var yearRe = regexp.MustCompile(`\b(19|20)\d{2}\b`)

// MapRecord maps raw sections into the fixed phone schema via the spec field
// table. Missing (section, label) pairs simply leave the column absent.
func MapRecord(s Sections) models.PhoneRecord {
	rec := models.PhoneRecord{}
	for _, f := range models.SpecFields {
		if f.Section == "" {
			continue // derived elsewhere
		}
		if v, ok := s.Lookup(f.Section, f.Labels...); ok {
			rec[f.Column] = v
		}
	}
	if y := launchYear(rec[models.ColLaunchAnnounced]); y != "" {
		rec[models.ColYear] = y
	}
	return rec
}

// launchYear pulls the first 19xx/20xx token out of an announce date like
// "Announced 2023, March". Empty when no such token exists.
func launchYear(announced string) string {
	return yearRe.FindString(announced)
}

func trimmed(s string) string { return strings.TrimSpace(s) }
