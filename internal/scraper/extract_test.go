package scraper_test

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"phonehub/internal/scraper"
	"phonehub/pkg/models"
)

// specsHTML is a cut-down phone detail page in the source's spec-table
// layout: one table per section, th = section name, td.ttl/td.nfo pairs.
const specsHTML = `<!DOCTYPE html>
<html>
<body>
<h1 class="specs-phone-name-title">Acme Alpha 5G</h1>
<div id="specs-cp"><img src="bigpic/acme-alpha.jpg"></div>
<div id="specs-list">
  <table>
    <tr><th rowspan="2">Network</th><td class="ttl">Technology</td><td class="nfo">GSM / HSPA / LTE / 5G</td></tr>
    <tr><td class="ttl">Speed</td><td class="nfo">HSPA, LTE-A, 5G</td></tr>
  </table>
  <table>
    <tr><th rowspan="2">Launch</th><td class="ttl">Announced</td><td class="nfo">Announced 2023, March</td></tr>
    <tr><td class="ttl">Status</td><td class="nfo">Available. Released 2023, April</td></tr>
  </table>
  <table>
    <tr><th rowspan="2">Main Camera</th><td class="ttl">Triple</td><td class="nfo">50 MP + 12 MP + 10 MP</td></tr>
    <tr><td class="ttl">Video</td><td class="nfo">8K@30fps</td></tr>
  </table>
  <table>
    <tr><th rowspan="2">Misc</th><td class="ttl">Colors</td><td class="nfo">Phantom Black</td></tr>
    <tr><td class="ttl">Price</td><td class="nfo">$ 799.00</td></tr>
  </table>
</div>
</body>
</html>`

func parseDoc(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func TestParseSections(t *testing.T) {
	sections := scraper.ParseSections(parseDoc(t, specsHTML))

	v, ok := sections.Lookup("Network", "Technology")
	require.True(t, ok)
	assert.Equal(t, "GSM / HSPA / LTE / 5G", v)

	v, ok = sections.Lookup("Launch", "Status")
	require.True(t, ok)
	assert.Equal(t, "Available. Released 2023, April", v)

	// absent section and absent label are both normal outcomes
	_, ok = sections.Lookup("Battery", "Type")
	assert.False(t, ok)
	_, ok = sections.Lookup("Network", "5G bands")
	assert.False(t, ok)
}

func TestMapRecordPresentAndAbsent(t *testing.T) {
	rec := scraper.MapRecord(scraper.ParseSections(parseDoc(t, specsHTML)))

	assert.Equal(t, "GSM / HSPA / LTE / 5G", rec["network_technology"])
	assert.Equal(t, "HSPA, LTE-A, 5G", rec["network_speed"])
	assert.Equal(t, "Announced 2023, March", rec["launch_announced"])
	assert.Equal(t, "Phantom Black", rec["misc_colors"])

	// absent pairs never error, they just leave the column out
	_, ok := rec["battery_type"]
	assert.False(t, ok)
	_, ok = rec["display_size"]
	assert.False(t, ok)
}

func TestMapRecordYearDerivation(t *testing.T) {
	rec := scraper.MapRecord(scraper.ParseSections(parseDoc(t, specsHTML)))
	assert.Equal(t, "2023", rec[models.ColYear])

	noYear := scraper.Sections{
		"Launch": {"Announced": "Not announced yet"},
	}
	rec = scraper.MapRecord(noYear)
	_, ok := rec[models.ColYear]
	assert.False(t, ok)

	oldYear := scraper.Sections{
		"Launch": {"Announced": "1999, October"},
	}
	assert.Equal(t, "1999", scraper.MapRecord(oldYear)[models.ColYear])
}

func TestMapRecordCameraFallbackChain(t *testing.T) {
	// Triple outranks Quad when both are present.
	both := scraper.Sections{
		"Main Camera": {
			"Triple": "triple modules",
			"Quad":   "quad modules",
		},
	}
	assert.Equal(t, "triple modules", scraper.MapRecord(both)["main_camera_modules"])

	// with Triple gone the chain falls through: Quad, then Single, then Dual
	quadOnly := scraper.Sections{"Main Camera": {"Quad": "quad modules"}}
	assert.Equal(t, "quad modules", scraper.MapRecord(quadOnly)["main_camera_modules"])

	dualOnly := scraper.Sections{"Main Camera": {"Dual": "dual modules"}}
	assert.Equal(t, "dual modules", scraper.MapRecord(dualOnly)["main_camera_modules"])
}

func TestMapRecordDeterministic(t *testing.T) {
	doc := parseDoc(t, specsHTML)
	a := scraper.MapRecord(scraper.ParseSections(doc))
	b := scraper.MapRecord(scraper.ParseSections(doc))
	assert.Equal(t, a, b)
}
