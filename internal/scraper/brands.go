package scraper

import (
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"phonehub/pkg/models"
)

// Brands lists every maker on the catalog's makers page.
//
// Source structure:
//
//	<div class="st-text"><table> ...
//	  <a href="samsung-phones-9.php">Samsung<br><span>1423 devices</span></a>
func (c *Client) Brands(ctx context.Context) ([]models.Brand, error) {
	doc, err := c.Fetcher.Fetch(ctx, c.absURL("makers.php3"))
	if err != nil {
		return nil, fmt.Errorf("brands: %w", err)
	}

	var brands []models.Brand
	doc.Find(".st-text table a").Each(func(_ int, a *goquery.Selection) {
		href, _ := a.Attr("href")
		name := strings.TrimSpace(directText(a))
		if href == "" || name == "" {
			return
		}
		brands = append(brands, models.Brand{
			Slug:    strings.TrimSuffix(href, ".php"),
			Name:    name,
			Devices: strings.TrimSpace(a.Find("span").Text()),
		})
	})
	return brands, nil
}

// directText returns the text of s's own text nodes, skipping child
// elements (the brand name sits next to a <span> holding the device count).
func directText(s *goquery.Selection) string {
	return s.Contents().FilterFunction(func(_ int, n *goquery.Selection) bool {
		return goquery.NodeName(n) == "#text"
	}).Text()
}
