package scraper

import (
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/PuerkitoBio/goquery"

	"phonehub/pkg/models"
)

// nextPageRe pulls the page index out of a pagination href like
// "samsung-phones-f-9-0-p3.php".
var nextPageRe = regexp.MustCompile(`p(\d+)\.php`)

// BrandModels fetches one listing page of a brand. Page 1 uses the plain
// brand URL; later pages carry the "-f-9-0-pN" pagination suffix. A page
// with no models is the end of the brand, not an error.
func (c *Client) BrandModels(ctx context.Context, brandSlug string, pageIndex int) (models.PageResult, error) {
	if pageIndex < 1 {
		pageIndex = 1
	}
	pageURL := c.listingURL(brandSlug, pageIndex)

	doc, err := c.Fetcher.Fetch(ctx, pageURL)
	if err != nil {
		return models.PageResult{}, fmt.Errorf("brand %s page %d: %w", brandSlug, pageIndex, err)
	}

	res := models.PageResult{PageURL: pageURL}

	doc.Find(".general-menu ul li a").Each(func(_ int, a *goquery.Selection) {
		href, _ := a.Attr("href")
		title := trimmed(a.Find("strong").Text())
		if href == "" || title == "" {
			return
		}
		ref := models.ModelRef{
			Slug:  href,
			Title: title,
			URL:   c.absURL(href),
		}
		if img, ok := a.Find("img").Attr("src"); ok && img != "" {
			ref.Thumbnail = c.absURL(img)
		}
		res.Models = append(res.Models, ref)
	})

	// hasNext comes from an enabled right-arrow in the pager; its href also
	// names the next page index when present.
	doc.Find("#nav-review-page-temp a.prevnextbutton").Each(func(_ int, a *goquery.Selection) {
		if a.HasClass("disabled") || a.Find(".icon-gallery-arrow-right").Length() == 0 {
			return
		}
		res.HasNext = true
		res.NextPage = pageIndex + 1
		if href, ok := a.Attr("href"); ok {
			if m := nextPageRe.FindStringSubmatch(href); m != nil {
				if n, err := strconv.Atoi(m[1]); err == nil {
					res.NextPage = n
				}
			}
		}
	})

	return res, nil
}

func (c *Client) listingURL(brandSlug string, pageIndex int) string {
	if pageIndex > 1 {
		return c.absURL(fmt.Sprintf("%s-f-9-0-p%d.php", brandSlug, pageIndex))
	}
	return c.absURL(brandSlug + ".php")
}
