package crawler

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"

	"product-scraper/pkg/models"
)

// Selectors are compiled once; a typo here panics at startup rather than
// silently matching nothing on every page.
var (
	productSelector = cascadia.MustCompile("li.product")

	linkSelector  = goquery.SingleMatcher(cascadia.MustCompile("a"))
	imageSelector = goquery.SingleMatcher(cascadia.MustCompile("img"))
	nameSelector  = goquery.SingleMatcher(cascadia.MustCompile("h2"))
	priceSelector = goquery.SingleMatcher(cascadia.MustCompile(".price"))
)

type Extractor struct{}

func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns one product per li.product node, in document order.
func (e *Extractor) Extract(r io.Reader) ([]models.Product, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	var products []models.Product
	doc.FindMatcher(productSelector).Each(func(_ int, item *goquery.Selection) {
		products = append(products, models.Product{
			URL:   attr(item, linkSelector, "href"),
			Image: attr(item, imageSelector, "src"),
			Name:  text(item, nameSelector),
			Price: text(item, priceSelector),
		})
	})
	return products, nil
}

func (e *Extractor) ExtractString(rawHTML string) ([]models.Product, error) {
	return e.Extract(strings.NewReader(rawHTML))
}

// attr reads an attribute of the first descendant matching m.
func attr(item *goquery.Selection, m goquery.Matcher, name string) models.Optional[string] {
	node := item.FindMatcher(m).First()
	if node.Length() == 0 {
		return models.Absent[string]()
	}
	val, ok := node.Attr(name)
	if !ok {
		return models.Absent[string]()
	}
	return models.Present(val)
}

// text concatenates the text nodes under the first descendant matching m.
func text(item *goquery.Selection, m goquery.Matcher) models.Optional[string] {
	node := item.FindMatcher(m).First()
	if node.Length() == 0 {
		return models.Absent[string]()
	}
	return models.Present(node.Text())
}
