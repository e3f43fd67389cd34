package crawler

import (
	"fmt"
	"iter"
)

// DefaultPageURLTemplate is the catalogue listing, paginated by page number.
const DefaultPageURLTemplate = "https://www.scrapingcourse.com/ecommerce/page/%d/"

// PageRange yields the page numbers first..last, inclusive. The range is fixed
// up front; it is never extended by following "next" links.
func PageRange(first, last int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for n := first; n <= last; n++ {
			if !yield(n) {
				return
			}
		}
	}
}

func PageURL(template string, page int) string {
	return fmt.Sprintf(template, page)
}
