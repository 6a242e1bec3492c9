package discussions

import (
	"regexp"
	"strconv"

	"github.com/PuerkitoBio/goquery"
)

// paginationContainers matches the markup regions Steam uses for page
// navigation across its rendering variants.
const paginationContainers = ".forum_pagination, .search_pagination, .forum_paging, .searchPaging"

var (
	pageParamRe  = regexp.MustCompile(`[?&]p=(\d+)`)
	pageOfTextRe = regexp.MustCompile(`(?i)Page\s+\d+\s+of\s+(\d+)`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// MaxPage returns the highest page number referenced by the document's
// pagination markup, with a floor of 1.
//
// The search pages expose the page count inconsistently depending on
// rendering state: sometimes only as data-page attributes on the paging
// buttons, sometimes only as "&p=N" links, sometimes only as visible
// "Page X of Y" text. All three signals are scanned and the maximum wins;
// none of them is known to over-count inside a pagination container.
func MaxPage(doc *goquery.Document) int {
	scopes := doc.Find(paginationContainers)
	if scopes.Length() == 0 {
		scopes = doc.Selection
	}

	maxPage := 1
	scopes.Each(func(_ int, scope *goquery.Selection) {
		if n, ok := maxDataPageAttr(scope); ok && n > maxPage {
			maxPage = n
		}
		if n, ok := maxPageLink(scope); ok && n > maxPage {
			maxPage = n
		}
		if n, ok := pageOfTotal(scope); ok && n > maxPage {
			maxPage = n
		}
	})

	return maxPage
}

// maxDataPageAttr scans for data-page attributes composed entirely of
// decimal digits; signed or otherwise decorated values are skipped.
func maxDataPageAttr(scope *goquery.Selection) (int, bool) {
	max, found := 0, false
	scope.Find("[data-page]").Each(func(_ int, sel *goquery.Selection) {
		val, _ := sel.Attr("data-page")
		if !isDigits(val) {
			return
		}
		n, err := strconv.Atoi(val)
		if err != nil || n <= 0 {
			return
		}
		found = true
		if n > max {
			max = n
		}
	})
	return max, found
}

// maxPageLink scans anchors whose href carries an explicit page parameter.
// Links where no digits follow "p=" are skipped.
func maxPageLink(scope *goquery.Selection) (int, bool) {
	max, found := 0, false
	scope.Find(`a[href*="&p="]`).Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		m := pageParamRe.FindStringSubmatch(href)
		if m == nil {
			return
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return
		}
		found = true
		if n > max {
			max = n
		}
	})
	return max, found
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}

// pageOfTotal looks for visible "Page X of Y" text and returns Y.
func pageOfTotal(scope *goquery.Selection) (int, bool) {
	text := whitespaceRe.ReplaceAllString(scope.Text(), " ")
	m := pageOfTextRe.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}
