package youtube

import "github.com/PuerkitoBio/goquery"

// canonicalLink returns the href of the page's <link rel="canonical">
// element, or false when the element (or its href) is absent. It assumes
// nothing else about the document.
func canonicalLink(doc *goquery.Document) (string, bool) {
	href, ok := doc.Find(`link[rel="canonical"]`).First().Attr("href")
	if !ok || href == "" {
		return "", false
	}
	return href, true
}

// metaTitle returns the content of <meta name="title">, or false when the
// element or its content attribute is missing.
func metaTitle(doc *goquery.Document) (string, bool) {
	content, ok := doc.Find(`meta[name="title"]`).First().Attr("content")
	if !ok || content == "" {
		return "", false
	}
	return content, true
}
