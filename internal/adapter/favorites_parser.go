package adapter

import (
	"fmt"
	"io"
	"regexp"
	"slices"
	"strings"

	"golang.org/x/net/html"

	"github.com/MKhiriev/favsync/models"
)

var (
	galleryHrefRe = regexp.MustCompile(`/g/(\d+)/([0-9a-f]+)/?`)
	borderColorRe = regexp.MustCompile(`border-color:\s*(#[0-9a-fA-F]{3,6})`)
)

// favoriteSlotColors are the border colours the listing gives each favorite
// category, in category order.
var favoriteSlotColors = []string{
	"#000", "#f00", "#fa0", "#dd0", "#080", "#9f4", "#4bf", "#00f", "#508", "#e8e",
}

type postedLabel struct {
	title string
	slot  *int
}

// favoritesPage is one parsed page of the favorites listing.
type favoritesPage struct {
	categoryNames []string
	favorites     []models.RemoteFavorite
	nextURL       string
}

// parseFavoritesPage extracts categories, favorites and the next page link.
//
// Category names come from the "fp" header boxes (the "fps" box is the
// "show all" toggle). Every gallery link carrying a "glink" title is a
// favorite; its category label is the title attribute of the matching
// "posted_<gid>" element, whose border colour gives the category position.
func parseFavoritesPage(r io.Reader) (favoritesPage, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return favoritesPage{}, fmt.Errorf("%w: %w", ErrUnexpectedResponse, err)
	}

	var page favoritesPage
	labels := make(map[string]postedLabel)
	seen := make(map[string]struct{})

	walk(doc, func(n *html.Node) bool {
		if n.Type != html.ElementNode {
			return true
		}

		switch {
		case n.Data == "div" && hasClass(n, "fp") && !hasClass(n, "fps"):
			if name := lastChildDivText(n); name != "" {
				page.categoryNames = append(page.categoryNames, name)
			}
			return false
		case n.Data == "div" && strings.HasPrefix(attr(n, "id"), "posted_"):
			if title, ok := attrOK(n, "title"); ok {
				labels[strings.TrimPrefix(attr(n, "id"), "posted_")] = postedLabel{title: title, slot: favoriteSlot(attr(n, "style"))}
			}
		case n.Data == "a" && attr(n, "id") == "dnext":
			page.nextURL = attr(n, "href")
		case n.Data == "a":
			m := galleryHrefRe.FindStringSubmatch(attr(n, "href"))
			if m == nil {
				return true
			}
			glink := find(n, func(c *html.Node) bool { return c.Type == html.ElementNode && hasClass(c, "glink") })
			if glink == nil {
				return true
			}
			if _, dup := seen[m[1]]; dup {
				return true
			}
			seen[m[1]] = struct{}{}
			page.favorites = append(page.favorites, models.RemoteFavorite{
				RemoteID:     m[1],
				RemoteSecret: m[2],
				Title:        strings.TrimSpace(textContent(glink)),
			})
		}
		return true
	})

	for i := range page.favorites {
		if label, ok := labels[page.favorites[i].RemoteID]; ok && label.title != "" {
			page.favorites[i].Category = &label.title
			page.favorites[i].CategoryIndex = label.slot
		}
	}

	return page, nil
}

// favoriteSlot maps a "posted_" border colour to its category position.
func favoriteSlot(style string) *int {
	m := borderColorRe.FindStringSubmatch(style)
	if m == nil {
		return nil
	}
	i := slices.Index(favoriteSlotColors, strings.ToLower(m[1]))
	if i < 0 {
		return nil
	}
	return &i
}

// walk visits n and its descendants depth-first; fn returns false to skip
// the children of a node.
func walk(n *html.Node, fn func(*html.Node) bool) {
	if !fn(n) {
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, fn)
	}
}

func find(n *html.Node, match func(*html.Node) bool) *html.Node {
	var found *html.Node
	walk(n, func(c *html.Node) bool {
		if found != nil {
			return false
		}
		if match(c) {
			found = c
			return false
		}
		return true
	})
	return found
}

func attrOK(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func attr(n *html.Node, key string) string {
	v, _ := attrOK(n, key)
	return v
}

func hasClass(n *html.Node, class string) bool {
	for _, c := range strings.Fields(attr(n, "class")) {
		if c == class {
			return true
		}
	}
	return false
}

func textContent(n *html.Node) string {
	var sb strings.Builder
	walk(n, func(c *html.Node) bool {
		if c.Type == html.TextNode {
			sb.WriteString(c.Data)
		}
		return true
	})
	return sb.String()
}

func lastChildDivText(n *html.Node) string {
	var last *html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.Data == "div" {
			last = c
		}
	}
	if last == nil {
		return ""
	}
	return strings.TrimSpace(textContent(last))
}
