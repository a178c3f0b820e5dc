package catalog

import (
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const (
	priceTableID    = "priceTable"
	priceTableClass = "price-table"
)

// decodeHTML reads the body rows of a published price table. Each row carries
// its tags as data-category / data-material attributes and its price as the
// data-price attribute of the price cell; the formatted price text is ignored.
func decodeHTML(data []byte) ([]Row, error) {
	doc, err := html.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parse html catalog: %w", err)
	}

	table := findNode(doc, func(n *html.Node) bool {
		return n.DataAtom == atom.Table && attr(n, "id") == priceTableID
	})
	if table == nil {
		table = findNode(doc, func(n *html.Node) bool {
			return n.DataAtom == atom.Table && hasClass(n, priceTableClass)
		})
	}
	if table == nil {
		return nil, fmt.Errorf("parse html catalog: no table with id %q or class %q", priceTableID, priceTableClass)
	}

	var rows []Row
	for _, body := range children(table, atom.Tbody) {
		for _, tr := range children(body, atom.Tr) {
			rows = append(rows, htmlRow(tr))
		}
	}
	return rows, nil
}

func htmlRow(tr *html.Node) Row {
	row := Row{
		Category: attr(tr, "data-category"),
		Material: attr(tr, "data-material"),
	}
	for _, td := range children(tr, atom.Td) {
		switch {
		case hasClass(td, "article"):
			row.Article = strings.TrimSpace(textContent(td))
		case hasClass(td, "name"):
			row.Name = strings.TrimSpace(textContent(td))
		case hasClass(td, "price"):
			row.Price = ParsePrice(attr(td, "data-price"))
		}
	}
	return row
}

func findNode(n *html.Node, match func(*html.Node) bool) *html.Node {
	if n.Type == html.ElementNode && match(n) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findNode(c, match); found != nil {
			return found
		}
	}
	return nil
}

func children(n *html.Node, a atom.Atom) []*html.Node {
	var out []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.DataAtom == a {
			out = append(out, c)
		}
	}
	return out
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
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
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}
