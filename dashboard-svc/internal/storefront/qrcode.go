package storefront

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/skip2/go-qrcode"
)

const DefaultQRSize = 256

type QRGenerator interface {
	Generate(slug, table string) ([]byte, error)
}

// DefaultQRGenerator encodes links to the public menu as PNG images.
type DefaultQRGenerator struct {
	BaseURL string
	Size    int
}

// MenuURL is the link printed on the restaurant's tables.
func (g DefaultQRGenerator) MenuURL(slug, table string) string {
	link := fmt.Sprintf("%s/menu/%s", strings.TrimRight(g.BaseURL, "/"), url.PathEscape(slug))
	if table != "" {
		link += "?table=" + url.QueryEscape(table)
	}
	return link
}

func (g DefaultQRGenerator) Generate(slug, table string) ([]byte, error) {
	if strings.TrimSpace(slug) == "" {
		return nil, ErrEmptySlug
	}
	size := g.Size
	if size <= 0 {
		size = DefaultQRSize
	}
	return qrcode.Encode(g.MenuURL(slug, table), qrcode.Medium, size)
}
