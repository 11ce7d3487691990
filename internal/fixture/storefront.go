// Package fixture builds the mock storefront page the engine is exercised
// against. The content here is scenery: the engine treats it as an
// external collaborator and never depends on its shape.
package fixture

import (
	"fmt"

	"github.com/screenpilot/screenpilot-cli/internal/surface"
)

// Storefront constructs the demo page: a navbar, a search form, a product
// grid and a review box, with a few deliberately awkward nodes (hidden
// banner, zero-size wrapper, scrollable list) that exercise the snapshot
// builder's edge rules.
func Storefront() *surface.Document {
	doc := surface.NewDocument(1280, 800)

	nav := surface.NewNode("NAV")
	nav.Rect = surface.Rect{X: 0, Y: 0, Width: 1280, Height: 60}
	for i, label := range []string{"Home", "Catalog", "Deals", "Support"} {
		link := surface.NewNode("A")
		link.Text = label
		link.SetAttr("href", "/"+label)
		link.Rect = surface.Rect{X: float64(20 + i*110), Y: 10, Width: 100, Height: 40}
		nav.Append(link)
	}

	search := surface.NewNode("INPUT")
	search.SetAttr("placeholder", "Search…")
	search.Rect = surface.Rect{X: 480, Y: 12, Width: 320, Height: 36}
	nav.Append(search)

	country := surface.NewNode("SELECT")
	country.Options = []surface.Option{
		{Value: "us", Text: "United States"},
		{Value: "de", Text: "Germany"},
		{Value: "jp", Text: "Japan"},
	}
	country.Rect = surface.Rect{X: 820, Y: 12, Width: 140, Height: 36}
	nav.Append(country)

	grid := surface.NewNode("DIV")
	grid.Rect = surface.Rect{X: 20, Y: 80, Width: 1240, Height: 480}
	products := []struct {
		name  string
		price string
	}{
		{"Walnut Desk Organizer", "$39"},
		{"Brass Reading Lamp", "$89"},
		{"Linen Throw Blanket", "$54"},
	}
	for i, p := range products {
		grid.Append(productCard(i, p.name, p.price))
	}

	// Hidden promotional banner: must never appear in a snapshot.
	promo := surface.NewNode("DIV")
	promo.Text = "Flash sale!"
	promo.Style.Display = "none"
	promo.Rect = surface.Rect{X: 0, Y: 60, Width: 1280, Height: 40}

	review := surface.NewNode("TEXTAREA")
	review.SetAttr("placeholder", "Write a review")
	review.Rect = surface.Rect{X: 20, Y: 580, Width: 600, Height: 120}

	// Recently-viewed strip: overflows horizontally, so it scrolls.
	recent := surface.NewNode("UL")
	recent.Rect = surface.Rect{X: 660, Y: 580, Width: 400, Height: 120}
	recent.ScrollWidth = 1200
	recent.ClientWidth = 400
	recent.ScrollHeight = 120
	recent.ClientHeight = 120
	for i := 0; i < 3; i++ {
		entry := surface.NewNode("LI")
		entry.Text = fmt.Sprintf("Recently viewed %d", i+1)
		entry.Rect = surface.Rect{X: float64(660 + i*400), Y: 584, Width: 380, Height: 112}
		recent.Append(entry)
	}

	// Draggable coupon chip.
	coupon := surface.NewNode("BUTTON")
	coupon.Text = "10% OFF"
	coupon.Draggable = true
	coupon.Rect = surface.Rect{X: 1100, Y: 600, Width: 120, Height: 48}

	doc.Root.Append(nav, grid, promo, review, recent, coupon)
	return doc
}

func productCard(i int, name, price string) *surface.Node {
	card := surface.NewNode("DIV")
	card.Rect = surface.Rect{X: float64(20 + i*420), Y: 80, Width: 400, Height: 460}

	img := surface.NewNode("IMG")
	img.SetAttr("alt", name+" photo")
	img.Text = name + " photo"
	img.Rect = surface.Rect{X: card.Rect.X + 10, Y: 90, Width: 380, Height: 280}

	title := surface.NewNode("H3")
	title.Text = name
	title.Rect = surface.Rect{X: card.Rect.X + 10, Y: 380, Width: 380, Height: 28}

	tag := surface.NewNode("SPAN")
	tag.Text = price
	tag.Rect = surface.Rect{X: card.Rect.X + 10, Y: 412, Width: 80, Height: 24}

	buy := surface.NewNode("BUTTON")
	buy.Text = "Add to cart"
	buy.Rect = surface.Rect{X: card.Rect.X + 10, Y: 450, Width: 160, Height: 44}

	// Zero-size wrapper with real children, matching the
	// invisible-wrapper behavior the builder must reject.
	wrapper := surface.NewNode("DIV")
	wrapper.Append(title, tag)

	card.Append(img, wrapper, buy)
	return card
}
