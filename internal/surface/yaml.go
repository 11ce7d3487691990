package surface

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// pageDoc is the YAML shape of a loadable page definition.
type pageDoc struct {
	Viewport struct {
		Width  float64 `yaml:"width"`
		Height float64 `yaml:"height"`
	} `yaml:"viewport"`
	Body []nodeDoc `yaml:"body"`
}

type nodeDoc struct {
	Tag       string            `yaml:"tag"`
	Text      string            `yaml:"text,omitempty"`
	Attrs     map[string]string `yaml:"attrs,omitempty"`
	Style     Style             `yaml:"style,omitempty"`
	Rect      Rect              `yaml:"rect,omitempty"`
	Scroll    *scrollDoc        `yaml:"scroll,omitempty"`
	Value     string            `yaml:"value,omitempty"`
	Options   []Option          `yaml:"options,omitempty"`
	Draggable bool              `yaml:"draggable,omitempty"`
	Children  []nodeDoc         `yaml:"children,omitempty"`
}

type scrollDoc struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	ClientWidth  float64 `yaml:"clientWidth"`
	ClientHeight float64 `yaml:"clientHeight"`
}

// LoadPage reads a YAML page definition and materializes it as a Document.
func LoadPage(r io.Reader) (*Document, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("surface: reading page: %w", err)
	}
	var pd pageDoc
	if err := yaml.Unmarshal(raw, &pd); err != nil {
		return nil, fmt.Errorf("surface: parsing page: %w", err)
	}

	w, h := pd.Viewport.Width, pd.Viewport.Height
	if w <= 0 {
		w = 1280
	}
	if h <= 0 {
		h = 800
	}
	doc := NewDocument(w, h)
	for i := range pd.Body {
		n, err := buildNode(&pd.Body[i])
		if err != nil {
			return nil, err
		}
		doc.Root.Append(n)
	}
	return doc, nil
}

// LoadPageFile is a convenience wrapper around LoadPage.
func LoadPageFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("surface: opening page file: %w", err)
	}
	defer f.Close()
	return LoadPage(f)
}

func buildNode(nd *nodeDoc) (*Node, error) {
	if nd.Tag == "" {
		return nil, fmt.Errorf("surface: node without tag")
	}
	n := NewNode(nd.Tag)
	n.Text = nd.Text
	for k, v := range nd.Attrs {
		n.SetAttr(k, v)
	}
	n.Style = nd.Style
	n.Rect = nd.Rect
	n.Value = nd.Value
	n.Options = nd.Options
	n.Draggable = nd.Draggable
	if nd.Scroll != nil {
		n.ScrollWidth = nd.Scroll.Width
		n.ScrollHeight = nd.Scroll.Height
		n.ClientWidth = nd.Scroll.ClientWidth
		n.ClientHeight = nd.Scroll.ClientHeight
	}
	for i := range nd.Children {
		c, err := buildNode(&nd.Children[i])
		if err != nil {
			return nil, err
		}
		n.Append(c)
	}
	return n, nil
}
