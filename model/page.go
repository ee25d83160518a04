package model

// PageText holds the plain text extracted from a single page. Content may
// be empty for image-only or blank pages; an empty page still occupies its
// index in the document and participates in alignment.
type PageText struct {
	Index   int    // 0-based page index within its document
	Content string // extracted plain text, possibly empty
}

// Word is a single extracted word together with the bounding box locating
// it on its page, in the document's native units (typically points).
type Word struct {
	Text string
	Box  Rect
}

// Dimensions holds the native width and height of a page.
type Dimensions struct {
	Width, Height float64
}

// Page is the extracted content of one page of a document: its plain
// text, its word list with bounding boxes, and its native dimensions.
// Word extraction can be deferred; a page with Text set and Words nil
// still aligns, it just produces no word-level highlights.
type Page struct {
	Text   string
	Words  []Word
	Width  float64
	Height float64
}

// Size returns the page's native dimensions.
func (p *Page) Size() Dimensions {
	return Dimensions{Width: p.Width, Height: p.Height}
}

// Document is the extracted content of one paginated document, as handed
// to the comparison pipeline by a document parser. The comparison core
// never opens files itself; it consumes only this in-memory form.
type Document struct {
	Pages []*Page
}

// NewDocument creates a new empty document.
func NewDocument() *Document {
	return &Document{Pages: make([]*Page, 0)}
}

// AddPage appends a page to the document.
func (d *Document) AddPage(page *Page) {
	d.Pages = append(d.Pages, page)
}

// PageCount returns the total number of pages.
func (d *Document) PageCount() int {
	return len(d.Pages)
}

// PageTexts returns the per-page text sequence in page order, the form
// consumed by the page aligner.
func (d *Document) PageTexts() []PageText {
	texts := make([]PageText, len(d.Pages))
	for i, p := range d.Pages {
		texts[i] = PageText{Index: i, Content: p.Text}
	}
	return texts
}
