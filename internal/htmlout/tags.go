package htmlout

// TagName restricts Tag construction to the known HTML vocabulary. Each
// marker carries its tag string; arbitrary names are not buildable.
type TagName interface {
	tagName() string
}

// The closed set of buildable tags.
type (
	HTML     struct{}
	Head     struct{}
	Meta     struct{}
	Title    struct{}
	LinkTag  struct{}
	Body     struct{}
	A        struct{}
	P        struct{}
	Div      struct{}
	SpanTag  struct{}
	Pre      struct{}
	Code     struct{}
	H1       struct{}
	H2       struct{}
	H3       struct{}
	H4       struct{}
	H5       struct{}
	H6       struct{}
	Br       struct{}
	Strong   struct{}
	Nav      struct{}
	Main     struct{}
	Article  struct{}
	HeaderEl struct{}
	Footer   struct{}
	Script   struct{}
	SVG      struct{}
	Use      struct{}
)

func (HTML) tagName() string     { return "html" }
func (Head) tagName() string     { return "head" }
func (Meta) tagName() string     { return "meta" }
func (Title) tagName() string    { return "title" }
func (LinkTag) tagName() string  { return "link" }
func (Body) tagName() string     { return "body" }
func (A) tagName() string        { return "a" }
func (P) tagName() string        { return "p" }
func (Div) tagName() string      { return "div" }
func (SpanTag) tagName() string  { return "span" }
func (Pre) tagName() string      { return "pre" }
func (Code) tagName() string     { return "code" }
func (H1) tagName() string       { return "h1" }
func (H2) tagName() string       { return "h2" }
func (H3) tagName() string       { return "h3" }
func (H4) tagName() string       { return "h4" }
func (H5) tagName() string       { return "h5" }
func (H6) tagName() string       { return "h6" }
func (Br) tagName() string       { return "br" }
func (Strong) tagName() string   { return "strong" }
func (Nav) tagName() string      { return "nav" }
func (Main) tagName() string     { return "main" }
func (Article) tagName() string  { return "article" }
func (HeaderEl) tagName() string { return "header" }
func (Footer) tagName() string   { return "footer" }
func (Script) tagName() string   { return "script" }
func (SVG) tagName() string      { return "svg" }
func (Use) tagName() string      { return "use" }
