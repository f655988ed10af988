package wayroute

import (
	"io"
)

// Outlet is the render target of the active component. Whatever the matched
// component writes here is the outcome of the navigation.
type Outlet interface {
	io.Writer
	io.StringWriter
	Body() []byte
	SetBody([]byte)
	Title() string
	SetTitle(string)
	Attr(string) string
	SetAttr(key string, value string)
}

// Attr is a named annotation on the rendered outcome (document metadata,
// render hints for the host).
type Attr struct {
	Key   string
	Value string
}

// outlet is the render target used in the given context.
type outlet struct {
	body  []byte
	attrs []Attr
	title string
}

// Body returns the rendered content.
func (out *outlet) Body() []byte {
	return out.body
}

// SetBody replaces the rendered content.
func (out *outlet) SetBody(body []byte) {
	out.body = body
}

// Title returns the document title set by the component.
func (out *outlet) Title() string {
	return out.title
}

// SetTitle sets the document title.
func (out *outlet) SetTitle(title string) {
	out.title = title
}

// Attr returns the attribute value for the given key.
func (out *outlet) Attr(key string) string {
	for _, attr := range out.attrs {
		if attr.Key == key {
			return attr.Value
		}
	}

	return ""
}

// SetAttr sets the attribute value for the given key.
func (out *outlet) SetAttr(key string, value string) {
	for i, attr := range out.attrs {
		if attr.Key == key {
			out.attrs[i].Value = value
			return
		}
	}

	out.attrs = append(out.attrs, Attr{Key: key, Value: value})
}

// Write implements the io.Writer interface.
func (out *outlet) Write(body []byte) (int, error) {
	out.body = append(out.body, body...)
	return len(body), nil
}

// WriteString implements the io.StringWriter interface.
func (out *outlet) WriteString(body string) (int, error) {
	out.body = append(out.body, body...)
	return len(body), nil
}

// reset clears the outlet for reuse.
func (out *outlet) reset() {
	out.body = out.body[:0]
	out.attrs = out.attrs[:0]
	out.title = ""
}
