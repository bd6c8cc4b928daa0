package view

// stylesKey is the variable a view's stylesheet is injected as.
const stylesKey = "styles"

var stylesheetAsset = asset{
	kind: "stylesheet",
	key:  stylesKey,
	path: (*Site).StylesheetPath,
}

// WithStylesheet makes the view's stylesheet available to its template as
// {{ styles }}. The CSS is injected as-is, without escaping.
//
// A stylesheet that can't be read is injected as an empty string; it never
// fails the render.
func WithStylesheet() RenderOption {
	return func(o *renderOptions) {
		o.addAsset(stylesheetAsset)
	}
}
