package view

// scriptKey is the variable a view's script is injected as.
const scriptKey = "script"

var scriptAsset = asset{
	kind: "script",
	key:  scriptKey,
	path: (*Site).ScriptPath,
}

// WithScript makes the view's JavaScript available to its template as
// {{ script }}, without <script> tags and without escaping.
//
// Like WithStylesheet, a script that can't be read is injected as an empty
// string.
func WithScript() RenderOption {
	return func(o *renderOptions) {
		o.addAsset(scriptAsset)
	}
}
