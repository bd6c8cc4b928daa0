package view

import (
	"context"
	"io/fs"
	"os"
	"path"
)

// Site is the filesystem layout a Renderer reads from. A view's template,
// stylesheet, and script all share the view's name:
//
//	<TemplatesDir>/<view>.html
//	<StylesDir>/<view>.css
//	<ScriptsDir>/<view>.js
//
// Files are read on every call; nothing is cached.
type Site struct {
	files        fs.FS
	templatesDir string
	stylesDir    string
	scriptsDir   string
}

// WithFS makes the Renderer read from fsys instead of the Config's BaseDir.
// The Config's directories are resolved inside fsys.
func WithFS(fsys fs.FS) Option {
	return func(o *options) {
		o.fsys = fsys
	}
}

func newSite(cfg Config, fsys fs.FS) *Site {
	if fsys == nil {
		base := cfg.BaseDir
		if base == "" {
			base = "."
		}
		fsys = os.DirFS(base)
	}
	return &Site{
		files:        fsys,
		templatesDir: cfg.TemplatesDir,
		stylesDir:    cfg.StylesDir,
		scriptsDir:   cfg.ScriptsDir,
	}
}

// Files returns the fs.FS the Site reads from.
func (s *Site) Files() fs.FS {
	return s.files
}

// TemplatePath returns the path of the template for view within Files.
func (s *Site) TemplatePath(view string) string {
	return path.Join(s.templatesDir, view+".html")
}

// StylesheetPath returns the path of the stylesheet for view within Files.
func (s *Site) StylesheetPath(view string) string {
	return path.Join(s.stylesDir, view+".css")
}

// ScriptPath returns the path of the script for view within Files.
func (s *Site) ScriptPath(view string) string {
	return path.Join(s.scriptsDir, view+".js")
}

func (s *Site) read(_ context.Context, name string) (string, error) {
	contents, err := fs.ReadFile(s.files, name)
	if err != nil {
		return "", err
	}
	return string(contents), nil
}
