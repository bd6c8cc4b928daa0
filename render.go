package view

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var (
	// ErrEmptyView is returned when Render is called without a view name.
	ErrEmptyView = errors.New("view name must not be empty")

	// ErrInvalidView is returned when a view name isn't a valid, unrooted,
	// slash-separated path, e.g. because it contains "..".
	ErrInvalidView = errors.New("invalid view name")
)

// Vars are the values a template's placeholders are filled from. Every value
// is converted to a string and HTML-escaped before it is substituted.
type Vars map[string]any

// Renderer renders views to Responses. A Renderer must be created with New;
// its empty value is not usable. It holds no mutable state, so it can safely
// be used by multiple goroutines.
type Renderer struct {
	site     *Site
	subst    *substituter
	baseline Header
	tracer   trace.Tracer
}

// New returns a Renderer configured by cfg and opts.
func New(cfg Config, opts ...Option) (*Renderer, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	delims := cfg.Delimiters
	if o.delims != nil {
		delims = *o.delims
	}
	subst, err := newSubstituter(delims)
	if err != nil {
		return nil, fmt.Errorf("error creating renderer: %w", err)
	}
	return &Renderer{
		site:  newSite(cfg, o.fsys),
		subst: subst,
		baseline: mergeHeaders(
			Header{headerContentType: mimeTextHTML},
			securityHeaders(cfg.StrictTransportSecurity),
			cfg.Headers,
		),
		tracer: newTracer(o.tracerProvider),
	}, nil
}

// Site returns the filesystem layout the Renderer reads views from.
func (r *Renderer) Site() *Site {
	return r.site
}

// RenderOption requests optional behavior from a single Render call.
type RenderOption func(*renderOptions)

type renderOptions struct {
	assets []asset
}

func (o *renderOptions) addAsset(a asset) {
	for _, existing := range o.assets {
		if existing.key == a.key {
			return
		}
	}
	o.assets = append(o.assets, a)
}

func (o *renderOptions) has(a asset) bool {
	for _, existing := range o.assets {
		if existing.key == a.key {
			return true
		}
	}
	return false
}

// asset is an optional file injected into a view's template, named after
// the view.
type asset struct {
	kind string
	key  string
	path func(*Site, string) string
}

// Render reads the template for view, fills its placeholders from vars, and
// returns the result as a Response with a 200 status. The Response's headers
// are the baseline headers with headers merged over them, key by key.
//
// If a placeholder refers to a variable that isn't in vars, Render still
// returns a Response, with a 400 status and a best-effort body in which the
// unresolved placeholders are empty. That body is not guaranteed to be
// well-formed HTML.
//
// If the template itself can't be read, Render returns an error and no
// Response.
func (r *Renderer) Render(ctx context.Context, view string, vars Vars, headers Header, opts ...RenderOption) (*Response, error) {
	var ro renderOptions
	for _, opt := range opts {
		opt(&ro)
	}

	ctx, span := r.tracer.Start(ctx, spanRender, trace.WithAttributes(
		attribute.String(attrViewName, view),
		attribute.Bool(attrStylesheet, ro.has(stylesheetAsset)),
		attribute.Bool(attrScript, ro.has(scriptAsset)),
	))
	defer span.End()

	log := logger(ctx).With("view", view)

	if view == "" {
		failSpan(span, ErrEmptyView, "no view")
		return nil, ErrEmptyView
	}
	if !fs.ValidPath(view) {
		err := fmt.Errorf("%w: %q", ErrInvalidView, view)
		failSpan(span, err, "invalid view")
		return nil, err
	}

	tmplPath := r.site.TemplatePath(view)
	text, err := r.site.read(ctx, tmplPath)
	if err != nil {
		log.ErrorContext(ctx, "error reading template", "path", tmplPath, "error", err)
		failSpan(span, err, "error reading template")
		return nil, fmt.Errorf("error reading template %q for view %q: %w", tmplPath, view, err)
	}

	values := escapeVars(vars)
	for _, a := range ro.assets {
		values[a.key] = r.readAsset(ctx, a, view)
	}

	resp := &Response{
		StatusCode: http.StatusOK,
		Headers:    mergeHeaders(r.baseline, headers),
	}
	body, err := r.subst.execute(text, values)
	if err != nil {
		log.WarnContext(ctx, "error substituting template variables", "path", tmplPath, "error", err)
		failSpan(span, err, "error substituting template variables")
		resp.StatusCode = http.StatusBadRequest
	}
	resp.Body = &body
	span.SetAttributes(attribute.Int(attrStatusCode, resp.StatusCode))
	return resp, nil
}

// readAsset returns the contents of the view's asset, or an empty string if
// it can't be read.
func (r *Renderer) readAsset(ctx context.Context, a asset, view string) string {
	assetPath := a.path(r.site, view)
	ctx, span := r.tracer.Start(ctx, spanReadAsset, trace.WithAttributes(
		attribute.String(attrAssetKind, a.kind),
		attribute.String(attrAssetPath, assetPath),
	))
	defer span.End()

	contents, err := r.site.read(ctx, assetPath)
	if err != nil {
		logger(ctx).DebugContext(ctx, "asset unavailable, injecting empty value",
			"view", view, "kind", a.kind, "path", assetPath, "error", err)
		span.RecordError(err)
		span.SetAttributes(attribute.Bool(attrDegraded, true))
		return ""
	}
	span.SetAttributes(attribute.Bool(attrDegraded, false))
	return contents
}
