package view

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "impractical.co/view"

const (
	spanRender    = "view.Render"
	spanReadAsset = "view.readAsset"

	attrViewName   = "view.name"
	attrStylesheet = "view.stylesheet"
	attrScript     = "view.script"
	attrAssetKind  = "view.asset.kind"
	attrAssetPath  = "view.asset.path"
	attrDegraded   = "view.asset.degraded"
	attrStatusCode = "http.response.status_code"
)

func newTracer(tp trace.TracerProvider) trace.Tracer {
	if tp == nil {
		tp = otel.GetTracerProvider()
	}
	return tp.Tracer(tracerName)
}

// failSpan records err on span and marks it as failed.
func failSpan(span trace.Span, err error, description string) {
	span.RecordError(err)
	span.SetStatus(codes.Error, description)
}
