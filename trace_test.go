package view_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"impractical.co/view"
)

func tracedRenderer(t *testing.T) (*view.Renderer, *tracetest.InMemoryExporter) {
	t.Helper()
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	t.Cleanup(func() {
		_ = tp.Shutdown(context.Background())
	})
	return newRenderer(t, testFS(), view.WithTracerProvider(tp)), exporter
}

func spansNamed(spans tracetest.SpanStubs, name string) tracetest.SpanStubs {
	var res tracetest.SpanStubs
	for _, span := range spans {
		if span.Name == name {
			res = append(res, span)
		}
	}
	return res
}

func attr(attrs []attribute.KeyValue, key string) (attribute.Value, bool) {
	for _, kv := range attrs {
		if string(kv.Key) == key {
			return kv.Value, true
		}
	}
	return attribute.Value{}, false
}

func TestRenderSpans(t *testing.T) {
	t.Parallel()

	r, exporter := tracedRenderer(t)
	_, err := r.Render(context.Background(), "styled", view.Vars{"name": "x"}, nil, view.WithStylesheet(), view.WithScript())
	require.NoError(t, err)

	spans := exporter.GetSpans()
	renders := spansNamed(spans, "view.Render")
	require.Len(t, renders, 1)
	render := renders[0]
	assert.Equal(t, codes.Unset, render.Status.Code)

	name, ok := attr(render.Attributes, "view.name")
	require.True(t, ok)
	assert.Equal(t, "styled", name.AsString())
	status, ok := attr(render.Attributes, "http.response.status_code")
	require.True(t, ok)
	assert.Equal(t, int64(http.StatusOK), status.AsInt64())

	assets := spansNamed(spans, "view.readAsset")
	require.Len(t, assets, 2)
	degraded := map[string]bool{}
	for _, span := range assets {
		assert.Equal(t, render.SpanContext.SpanID(), span.Parent.SpanID())
		kind, ok := attr(span.Attributes, "view.asset.kind")
		require.True(t, ok)
		value, ok := attr(span.Attributes, "view.asset.degraded")
		require.True(t, ok)
		degraded[kind.AsString()] = value.AsBool()
	}
	assert.Equal(t, map[string]bool{"stylesheet": false, "script": true}, degraded)
}

func TestRenderSpanErrors(t *testing.T) {
	t.Parallel()

	t.Run("substitution failure", func(t *testing.T) {
		t.Parallel()

		r, exporter := tracedRenderer(t)
		resp, err := r.Render(context.Background(), "render-variables", nil, nil)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		renders := spansNamed(exporter.GetSpans(), "view.Render")
		require.Len(t, renders, 1)
		assert.Equal(t, codes.Error, renders[0].Status.Code)
		assert.NotEmpty(t, renders[0].Events)
	})

	t.Run("missing template", func(t *testing.T) {
		t.Parallel()

		r, exporter := tracedRenderer(t)
		_, err := r.Render(context.Background(), "nope", nil, nil)
		require.Error(t, err)

		renders := spansNamed(exporter.GetSpans(), "view.Render")
		require.Len(t, renders, 1)
		assert.Equal(t, codes.Error, renders[0].Status.Code)
		assert.Equal(t, "error reading template", renders[0].Status.Description)
	})
}
