// Package view renders HTML views and shapes HTTP responses for handlers
// that return a response value instead of writing to a connection.
//
// A view is a name shared by up to three files in a Site: a template, an
// optional stylesheet, and an optional script. The template is plain HTML
// with {{ name }} placeholders. Render fills each placeholder from the Vars
// it's given, HTML-escaping every value first, and can inject the view's
// stylesheet and script unescaped as {{ styles }} and {{ script }}.
//
// Every Response carries a baseline set of security headers. Headers passed
// by the caller override the baseline key by key; they never append.
//
// Render fails in two different ways. A template that can't be read is an
// error, and no Response is produced. A placeholder with no matching
// variable is not: Render returns a Response with a 400 status and a
// best-effort body. A missing stylesheet or script isn't a failure at all;
// it is injected as an empty string.
//
// HTTP and Redirect build JSON and redirect Responses with the same baseline
// headers. Response.Write sends any Response to an http.ResponseWriter.
//
// Render logs to the *slog.Logger attached with LoggingContext, if any, and
// records OpenTelemetry spans for each render and each asset it reads.
package view
