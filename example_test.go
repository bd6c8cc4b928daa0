package view_test

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"testing/fstest"

	"impractical.co/view"
)

func ExampleRenderer_Render() {
	// normally you'd leave the Config's BaseDir pointing at a directory on
	// disk; for example purposes, we're just hardcoding the files
	files := fstest.MapFS{
		"templates/home.html": {Data: []byte(`<!doctype html>
<html lang="en">
	<head>
		<style>{{ styles }}</style>
	</head>
	<body>
		<h1>Hello, {{ name }}.</h1>
	</body>
</html>`)},
		"styles/home.css": {Data: []byte("h1 > span { color: red; }")},
	}

	renderer, err := view.New(view.DefaultConfig(), view.WithFS(files))
	if err != nil {
		panic(err)
	}

	// usually the context comes from the request, but here we're building it from scratch and adding a logger
	ctx := view.LoggingContext(context.Background(), slog.New(slog.NewTextHandler(os.Stderr, nil)))

	resp, err := renderer.Render(ctx, "home", view.Vars{"name": "<Visitor>"}, view.Header{"Set-Cookie": "visited=1"}, view.WithStylesheet())
	if err != nil {
		panic(err)
	}
	fmt.Println(resp.StatusCode)
	fmt.Println(resp.Headers["Content-Type"])
	fmt.Println(resp.Headers["Set-Cookie"])
	fmt.Println(resp.BodyString())

	//Output:
	// 200
	// text/html
	// visited=1
	// <!doctype html>
	// <html lang="en">
	// 	<head>
	// 		<style>h1 > span { color: red; }</style>
	// 	</head>
	// 	<body>
	// 		<h1>Hello, &lt;Visitor&gt;.</h1>
	// 	</body>
	// </html>
}

func ExampleRenderer_Render_missingVariable() {
	files := fstest.MapFS{
		"templates/home.html": {Data: []byte(`<h1>Hello, {{ name }}.</h1>`)},
	}

	renderer, err := view.New(view.DefaultConfig(), view.WithFS(files))
	if err != nil {
		panic(err)
	}

	resp, err := renderer.Render(context.Background(), "home", nil, nil)
	if err != nil {
		panic(err)
	}
	fmt.Println(resp.StatusCode)
	fmt.Println(resp.BodyString())

	//Output:
	// 400
	// <h1>Hello, .</h1>
}

func ExampleHTTP() {
	resp, err := view.HTTP(200, map[string]string{"success": "Hello"}, view.Header{"Content-Type": "application/json"})
	if err != nil {
		panic(err)
	}
	fmt.Println(resp.StatusCode)
	fmt.Println(resp.Headers["Content-Type"])
	fmt.Println(resp.BodyString())

	//Output:
	// 200
	// application/json
	// {"success":"Hello"}
}

func ExampleRedirect() {
	resp := view.Redirect("./mypage", view.Header{"Set-Cookie": "mycookie=123"})
	fmt.Println(resp.StatusCode)
	fmt.Println(resp.Headers["Location"])
	fmt.Println(resp.Headers["Set-Cookie"])
	fmt.Println(resp.Body == nil)

	//Output:
	// 301
	// ./mypage
	// mycookie=123
	// true
}
