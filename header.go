package view

import "maps"

// Header is a set of HTTP response headers, keyed by header name. Unlike
// http.Header it holds a single value per name, and names are used exactly as
// given; merging is last-write-wins per key.
type Header map[string]string

const (
	headerContentType             = "Content-Type"
	headerStrictTransportSecurity = "Strict-Transport-Security"
	headerContentSecurityPolicy   = "Content-Security-Policy"
	headerFrameOptions            = "X-Frame-Options"
	headerContentTypeOptions      = "X-Content-Type-Options"
	headerReferrerPolicy          = "Referrer-Policy"
	headerCacheControl            = "Cache-Control"
	headerClearSiteData           = "Clear-Site-Data"
	headerLocation                = "Location"

	mimeTextHTML = "text/html"

	// DefaultStrictTransportSecurity is the Strict-Transport-Security
	// value used when a Config doesn't set one.
	DefaultStrictTransportSecurity = "max-age=63072000; includeSubDomains; preload"
)

// SecurityHeaders returns the baseline security headers that every Response
// carries unless a caller overrides them. Content-Type is not part of the
// set; Render adds its own.
func SecurityHeaders() Header {
	return securityHeaders(DefaultStrictTransportSecurity)
}

func securityHeaders(hsts string) Header {
	if hsts == "" {
		hsts = DefaultStrictTransportSecurity
	}
	return Header{
		headerStrictTransportSecurity: hsts,
		headerContentSecurityPolicy:   `default-src "self"`,
		headerFrameOptions:            "deny",
		headerContentTypeOptions:      "nosniff",
		headerReferrerPolicy:          "origin-when-cross-origin",
		headerCacheControl:            "no-store",
		headerClearSiteData:           "*",
	}
}

// mergeHeaders flattens any number of Headers into a new one, with later
// Headers overriding earlier ones that have the same keys.
func mergeHeaders(layers ...Header) Header {
	res := Header{}
	for _, layer := range layers {
		maps.Copy(res, layer)
	}
	return res
}
