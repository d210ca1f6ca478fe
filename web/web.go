// Package web bundles the HTML templates and static assets of the estimator UI.
package web

import "embed"

// FS holds templates/*.html and static/*.
//
//go:embed templates/*.html static/*
var FS embed.FS
