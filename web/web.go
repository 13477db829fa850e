// Package web serves the embedded browser UI.
//
// The page itself lives at "/" while scripts and styles are addressed
// under /static/, so the auth middleware can keep assets public with a
// single prefix rule.
package web

import (
	"embed"
	"net/http"
)

//go:embed static
var assets embed.FS

// Handler returns the UI handler: index.html at the root, everything
// else resolved against the embedded static tree.
func Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/static/", http.FileServer(http.FS(assets)))
	mux.HandleFunc("/", servePage)
	return mux
}

func servePage(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" && r.URL.Path != "/index.html" {
		http.NotFound(w, r)
		return
	}

	page, err := assets.ReadFile("static/index.html")
	if err != nil {
		http.Error(w, "UI assets missing", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(page)
}
