package main

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"log"
	"net/http"

	"github.com/rjld-da/Game-SimpleSnake/internal/config"
)

const (
	defaultHost = "0.0.0.0"
	defaultPort = "8080"
)

//go:embed index.html
var indexHTML string

// pageData fills the landing page template.
type pageData struct {
	SSHHost    string
	MaxTargets int
}

func main() {
	host := config.GetEnv("WEB_HOST", defaultHost)
	port := config.GetEnv("WEB_PORT", defaultPort)

	data := pageData{
		SSHHost:    config.GetEnv("SSH_DISPLAY_HOST", "your-server.com"),
		MaxTargets: config.GameConfig().MaxTargets,
	}

	tmpl, err := template.New("index").Parse(indexHTML)
	if err != nil {
		log.Fatalf("bad page template: %v", err)
	}

	// The page content is fixed per process, so render it once.
	var page bytes.Buffer
	if err := tmpl.Execute(&page, data); err != nil {
		log.Fatalf("render page: %v", err)
	}

	http.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(page.Bytes())
	})

	addr := fmt.Sprintf("%s:%s", host, port)
	log.Printf("Starting web server on http://%s", addr)
	if err := http.ListenAndServe(addr, nil); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
