// Command rootfind-server runs the demonstration HTTP API: POST an
// expression and a method to /solve, watch the iteration trace on /stream,
// download the table from /export.
package main

import (
	"flag"
	"log"
	"net/http"

	"github.com/katalvlaran/rootfind/internal/server"
)

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	flag.Parse()

	s := server.New()
	log.Printf("rootfind-server listening on %s", *addr)
	log.Fatal(http.ListenAndServe(*addr, s.Router()))
}
