package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/jmadsen/voltduel/internal/web"
)

func main() {
	port := flag.Int("port", 8080, "HTTP port to listen on")
	config := flag.String("config", "", "path to ruleset YAML file (default ruleset if empty)")
	flag.Parse()

	srv, err := web.NewServer(*config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	addr := fmt.Sprintf(":%d", *port)
	log.Printf("voltduel web UI listening on http://localhost:%d", *port)
	if err := srv.ListenAndServe(addr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
