package main

import (
	"flag"
	"fmt"
	"os"

	vmcp "github.com/jmadsen/voltduel/internal/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func main() {
	config := flag.String("config", "", "path to ruleset YAML file (default ruleset if empty)")
	flag.Parse()

	vmcp.SetConfigFile(*config)

	s := server.NewMCPServer("voltduel", "1.0.0")
	vmcp.RegisterTools(s)

	if err := server.ServeStdio(s); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
