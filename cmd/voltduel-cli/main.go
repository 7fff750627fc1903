package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	vnet "github.com/jmadsen/voltduel/internal/net"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	switch cmd {
	case "host":
		runHost(os.Args[2:])
	case "join":
		runJoin(os.Args[2:])
	default:
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  voltduel host [--port P] [--config FILE] [--rate HZ]")
	fmt.Println("  voltduel join [--addr ADDR]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  host    Start a match server and play as Player A")
	fmt.Println("  join    Connect to a match server and play as Player B")
}

func runHost(args []string) {
	fs := flag.NewFlagSet("host", flag.ExitOnError)
	port := fs.String("port", "8888", "TCP port to listen on")
	config := fs.String("config", "", "path to ruleset YAML file (default ruleset if empty)")
	rate := fs.Int("rate", vnet.DefaultTickRate, "engine ticks per second")
	fs.Parse(args)

	srv := &vnet.Server{
		ConfigFile: *config,
		Port:       *port,
		TickRate:   *rate,
	}

	if err := srv.Run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runJoin(args []string) {
	fs := flag.NewFlagSet("join", flag.ExitOnError)
	addr := fs.String("addr", "localhost:8888", "server address to connect to")
	fs.Parse(args)

	if err := vnet.Connect(context.Background(), *addr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
