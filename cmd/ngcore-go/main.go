package main

import (
	"fmt"
	"os"
)

func usage() {
	fmt.Println(`ngcore-go - metadata inspector
Usage: ngcore-go <command> [args]

Commands:
  inspect <path>   Scan TypeScript sources and print merged base definitions
  help             Show help`)
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}
	cmd := os.Args[1]
	switch cmd {
	case "help":
		usage()
	case "inspect":
		path := "."
		if len(os.Args) >= 3 {
			path = os.Args[2]
		}
		if err := inspect(path); err != nil {
			fmt.Fprintf(os.Stderr, "inspect error: %v\n", err)
			os.Exit(1)
		}
	default:
		usage()
		os.Exit(1)
	}
}
