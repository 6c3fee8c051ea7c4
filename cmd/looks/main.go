package main

import (
	"fmt"
	"os"

	"github.com/Master08s/looks-blog/builder/run"
	"github.com/Master08s/looks-blog/internal/clean"
	"github.com/Master08s/looks-blog/internal/scaffold"
	"github.com/Master08s/looks-blog/internal/server"
)

func main() {
	if len(os.Args) < 2 {
		os.Exit(run.Run(nil))
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "build":
		os.Exit(run.Run(args))
	case "serve":
		os.Exit(server.Run(args))
	case "clean":
		os.Exit(clean.Run(args))
	case "init":
		os.Exit(scaffold.Run(args))
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Printf("Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Usage: looks <command> [arguments]")
	fmt.Println("\nCommands:")
	fmt.Println("  build          Build the blog from GitHub issues (default)")
	fmt.Println("  serve          Build, serve and rebuild on template/asset changes")
	fmt.Println("  clean          Remove the output directory")
	fmt.Println("  init [dir]     Create config.yaml, templates/ and assets/")
	fmt.Println("  help           Show this help message")
	fmt.Println("\nFlags for build, serve and clean:")
	fmt.Println("  -config path   Config file (default config.yaml, then config.json)")
	fmt.Println("  -output dir    Output directory")
	fmt.Println("  -compress      Minify output and downscale large images")
	fmt.Println("  -offline       Build from the built-in sample posts")
	fmt.Println("\nFlags for serve:")
	fmt.Println("  -host addr     Host to bind to (default localhost)")
	fmt.Println("  -port n        Port to listen on (default 2604)")
}
