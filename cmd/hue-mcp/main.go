package main

import (
	"fmt"
	"log"
	"os"

	"github.com/hueforge/hue-wheel-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("hue-wheel-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("hue-wheel-mcp - MCP server for hue-wheel color segmentation")
			fmt.Println()
			fmt.Println("Usage: hue-mcp [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Println("  HUE_MCP_LOG_LEVEL=debug      Enable debug logging")
			fmt.Println("  HUE_MCP_COLOR_API=<url>      Base URL of a remote color-naming API.")
			fmt.Println("                               Unset: use the built-in offline oracle.")
			fmt.Println("  HUE_MCP_HTTP_TIMEOUT=<dur>   Timeout per naming API request (default 10s)")
			fmt.Println()
			fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
			fmt.Println("Configure it in your MCP client (e.g., Claude Desktop).")
			return
		}
	}

	// Configure logging to stderr (stdout is for MCP protocol)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	logLevel := os.Getenv("HUE_MCP_LOG_LEVEL")
	if logLevel == "debug" {
		log.Printf("Hue Wheel MCP Server v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	srv := server.New()
	if err := srv.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
