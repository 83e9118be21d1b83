package main

import (
	"fmt"
	"os"

	"github.com/tylorle/twin/internal/config"
	"github.com/tylorle/twin/internal/db"
	"github.com/tylorle/twin/internal/engine"
	"github.com/tylorle/twin/internal/llm"
	"github.com/tylorle/twin/internal/mcp"
	"github.com/tylorle/twin/internal/profile"
	"github.com/tylorle/twin/internal/vector"
)

// Version is set via -ldflags at build time.
var Version = "dev"

// cliCommands contains known CLI subcommands.
var cliCommands = map[string]bool{
	"ask": true, "chat": true, "search": true, "serve": true,
	"queries": true, "history": true,
	"help": true,
}

// isCLIMode determines if we should run CLI vs MCP server.
func isCLIMode() bool {
	if len(os.Args) < 2 {
		return false // No args → MCP server
	}
	arg := os.Args[1]
	// Known subcommand → CLI
	if cliCommands[arg] {
		return true
	}
	// --help or --version → CLI
	if arg == "--help" || arg == "-h" || arg == "--version" || arg == "-v" {
		return true
	}
	return false // Default → MCP server
}

// isHelpOrVersion returns true if the user is requesting help or version info.
func isHelpOrVersion() bool {
	if len(os.Args) < 2 {
		return false
	}
	arg := os.Args[1]
	return arg == "--help" || arg == "-h" || arg == "--version" || arg == "-v" || arg == "help"
}

// isTerminal returns true if stdin is a terminal (not piped).
func isTerminal() bool {
	stat, _ := os.Stdin.Stat()
	return (stat.Mode() & os.ModeCharDevice) != 0
}

// printBanner displays a friendly banner when run interactively without args.
func printBanner() {
	fmt.Println(`
   _            _
  | |___      _(_)_ __
  | __\ \ /\ / / | '_ \
  | |_ \ V  V /| | | | |
   \__| \_/\_/ |_|_| |_|

  Digital twin for recruiter questions

  Usage: twin <command> [options]
         twin --help

  MCP server mode requires piped input.`)
}

// buildEngine assembles the answering engine from config and environment
// credentials. Missing providers degrade the engine rather than failing.
func buildEngine(cfg *config.Config) *engine.Engine {
	creds := config.LoadEnv()

	var search engine.SearchProvider
	if creds.HasVector() {
		search = vector.NewClient(vector.Config{
			URL:   creds.VectorURL,
			Token: creds.VectorToken,
		})
	}

	var gen engine.Generator
	if creds.HasGenerator() {
		model := cfg.Model
		if creds.GroqModel != "" {
			model = creds.GroqModel
		}
		client, err := llm.NewClient(llm.Config{
			APIKey: creds.GroqKey,
			Model:  model,
		})
		if err == nil {
			gen = client
			cfg.Model = client.Model()
		}
	}

	path := profile.Resolve(cfg.ProfilePath)
	prof, err := profile.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v (answers will be unavailable)\n", err)
	}

	eng := engine.New(search, gen, prof)
	eng.Tune(cfg.TopK, cfg.ContextMaxChars)
	return eng
}

func main() {
	// No args + interactive terminal → show banner and exit
	if len(os.Args) < 2 && isTerminal() {
		printBanner()
		return
	}

	// Handle --help/--version before DB init (no DB needed)
	if isHelpOrVersion() {
		app := newCLIApp(nil, nil, nil)
		if err := app.Run(os.Args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	baseDir, err := config.BaseDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: could not determine base directory: %v\n", err)
		os.Exit(1)
	}

	database, err := db.Init(baseDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to initialize database: %v\n", err)
		os.Exit(1)
	}
	defer database.Close()

	cfg, err := config.Load(baseDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to load config: %v\n", err)
		os.Exit(1)
	}
	db.ConfigurePool(database, cfg)

	eng := buildEngine(cfg)

	// CLI mode: known subcommand
	if isCLIMode() {
		app := newCLIApp(database, cfg, eng)
		if err := app.Run(os.Args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// Unknown argument + terminal → show error (don't start MCP server)
	if len(os.Args) >= 2 && isTerminal() {
		fmt.Fprintf(os.Stderr, "error: unknown command %q\n", os.Args[1])
		fmt.Fprintf(os.Stderr, "Run 'twin --help' for usage.\n")
		os.Exit(1)
	}

	// MCP server mode (default)
	if err := mcp.Run(eng, database, cfg, Version); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
