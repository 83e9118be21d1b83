package main

import (
	"bufio"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/tylorle/twin/internal/config"
	"github.com/tylorle/twin/internal/db"
	"github.com/tylorle/twin/internal/engine"
	"github.com/tylorle/twin/internal/errors"
	"github.com/tylorle/twin/internal/profile"
	"github.com/tylorle/twin/internal/web"
)

// newCLIApp creates the CLI application with all commands.
func newCLIApp(database *sql.DB, cfg *config.Config, eng *engine.Engine) *cli.App {
	app := &cli.App{
		Name:    "twin",
		Usage:   "Digital twin for recruiter questions",
		Version: Version,
		Commands: []*cli.Command{
			askCmd(database, cfg, eng),
			chatCmd(database, cfg, eng),
			searchCmd(eng),
			serveCmd(database, cfg, eng),
			queriesCmd(),
			historyCmd(database),
		},
	}
	// Disable default exit error handler to allow proper error return in tests
	app.ExitErrHandler = func(_ *cli.Context, _ error) {}
	return app
}

// askCmd creates the ask command.
func askCmd(database *sql.DB, cfg *config.Config, eng *engine.Engine) *cli.Command {
	return &cli.Command{
		Name:      "ask",
		Usage:     "Ask a single question (from arguments or stdin)",
		ArgsUsage: "[question]",
		Action: func(c *cli.Context) error {
			question := strings.Join(c.Args().Slice(), " ")
			if strings.TrimSpace(question) == "" && stdinHasData() {
				text, err := readStdin()
				if err != nil {
					return outputError(errors.NewInternal(err))
				}
				question = text
			}
			if strings.TrimSpace(question) == "" {
				return outputError(errors.NewInvalidRequest("question is required"))
			}

			start := time.Now()
			text, mode := eng.Ask(c.Context, question)
			recordTranscript(database, cfg, question, text, mode, time.Since(start))

			return outputJSON(map[string]any{
				"question": question,
				"answer":   text,
				"mode":     string(mode),
			})
		},
	}
}

// chatCmd creates the chat command, an interactive question loop.
func chatCmd(database *sql.DB, cfg *config.Config, eng *engine.Engine) *cli.Command {
	return &cli.Command{
		Name:  "chat",
		Usage: "Interactive question loop (exit with 'quit' or Ctrl-D)",
		Action: func(c *cli.Context) error {
			if p := eng.Profile(); p != nil {
				fmt.Printf("Chatting with %s. Type 'quit' to exit.\n", p.CanonicalName("the twin"))
			} else {
				fmt.Println("No profile loaded; answers will be unavailable. Type 'quit' to exit.")
			}

			scanner := bufio.NewScanner(os.Stdin)
			for {
				fmt.Print("you> ")
				if !scanner.Scan() {
					fmt.Println()
					return scanner.Err()
				}
				question := strings.TrimSpace(scanner.Text())
				if question == "" {
					continue
				}
				if question == "quit" || question == "exit" {
					return nil
				}

				start := time.Now()
				text, mode := eng.Ask(c.Context, question)
				recordTranscript(database, cfg, question, text, mode, time.Since(start))
				fmt.Printf("\n%s\n\n", text)
			}
		},
	}
}

// searchCmd creates the search command.
func searchCmd(eng *engine.Engine) *cli.Command {
	return &cli.Command{
		Name:      "search",
		Usage:     "Semantic search over profile chunks",
		ArgsUsage: "<query>",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "top-k", Aliases: []string{"k"}, Value: 8, Usage: "Maximum results"},
			&cli.StringFlag{Name: "category", Usage: "Filter by exact chunk category"},
			&cli.StringFlag{Name: "tag", Usage: "Filter by tag membership"},
		},
		Action: func(c *cli.Context) error {
			query := strings.Join(c.Args().Slice(), " ")
			if strings.TrimSpace(query) == "" {
				return outputError(errors.NewInvalidRequest("query is required"))
			}

			results := eng.Search(c.Context, query, c.Int("top-k"), c.String("category"), c.String("tag"))
			if results == nil {
				results = []engine.Result{}
			}
			return outputJSON(map[string]any{"results": results})
		},
	}
}

// serveCmd creates the serve command.
func serveCmd(database *sql.DB, cfg *config.Config, eng *engine.Engine) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the web UI and JSON API",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "bind", Aliases: []string{"b"}, Value: "127.0.0.1", Usage: "Bind address"},
			&cli.IntFlag{Name: "port", Aliases: []string{"p"}, Value: 8000, Usage: "Listen port"},
		},
		Action: func(c *cli.Context) error {
			srv := web.NewServer(eng, database, cfg, Version, c.String("bind"), c.Int("port"))
			return web.Run(srv)
		},
	}
}

// queriesCmd creates the queries command.
func queriesCmd() *cli.Command {
	return &cli.Command{
		Name:  "queries",
		Usage: "Print the sample query catalog",
		Action: func(c *cli.Context) error {
			return outputJSON(map[string]any{"queries": profile.QueryCatalog})
		},
	}
}

// historyCmd creates the history command.
func historyCmd(database *sql.DB) *cli.Command {
	return &cli.Command{
		Name:  "history",
		Usage: "List recently answered questions, newest first",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "limit", Aliases: []string{"l"}, Value: 20, Usage: "Maximum items to return"},
			&cli.IntFlag{Name: "offset", Aliases: []string{"o"}, Value: 0, Usage: "Items to skip"},
		},
		Action: func(c *cli.Context) error {
			transcripts, err := db.ListTranscripts(database, c.Int("limit"), c.Int("offset"))
			if err != nil {
				return outputError(err)
			}
			if transcripts == nil {
				transcripts = []*db.Transcript{}
			}
			return outputJSON(map[string]any{"transcripts": transcripts})
		},
	}
}

// Helper functions

// recordTranscript stores an answered question, best-effort.
func recordTranscript(database *sql.DB, cfg *config.Config, question, answer string, mode engine.Mode, elapsed time.Duration) {
	if database == nil {
		return
	}
	source := "cli"
	t := &db.Transcript{
		Question:   question,
		Answer:     answer,
		Mode:       string(mode),
		Source:     &source,
		DurationMS: elapsed.Milliseconds(),
	}
	if cfg != nil && cfg.Model != "" {
		model := cfg.Model
		t.Model = &model
	}
	_ = db.InsertTranscript(database, t)
}

// outputJSON marshals result to stdout as JSON.
func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// outputError formats error for CLI.
func outputError(err error) error {
	if twinErr, ok := err.(*errors.TwinError); ok {
		return cli.Exit(fmt.Sprintf("[%s] %s", twinErr.Code, twinErr.Message), 1)
	}
	return cli.Exit(err.Error(), 1)
}

// stdinHasData returns true if stdin has piped data (not a terminal).
func stdinHasData() bool {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) == 0
}

// readStdin reads all content from stdin.
func readStdin() (string, error) {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}
