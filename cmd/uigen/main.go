// Uigen generates UI component source from a natural-language
// description. It loads a YAML configuration describing a single
// text-generation backend, sends the description in one chat call, and
// prints the returned source unchanged.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/uigenlab/uigen/pkg/uigen"
)

func main() {
	// Handle subcommands before flag parsing.
	if len(os.Args) > 1 && os.Args[1] == "init" {
		initCmd := flag.NewFlagSet("init", flag.ExitOnError)
		initCmd.Usage = func() {
			fmt.Fprintf(os.Stderr, "Usage: uigen init [flags]\n\nCreate a uigen.yaml interactively.\n\nFlags:\n")
			initCmd.PrintDefaults()
		}
		cfgPath := initCmd.String("config", "uigen.yaml", "path to write the configuration file")
		_ = initCmd.Parse(os.Args[2:])

		if err := runInit(*cfgPath); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}

		return
	}

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: uigen [flags] <description...>\n       uigen <command> [flags]\n\nFlags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nCommands:\n  init    Create a uigen.yaml interactively\n\nWith no description arguments the description is read from stdin.\n")
	}

	configPath := flag.String("config", "uigen.yaml", "path to configuration file")
	envFile := flag.String("env", ".env", "path to .env file (ignored if missing)")
	outPath := flag.String("o", "", "write the generated source to a file instead of stdout")
	modelName := flag.String("model", "", "override the configured model")
	flag.Parse()

	if err := loadDotEnv(*envFile); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, *configPath, *modelName, *outPath, flag.Args()); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, configPath, modelName, outPath string, args []string) error {
	cfg, err := uigen.LoadConfig(configPath)
	if err != nil {
		return err
	}

	if modelName != "" {
		cfg.Model = modelName
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	g, err := uigen.New(cfg.Options())
	if err != nil {
		return err
	}

	description, err := readDescription(args, os.Stdin)
	if err != nil {
		return err
	}

	source, err := g.GenerateText(ctx, description)
	if err != nil {
		return err
	}

	if outPath != "" {
		return os.WriteFile(outPath, []byte(source), 0o644) //nolint:gosec // generated source, not a secret
	}

	if _, err := os.Stdout.WriteString(source); err != nil {
		return err
	}
	if !strings.HasSuffix(source, "\n") {
		fmt.Println()
	}

	return nil
}
