package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// loadDotEnv loads environment variables from path. Missing files are ignored.
func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// readDescription joins the non-flag arguments into the component
// description, falling back to reading stdin when no arguments were
// given. An empty description is an error.
func readDescription(args []string, stdin io.Reader) (string, error) {
	description := strings.Join(args, " ")

	if description == "" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read description from stdin: %w", err)
		}
		description = strings.TrimSpace(string(data))
	}

	if description == "" {
		return "", errors.New("no component description given")
	}

	return description, nil
}
