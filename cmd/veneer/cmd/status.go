package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/mod/modfile"

	"github.com/go-veneer/veneer/pkg/app"
)

func init() {
	RegisterCommand(&Command{
		Name:  "status",
		Short: "Show project configuration",
		Long: `Show the resolved configuration of the Veneer project.

Displays the module path from go.mod and the window settings from
veneer.yaml, with defaults filled in where the file is silent.`,
		Usage: "veneer status",
		Run:   runStatus,
	})
}

func runStatus(args []string) error {
	root, err := findProjectRoot()
	if err != nil {
		return err
	}

	modulePath, err := readModulePath(root)
	if err != nil {
		return err
	}

	cfg, err := app.LoadOptional(root)
	if err != nil {
		return err
	}

	title := cfg.Window.Title
	if title == "" {
		title = app.DefaultTitle
	}
	size := "toolkit default"
	if cfg.Window.Width > 0 && cfg.Window.Height > 0 {
		size = fmt.Sprintf("%dx%d", cfg.Window.Width, cfg.Window.Height)
	}

	fmt.Printf("Project: %s\n", filepath.Base(root))
	fmt.Printf("Module:  %s\n", modulePath)
	fmt.Println()
	fmt.Println("Window:")
	fmt.Printf("  title:   %s\n", title)
	fmt.Printf("  size:    %s\n", size)
	fmt.Printf("  verbose: %v\n", cfg.Verbose)

	return nil
}

// findProjectRoot walks up from the current directory to find go.mod.
func findProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("not in a Go module (no go.mod found)")
		}
		dir = parent
	}
}

func readModulePath(dir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		return "", fmt.Errorf("failed to read go.mod: %w", err)
	}
	path := modfile.ModulePath(data)
	if path == "" {
		return "", fmt.Errorf("could not determine module path from go.mod")
	}
	return path, nil
}
