package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kwren/crossweave/generator"
	"github.com/kwren/crossweave/grid"
)

var (
	wordsFile  string
	outputFile string
	numGrids   int
	latexOut   bool
	obscure    bool
	overrides  []string
)

func init() {
	genCmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate crossword grids from a word list",
		Long: `Generate crossword grids from a newline-separated word list.

Each line is "answer|clue|direction" with clue and direction optional;
direction is A (across) or D (down). Lines starting with # are skipped.

Examples:
  crossweave gen -w words.txt
  crossweave gen -w words.txt -n 3 --set seed=42 --set max-rounds=30
  crossweave gen -w words.txt --latex -o puzzle.tex`,
		RunE: runGen,
	}

	genCmd.Flags().StringVarP(&wordsFile, "words", "w", "", "Word list file (required)")
	genCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (defaults to stdout)")
	genCmd.Flags().IntVarP(&numGrids, "number", "n", 1, "Number of grids to output")
	genCmd.Flags().BoolVar(&latexOut, "latex", false, "Emit cwpuzzle LaTeX instead of plain text")
	genCmd.Flags().BoolVar(&obscure, "obscure", false, "Omit answers from the LaTeX clue list")
	genCmd.Flags().StringArrayVar(&overrides, "set", nil, "Override a setting as key=value (repeatable)")
	_ = genCmd.MarkFlagRequired("words")

	rootCmd.AddCommand(genCmd)
}

// parseOverrides turns repeated key=value flags into the settings map
// the generator consumes.
func parseOverrides(pairs []string) (map[string]int, error) {
	settings := make(map[string]int, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("invalid setting %q (use key=value)", pair)
		}
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return nil, fmt.Errorf("invalid value for setting %q: %w", key, err)
		}
		settings[strings.TrimSpace(key)] = n
	}
	return settings, nil
}

func runGen(cmd *cobra.Command, args []string) error {
	contents, err := os.ReadFile(wordsFile)
	if err != nil {
		return fmt.Errorf("failed to read word list: %w", err)
	}
	settings, err := parseOverrides(overrides)
	if err != nil {
		return err
	}

	gen, err := generator.NewFromWordList(string(contents), settings)
	if err != nil {
		return fmt.Errorf("failed to parse word list: %w", err)
	}
	grids := gen.Generate()
	if len(grids) == 0 {
		return fmt.Errorf("no grids generated")
	}
	if numGrids < len(grids) {
		grids = grids[:numGrids]
	}

	var b strings.Builder
	for i, g := range grids {
		if latexOut {
			printer := grid.Printer{Grid: g, ObscureAnswers: obscure}
			b.WriteString(printer.Print())
		} else {
			if i > 0 {
				b.WriteString("\n")
			}
			b.WriteString(g.Render())
		}
	}

	if outputFile == "" {
		fmt.Print(b.String())
		return nil
	}
	if err := os.WriteFile(outputFile, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
