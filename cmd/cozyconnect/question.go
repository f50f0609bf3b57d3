package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abdulachik/cozyconnect/internal/app"
	"github.com/abdulachik/cozyconnect/internal/config"
)

var questionShowMeta bool

var questionCmd = &cobra.Command{
	Use:   "question",
	Short: "Generate one question locally",
	Long:  `Run the generation pipeline once and print the question.`,
	RunE:  runQuestion,
}

func init() {
	questionCmd.Flags().BoolVar(&questionShowMeta, "metadata", false, "print the selection metadata")
	rootCmd.AddCommand(questionCmd)
}

func runQuestion(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if err := cfg.ValidateForGenerate(); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}

	a, err := app.New(cfg)
	if err != nil {
		return fmt.Errorf("build app: %w", err)
	}

	result, err := a.Generator.Generate(context.Background())
	if err != nil {
		return fmt.Errorf("generate question: %w", err)
	}

	fmt.Println(result.Question)
	if questionShowMeta {
		fmt.Printf("theme: %s (subtheme: %s)\n", result.Metadata.Theme, result.Metadata.Subtheme)
		if result.Metadata.SecondTheme != "" {
			fmt.Printf("combined with: %s\n", result.Metadata.SecondTheme)
		}
		fmt.Printf("perspective: %s\n", result.Metadata.Perspective)
		fmt.Printf("modifier: %s\n", result.Metadata.Modifier)
		if result.Fallback {
			fmt.Println("note: generation failed, this is a fallback question")
		}
	}

	return nil
}
