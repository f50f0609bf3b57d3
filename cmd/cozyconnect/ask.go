package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abdulachik/cozyconnect/internal/client"
)

var askServerURL string

var askCmd = &cobra.Command{
	Use:   "ask",
	Short: "Request a question from a running server",
	Long: `Call a running CozyConnect server over HTTP, retrying transient
failures with exponential backoff.`,
	RunE: runAsk,
}

func init() {
	askCmd.Flags().StringVar(&askServerURL, "server", "http://localhost:5000", "base URL of the server")
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	c := client.New(client.Config{BaseURL: askServerURL})

	result, err := c.Generate(context.Background())
	if err != nil {
		var rle *client.RateLimitedError
		if errors.As(err, &rle) {
			return fmt.Errorf("you've hit the request limit; try again in about %d seconds", rle.Reset)
		}
		if errors.Is(err, client.ErrNetworkUnavailable) {
			return fmt.Errorf("could not reach %s; is the server running?", askServerURL)
		}
		return fmt.Errorf("request question: %w", err)
	}

	fmt.Println(result.Question)
	return nil
}
