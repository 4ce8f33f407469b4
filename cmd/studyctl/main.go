package main

import (
	"fmt"
	"os"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/spf13/cobra"
)

var (
	apiFlag string
	rootCmd = &cobra.Command{
		Use:   "studyctl",
		Short: "CLI client for the studykeep REST API",
	}
)

// newClient builds the resty client all subcommands share.
func newClient() *resty.Client {
	return resty.New().
		SetBaseURL(apiFlag).
		SetHeader("Content-Type", "application/json").
		SetTimeout(10 * time.Second)
}

// today returns the default date for the logging forms.
func today() string { return time.Now().Format("2006-01-02") }

func main() {
	rootCmd.PersistentFlags().StringVarP(&apiFlag, "api", "a", "http://localhost:8080", "studykeep service base URL")

	// quote subcommand
	quoteCmd := &cobra.Command{
		Use:   "quote",
		Short: "Print the quote of the day, when one was fetched",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := newClient().R().Get("/api/quote")
			if err != nil {
				return err
			}
			if resp.StatusCode() == 204 {
				fmt.Println("no quote available this session")
				return nil
			}
			fmt.Println(string(resp.Body()))
			return nil
		},
	}
	rootCmd.AddCommand(quoteCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
