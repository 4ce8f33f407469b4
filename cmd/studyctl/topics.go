package main

import (
	"bufio"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func init() {
	topicsCmd := &cobra.Command{Use: "topics", Short: "Topic operations"}

	// add
	addCmd := &cobra.Command{
		Use:   "add NAME",
		Short: "Create a topic",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := newClient().R().
				SetBody(map[string]string{"name": args[0]}).
				Post("/api/topics")
			if err != nil {
				return err
			}
			if resp.StatusCode() != http.StatusCreated {
				return fmt.Errorf("http %d: %s", resp.StatusCode(), resp.String())
			}
			fmt.Println(resp.String())
			return nil
		},
	}
	topicsCmd.AddCommand(addCmd)

	// list
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List visible topics with their stats",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := newClient().R().Get("/api/topics")
			if err != nil {
				return err
			}
			if resp.StatusCode() != http.StatusOK {
				return fmt.Errorf("http %d: %s", resp.StatusCode(), resp.String())
			}
			fmt.Println(resp.String())
			return nil
		},
	}
	topicsCmd.AddCommand(listCmd)

	// rm
	var yes bool
	rmCmd := &cobra.Command{
		Use:   "rm TOPIC_ID",
		Short: "Delete a topic and all its logged data",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes && !confirm(fmt.Sprintf("delete topic %s and all its entries and grades?", args[0])) {
				fmt.Println("aborted")
				return nil
			}
			resp, err := newClient().R().Delete("/api/topics/" + args[0])
			if err != nil {
				return err
			}
			if resp.StatusCode() != http.StatusNoContent {
				return fmt.Errorf("http %d: %s", resp.StatusCode(), resp.String())
			}
			return nil
		},
	}
	rmCmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	topicsCmd.AddCommand(rmCmd)

	// stats
	statsCmd := &cobra.Command{
		Use:   "stats TOPIC_ID",
		Short: "Show derived statistics for a topic",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := newClient().R().Get("/api/topics/" + args[0] + "/stats")
			if err != nil {
				return err
			}
			if resp.StatusCode() != http.StatusOK {
				return fmt.Errorf("http %d: %s", resp.StatusCode(), resp.String())
			}
			fmt.Println(resp.String())
			return nil
		},
	}
	topicsCmd.AddCommand(statsCmd)

	// filter
	filterCmd := &cobra.Command{
		Use:   "filter [TOPIC_ID|all]",
		Short: "Show or set the view filter",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := newClient()
			if len(args) == 0 {
				resp, err := c.R().Get("/api/filter")
				if err != nil {
					return err
				}
				fmt.Println(resp.String())
				return nil
			}
			resp, err := c.R().
				SetBody(map[string]string{"topicId": args[0]}).
				Put("/api/filter")
			if err != nil {
				return err
			}
			if resp.StatusCode() != http.StatusNoContent {
				return fmt.Errorf("http %d: %s", resp.StatusCode(), resp.String())
			}
			return nil
		},
	}
	topicsCmd.AddCommand(filterCmd)

	rootCmd.AddCommand(topicsCmd)
}

// confirm is the boundary gate required before destructive operations.
func confirm(prompt string) bool {
	fmt.Printf("%s [y/N]: ", prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
