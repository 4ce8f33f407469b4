package main

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"
)

func init() {
	logCmd := &cobra.Command{Use: "log", Short: "Append study time or grades to a topic"}

	// time
	var (
		timeTopic string
		hours     float64
		timeDate  string
		timeNotes string
	)
	timeCmd := &cobra.Command{
		Use:   "time",
		Short: "Log a study session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if timeTopic == "" {
				return fmt.Errorf("--topic required")
			}
			if timeDate == "" {
				timeDate = today()
			}
			resp, err := newClient().R().
				SetBody(map[string]interface{}{
					"hours": hours,
					"date":  timeDate,
					"notes": timeNotes,
				}).
				Post("/api/topics/" + timeTopic + "/time")
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
	timeCmd.Flags().StringVarP(&timeTopic, "topic", "t", "", "Topic ID (required)")
	timeCmd.Flags().Float64VarP(&hours, "hours", "H", 0, "Hours studied (required, positive)")
	timeCmd.Flags().StringVarP(&timeDate, "date", "d", "", "Session date YYYY-MM-DD (defaults to today)")
	timeCmd.Flags().StringVarP(&timeNotes, "notes", "n", "", "Optional notes")
	_ = timeCmd.MarkFlagRequired("hours")
	logCmd.AddCommand(timeCmd)

	// grade
	var (
		gradeTopic string
		value      float64
		gradeDate  string
		gradeNotes string
		gradeType  string
	)
	gradeCmd := &cobra.Command{
		Use:   "grade",
		Short: "Log an assessment result",
		RunE: func(cmd *cobra.Command, args []string) error {
			if gradeTopic == "" {
				return fmt.Errorf("--topic required")
			}
			if gradeDate == "" {
				gradeDate = today()
			}
			resp, err := newClient().R().
				SetBody(map[string]interface{}{
					"value": value,
					"date":  gradeDate,
					"notes": gradeNotes,
					"type":  gradeType,
				}).
				Post("/api/topics/" + gradeTopic + "/grades")
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
	gradeCmd.Flags().StringVarP(&gradeTopic, "topic", "t", "", "Topic ID (required)")
	gradeCmd.Flags().Float64VarP(&value, "value", "v", 0, "Grade value (required)")
	gradeCmd.Flags().StringVarP(&gradeDate, "date", "d", "", "Assessment date YYYY-MM-DD (defaults to today)")
	gradeCmd.Flags().StringVarP(&gradeNotes, "notes", "n", "", "Optional notes")
	gradeCmd.Flags().StringVarP(&gradeType, "type", "T", "", "Optional assignment category")
	_ = gradeCmd.MarkFlagRequired("value")
	logCmd.AddCommand(gradeCmd)

	rootCmd.AddCommand(logCmd)
}
