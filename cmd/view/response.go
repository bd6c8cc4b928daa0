package main

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"impractical.co/view"
)

func newJSONCmd() *cobra.Command {
	var headers []string
	cmd := &cobra.Command{
		Use:   "json <status> [body]",
		Short: "Build a JSON API response and print it",
		Example: `  view json 200
  view json 201 '{"id":"123"}' --header Content-Type=application/json`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid status code %q: %w", args[0], err)
			}
			parsedHeaders, err := parseHeaders(headers)
			if err != nil {
				return err
			}
			var body any
			if len(args) > 1 {
				if err := json.Unmarshal([]byte(args[1]), &body); err != nil {
					return fmt.Errorf("body is not valid JSON: %w", err)
				}
			}
			resp, err := view.HTTP(status, body, parsedHeaders)
			if err != nil {
				return err
			}
			return printResponse(cmd.OutOrStdout(), resp)
		},
	}
	cmd.Flags().StringArrayVar(&headers, "header", nil, "Response header as name=value (repeatable)")
	return cmd
}

func newRedirectCmd() *cobra.Command {
	var headers []string
	cmd := &cobra.Command{
		Use:   "redirect <path>",
		Short: "Build a 301 redirect response and print it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parsedHeaders, err := parseHeaders(headers)
			if err != nil {
				return err
			}
			return printResponse(cmd.OutOrStdout(), view.Redirect(args[0], parsedHeaders))
		},
	}
	cmd.Flags().StringArrayVar(&headers, "header", nil, "Response header as name=value (repeatable)")
	return cmd
}
