package main

import (
	"github.com/spf13/cobra"

	"impractical.co/view"
)

func newRenderCmd(root *rootFlags) *cobra.Command {
	var (
		vars       []string
		headers    []string
		stylesheet bool
		script     bool
	)
	cmd := &cobra.Command{
		Use:   "render <view>",
		Short: "Render a view and print the response as JSON",
		Example: `  view render home --var name=Jane
  view render home --stylesheet --script --header Set-Cookie=visited=1`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := root.logger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			renderer, err := root.renderer()
			if err != nil {
				return err
			}
			parsedVars, err := parsePairs(vars)
			if err != nil {
				return err
			}
			parsedHeaders, err := parseHeaders(headers)
			if err != nil {
				return err
			}

			values := make(view.Vars, len(parsedVars))
			for k, v := range parsedVars {
				values[k] = v
			}
			var opts []view.RenderOption
			if stylesheet {
				opts = append(opts, view.WithStylesheet())
			}
			if script {
				opts = append(opts, view.WithScript())
			}

			ctx := view.LoggingContext(cmd.Context(), log)
			resp, err := renderer.Render(ctx, args[0], values, parsedHeaders, opts...)
			if err != nil {
				return err
			}
			return printResponse(cmd.OutOrStdout(), resp)
		},
	}
	cmd.Flags().StringArrayVar(&vars, "var", nil, "Template variable as key=value (repeatable)")
	cmd.Flags().StringArrayVar(&headers, "header", nil, "Response header as name=value (repeatable)")
	cmd.Flags().BoolVar(&stylesheet, "stylesheet", false, "Inject the view's stylesheet as {{ styles }}")
	cmd.Flags().BoolVar(&script, "script", false, "Inject the view's script as {{ script }}")
	return cmd
}
