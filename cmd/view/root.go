package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"impractical.co/view"
)

// rootFlags are the persistent flags shared by every subcommand.
type rootFlags struct {
	configPath string
	baseDir    string
	logLevel   string
	logFormat  string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	cmd := &cobra.Command{
		Use:   "view",
		Short: "Render HTML views and shape HTTP responses",
		Long: `view renders a named template from a templates directory, optionally
injecting the stylesheet and script that share its name, and prints the
resulting response (status, headers, body) as JSON.

Configuration can be provided via flags or a YAML configuration file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "Path to a YAML configuration file")
	cmd.PersistentFlags().StringVar(&flags.baseDir, "base-dir", "", "Directory templates, styles, and scripts are resolved against (overrides the config file)")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&flags.logFormat, "log-format", "text", "Log format (text or json)")

	cmd.AddCommand(
		newRenderCmd(flags),
		newJSONCmd(),
		newRedirectCmd(),
		newServeCmd(flags),
	)
	return cmd
}

func (f *rootFlags) config() (view.Config, error) {
	cfg := view.DefaultConfig()
	if f.configPath != "" {
		loaded, err := view.LoadConfig(f.configPath)
		if err != nil {
			return view.Config{}, err
		}
		cfg = loaded
	}
	if f.baseDir != "" {
		cfg.BaseDir = f.baseDir
	}
	return cfg, nil
}

func (f *rootFlags) renderer() (*view.Renderer, error) {
	cfg, err := f.config()
	if err != nil {
		return nil, err
	}
	return view.New(cfg)
}

func (f *rootFlags) logger(out io.Writer) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(f.logLevel)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", f.logLevel, err)
	}
	opts := &slog.HandlerOptions{Level: level}
	switch strings.ToLower(f.logFormat) {
	case "json":
		return slog.New(slog.NewJSONHandler(out, opts)), nil
	case "text", "":
		return slog.New(slog.NewTextHandler(out, opts)), nil
	default:
		return nil, fmt.Errorf("invalid log format %q", f.logFormat)
	}
}

// parsePairs turns key=value flag values into a map.
func parsePairs(pairs []string) (map[string]string, error) {
	res := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("expected key=value, got %q", pair)
		}
		res[key] = value
	}
	return res, nil
}

func parseHeaders(pairs []string) (view.Header, error) {
	parsed, err := parsePairs(pairs)
	if err != nil {
		return nil, fmt.Errorf("invalid header: %w", err)
	}
	return view.Header(parsed), nil
}

func printResponse(out io.Writer, resp *view.Response) error {
	data, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding response: %w", err)
	}
	_, err = fmt.Fprintln(out, string(data))
	return err
}
