package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yanqian/faqbot/internal/domain/faq"
	"github.com/yanqian/faqbot/internal/interface/terminal"
)

func newRootCmd() *cobra.Command {
	var (
		configPath string
		dataPath   string
	)
	root := &cobra.Command{
		Use:          "faqbot",
		Short:        "School FAQ assistant",
		SilenceUsage: true,
		Long: `faqbot answers frequently asked questions about the school from a
fixed knowledge base, either as an interactive chat, a one-shot query or an
HTTP API.`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if configPath != "" {
				if err := os.Setenv("CONFIG_PATH", configPath); err != nil {
					return err
				}
			}
			if dataPath != "" {
				if err := os.Setenv("FAQ_DATA_PATH", dataPath); err != nil {
					return err
				}
			}
			return nil
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "Path to a YAML config file (overrides CONFIG_PATH)")
	root.PersistentFlags().StringVar(&dataPath, "data", "", "Path to the FAQ data file (overrides FAQ_DATA_PATH)")

	root.AddCommand(newServeCmd(), newChatCmd(), newAskCmd(), newCategoriesCmd())
	return root
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the FAQ HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, cleanup, err := initializeServer(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to wire application: %w", err)
			}
			defer cleanup()
			return app.Run(cmd.Context())
		},
	}
}

func newChatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Start an interactive chat session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			quietLogs()
			a, cleanup, err := initializeAssistant(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			opts := terminal.Options{
				Theme:     themeFor(a, out),
				Available: !a.set.Empty(),
				Texts: terminal.Texts{
					UserLabel: a.cfg.Terminal.UserLabel,
					BotLabel:  a.cfg.Terminal.BotLabel,
				},
			}
			return terminal.NewSession(a.svc, opts, cmd.InOrStdin(), out, a.logger).Run(cmd.Context())
		},
	}
}

func newAskCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "ask <question>",
		Short: "Answer a single question and exit",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			quietLogs()
			a, cleanup, err := initializeAssistant(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			resp, err := a.svc.Reply(cmd.Context(), faq.Request{Query: strings.Join(args, " ")})
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(resp)
			}
			_, err = fmt.Fprintln(out, resp.Reply)
			return err
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the full match as JSON")
	return cmd
}

func newCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the knowledge base categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			quietLogs()
			a, cleanup, err := initializeAssistant(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			categories, err := a.svc.Categories(cmd.Context())
			if err != nil {
				return err
			}
			header := a.cfg.FAQ.Messages.CategoriesHeader
			if header == "" {
				header = faq.DefaultCategoriesHeader
			}
			out := cmd.OutOrStdout()
			_, err = fmt.Fprint(out, terminal.RenderCategories(themeFor(a, out), header, categories))
			return err
		},
	}
}

func themeFor(a *assistant, out io.Writer) terminal.Theme {
	f, _ := out.(*os.File)
	color := terminal.ColorEnabled(a.cfg.Terminal.Color, f)
	return terminal.NewTheme(a.cfg.Terminal.Theme, terminal.NewRenderer(out, color))
}

// quietLogs keeps info logs out of interactive output unless LOG_LEVEL is set.
func quietLogs() {
	if _, ok := os.LookupEnv("LOG_LEVEL"); !ok {
		_ = os.Setenv("LOG_LEVEL", "warn")
	}
}
