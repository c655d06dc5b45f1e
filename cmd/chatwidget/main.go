package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"chat-widget/internal/chat"
	"chat-widget/internal/config"
	"chat-widget/internal/console"
	"chat-widget/internal/logging"
	"chat-widget/internal/tui"
)

// options holds the resolved command line flags.
type options struct {
	url     string
	plain   bool
	offline bool
	timeout time.Duration
	logFile string
	verbose bool
}

func newRootCmd(cfg *config.Config) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "chatwidget",
		Short: "Terminal chat client for a /api/chat endpoint",
		Long: `chatwidget sends each message you type to a chat endpoint and shows
the reply. It runs full screen by default; --plain gives a line-mode
console that also works with piped input.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := logging.New(logging.Options{File: opts.logFile, Verbose: opts.verbose})
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return run(ctx, cmd, opts, logger)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.url, "url", cfg.ChatURL, "Chat endpoint URL")
	flags.BoolVar(&opts.plain, "plain", cfg.UI == config.UIPlain, "Use the line-mode console instead of the full-screen UI")
	flags.BoolVar(&opts.offline, "offline", false, "Answer with a canned stub instead of calling the endpoint")
	flags.DurationVar(&opts.timeout, "timeout", cfg.ChatTimeout, "Per-request timeout (0 disables)")
	flags.StringVar(&opts.logFile, "log-file", cfg.LogFile, "Log file path (empty logs to stderr)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", cfg.Verbose, "Enable debug logging")

	return cmd
}

func run(ctx context.Context, cmd *cobra.Command, opts *options, logger *zap.Logger) error {
	var client chat.ChatClient
	if opts.offline {
		client = chat.NewStubChatClient()
	} else {
		client = chat.NewHTTPChatClient(opts.url, opts.timeout)
	}
	logger.Info("chat widget starting",
		zap.String("url", opts.url),
		zap.Bool("plain", opts.plain),
		zap.Bool("offline", opts.offline))

	if opts.plain {
		c, err := console.New(cmd.InOrStdin(), cmd.OutOrStdout(), client, logger)
		if err != nil {
			return err
		}
		return c.Run(ctx)
	}

	if opts.logFile == "" {
		return fmt.Errorf("the full-screen UI needs --log-file; use --plain to log to stderr")
	}
	return tui.Run(ctx, client, logger)
}

func main() {
	if err := newRootCmd(config.Load()).Execute(); err != nil {
		os.Exit(1)
	}
}
