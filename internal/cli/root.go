package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"gitlab.ozon.dev/pupkingeorgij/checkout/handler"
	"gitlab.ozon.dev/pupkingeorgij/checkout/internal/checkout"
	"gitlab.ozon.dev/pupkingeorgij/checkout/internal/config"
	"gitlab.ozon.dev/pupkingeorgij/checkout/internal/logger"
	"gitlab.ozon.dev/pupkingeorgij/checkout/internal/storage"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	LedgerPath string
	EnvFile    string
}

// NewRootCommand creates the root command. Without a subcommand it starts the
// interactive prompt.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "checkout",
		Short: "Supermarket checkout counters",
		Long: `Route customers to three checkout counters by basket size, serve them
and keep a ledger of every customer seen.

The ledger is loaded on start. The interactive prompt writes it back on exit
or end of input.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(opts, cmd.OutOrStdout(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer s.close()

			return s.handler.Serve(cmd.InOrStdin())
		},
	}

	cmd.PersistentFlags().StringVar(&opts.LedgerPath, "ledger", "", "path to the ledger file (overrides CHECKOUT_LEDGER_PATH)")
	cmd.PersistentFlags().StringVar(&opts.EnvFile, "env", "", "dotenv file to load instead of searching for .env")

	cmd.AddCommand(NewProcessCommand(opts))
	cmd.AddCommand(NewDisplayCommand(opts))

	return cmd
}

// session is one command run: configuration, the loaded ledger and the engine
// holding its customers.
type session struct {
	cfg     config.Config
	logger  *zap.Logger
	ledger  *storage.Ledger
	engine  *checkout.Engine
	handler *handler.Handler
}

func newSession(opts *RootOptions, out, errOut io.Writer) (*session, error) {
	var envFiles []string
	if opts.EnvFile != "" {
		envFiles = append(envFiles, opts.EnvFile)
	}

	cfg, err := config.Load(envFiles...)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if opts.LedgerPath != "" {
		cfg.LedgerPath = opts.LedgerPath
	}

	thresholds := checkout.Thresholds{
		Counter1: cfg.Counter1MaxItems,
		Counter2: cfg.Counter2MaxItems,
		Counter3: cfg.Counter3MaxItems,
	}
	if err := thresholds.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	log := logger.New(errOut, cfg.LogLevel)
	log.Debug("configuration loaded",
		zap.String("ledger", cfg.LedgerPath),
		zap.String("env_file", cfg.EnvFile),
		zap.Ints("thresholds", []int{thresholds.Counter1, thresholds.Counter2, thresholds.Counter3}),
		zap.Bool("reject_duplicate_ids", cfg.RejectDuplicateIDs),
	)

	s := &session{
		cfg:    cfg,
		logger: log,
		ledger: storage.NewLedger(cfg.LedgerPath, log),
		engine: checkout.NewEngine(thresholds, cfg.RejectDuplicateIDs, log),
	}
	s.handler = handler.New(s.engine, s.ledger, out, log)

	customers, err := s.ledger.Load()
	s.handler.ReportLoadErrors(err)
	s.handler.ReportLoadErrors(s.engine.Load(customers))

	return s, nil
}

func (s *session) close() {
	_ = s.logger.Sync()
}
