package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rohmanhakim/http-message/internal/config"
	"github.com/rohmanhakim/http-message/internal/metadata"
	"github.com/rohmanhakim/http-message/pkg/hashutil"
	"github.com/spf13/cobra"
)

type rootFlags struct {
	cfgFile  string
	envFile  string
	output   string
	logLevel string
	hashAlgo string
	punycode bool
}

// app carries what every subcommand needs once the root command has
// initialized its configuration.
type app struct {
	cfg     config.Config
	sink    metadata.MetadataSink
	in      io.Reader
	out     io.Writer
	errOut  io.Writer
	environ func() []string
}

type Option func(*app)

// WithSink replaces the zap-backed recorder, mostly for tests.
func WithSink(sink metadata.MetadataSink) Option {
	return func(a *app) {
		a.sink = sink
	}
}

// WithEnviron replaces os.Environ as the source of the env command.
func WithEnviron(environ func() []string) Option {
	return func(a *app) {
		a.environ = environ
	}
}

// NewRootCommand builds the httpmsg command tree reading from in and
// writing results to out and diagnostics to errOut.
func NewRootCommand(in io.Reader, out io.Writer, errOut io.Writer, opts ...Option) *cobra.Command {
	rootCmd, _ := newRootCommand(in, out, errOut, opts...)
	return rootCmd
}

func newRootCommand(in io.Reader, out io.Writer, errOut io.Writer, opts ...Option) (*cobra.Command, *app) {
	flags := &rootFlags{}
	a := &app{
		in:      in,
		out:     out,
		errOut:  errOut,
		environ: os.Environ,
	}
	for _, opt := range opts {
		opt(a)
	}

	rootCmd := &cobra.Command{
		Use:   "httpmsg",
		Short: "Inspect and manipulate URIs and HTTP header blocks.",
		Long: `httpmsg parses, resolves and rewrites URI references following RFC 3986,
and reads raw HTTP header blocks the way a server or CGI gateway hands them over.

Results are printed on stdout as text or JSON; diagnostics go to stderr as
structured log lines.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := initConfig(flags, cmd.Flags().Changed)
			if a.sink == nil {
				level := cfg.LogLevel()
				recorder := metadata.NewRecorder(metadata.NewLogger(level, a.errOut))
				a.sink = &recorder
			}
			if err != nil {
				a.recordError("InitConfig", err)
				return err
			}
			a.cfg = cfg
			return nil
		},
	}
	rootCmd.SetIn(in)
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flags.cfgFile, "config-file", "", "config file path (e.g., /home/myuser/httpmsg.json)")
	pf.StringVar(&flags.envFile, "env-file", "", "dotenv file with HTTPMSG_* settings (defaults to .env when present)")
	pf.StringVarP(&flags.output, "output", "o", "", "result format: text or json")
	pf.StringVar(&flags.logLevel, "log-level", "", "diagnostic log level: debug, info, warn or error")
	pf.StringVar(&flags.hashAlgo, "hash-algo", "", "cache key digest: sha256 or blake3")
	pf.BoolVar(&flags.punycode, "punycode", true, "convert internationalized hosts to ASCII when canonicalizing")

	rootCmd.AddCommand(
		newParseCommand(a),
		newResolveCommand(a),
		newModifyCommand(a),
		newHeadersCommand(a),
		newEnvCommand(a),
		newKeyCommand(a),
		newVersionCommand(a),
	)
	return rootCmd, a
}

// Execute builds the root command on the process streams and runs it.
// This is called by main.main().
func Execute() {
	if err := Run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(ExitCode(err))
	}
}

// Run executes the command tree with args and flushes the metadata sink
// before returning, whether or not the command failed.
func Run(args []string, in io.Reader, out io.Writer, errOut io.Writer, opts ...Option) error {
	rootCmd, a := newRootCommand(in, out, errOut, opts...)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	a.flush()
	return err
}

type syncer interface {
	Sync() error
}

// flush syncs sinks that buffer entries. Sync errors on terminals and pipes
// are not actionable at exit and are dropped.
func (a *app) flush() {
	if s, ok := a.sink.(syncer); ok {
		_ = s.Sync()
	}
}

// initConfig layers the configuration sources: defaults, then the
// config file, then the environment, then flags the user set explicitly.
func initConfig(flags *rootFlags, changed func(name string) bool) (config.Config, error) {
	configBuilder := config.WithDefault()
	if flags.cfgFile != "" {
		fromFile, err := config.WithConfigFile(flags.cfgFile)
		if err != nil {
			return config.Config{}, err
		}
		configBuilder = fromFile
	}

	env, err := config.ReadEnvironment(flags.envFile)
	if err != nil {
		return config.Config{}, err
	}
	configBuilder = configBuilder.WithEnvironment(env)

	// Override with CLI flag values where provided
	if changed("output") {
		configBuilder = configBuilder.WithOutput(config.OutputFormat(flags.output))
	}
	if changed("log-level") {
		configBuilder = configBuilder.WithLogLevel(flags.logLevel)
	}
	if changed("hash-algo") {
		configBuilder = configBuilder.WithHashAlgo(hashutil.HashAlgo(flags.hashAlgo))
	}
	if changed("punycode") {
		configBuilder = configBuilder.WithPunycode(flags.punycode)
	}

	return configBuilder.Build()
}

func (a *app) recordError(action string, err error, attrs ...metadata.Attribute) {
	packageName, cause := classifyError(err)
	a.sink.RecordError(time.Now(), packageName, action, cause, err.Error(), attrs)
}

func (a *app) recordOperation(action string, input string, attrs ...metadata.Attribute) {
	a.sink.RecordOperation(action, input, attrs)
}
