package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/td0m/checklist/internal/config"
	"github.com/td0m/checklist/internal/logging"
	"github.com/td0m/checklist/internal/ui"
	"github.com/td0m/checklist/pkg/task"
)

var (
	flags struct {
		store   string
		file    string
		key     string
		locale  string
		verbose bool
	}

	cfg     *config.Config
	log     *logrus.Entry
	list    *task.List
	closers []io.Closer
)

var rootCmd = &cobra.Command{
	Use:   "checklist",
	Short: "A tiny task list for the terminal",
	Long: `checklist keeps a list of short tasks, each tagged with a category.

Without a subcommand it opens the interactive list:
  j/k      move
  space    mark done / not done
  enter    delete (asks first)
  +        add a task
  q        quit`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI()
	},
}

// Execute runs the command tree and exits with status 1 on error
func Execute() {
	err := rootCmd.Execute()
	closeAll()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flags.store, "store", "", "where tasks are kept: file, sqlite or redis")
	rootCmd.PersistentFlags().StringVarP(&flags.file, "file", "f", "", "path to the task file (file store)")
	rootCmd.PersistentFlags().StringVar(&flags.key, "key", "", "name of the slot holding the tasks")
	rootCmd.PersistentFlags().StringVar(&flags.locale, "locale", "", "date format: en or pt-BR")
	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "debug logging")

	rootCmd.AddCommand(addCmd, listCmd, doneCmd, rmCmd)
}

// setup loads the configuration, the logger and the task list shared by every command
func setup(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load()
	if err != nil {
		return err
	}
	f := cmd.Flags()
	if f.Changed("store") {
		cfg.Store = flags.store
	}
	if f.Changed("file") {
		cfg.File = flags.file
	}
	if f.Changed("key") {
		cfg.Key = flags.key
	}
	if f.Changed("locale") {
		cfg.Locale = ui.Locale(flags.locale)
	}
	if flags.verbose {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	var closer io.Closer
	log, closer, err = logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	closers = append(closers, closer)
	log = log.WithField("command", cmd.CommandPath())

	p, err := openStore(cfg)
	if err != nil {
		log.WithError(err).Error("could not open store")
		return err
	}
	if c, ok := p.(io.Closer); ok {
		closers = append(closers, c)
	}
	log.WithField("store", fmt.Sprint(p)).Debug("store opened")

	list = task.Open(p, task.WithLogger(log))
	return nil
}

func closeAll() {
	// the log goes last
	for i := len(closers) - 1; i >= 0; i-- {
		closers[i].Close()
	}
	closers = nil
}
