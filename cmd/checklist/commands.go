package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/td0m/checklist/internal/ui"
	"github.com/td0m/checklist/pkg/task"
)

var ErrUnknownCategory = errors.New("unknown category")

var category string

var addCmd = &cobra.Command{
	Use:   "add <description>",
	Short: "Add a task",
	Example: `  checklist add Buy milk -c "Shopping List"
  checklist add "Pay rent" --category Finances`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := findCategory(category)
		if err != nil {
			return err
		}
		id, err := list.Add(strings.Join(args, " "), c)
		if err != nil {
			return fmt.Errorf("failed to add task: %w", err)
		}
		if err := list.Err(); err != nil {
			return fmt.Errorf("failed to save task %d: %w", id, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Added %d\n", id)
		return nil
	},
}

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "Print every task",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s := ui.Summarize(list, time.Now(), cfg.Locale)
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, s.Date)
		fmt.Fprintln(out, s.Counts())
		fmt.Fprint(out, ui.RenderList(s, ui.ListOptions{Cursor: -1, IDs: true}))
		return nil
	},
}

var doneCmd = &cobra.Command{
	Use:   "done <id>",
	Short: "Mark a task as done, or as not done if it already is",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withID(cmd, args[0], list.Toggle)
	},
}

var rmCmd = &cobra.Command{
	Use:     "rm <id>",
	Aliases: []string{"delete"},
	Short:   "Delete a task",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withID(cmd, args[0], list.Remove)
	},
}

func init() {
	addCmd.Flags().StringVarP(&category, "category", "c", "", "category of the task")
}

// withID runs fn on the parsed id. An id that matches nothing is not an error.
func withID(cmd *cobra.Command, arg string, fn func(task.ID) bool) error {
	n, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid id %q", arg)
	}
	if !fn(task.ID(n)) {
		fmt.Fprintf(cmd.OutOrStdout(), "No task with id %d\n", n)
		return nil
	}
	if err := list.Err(); err != nil {
		return fmt.Errorf("failed to save tasks: %w", err)
	}
	return nil
}

// findCategory matches name against the configured set, ignoring case
func findCategory(name string) (task.Category, error) {
	if name == "" {
		return task.NoCategory, nil
	}
	for _, c := range cfg.Categories {
		if strings.EqualFold(string(c), name) {
			return c, nil
		}
	}
	return task.NoCategory, fmt.Errorf("%w %q", ErrUnknownCategory, name)
}
