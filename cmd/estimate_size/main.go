package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"github.com/td0m/checklist/pkg/persist"
	"github.com/td0m/checklist/pkg/task"
)

var (
	years    int
	perDay   int
	store    string
	redisURL string
)

var cmd = &cobra.Command{
	Use:   "estimate_size",
	Short: "Measure how long saving and loading a large task list takes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		total := 365 * perDay * years
		dir, err := os.MkdirTemp("", "checklist")
		if err != nil {
			return err
		}
		defer os.RemoveAll(dir)

		p, file, err := open(dir)
		if err != nil {
			return err
		}
		if c, ok := p.(io.Closer); ok {
			defer c.Close()
		}

		ids := task.NewIDGen()
		categories := task.DefaultCategories
		tasks := make([]task.Task, total)
		for i := range tasks {
			tasks[i] = task.Task{
				ID:          ids.Next(),
				Description: "task number " + strconv.Itoa(i),
				Category:    categories[i%len(categories)],
				Completed:   i%3 == 0,
			}
		}

		writeTime := measureTime(func() {
			check(p.Save(tasks))
		})
		readTime := measureTime(func() {
			_, err := p.Load()
			check(err)
		})

		fmt.Printf("Tasks: %d years, %d per day (%d total)\n", years, perDay, total)
		if file != "" {
			info, err := os.Stat(file)
			if err != nil {
				return err
			}
			fmt.Printf("File size: %dMB\n", info.Size()/1024/1024)
		}
		fmt.Printf("Write time: %dms\n", writeTime.Milliseconds())
		fmt.Printf("Read time: %dms\n", readTime.Milliseconds())
		return nil
	},
}

// open returns the backend to measure and the file it writes to, if any
func open(dir string) (task.Persistor, string, error) {
	switch store {
	case "sqlite":
		file := filepath.Join(dir, "tasks.db")
		p, err := persist.OpenSQLite(file, "tasks")
		if err != nil {
			return nil, "", err
		}
		p.Timeout = time.Minute
		return p, file, nil
	case "redis":
		p, err := persist.DialRedis(redisURL, "checklist:estimate")
		if err != nil {
			return nil, "", err
		}
		p.Timeout = time.Minute
		return p, "", nil
	default:
		file := filepath.Join(dir, "tasks.json")
		return persist.InJSON(file), file, nil
	}
}

func main() {
	cmd.Flags().IntVar(&years, "years", 10, "years of tasks")
	cmd.Flags().IntVar(&perDay, "per-day", 30, "tasks created per day")
	cmd.Flags().StringVar(&store, "store", "file", "backend to measure: file, sqlite or redis")
	cmd.Flags().StringVar(&redisURL, "redis-url", "redis://localhost:6379/0", "redis server for the redis backend")
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func check(err error) {
	if err != nil {
		panic(err)
	}
}

func measureTime(fn func()) time.Duration {
	start := time.Now()
	fn()
	return time.Since(start)
}
