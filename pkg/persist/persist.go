package persist

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/td0m/checklist/pkg/task"
)

var _ task.Persistor = &JSON{}

// JSON keeps the slot in a single file
type JSON struct {
	file string
}

func InJSON(file string) *JSON {
	return &JSON{file}
}

// Save overwrites the file with the given tasks
func (j JSON) Save(ts []task.Task) error {
	bs, err := Encode(ts)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(j.file), 0700); err != nil {
		return err
	}
	// the file is replaced in one rename
	tmp := j.file + ".tmp"
	if err := os.WriteFile(tmp, bs, 0600); err != nil {
		return err
	}
	return os.Rename(tmp, j.file)
}

// Load reads the tasks in the file
func (j JSON) Load() ([]task.Task, error) {
	bs, err := os.ReadFile(j.file)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", j.file, task.ErrNoData)
	}
	if err != nil {
		return nil, err
	}
	return Decode(bs)
}

func (j JSON) String() string {
	return "file:" + j.file
}
