package persist

import (
	"encoding/json"
	"fmt"

	"github.com/td0m/checklist/pkg/task"
)

// record is how a task looks inside the slot
type record struct {
	ID          int64  `json:"id"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Completed   bool   `json:"completed"`
}

// UnmarshalJSON also accepts "task" as the description key, which is what the
// browser version of the widget wrote.
func (r *record) UnmarshalJSON(bs []byte) error {
	type alias record
	var out struct {
		alias
		Task *string `json:"task"`
	}
	if err := json.Unmarshal(bs, &out); err != nil {
		return err
	}
	*r = record(out.alias)
	if r.Description == "" && out.Task != nil {
		r.Description = *out.Task
	}
	return nil
}

// Encode serializes a whole collection
func Encode(ts []task.Task) ([]byte, error) {
	rs := make([]record, len(ts))
	for i, t := range ts {
		rs[i] = record{
			ID:          int64(t.ID),
			Description: t.Description,
			Category:    string(t.Category),
			Completed:   t.Completed,
		}
	}
	return json.Marshal(rs)
}

// Decode parses a snapshot written by Encode. An empty slot gives task.ErrNoData.
func Decode(bs []byte) ([]task.Task, error) {
	if len(bs) == 0 {
		return nil, task.ErrNoData
	}
	var rs []record
	if err := json.Unmarshal(bs, &rs); err != nil {
		return nil, fmt.Errorf("decode tasks: %w", err)
	}
	ts := make([]task.Task, len(rs))
	for i, r := range rs {
		ts[i] = task.Task{
			ID:          task.ID(r.ID),
			Description: r.Description,
			Category:    task.Category(r.Category),
			Completed:   r.Completed,
		}
	}
	return ts, nil
}
