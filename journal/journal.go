package journal

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/bomcompare/bomgen/common"
	"github.com/google/uuid"
)

// Append only run journal: one line per generate or compare run, kept
// under the bomgen home directory. Lines are tab separated so the file
// stays greppable.

const journalName = "bomgen.journal"

var spacePattern = regexp.MustCompile(`\s+`)

type Event struct {
	When    int64
	RunID   string
	Event   string
	Detail  string
	Comment string
}

func journalPath() string {
	return filepath.Join(common.Home(), journalName)
}

// Unify collapses all whitespace runs in a value to single spaces, so
// free form text cannot break the line format.
func Unify(value string) string {
	return strings.TrimSpace(spacePattern.ReplaceAllString(value, " "))
}

// Post appends one event to the journal. Failures are reported to the
// caller but a missing journal never blocks the actual run.
func Post(event, detail, commentForm string, fields ...interface{}) error {
	comment := fmt.Sprintf(commentForm, fields...)
	line := fmt.Sprintf("%d\t%s\t%s\t%s\t%s\n",
		time.Now().Unix(),
		uuid.NewString(),
		Unify(event),
		Unify(detail),
		Unify(comment))
	handle, err := os.OpenFile(journalPath(), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("cannot open journal: %w", err)
	}
	defer handle.Close()
	if _, err := handle.WriteString(line); err != nil {
		return fmt.Errorf("cannot append to journal: %w", err)
	}
	common.Trace("Journal: %s %s", event, detail)
	return nil
}

// Events reads the whole journal back, oldest first. Broken lines are
// skipped.
func Events() ([]Event, error) {
	content, err := os.ReadFile(journalPath())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("cannot read journal: %w", err)
	}
	var result []Event
	for _, line := range strings.Split(string(content), "\n") {
		parts := strings.Split(line, "\t")
		if len(parts) != 5 {
			continue
		}
		when, err := strconv.ParseInt(parts[0], 10, 64)
		if err != nil {
			continue
		}
		result = append(result, Event{
			When:    when,
			RunID:   parts[1],
			Event:   parts[2],
			Detail:  parts[3],
			Comment: parts[4],
		})
	}
	return result, nil
}
