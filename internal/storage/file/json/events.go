package json

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/drakos74/free-boost/internal/storage"
)

const (
	eventsFile = "%s.events.log"
)

// EventLog appends json encoded events to one log file per key.
type EventLog struct {
	path  string
	mutex *sync.Mutex
}

// NewEventLog creates an event log under <path>/<table>.
func NewEventLog(path, table string) *EventLog {
	return &EventLog{
		path:  filepath.Join(path, table),
		mutex: new(sync.Mutex),
	}
}

func (l *EventLog) fileName(k storage.Key) string {
	return filepath.Join(l.path, k.Run, fmt.Sprintf(eventsFile, k.Label))
}

// Append writes the value as a new line at the end of the log of the key.
func (l *EventLog) Append(k storage.Key, value interface{}) error {
	b, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("could not encode value '%+v': %w", value, err)
	}

	l.mutex.Lock()
	defer l.mutex.Unlock()

	fileName := l.fileName(k)
	if err := os.MkdirAll(filepath.Dir(fileName), os.ModePerm); err != nil {
		return fmt.Errorf("could not make dir for '%s': %w", fileName, err)
	}
	f, err := os.OpenFile(fileName, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0600)
	if err != nil {
		return fmt.Errorf("could not open log file: %w", err)
	}
	defer f.Close()

	if _, err = f.Write(append(b, '\n')); err != nil {
		return fmt.Errorf("could not write log file for '%+v': %w", k, err)
	}
	return nil
}

// ReadEvents decodes all events logged under the key in the order they were appended.
func ReadEvents[T any](l *EventLog, k storage.Key) ([]T, error) {
	fileName := l.fileName(k)
	b, err := os.ReadFile(fileName)
	if err != nil {
		return nil, fmt.Errorf("could not read file '%s' %s: %w", fileName, err.Error(), storage.NotFoundErr)
	}

	events := make([]T, 0)
	scanner := bufio.NewScanner(bytes.NewReader(b))
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var event T
		if err := json.Unmarshal(line, &event); err != nil {
			return nil, fmt.Errorf("could not decode event '%s': %v: %w", line, err, storage.CouldNotLoadErr)
		}
		events = append(events, event)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("could not scan '%s': %w", fileName, err)
	}
	return events, nil
}
