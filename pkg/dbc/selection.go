package dbc

import (
	"os"

	"github.com/cockroachdb/errors"
	"go.einride.tech/can/pkg/descriptor"
	"gopkg.in/yaml.v3"
)

// ErrSchemaMismatch is returned when a selection names messages or
// signals that the schema does not declare, or names them twice.
var ErrSchemaMismatch = errors.New("selection does not match schema")

// Selection narrows a schema down to the messages and signals that code
// generation (or a conversion run) should cover. The zero value selects
// every non-multiplexed message with all of its signals.
type Selection struct {
	// Package overrides the Go package name derived from the DBC file name.
	Package string `yaml:"package,omitempty"`
	// Messages lists the selected messages. Empty means all.
	Messages []MessageSelection `yaml:"messages,omitempty"`
}

// MessageSelection selects one message by schema name.
type MessageSelection struct {
	Name string `yaml:"name"`
	// Signals restricts the selection to the named signals. Empty means
	// every signal of the message.
	Signals []string `yaml:"signals,omitempty"`
}

// LoadSelection reads and parses a selection file.
func LoadSelection(path string) (*Selection, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read selection file")
	}
	sel, err := ParseSelection(buf)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse selection file %s", path)
	}
	return sel, nil
}

// ParseSelection parses YAML selection data and validates it.
func ParseSelection(data []byte) (*Selection, error) {
	sel := &Selection{}
	if err := yaml.Unmarshal(data, sel); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal selection")
	}
	if err := sel.validate(); err != nil {
		return nil, err
	}
	return sel, nil
}

func (s *Selection) validate() error {
	seenMessages := make(map[string]struct{}, len(s.Messages))
	for _, m := range s.Messages {
		if m.Name == "" {
			return errors.Wrap(ErrSchemaMismatch, "selection contains a message with no name")
		}
		if _, ok := seenMessages[m.Name]; ok {
			return errors.Wrapf(ErrSchemaMismatch, "message %s selected twice", m.Name)
		}
		seenMessages[m.Name] = struct{}{}
		seenSignals := make(map[string]struct{}, len(m.Signals))
		for _, sig := range m.Signals {
			if sig == "" {
				return errors.Wrapf(ErrSchemaMismatch, "message %s selects a signal with no name", m.Name)
			}
			if _, ok := seenSignals[sig]; ok {
				return errors.Wrapf(ErrSchemaMismatch, "signal %s selected twice in message %s", sig, m.Name)
			}
			seenSignals[sig] = struct{}{}
		}
	}
	return nil
}

// SelectedMessage is one message of a resolved selection together with
// the signals the selection kept, in schema (start bit) order.
type SelectedMessage struct {
	Message *descriptor.Message
	Signals []*descriptor.Signal
}

// ResolveSelection matches a selection against a compiled schema. A nil
// or empty selection resolves to every message that carries no
// multiplexing, with all of its signals. Explicitly named messages are
// resolved as named: a name the schema does not declare is an
// ErrSchemaMismatch, never a silent skip.
func ResolveSelection(db *descriptor.Database, sel *Selection) ([]*SelectedMessage, error) {
	if sel == nil || len(sel.Messages) == 0 {
		resolved := make([]*SelectedMessage, 0, len(db.Messages))
		for _, m := range db.Messages {
			if isMultiplexed(m) {
				continue
			}
			resolved = append(resolved, &SelectedMessage{Message: m, Signals: m.Signals})
		}
		return resolved, nil
	}
	resolved := make([]*SelectedMessage, 0, len(sel.Messages))
	for _, ms := range sel.Messages {
		msg := messageByName(db, ms.Name)
		if msg == nil {
			return nil, errors.Wrapf(ErrSchemaMismatch, "message %s is not declared in %s", ms.Name, db.SourceFile)
		}
		sm := &SelectedMessage{Message: msg}
		if len(ms.Signals) == 0 {
			sm.Signals = msg.Signals
		} else {
			wanted := make(map[string]struct{}, len(ms.Signals))
			for _, name := range ms.Signals {
				if _, ok := db.Signal(msg.ID, name); !ok {
					return nil, errors.Wrapf(ErrSchemaMismatch, "signal %s is not declared in message %s", name, ms.Name)
				}
				wanted[name] = struct{}{}
			}
			for _, sig := range msg.Signals {
				if _, ok := wanted[sig.Name]; ok {
					sm.Signals = append(sm.Signals, sig)
				}
			}
		}
		resolved = append(resolved, sm)
	}
	return resolved, nil
}

func messageByName(db *descriptor.Database, name string) *descriptor.Message {
	for _, m := range db.Messages {
		if m.Name == name {
			return m
		}
	}
	return nil
}

func isMultiplexed(m *descriptor.Message) bool {
	for _, s := range m.Signals {
		if s.IsMultiplexer || s.IsMultiplexed {
			return true
		}
	}
	return false
}
