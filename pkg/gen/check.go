package gen

import (
	"fmt"

	"go.einride.tech/can/pkg/descriptor"

	"github.com/dbckit/dbcdata/pkg/dbc"
)

// Finding is one diagnostic from a schema sweep.
type Finding struct {
	// Fatal findings are the ones Build aborts on.
	Fatal   bool
	Message string
}

// Check sweeps every selected message with the generator's rules,
// reporting each violation instead of stopping at the first one, so a
// schema can be repaired in a single round. Multiplexed messages that a
// default selection skips are reported as notes, as are declared
// physical ranges no value can satisfy.
func Check(db *descriptor.Database, sel *dbc.Selection) ([]Finding, error) {
	resolved, err := dbc.ResolveSelection(db, sel)
	if err != nil {
		return nil, err
	}
	var findings []Finding
	fatalf := func(format string, args ...any) {
		findings = append(findings, Finding{Fatal: true, Message: fmt.Sprintf(format, args...)})
	}
	notef := func(format string, args ...any) {
		findings = append(findings, Finding{Message: fmt.Sprintf(format, args...)})
	}

	if sel == nil || len(sel.Messages) == 0 {
		for _, m := range db.Messages {
			if hasMultiplexing(m) {
				notef("message %s is multiplexed and only decodable through the runtime codec", m.Name)
			}
		}
	}

	typeNames := make(map[string]string, len(resolved))
	for _, sm := range resolved {
		msg := sm.Message
		if msg.Length > 8 {
			fatalf("message %s: DLC %d exceeds the classic CAN payload", msg.Name, msg.Length)
		}
		name := goName(msg.Name)
		if name == "" {
			fatalf("message name %q yields no Go identifier", msg.Name)
		} else if prev, ok := typeNames[name]; ok {
			fatalf("messages %s and %s map to the same Go type %s", prev, msg.Name, name)
		} else {
			typeNames[name] = msg.Name
		}

		fieldNames := make(map[string]string, len(sm.Signals))
		taken := make(map[string]struct{}, len(sm.Signals))
		constNames := make(map[string]string)
		for _, sig := range sm.Signals {
			if _, err := buildSignal(msg, sig, fieldNames, taken, constNames); err != nil {
				fatalf("%s", err)
			}
			if sig.Min > sig.Max {
				notef("%s.%s declares an empty physical range [%v, %v]", msg.Name, sig.Name, sig.Min, sig.Max)
			}
		}
	}
	return findings, nil
}

func hasMultiplexing(m *descriptor.Message) bool {
	for _, s := range m.Signals {
		if s.IsMultiplexer || s.IsMultiplexed {
			return true
		}
	}
	return false
}
