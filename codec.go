package daterange

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// encoded is the "start/end" form with full nanosecond precision. String
// stays at whole seconds; codecs must round-trip exactly.
func (r DateRange) encoded() string {
	return r.start.Format(time.RFC3339Nano) + Separator + r.end.Format(time.RFC3339Nano)
}

// MarshalText implements encoding.TextMarshaler. Endpoints keep their
// sub-second part.
func (r DateRange) MarshalText() ([]byte, error) {
	return []byte(r.encoded()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using Parse.
func (r *DateRange) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*r = v
	return nil
}

// MarshalJSON encodes the range as a JSON string in "start/end" form.
func (r DateRange) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.encoded())
}

// UnmarshalJSON accepts either a "start/end" string or a two-element
// array of timestamps or epoch milliseconds. null is a no-op.
func (r *DateRange) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) > 0 && data[0] == '[' {
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		var parts []any
		if err := dec.Decode(&parts); err != nil {
			return fmt.Errorf("decode date range array: %w", err)
		}
		seq := make(Sequence, len(parts))
		for i, p := range parts {
			if n, ok := p.(json.Number); ok {
				ms, err := n.Int64()
				if err != nil {
					return fmt.Errorf("decode date range array: %w", err)
				}
				p = ms
			}
			seq[i] = p
		}
		return r.fromSequence(seq)
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("decode date range: %w", err)
	}
	return r.UnmarshalText([]byte(s))
}

// MarshalYAML implements yaml.Marshaler; ranges are written as scalars.
func (r DateRange) MarshalYAML() (interface{}, error) {
	return r.encoded(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler. Both the scalar "start/end"
// form and a two-item sequence are accepted. Integer items are epoch
// milliseconds.
func (r *DateRange) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		return r.UnmarshalText([]byte(value.Value))
	case yaml.SequenceNode:
		seq := make(Sequence, len(value.Content))
		for i, item := range value.Content {
			if item.Kind != yaml.ScalarNode {
				return fmt.Errorf("line %d: date range endpoint must be a scalar", item.Line)
			}
			if item.ShortTag() == "!!int" {
				ms, err := strconv.ParseInt(item.Value, 0, 64)
				if err != nil {
					return fmt.Errorf("line %d: decode date range endpoint: %w", item.Line, err)
				}
				seq[i] = ms
				continue
			}
			seq[i] = item.Value
		}
		return r.fromSequence(seq)
	}
	return fmt.Errorf("line %d: date range must be a scalar or a sequence", value.Line)
}

func (r *DateRange) fromSequence(seq Sequence) error {
	v, err := From(seq)
	if err != nil {
		return err
	}
	*r = v
	return nil
}
