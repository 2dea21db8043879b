package daterange

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/roach88/daterange/instant"
)

type booking struct {
	Room   string    `json:"room" yaml:"room"`
	Period DateRange `json:"period" yaml:"period"`
}

func TestTextRoundTrip(t *testing.T) {
	r := span(1, 10)
	text, err := r.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "2024-01-01T00:00:00Z/2024-01-10T00:00:00Z", string(text))

	var got DateRange
	require.NoError(t, got.UnmarshalText(text))
	assert.True(t, r.Equal(got))
}

func TestJSON(t *testing.T) {
	in := booking{Room: "A", Period: span(1, 10)}

	data, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"room":"A","period":"2024-01-01T00:00:00Z/2024-01-10T00:00:00Z"}`, string(data))

	var out booking
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, "A", out.Room)
	assert.True(t, in.Period.Equal(out.Period))
}

func TestCodecsKeepSubSecondPrecision(t *testing.T) {
	start := time.Date(2024, time.January, 1, 9, 0, 0, 0, time.UTC)
	tests := []struct {
		name string
		r    DateRange
		text string
	}{
		{
			name: "milliseconds",
			r:    New(start, start.Add(750*time.Millisecond)),
			text: "2024-01-01T09:00:00Z/2024-01-01T09:00:00.75Z",
		},
		{
			name: "nanoseconds",
			r:    New(start.Add(123*time.Nanosecond), start.Add(time.Second+456*time.Microsecond)),
			text: "2024-01-01T09:00:00.000000123Z/2024-01-01T09:00:01.000456Z",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, err := tt.r.MarshalText()
			require.NoError(t, err)
			assert.Equal(t, tt.text, string(text))

			var fromText DateRange
			require.NoError(t, fromText.UnmarshalText(text))
			assert.True(t, tt.r.Equal(fromText), "text: got %s", fromText.encoded())

			data, err := json.Marshal(booking{Room: "A", Period: tt.r})
			require.NoError(t, err)
			var fromJSON booking
			require.NoError(t, json.Unmarshal(data, &fromJSON))
			assert.True(t, tt.r.Equal(fromJSON.Period), "json: got %s", fromJSON.Period.encoded())
			assert.Equal(t, tt.r.Duration(), fromJSON.Period.Duration())

			doc, err := yaml.Marshal(booking{Room: "A", Period: tt.r})
			require.NoError(t, err)
			var fromYAML booking
			require.NoError(t, yaml.Unmarshal(doc, &fromYAML))
			assert.True(t, tt.r.Equal(fromYAML.Period), "yaml: got %s", fromYAML.Period.encoded())
		})
	}
}

func TestJSONNullLeavesValue(t *testing.T) {
	out := booking{Room: "A", Period: span(1, 10)}
	require.NoError(t, json.Unmarshal([]byte(`{"room":"B","period":null}`), &out))
	assert.Equal(t, "B", out.Room)
	assert.True(t, span(1, 10).Equal(out.Period), "got %s", out.Period)

	var r DateRange
	require.NoError(t, json.Unmarshal([]byte(`null`), &r))
	assert.True(t, r.IsZero())
}

func TestJSONArrayOfMillis(t *testing.T) {
	var out booking
	err := json.Unmarshal([]byte(`{"room":"D","period":[1704844800000,1704067200000]}`), &out)
	require.NoError(t, err)
	assert.True(t, span(1, 10).Equal(out.Period), "got %s", out.Period)

	err = json.Unmarshal([]byte(`{"period":["2024-01-01",1704844800000]}`), &out)
	require.NoError(t, err)
	assert.True(t, span(1, 10).Equal(out.Period), "got %s", out.Period)

	err = json.Unmarshal([]byte(`{"period":[1704067200000.5,1704844800000]}`), &out)
	assert.Error(t, err)
}

func TestJSONArray(t *testing.T) {
	var out booking
	err := json.Unmarshal([]byte(`{"room":"B","period":["2024-01-10","2024-01-01"]}`), &out)
	require.NoError(t, err)
	assert.True(t, span(1, 10).Equal(out.Period), "got %s", out.Period)
}

func TestJSONErrors(t *testing.T) {
	var r DateRange

	err := json.Unmarshal([]byte(`"2024-01-01"`), &r)
	assert.True(t, IsMalformedInterval(err), "got %v", err)

	err = json.Unmarshal([]byte(`"later/2024-01-01"`), &r)
	assert.True(t, instant.IsInvalidInstant(err), "got %v", err)

	err = json.Unmarshal([]byte(`["2024-01-01"]`), &r)
	assert.True(t, IsMalformedInterval(err), "got %v", err)

	err = json.Unmarshal([]byte(`42`), &r)
	assert.Error(t, err)
}

func TestYAML(t *testing.T) {
	in := booking{Room: "A", Period: span(1, 10)}

	data, err := yaml.Marshal(in)
	require.NoError(t, err)

	var raw map[string]string
	require.NoError(t, yaml.Unmarshal(data, &raw))
	assert.Equal(t, "2024-01-01T00:00:00Z/2024-01-10T00:00:00Z", raw["period"])

	var out booking
	require.NoError(t, yaml.Unmarshal(data, &out))
	assert.True(t, in.Period.Equal(out.Period))
}

func TestYAMLSequence(t *testing.T) {
	doc := "room: C\nperiod:\n  - 2024-01-10\n  - 2024-01-01\n"

	var out booking
	require.NoError(t, yaml.Unmarshal([]byte(doc), &out))
	assert.True(t, span(1, 10).Equal(out.Period), "got %s", out.Period)
}

func TestYAMLSequenceOfMillis(t *testing.T) {
	doc := "period:\n  - 1704844800000\n  - \"2024-01-01\"\n"

	var out booking
	require.NoError(t, yaml.Unmarshal([]byte(doc), &out))
	assert.True(t, span(1, 10).Equal(out.Period), "got %s", out.Period)
}

func TestYAMLErrors(t *testing.T) {
	var out booking

	err := yaml.Unmarshal([]byte("period: {start: 2024-01-01}\n"), &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "scalar or a sequence")

	err = yaml.Unmarshal([]byte("period: 2024-01-01\n"), &out)
	assert.True(t, IsMalformedInterval(err), "got %v", err)
}
