package roblox

import (
	"encoding/json"
	"reflect"
	"testing"
)

// decodePayload parses a raw JSON body the way getJSON does.
func decodePayload(t *testing.T, raw string) any {
	t.Helper()

	var payload any
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		t.Fatalf("test payload is not valid JSON: %v", err)
	}
	return payload
}

func TestUnwrapItems(t *testing.T) {
	tests := []struct {
		name       string
		raw        string
		containers []string
		want       []map[string]any
	}{
		{
			name:       "current revision container",
			raw:        `{"gamePasses": [{"id": 1}, {"id": 2}]}`,
			containers: passContainers,
			want: []map[string]any{
				{"id": float64(1)},
				{"id": float64(2)},
			},
		},
		{
			name:       "data container fallback",
			raw:        `{"data": [{"id": 3}]}`,
			containers: passContainers,
			want:       []map[string]any{{"id": float64(3)}},
		},
		{
			name:       "first container wins over later",
			raw:        `{"gamePasses": [{"id": 1}], "data": [{"id": 9}]}`,
			containers: passContainers,
			want:       []map[string]any{{"id": float64(1)}},
		},
		{
			name:       "bare array",
			raw:        `[{"id": 4}, {"id": 5}]`,
			containers: passContainers,
			want: []map[string]any{
				{"id": float64(4)},
				{"id": float64(5)},
			},
		},
		{
			name:       "object without recognized container",
			raw:        `{"passes": [{"id": 1}]}`,
			containers: passContainers,
			want:       []map[string]any{},
		},
		{
			name:       "container holding non-object elements",
			raw:        `{"data": [{"id": 1}, "junk", 7, null, {"id": 2}]}`,
			containers: passContainers,
			want: []map[string]any{
				{"id": float64(1)},
				{"id": float64(2)},
			},
		},
		{
			name:       "scalar payload",
			raw:        `"nothing here"`,
			containers: passContainers,
			want:       []map[string]any{},
		},
		{
			name:       "null payload",
			raw:        `null`,
			containers: passContainers,
			want:       []map[string]any{},
		},
		{
			name:       "games container for user games",
			raw:        `{"games": [{"id": 11}]}`,
			containers: gameContainers,
			want:       []map[string]any{{"id": float64(11)}},
		},
		{
			name:       "data container for user games",
			raw:        `{"data": [{"id": 12}]}`,
			containers: gameContainers,
			want:       []map[string]any{{"id": float64(12)}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := unwrapItems(decodePayload(t, tt.raw), tt.containers)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("unwrapItems() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestGameID(t *testing.T) {
	tests := []struct {
		name   string
		raw    map[string]any
		want   string
		wantOK bool
	}{
		{
			name:   "numeric id",
			raw:    map[string]any{"id": float64(123456)},
			want:   "123456",
			wantOK: true,
		},
		{
			name:   "string id",
			raw:    map[string]any{"id": "987"},
			want:   "987",
			wantOK: true,
		},
		{
			name:   "legacy universeId field",
			raw:    map[string]any{"universeId": float64(42)},
			want:   "42",
			wantOK: true,
		},
		{
			name:   "capitalized legacy field",
			raw:    map[string]any{"UniverseId": float64(7)},
			want:   "7",
			wantOK: true,
		},
		{
			name:   "id takes precedence over universeId",
			raw:    map[string]any{"id": float64(1), "universeId": float64(2)},
			want:   "1",
			wantOK: true,
		},
		{
			name:   "null id falls through to universeId",
			raw:    map[string]any{"id": nil, "universeId": float64(5)},
			want:   "5",
			wantOK: true,
		},
		{
			name:   "empty string id is unusable",
			raw:    map[string]any{"id": ""},
			want:   "",
			wantOK: false,
		},
		{
			name:   "no recognized field",
			raw:    map[string]any{"name": "Adopt Me"},
			want:   "",
			wantOK: false,
		},
		{
			name:   "large id keeps full precision",
			raw:    map[string]any{"id": float64(4483381587)},
			want:   "4483381587",
			wantOK: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := GameID(tt.raw)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("GameID() = (%q, %v), want (%q, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
