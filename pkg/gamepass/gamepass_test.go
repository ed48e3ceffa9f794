package gamepass

import (
	"encoding/json"
	"reflect"
	"testing"
)

// decode builds a raw item the same way the client does, so numeric
// fields arrive as float64.
func decode(t *testing.T, raw string) map[string]any {
	t.Helper()

	var m map[string]any
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		t.Fatalf("decode test item: %v", err)
	}
	return m
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want GamePass
	}{
		{
			name: "current revision fields",
			raw:  `{"id": 101, "name": "Gold", "iconImageAssetId": 777, "description": "Shiny"}`,
			want: GamePass{ID: float64(101), Name: "Gold", Icon: "rbxassetid://777", Description: "Shiny"},
		},
		{
			name: "legacy id and name fields",
			raw:  `{"gamePassId": 5, "displayName": "VIP Door", "displayDescription": "Opens the door"}`,
			want: GamePass{ID: float64(5), Name: "VIP Door", Icon: "", Description: "Opens the door"},
		},
		{
			name: "oldest revision capitalized fields",
			raw:  `{"passId": "abc", "Name": "Teleport", "Description": "Zip around"}`,
			want: GamePass{ID: "abc", Name: "Teleport", Icon: "", Description: "Zip around"},
		},
		{
			name: "id precedence prefers newest name",
			raw:  `{"id": 1, "gamePassId": 2, "passId": 3}`,
			want: GamePass{ID: float64(1), Name: UnknownName, Icon: "", Description: ""},
		},
		{
			name: "string asset id",
			raw:  `{"iconImageAssetId": "424242"}`,
			want: GamePass{ID: nil, Name: UnknownName, Icon: "rbxassetid://424242", Description: ""},
		},
		{
			name: "asset id wins over direct url",
			raw:  `{"iconImageAssetId": 9, "iconImageUri": "https://cdn.example/icon.png"}`,
			want: GamePass{ID: nil, Name: UnknownName, Icon: "rbxassetid://9", Description: ""},
		},
		{
			name: "url fallback without asset id",
			raw:  `{"iconImageUri": "https://cdn.example/icon.png"}`,
			want: GamePass{ID: nil, Name: UnknownName, Icon: "https://cdn.example/icon.png", Description: ""},
		},
		{
			name: "secondary url field",
			raw:  `{"iconUrl": "https://cdn.example/legacy.png"}`,
			want: GamePass{ID: nil, Name: UnknownName, Icon: "https://cdn.example/legacy.png", Description: ""},
		},
		{
			name: "no recognized fields",
			raw:  `{"price": 25, "sellerName": "builderman"}`,
			want: GamePass{ID: nil, Name: UnknownName, Icon: "", Description: ""},
		},
		{
			name: "empty item",
			raw:  `{}`,
			want: GamePass{ID: nil, Name: UnknownName, Icon: "", Description: ""},
		},
		{
			name: "null fields treated as absent",
			raw:  `{"id": null, "name": null, "gamePassId": 12}`,
			want: GamePass{ID: float64(12), Name: UnknownName, Icon: "", Description: ""},
		},
		{
			name: "unusable name type falls through to next candidate",
			raw:  `{"name": {"en": "Gold"}, "displayName": "Gold"}`,
			want: GamePass{ID: nil, Name: "Gold", Icon: "", Description: ""},
		},
		{
			name: "numeric name is formatted",
			raw:  `{"name": 42}`,
			want: GamePass{ID: nil, Name: "42", Icon: "", Description: ""},
		},
		{
			name: "large asset id keeps integral formatting",
			raw:  `{"iconImageAssetId": 13477149936}`,
			want: GamePass{ID: nil, Name: UnknownName, Icon: "rbxassetid://13477149936", Description: ""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(decode(t, tt.raw))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Normalize() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestNormalize_NilItem(t *testing.T) {
	got := Normalize(nil)
	want := GamePass{ID: nil, Name: UnknownName, Icon: "", Description: ""}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Normalize(nil) = %+v, want %+v", got, want)
	}
}

// Serialized records must carry every field even when empty; consumers
// rely on the stable shape.
func TestGamePass_MarshalKeepsAllFields(t *testing.T) {
	data, err := json.Marshal(Normalize(nil))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var fields map[string]any
	if err := json.Unmarshal(data, &fields); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	for _, key := range []string{"id", "name", "icon", "description"} {
		if _, ok := fields[key]; !ok {
			t.Errorf("serialized record missing %q field: %s", key, data)
		}
	}
	if fields["id"] != nil {
		t.Errorf("id = %v, want null", fields["id"])
	}
	if fields["name"] != UnknownName {
		t.Errorf("name = %v, want %q", fields["name"], UnknownName)
	}
}

func TestNormalizeAll_PreservesOrder(t *testing.T) {
	items := []map[string]any{
		decode(t, `{"id": 3, "name": "Third"}`),
		decode(t, `{"id": 1, "name": "First"}`),
		decode(t, `{"id": 2, "name": "Second"}`),
	}

	got := NormalizeAll(items)
	if len(got) != 3 {
		t.Fatalf("NormalizeAll() returned %d records, want 3", len(got))
	}

	wantNames := []string{"Third", "First", "Second"}
	for i, name := range wantNames {
		if got[i].Name != name {
			t.Errorf("record %d name = %q, want %q", i, got[i].Name, name)
		}
	}
}

func TestNormalizeAll_EmptyInput(t *testing.T) {
	got := NormalizeAll(nil)
	if got == nil {
		t.Fatal("NormalizeAll(nil) = nil, want empty slice")
	}
	if len(got) != 0 {
		t.Errorf("NormalizeAll(nil) returned %d records, want 0", len(got))
	}
}
