package roblox

import "strconv"

// Container field names probed in order, most recent API revision
// first. A bare top-level array is also accepted.
var (
	gameContainers = []string{"data", "games"}
	passContainers = []string{"gamePasses", "data"}
)

// Universe-id field names probed in order across API revisions.
var gameIDFields = []string{"id", "universeId", "UniverseId"}

// unwrapItems extracts the item list from a decoded response that is
// either wrapped under one of the container fields or a bare array.
// Unrecognized shapes yield an empty list, never an error.
func unwrapItems(payload any, containers []string) []map[string]any {
	switch v := payload.(type) {
	case map[string]any:
		for _, key := range containers {
			if items, ok := v[key].([]any); ok {
				return itemMaps(items)
			}
		}
		return []map[string]any{}
	case []any:
		return itemMaps(v)
	default:
		return []map[string]any{}
	}
}

// itemMaps keeps the object elements of a decoded array and drops
// anything else.
func itemMaps(items []any) []map[string]any {
	out := make([]map[string]any, 0, len(items))
	for _, item := range items {
		if m, ok := item.(map[string]any); ok {
			out = append(out, m)
		}
	}
	return out
}

// GameID extracts the universe id from a raw game descriptor. The
// second return is false when no recognized field carries a usable id;
// such descriptors are skipped before fan-out.
func GameID(raw map[string]any) (string, bool) {
	for _, key := range gameIDFields {
		v, ok := raw[key]
		if !ok || v == nil {
			continue
		}
		switch id := v.(type) {
		case string:
			if id != "" {
				return id, true
			}
		case float64:
			return strconv.FormatFloat(id, 'f', -1, 64), true
		case int:
			return strconv.Itoa(id), true
		case int64:
			return strconv.FormatInt(id, 10), true
		}
	}
	return "", false
}
