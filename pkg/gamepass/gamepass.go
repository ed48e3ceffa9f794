// Package gamepass defines the canonical game pass record and maps the
// item shapes returned by historical Roblox API revisions into it.
package gamepass

import "strconv"

// UnknownName is the sentinel used when an item carries no recognized
// name field.
const UnknownName = "Unknown"

// GamePass is the canonical record served to callers. Every field is
// present in serialized output; ID is null when the source item has no
// recognized id field.
type GamePass struct {
	ID          any    `json:"id"`
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
}

// Field-name candidates per canonical field, in precedence order. The
// game pass endpoints renamed fields across API revisions; the first
// present name wins, so newer names come first.
var (
	idFields          = []string{"id", "gamePassId", "passId"}
	nameFields        = []string{"name", "displayName", "Name"}
	iconAssetFields   = []string{"iconImageAssetId", "iconAssetId"}
	iconURLFields     = []string{"iconImageUri", "iconUrl", "imageUrl"}
	descriptionFields = []string{"description", "displayDescription", "Description"}
)

// Normalize maps one raw API item into a GamePass. It is total: any
// input shape produces a record, and unrecognized or null fields are
// treated as absent.
func Normalize(raw map[string]any) GamePass {
	p := GamePass{Name: UnknownName}

	if v, ok := probe(raw, idFields); ok {
		p.ID = v
	}
	if s, ok := probeString(raw, nameFields); ok {
		p.Name = s
	}
	p.Icon = icon(raw)
	if s, ok := probeString(raw, descriptionFields); ok {
		p.Description = s
	}

	return p
}

// NormalizeAll maps a raw item collection, preserving item order.
func NormalizeAll(items []map[string]any) []GamePass {
	passes := make([]GamePass, 0, len(items))
	for _, item := range items {
		passes = append(passes, Normalize(item))
	}
	return passes
}

// probe returns the first non-null value present under any of the keys.
func probe(raw map[string]any, keys []string) (any, bool) {
	for _, k := range keys {
		if v, ok := raw[k]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

// probeString is probe restricted to values usable as text. Numbers are
// formatted; other types count as absent so probing can move on.
func probeString(raw map[string]any, keys []string) (string, bool) {
	for _, k := range keys {
		v, ok := raw[k]
		if !ok || v == nil {
			continue
		}
		if s, ok := asText(v); ok {
			return s, true
		}
	}
	return "", false
}

// icon resolves the icon field. Asset ids win over direct image URLs
// and are rewritten into the rbxassetid scheme.
func icon(raw map[string]any) string {
	for _, k := range iconAssetFields {
		v, ok := raw[k]
		if !ok || v == nil {
			continue
		}
		if id, ok := asText(v); ok && id != "" {
			return "rbxassetid://" + id
		}
	}
	for _, k := range iconURLFields {
		v, ok := raw[k]
		if !ok || v == nil {
			continue
		}
		if s, ok := v.(string); ok && s != "" {
			return s
		}
	}
	return ""
}

// asText renders strings and JSON numbers as text. encoding/json
// decodes numbers into float64; asset and pass ids fit the float64
// mantissa, so integral formatting is lossless here.
func asText(v any) (string, bool) {
	switch n := v.(type) {
	case string:
		return n, true
	case float64:
		return strconv.FormatFloat(n, 'f', -1, 64), true
	case int:
		return strconv.Itoa(n), true
	case int64:
		return strconv.FormatInt(n, 10), true
	default:
		return "", false
	}
}
