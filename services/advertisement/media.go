package advertisement

import (
	"encoding/json"
	"strings"
)

// ParseKeptList decodes the client-supplied "existing media" channel, a
// JSON-encoded array of references the client wants retained. The value is
// an untyped boundary: anything that does not decode as a string array is
// treated as an empty list rather than failing the request.
func ParseKeptList(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return []string{}
	}

	var list []string
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		return []string{}
	}

	kept := make([]string, 0, len(list))
	for _, ref := range list {
		if ref = strings.TrimSpace(ref); ref != "" {
			kept = append(kept, ref)
		}
	}
	return kept
}

// MergeMedia computes the final ordered media array for an update: the kept
// references followed by newly uploaded ones, in upload order. A nil keptRaw
// means the client did not use the channel at all, which keeps the entity's
// full current array. Applied independently to images and videos.
func MergeMedia(current []string, keptRaw *string, uploaded []string) []string {
	kept := current
	if keptRaw != nil {
		kept = ParseKeptList(*keptRaw)
	}

	merged := make([]string, 0, len(kept)+len(uploaded))
	merged = append(merged, kept...)
	merged = append(merged, uploaded...)
	return merged
}
