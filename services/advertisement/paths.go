package advertisement

import "strings"

// PathResolver converts backend-specific stored media references into one
// canonical public form, independent of which storage backend produced them.
type PathResolver struct {
	// BaseURL, when set, is prepended to relative paths.
	BaseURL string
	// Root is the service's project root; absolute local paths under it are
	// rewritten root-relative.
	Root string
}

// Resolve maps a single stored reference to its public path. The second
// return value is false when the reference cannot be resolved at all, in
// which case callers must drop it rather than emit an empty entry.
// Resolution is idempotent: resolving an already public path returns it
// unchanged.
func (r PathResolver) Resolve(ref string) (string, bool) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", false
	}

	// Normalize separators regardless of the host platform.
	ref = strings.ReplaceAll(ref, "\\", "/")

	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return ref, true
	}

	if r.Root != "" {
		root := strings.TrimRight(strings.ReplaceAll(r.Root, "\\", "/"), "/")
		if ref == root {
			return "", false
		}
		if strings.HasPrefix(ref, root+"/") {
			ref = strings.TrimPrefix(ref, root)
		}
	}

	if r.BaseURL != "" {
		return strings.TrimRight(r.BaseURL, "/") + "/" + strings.TrimLeft(ref, "/"), true
	}
	return "/" + strings.TrimLeft(ref, "/"), true
}

// ResolveAll resolves a media array in order, dropping unresolvable entries.
func (r PathResolver) ResolveAll(refs []string) []string {
	out := make([]string, 0, len(refs))
	for _, ref := range refs {
		if resolved, ok := r.Resolve(ref); ok {
			out = append(out, resolved)
		}
	}
	return out
}
