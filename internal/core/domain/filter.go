package domain

// Filter selects which enumerated APIs are carried through the pipeline.
// Two optional criteria are supported: an identifier allow-list and a tag
// allow-list. When both are set an API passes if it matches EITHER criterion
// (inclusive union, not intersection); when both are empty every API passes.
type Filter struct {
	// IncludeIDs is the set of API identifiers to keep.
	IncludeIDs []string

	// IncludeTags is the set of tags to keep.
	IncludeTags []string
}

// IsEmpty reports whether no criteria are configured (identity filter).
func (f Filter) IsEmpty() bool {
	return len(f.IncludeIDs) == 0 && len(f.IncludeTags) == 0
}

// Matches reports whether the API passes the filter:
//
//	passes(a, I, T) == (I=∅ ∧ T=∅) ∨ (a.ID ∈ I) ∨ (a.Tags ∩ T ≠ ∅)
func (f Filter) Matches(api API) bool {
	if f.IsEmpty() {
		return true
	}
	for _, id := range f.IncludeIDs {
		if api.ID == id {
			return true
		}
	}
	for _, tag := range f.IncludeTags {
		if api.HasTag(tag) {
			return true
		}
	}
	return false
}

// Apply returns the APIs that pass the filter. The result is a subsequence
// of the input in original order; the input slice is not modified.
func (f Filter) Apply(apis []API) []API {
	if f.IsEmpty() {
		return apis
	}
	kept := make([]API, 0, len(apis))
	for _, api := range apis {
		if f.Matches(api) {
			kept = append(kept, api)
		}
	}
	return kept
}
