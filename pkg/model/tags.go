package model

import (
	"strings"
)

// taggable holds the caller-added tags of an element or relationship. The
// kind's required tags are never stored; they are merged in on read.
type taggable struct {
	kind  Kind
	added []string
}

// AddTags adds tags in insertion order. Each argument may itself be a
// comma-separated list. Blank and already present tags are skipped.
func (t *taggable) AddTags(tags ...string) {
	for _, arg := range tags {
		for _, tag := range strings.Split(arg, ",") {
			tag = strings.TrimSpace(tag)
			if tag == "" || isRequiredTag(t.kind, tag) || t.hasAdded(tag) {
				continue
			}
			t.added = append(t.added, tag)
		}
	}
}

// RemoveTag removes a caller-added tag. Required tags are never removed and
// the call reports false for them.
func (t *taggable) RemoveTag(tag string) bool {
	if isRequiredTag(t.kind, tag) {
		return false
	}
	for i, existing := range t.added {
		if existing == tag {
			t.added = append(t.added[:i], t.added[i+1:]...)
			return true
		}
	}
	return false
}

// RequiredTags returns the tags fixed by this value's kind.
func (t *taggable) RequiredTags() []string {
	return RequiredTags(t.kind)
}

// TagList returns the required tags followed by the added tags.
func (t *taggable) TagList() []string {
	return t.mergedTags(nil)
}

// Tags returns the tag list comma-joined.
func (t *taggable) Tags() string {
	return joinTags(t.TagList())
}

// HasTag reports whether tag is present in TagList.
func (t *taggable) HasTag(tag string) bool {
	return containsTag(t.TagList(), tag)
}

func (t *taggable) hasAdded(tag string) bool {
	return containsTag(t.added, tag)
}

// mergedTags appends, in order, inherited tags, the kind's required tags and
// the added tags, skipping anything already present.
func (t *taggable) mergedTags(inherited []string) []string {
	required := requiredTags[t.kind]
	out := make([]string, 0, len(inherited)+len(required)+len(t.added))
	for _, group := range [][]string{inherited, required, t.added} {
		for _, tag := range group {
			if !containsTag(out, tag) {
				out = append(out, tag)
			}
		}
	}
	return out
}

func containsTag(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}

func joinTags(tags []string) string {
	return strings.Join(tags, ",")
}
