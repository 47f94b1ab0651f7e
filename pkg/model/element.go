package model

import (
	"strings"
)

// CanonicalNameSeparator separates the segments of a canonical name.
const CanonicalNameSeparator = "/"

// Element is a named node in the architecture model.
type Element interface {
	ID() string
	Kind() Kind
	Name() string
	Description() string
	// CanonicalName is the hierarchy-derived path of the element, computed
	// on every call.
	CanonicalName() string
	// Parent is the containing element, or nil for top-level elements.
	Parent() Element
	Model() *Model

	Tags() string
	TagList() []string
	AddTags(tags ...string)
	RemoveTag(tag string) bool
	HasTag(tag string) bool
	RequiredTags() []string

	// Uses adds a relationship from this element to destination.
	Uses(destination Element, description, technology string) (*Relationship, error)
	// Relationships returns the relationships whose source is this element.
	Relationships() []*Relationship
}

// element holds the state shared by every element kind. The parent is kept
// as an identifier and resolved through the owning model.
type element struct {
	taggable
	model       *Model
	id          string
	name        string
	description string
	parentID    string
}

func (e *element) ID() string          { return e.id }
func (e *element) Kind() Kind          { return e.kind }
func (e *element) Name() string        { return e.name }
func (e *element) Description() string { return e.description }
func (e *element) Model() *Model       { return e.model }

// SetDescription replaces the element's description.
func (e *element) SetDescription(description string) {
	e.description = description
}

func (e *element) Relationships() []*Relationship {
	return e.model.relationshipsFrom(e.id)
}

func (e *element) parent() Element {
	if e.parentID == "" {
		return nil
	}
	return e.model.ElementByID(e.parentID)
}

func canonicalSegment(name string) string {
	return CanonicalNameSeparator + strings.ReplaceAll(name, CanonicalNameSeparator, "")
}

// isNil reports whether e is nil or a typed nil pointer to a model element.
func isNil(e Element) bool {
	switch v := e.(type) {
	case nil:
		return true
	case *SoftwareSystem:
		return v == nil
	case *Container:
		return v == nil
	case *ContainerInstance:
		return v == nil
	}
	return false
}

var (
	_ Element = (*SoftwareSystem)(nil)
	_ Element = (*Container)(nil)
	_ Element = (*ContainerInstance)(nil)
)
