package model

// Kind identifies the static type of a model element or relationship.
type Kind int

const (
	KindSoftwareSystem Kind = iota
	KindContainer
	KindContainerInstance
	KindRelationship
)

func (k Kind) String() string {
	switch k {
	case KindSoftwareSystem:
		return "Software System"
	case KindContainer:
		return "Container"
	case KindContainerInstance:
		return "Container Instance"
	case KindRelationship:
		return "Relationship"
	default:
		return "Unknown"
	}
}

// Well-known tags
const (
	TagElement           = "Element"
	TagSoftwareSystem    = "Software System"
	TagContainer         = "Container"
	TagContainerInstance = "Container Instance"
	TagRelationship      = "Relationship"
)

var requiredTags = map[Kind][]string{
	KindSoftwareSystem:    {TagElement, TagSoftwareSystem},
	KindContainer:         {TagElement, TagContainer},
	KindContainerInstance: {TagElement, TagContainer, TagContainerInstance},
	KindRelationship:      {TagRelationship},
}

// RequiredTags returns the tags every value of the given kind carries, in
// their fixed order. The returned slice is a copy.
func RequiredTags(kind Kind) []string {
	tags := requiredTags[kind]
	out := make([]string, len(tags))
	copy(out, tags)
	return out
}

func isRequiredTag(kind Kind, tag string) bool {
	for _, t := range requiredTags[kind] {
		if t == tag {
			return true
		}
	}
	return false
}
