package model

// Relationship is a directed edge from a source element to a destination
// element.
type Relationship struct {
	taggable
	id          string
	source      Element
	destination Element
	description string
	technology  string
}

func (r *Relationship) ID() string           { return r.id }
func (r *Relationship) Kind() Kind           { return r.kind }
func (r *Relationship) Source() Element      { return r.source }
func (r *Relationship) Destination() Element { return r.destination }
func (r *Relationship) SourceID() string     { return r.source.ID() }
func (r *Relationship) DestinationID() string {
	return r.destination.ID()
}
func (r *Relationship) Description() string { return r.description }
func (r *Relationship) Technology() string  { return r.technology }

func (r *Relationship) SetTechnology(technology string) {
	r.technology = technology
}

// same reports whether r joins source to destination with the given
// description.
func (r *Relationship) same(source, destination Element, description string) bool {
	return r.source.ID() == source.ID() &&
		r.destination.ID() == destination.ID() &&
		r.description == description
}
