package model

// SoftwareSystem is a top-level element made up of containers.
type SoftwareSystem struct {
	element
	location   Location
	containers []*Container
}

func (s *SoftwareSystem) Location() Location { return s.location }

// SetLocation changes whether the system is internal or external.
func (s *SoftwareSystem) SetLocation(location Location) {
	s.location = location
}

// Parent is always nil for a software system.
func (s *SoftwareSystem) Parent() Element { return nil }

// CanonicalName returns "/<name>".
func (s *SoftwareSystem) CanonicalName() string {
	return canonicalSegment(s.name)
}

func (s *SoftwareSystem) Uses(destination Element, description, technology string) (*Relationship, error) {
	return s.model.addRelationship(s, destination, description, technology)
}

// Containers returns the system's containers in creation order.
func (s *SoftwareSystem) Containers() []*Container {
	out := make([]*Container, len(s.containers))
	copy(out, s.containers)
	return out
}

// ContainerWithName returns the container with the given name, or nil.
func (s *SoftwareSystem) ContainerWithName(name string) *Container {
	for _, c := range s.containers {
		if c.name == name {
			return c
		}
	}
	return nil
}

// AddContainer adds a container to the system. Names must be non-blank and
// unique within the system.
func (s *SoftwareSystem) AddContainer(name, description, technology string) (*Container, error) {
	return s.model.addContainer(s, name, description, technology)
}
