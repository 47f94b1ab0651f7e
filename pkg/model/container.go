package model

// Container is a deployable unit inside a software system.
type Container struct {
	element
	technology string
}

func (c *Container) Technology() string { return c.technology }

func (c *Container) SetTechnology(technology string) {
	c.technology = technology
}

// Parent returns the owning software system.
func (c *Container) Parent() Element {
	return c.parent()
}

// SoftwareSystem returns the owning software system, or nil if it cannot be
// resolved.
func (c *Container) SoftwareSystem() *SoftwareSystem {
	s, _ := c.parent().(*SoftwareSystem)
	return s
}

// CanonicalName returns "<parent canonical name>/<name>".
func (c *Container) CanonicalName() string {
	prefix := ""
	if p := c.Parent(); p != nil {
		prefix = p.CanonicalName()
	}
	return prefix + canonicalSegment(c.name)
}

func (c *Container) Uses(destination Element, description, technology string) (*Relationship, error) {
	return c.model.addRelationship(c, destination, description, technology)
}
