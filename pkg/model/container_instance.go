package model

import (
	"strconv"

	"github.com/dd0wney/cluso-c4/pkg/logging"
)

// ContainerInstance is one runtime occurrence of a Container.
//
// The backing container is bound through two independent channels: a live
// reference and a stored identifier. Clearing one never clears the other.
// When both are set the reference wins; when only the identifier is set the
// container is looked up in the owning model.
type ContainerInstance struct {
	element
	container    *Container
	containerID  string
	instanceID   int
	healthChecks []HealthCheck
}

// Container returns the live reference, which may be nil even when
// ContainerID is set.
func (ci *ContainerInstance) Container() *Container { return ci.container }

// SetContainer replaces the live reference. It does not touch ContainerID.
func (ci *ContainerInstance) SetContainer(c *Container) {
	ci.container = c
}

func (ci *ContainerInstance) ContainerID() string { return ci.containerID }

// SetContainerID replaces the stored identifier. It does not touch Container.
func (ci *ContainerInstance) SetContainerID(id string) {
	ci.containerID = id
}

// InstanceID is the 1-based ordinal of this instance among the instances of
// the same container, fixed at creation.
func (ci *ContainerInstance) InstanceID() int { return ci.instanceID }

// Name is always empty; an instance is named by its container.
func (ci *ContainerInstance) Name() string { return "" }

// SetName is ignored.
func (ci *ContainerInstance) SetName(string) {}

// ResolveContainer returns the backing container from the reference, or
// from the identifier when the reference is cleared. It returns nil when
// neither resolves.
func (ci *ContainerInstance) ResolveContainer() *Container {
	if ci.container != nil {
		return ci.container
	}
	if ci.containerID == "" {
		return nil
	}
	c, _ := ci.model.ElementByID(ci.containerID).(*Container)
	return c
}

// Parent is the software system owning the backing container.
func (ci *ContainerInstance) Parent() Element {
	c := ci.ResolveContainer()
	if c == nil {
		return nil
	}
	return c.Parent()
}

// CanonicalName returns "<system canonical name>/<container name>[<instance id>]".
func (ci *ContainerInstance) CanonicalName() string {
	prefix, name := "", ""
	if c := ci.ResolveContainer(); c != nil {
		name = c.Name()
		if p := c.Parent(); p != nil {
			prefix = p.CanonicalName()
		}
	}
	return prefix + canonicalSegment(name) + "[" + strconv.Itoa(ci.instanceID) + "]"
}

// TagList returns the backing container's tags, then this kind's required
// tags, then tags added to the instance.
func (ci *ContainerInstance) TagList() []string {
	var inherited []string
	if c := ci.ResolveContainer(); c != nil {
		inherited = c.TagList()
	}
	return ci.mergedTags(inherited)
}

func (ci *ContainerInstance) Tags() string {
	return joinTags(ci.TagList())
}

func (ci *ContainerInstance) HasTag(tag string) bool {
	return containsTag(ci.TagList(), tag)
}

func (ci *ContainerInstance) Uses(destination Element, description, technology string) (*Relationship, error) {
	return ci.model.addRelationship(ci, destination, description, technology)
}

// HealthChecks returns the instance's health checks in insertion order.
func (ci *ContainerInstance) HealthChecks() []HealthCheck {
	out := make([]HealthCheck, len(ci.healthChecks))
	copy(out, ci.healthChecks)
	return out
}

// AddHealthCheck validates and appends an HTTP health check. Interval
// defaults to 60 seconds and timeout to 0. A failed call leaves the
// instance unchanged.
func (ci *ContainerInstance) AddHealthCheck(name, url string, opts ...HealthCheckOption) (HealthCheck, error) {
	hc, err := newHealthCheck(name, url, opts...)
	if err != nil {
		ci.model.rejected("AddHealthCheck", err, logging.ElementID(ci.id))
		return HealthCheck{}, err
	}
	ci.healthChecks = append(ci.healthChecks, hc)
	ci.model.recorder.RecordHealthCheck()
	ci.model.recorder.RecordOperation("AddHealthCheck", statusSuccess)
	ci.model.logger.Debug("health check added",
		logging.ElementID(ci.id),
		logging.String("name", hc.Name),
		logging.String("url", hc.URL))
	return hc, nil
}
