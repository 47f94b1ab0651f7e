package model

import (
	"fmt"

	"github.com/dd0wney/cluso-c4/pkg/logging"
	"github.com/dd0wney/cluso-c4/pkg/validation"
)

const (
	statusSuccess  = "success"
	statusRejected = "rejected"
)

// Model is the aggregate root that allocates identifiers and owns every
// element and relationship.
type Model struct {
	ids      IDGenerator
	logger   logging.Logger
	recorder Recorder

	elements          []Element
	elementsByID      map[string]Element
	relationships     []*Relationship
	relationshipsByID map[string]*Relationship

	// instance ordinals handed out so far, keyed by container ID
	instanceCounts map[string]int
}

// Option configures a Model.
type Option func(*Model)

// WithIDGenerator replaces the default sequential ID generator.
func WithIDGenerator(g IDGenerator) Option {
	return func(m *Model) { m.ids = g }
}

// WithLogger sets the logger used for model events.
func WithLogger(l logging.Logger) Option {
	return func(m *Model) { m.logger = l.With(logging.Component("model")) }
}

// WithRecorder sets the metrics recorder.
func WithRecorder(r Recorder) Option {
	return func(m *Model) { m.recorder = r }
}

// NewModel creates an empty model.
func NewModel(opts ...Option) *Model {
	m := &Model{
		ids:               NewSequentialIDGenerator(),
		logger:            logging.NewNopLogger(),
		recorder:          nopRecorder{},
		elementsByID:      make(map[string]Element),
		relationshipsByID: make(map[string]*Relationship),
		instanceCounts:    make(map[string]int),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// ElementByID returns the element with the given ID, or nil.
func (m *Model) ElementByID(id string) Element {
	e, ok := m.elementsByID[id]
	if !ok {
		return nil
	}
	return e
}

// GetElement is like ElementByID but returns ErrElementNotFound.
func (m *Model) GetElement(id string) (Element, error) {
	if e := m.ElementByID(id); e != nil {
		return e, nil
	}
	return nil, elementError("GetElement", id, ErrElementNotFound)
}

// GetRelationship returns the relationship with the given ID.
func (m *Model) GetRelationship(id string) (*Relationship, error) {
	r, ok := m.relationshipsByID[id]
	if !ok {
		return nil, relationshipError("GetRelationship", id, ErrRelationshipNotFound)
	}
	return r, nil
}

// Elements returns all elements in creation order.
func (m *Model) Elements() []Element {
	out := make([]Element, len(m.elements))
	copy(out, m.elements)
	return out
}

// Relationships returns all relationships in creation order.
func (m *Model) Relationships() []*Relationship {
	out := make([]*Relationship, len(m.relationships))
	copy(out, m.relationships)
	return out
}

// SoftwareSystems returns the top-level software systems in creation order.
func (m *Model) SoftwareSystems() []*SoftwareSystem {
	var out []*SoftwareSystem
	for _, e := range m.elements {
		if s, ok := e.(*SoftwareSystem); ok {
			out = append(out, s)
		}
	}
	return out
}

// SoftwareSystemWithName returns the software system with the given name, or nil.
func (m *Model) SoftwareSystemWithName(name string) *SoftwareSystem {
	for _, s := range m.SoftwareSystems() {
		if s.name == name {
			return s
		}
	}
	return nil
}

// ContainerInstances returns every container instance in creation order.
func (m *Model) ContainerInstances() []*ContainerInstance {
	var out []*ContainerInstance
	for _, e := range m.elements {
		if ci, ok := e.(*ContainerInstance); ok {
			out = append(out, ci)
		}
	}
	return out
}

// ContainerInstancesOf returns the instances currently bound to c.
func (m *Model) ContainerInstancesOf(c *Container) []*ContainerInstance {
	var out []*ContainerInstance
	for _, ci := range m.ContainerInstances() {
		if ci.ResolveContainer() == c {
			out = append(out, ci)
		}
	}
	return out
}

// AddSoftwareSystem adds a top-level software system. Names must be
// non-blank and unique across software systems.
func (m *Model) AddSoftwareSystem(location Location, name, description string) (*SoftwareSystem, error) {
	const op = "AddSoftwareSystem"
	if err := validation.Name("software system", name); err != nil {
		return nil, m.rejected(op, err)
	}
	if m.SoftwareSystemWithName(name) != nil {
		return nil, m.rejected(op, validation.New("name",
			fmt.Sprintf("A software system named %q already exists.", name)))
	}

	id, err := m.allocateID(op)
	if err != nil {
		return nil, err
	}
	s := &SoftwareSystem{
		element: element{
			taggable:    taggable{kind: KindSoftwareSystem},
			model:       m,
			id:          id,
			name:        name,
			description: description,
		},
		location: location,
	}
	m.register(op, s)
	return s, nil
}

func (m *Model) addContainer(parent *SoftwareSystem, name, description, technology string) (*Container, error) {
	const op = "AddContainer"
	if err := validation.Name("container", name); err != nil {
		return nil, m.rejected(op, err)
	}
	if parent.ContainerWithName(name) != nil {
		return nil, m.rejected(op, validation.New("name",
			fmt.Sprintf("A container named %q already exists for this software system.", name)))
	}

	id, err := m.allocateID(op)
	if err != nil {
		return nil, err
	}
	c := &Container{
		element: element{
			taggable:    taggable{kind: KindContainer},
			model:       m,
			id:          id,
			name:        name,
			description: description,
			parentID:    parent.id,
		},
		technology: technology,
	}
	parent.containers = append(parent.containers, c)
	m.register(op, c)
	return c, nil
}

// AddContainerInstance creates a new runtime instance of container. The
// instance is bound by both reference and identifier, and its InstanceID is
// one more than the number of instances previously created for container.
func (m *Model) AddContainerInstance(container *Container) (*ContainerInstance, error) {
	const op = "AddContainerInstance"
	if container == nil {
		return nil, m.rejected(op, validation.New("container", "A container must be specified."))
	}
	if m.elementsByID[container.id] != Element(container) {
		return nil, m.rejected(op, validation.New("container", "The container does not belong to this model."))
	}

	id, err := m.allocateID(op)
	if err != nil {
		return nil, err
	}
	m.instanceCounts[container.id]++
	ci := &ContainerInstance{
		element: element{
			taggable: taggable{kind: KindContainerInstance},
			model:    m,
			id:       id,
		},
		container:   container,
		containerID: container.id,
		instanceID:  m.instanceCounts[container.id],
	}
	m.register(op, ci)
	return ci, nil
}

// addRelationship validates and interns a new relationship. Nothing is
// registered when validation fails.
func (m *Model) addRelationship(source, destination Element, description, technology string) (*Relationship, error) {
	const op = "Uses"
	if isNil(destination) {
		return nil, m.rejected(op, validation.New("destination", validation.MsgDestinationRequired),
			logging.ElementID(source.ID()))
	}
	if !m.owns(source) || !m.owns(destination) {
		return nil, m.rejected(op, validation.New("destination", "The source and destination must belong to the same model."),
			logging.ElementID(source.ID()))
	}
	for _, r := range m.relationships {
		if r.same(source, destination, description) {
			return nil, m.rejected(op, validation.New("destination",
				fmt.Sprintf("A relationship described as %q already exists between %s and %s.",
					description, source.CanonicalName(), destination.CanonicalName())),
				logging.ElementID(source.ID()))
		}
	}

	id, err := m.allocateID(op)
	if err != nil {
		return nil, err
	}
	r := &Relationship{
		taggable:    taggable{kind: KindRelationship},
		id:          id,
		source:      source,
		destination: destination,
		description: description,
		technology:  technology,
	}
	m.relationships = append(m.relationships, r)
	m.relationshipsByID[id] = r
	m.recorder.RecordRelationship()
	m.recorder.RecordOperation(op, statusSuccess)
	m.logger.Debug("relationship added",
		logging.RelationshipID(id),
		logging.String("source", source.CanonicalName()),
		logging.String("destination", destination.CanonicalName()))
	return r, nil
}

func (m *Model) relationshipsFrom(id string) []*Relationship {
	var out []*Relationship
	for _, r := range m.relationships {
		if r.source.ID() == id {
			out = append(out, r)
		}
	}
	return out
}

func (m *Model) owns(e Element) bool {
	return m.elementsByID[e.ID()] == e
}

// allocateID draws the next identifier, refusing one that is already taken.
func (m *Model) allocateID(op string) (string, error) {
	id := m.ids.NextID()
	if _, taken := m.elementsByID[id]; taken {
		return "", elementError(op, id, ErrIDCollision)
	}
	if _, taken := m.relationshipsByID[id]; taken {
		return "", relationshipError(op, id, ErrIDCollision)
	}
	return id, nil
}

func (m *Model) register(op string, e Element) {
	m.elements = append(m.elements, e)
	m.elementsByID[e.ID()] = e
	m.recorder.RecordElement(e.Kind().String())
	m.recorder.RecordOperation(op, statusSuccess)
	m.logger.Debug("element added",
		logging.ElementID(e.ID()),
		logging.Kind(e.Kind().String()),
		logging.CanonicalName(e.CanonicalName()))
}

// rejected logs and counts a failed operation and returns err unchanged.
func (m *Model) rejected(op string, err error, fields ...logging.Field) error {
	m.recorder.RecordOperation(op, statusRejected)
	m.logger.Warn("operation rejected", append(fields, logging.Operation(op), logging.Error(err))...)
	return err
}
