package model

import (
	"testing"
)

type countingRecorder struct {
	elements      map[string]int
	relationships int
	healthChecks  int
	operations    map[string]int
}

func newCountingRecorder() *countingRecorder {
	return &countingRecorder{
		elements:   make(map[string]int),
		operations: make(map[string]int),
	}
}

func (r *countingRecorder) RecordElement(kind string) { r.elements[kind]++ }
func (r *countingRecorder) RecordRelationship()       { r.relationships++ }
func (r *countingRecorder) RecordHealthCheck()        { r.healthChecks++ }
func (r *countingRecorder) RecordOperation(operation, status string) {
	r.operations[operation+"/"+status]++
}

// fixture mirrors the sample used throughout: an external "System" with a
// "Database Schema" container.
type fixture struct {
	model    *Model
	system   *SoftwareSystem
	database *Container
}

func newFixture(t *testing.T, opts ...Option) *fixture {
	t.Helper()
	m := NewModel(opts...)
	system, err := m.AddSoftwareSystem(LocationExternal, "System", "Description")
	if err != nil {
		t.Fatalf("AddSoftwareSystem failed: %v", err)
	}
	database, err := system.AddContainer("Database Schema", "Stores data", "MySQL")
	if err != nil {
		t.Fatalf("AddContainer failed: %v", err)
	}
	return &fixture{model: m, system: system, database: database}
}

func (f *fixture) instance(t *testing.T) *ContainerInstance {
	t.Helper()
	ci, err := f.model.AddContainerInstance(f.database)
	if err != nil {
		t.Fatalf("AddContainerInstance failed: %v", err)
	}
	return ci
}
