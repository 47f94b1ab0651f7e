package model

import (
	"fmt"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func newPropertyModel() (*Model, *SoftwareSystem, *Container) {
	m := NewModel()
	system, _ := m.AddSoftwareSystem(LocationInternal, "System", "")
	container, _ := system.AddContainer("Container", "", "")
	return m, system, container
}

var tagPool = []string{
	TagElement, TagContainer, TagContainerInstance,
	"Database", "Primary", "Secondary", "Cache", "Legacy", "", " ",
}

// tagGen produces tags from a small pool so that collisions, required tags
// and blanks show up often.
func tagGen() gopter.Gen {
	return gen.IntRange(0, len(tagPool)-1).Map(func(i int) string {
		return tagPool[i]
	})
}

// TestTagInvariants uses property-based testing to verify tag invariants
func TestTagInvariants(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("required tags survive any removal sequence", prop.ForAll(
		func(added, removed []string) bool {
			m, _, container := newPropertyModel()
			ci, _ := m.AddContainerInstance(container)
			ci.AddTags(added...)
			for _, tag := range removed {
				ci.RemoveTag(tag)
			}
			for _, tag := range RequiredTags(KindContainerInstance) {
				ci.RemoveTag(tag)
			}
			for _, tag := range RequiredTags(KindContainerInstance) {
				if !ci.HasTag(tag) {
					return false
				}
			}
			return true
		},
		gen.SliceOf(tagGen()),
		gen.SliceOf(tagGen()),
	))

	properties.Property("tags are duplicate free and ordered", prop.ForAll(
		func(batches [][]string) bool {
			_, _, container := newPropertyModel()
			var firstSeen []string
			for _, batch := range batches {
				container.AddTags(batch...)
				for _, tag := range batch {
					tag = strings.TrimSpace(tag)
					if tag != "" && !containsTag(firstSeen, tag) && !containsTag(RequiredTags(KindContainer), tag) {
						firstSeen = append(firstSeen, tag)
					}
				}
			}
			want := append(RequiredTags(KindContainer), firstSeen...)
			return strings.Join(container.TagList(), "\x00") == strings.Join(want, "\x00")
		},
		gen.SliceOf(gen.SliceOf(tagGen())),
	))

	properties.TestingRun(t)
}

// TestInstanceInvariants checks ordinal assignment and canonical names.
func TestInstanceInvariants(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("ordinals are 1..N per container in creation order", prop.ForAll(
		func(picks []bool) bool {
			m, system, first := newPropertyModel()
			second, _ := system.AddContainer("Second", "", "")
			var nFirst, nSecond int
			for _, pickFirst := range picks {
				c, next := second, &nSecond
				if pickFirst {
					c, next = first, &nFirst
				}
				ci, err := m.AddContainerInstance(c)
				if err != nil {
					return false
				}
				*next++
				if ci.InstanceID() != *next {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.Bool()),
	))

	properties.Property("canonical name is /system/container[ordinal]", prop.ForAll(
		func(systemName, containerName string, count uint8) bool {
			m := NewModel()
			system, err := m.AddSoftwareSystem(LocationInternal, systemName, "")
			if err != nil {
				return false
			}
			container, err := system.AddContainer(containerName, "", "")
			if err != nil {
				return false
			}
			n := int(count%8) + 1
			for i := 1; i <= n; i++ {
				ci, _ := m.AddContainerInstance(container)
				want := fmt.Sprintf("/%s/%s[%d]", systemName, containerName, i)
				if ci.CanonicalName() != want {
					return false
				}
			}
			return true
		},
		gen.Identifier(),
		gen.Identifier(),
		gen.UInt8(),
	))

	properties.Property("uses returns exactly what it was given", prop.ForAll(
		func(description, technology string) bool {
			m, _, container := newPropertyModel()
			a, _ := m.AddContainerInstance(container)
			b, _ := m.AddContainerInstance(container)
			if _, err := a.Uses(nil, description, technology); err == nil {
				return false
			}
			rel, err := a.Uses(b, description, technology)
			if err != nil {
				return false
			}
			return rel.Source() == Element(a) &&
				rel.Destination() == Element(b) &&
				rel.Description() == description &&
				rel.Technology() == technology &&
				len(m.Relationships()) == 1
		},
		gen.AnyString(),
		gen.AnyString(),
	))

	properties.TestingRun(t)
}
