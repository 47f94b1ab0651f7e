package main

import (
	"fmt"
	"io"

	"github.com/dd0wney/cluso-c4/pkg/constraints"
	"github.com/dd0wney/cluso-c4/pkg/model"
)

// buildSampleModel declares a system with a replicated database and a web
// application in front of it.
func buildSampleModel(opts ...model.Option) (*model.Model, error) {
	m := model.NewModel(opts...)

	system, err := m.AddSoftwareSystem(model.LocationExternal, "System", "Description")
	if err != nil {
		return nil, err
	}
	database, err := system.AddContainer("Database Schema", "Stores data", "MySQL")
	if err != nil {
		return nil, err
	}
	database.AddTags("Database")
	web, err := system.AddContainer("Web Application", "Serves the UI", "Go")
	if err != nil {
		return nil, err
	}

	primary, err := m.AddContainerInstance(database)
	if err != nil {
		return nil, err
	}
	primary.AddTags("Primary Instance")
	secondary, err := m.AddContainerInstance(database)
	if err != nil {
		return nil, err
	}
	webInstance, err := m.AddContainerInstance(web)
	if err != nil {
		return nil, err
	}

	if _, err := webInstance.AddHealthCheck("Web application is working", "http://localhost:8080"); err != nil {
		return nil, err
	}
	if _, err := primary.AddHealthCheck("Database is reachable", "http://localhost:3306/health", model.WithTimeout(5)); err != nil {
		return nil, err
	}

	if _, err := webInstance.Uses(primary, "Reads from and writes to", "JDBC"); err != nil {
		return nil, err
	}
	if _, err := primary.Uses(secondary, "Replicates data to", "Some technology"); err != nil {
		return nil, err
	}
	return m, nil
}

func printModel(w io.Writer, m *model.Model) {
	fmt.Fprintln(w, "Elements:")
	for _, e := range m.Elements() {
		fmt.Fprintf(w, "  %-4s %-36s %s\n", e.ID(), e.CanonicalName(), e.Tags())
		if ci, ok := e.(*model.ContainerInstance); ok {
			for _, hc := range ci.HealthChecks() {
				fmt.Fprintf(w, "       health %q %s every %ds (timeout %ds)\n", hc.Name, hc.URL, hc.Interval, hc.Timeout)
			}
		}
	}
	fmt.Fprintln(w, "Relationships:")
	for _, r := range m.Relationships() {
		fmt.Fprintf(w, "  %-4s %s -> %s %q [%s]\n",
			r.ID(), r.Source().CanonicalName(), r.Destination().CanonicalName(), r.Description(), r.Technology())
	}
}

func printCheck(w io.Writer, m *model.Model) error {
	result := constraints.NewDefaultValidator().Validate(m)
	for _, v := range result.Violations {
		fmt.Fprintf(w, "%s %s: %s\n", v.Severity, v.Constraint, v.Message)
	}
	if !result.Valid {
		return fmt.Errorf("model has %d error(s)", len(result.GetViolationsBySeverity(constraints.Error)))
	}
	fmt.Fprintf(w, "OK: %d element(s), %d relationship(s)\n", len(m.Elements()), len(m.Relationships()))
	return nil
}
