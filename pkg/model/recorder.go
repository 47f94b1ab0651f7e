package model

// Recorder receives counts of model activity. *metrics.Registry implements it.
type Recorder interface {
	RecordElement(kind string)
	RecordRelationship()
	RecordHealthCheck()
	RecordOperation(operation, status string)
}

type nopRecorder struct{}

func (nopRecorder) RecordElement(string)           {}
func (nopRecorder) RecordRelationship()            {}
func (nopRecorder) RecordHealthCheck()             {}
func (nopRecorder) RecordOperation(string, string) {}
