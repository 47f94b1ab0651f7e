package logging

// Common field constructors
func String(key, value string) Field {
	return Field{Key: key, Value: value}
}

func Int(key string, value int) Field {
	return Field{Key: key, Value: value}
}

func Bool(key string, value bool) Field {
	return Field{Key: key, Value: value}
}

func Error(err error) Field {
	if err == nil {
		return Field{Key: "error", Value: nil}
	}
	return Field{Key: "error", Value: err.Error()}
}

func Any(key string, value any) Field {
	return Field{Key: key, Value: value}
}

// Model field helpers

func Component(name string) Field {
	return String("component", name)
}

func ElementID(id string) Field {
	return String("element_id", id)
}

func RelationshipID(id string) Field {
	return String("relationship_id", id)
}

func Kind(kind string) Field {
	return String("kind", kind)
}

func CanonicalName(name string) Field {
	return String("canonical_name", name)
}

func Operation(op string) Field {
	return String("operation", op)
}
