package schema

// TextKey holds the element text in a projection.
const TextKey = "#text"

// Project returns a plain map view of obj holding only the present fields.
// Attributes map to their values, child elements to nested maps and
// collections to slices. Unmapped content is not included.
func Project[T any](s *Schema[T], obj *T) map[string]any {
	if obj == nil {
		return nil
	}

	return s.project(obj)
}

func (s *Schema[T]) project(obj *T) map[string]any {
	out := make(map[string]any, len(s.attrs)+len(s.elems))

	for _, field := range s.attrs {
		if value, ok := field.project(obj); ok {
			out[field.name] = value
		}
	}

	for _, field := range s.elems {
		if value, ok := field.project(obj); ok {
			out[field.name] = value
		}
	}

	if s.text != nil {
		if text, ok := s.text(obj).Get(); ok {
			out[TextKey] = text
		}
	}

	return out
}
