package pathresolver

import "encoding/json"

// ToDocument converts any JSON-tagged struct into the untyped
// map[string]any representation the path grammar operates on.
func ToDocument(v any) (map[string]any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var doc map[string]any
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// FromDocument decodes an untyped document back into a typed struct.
func FromDocument(doc map[string]any, out any) error {
	b, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, out)
}

// DeepCopy returns an independent copy of doc. The ScenarioEngine relies
// on this to guarantee it never mutates the caller's request in place,
// even transiently.
func DeepCopy(doc map[string]any) (map[string]any, error) {
	b, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	var out map[string]any
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return out, nil
}
