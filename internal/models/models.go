package models

// JSONValue is a generic type to represent any JSON value.
// It holds one of *JSONObject, JSONArray, string, Number, bool or nil.
type JSONValue interface{}

// JSONArray represents a JSON array, which is a slice of JSONValues.
type JSONArray []JSONValue

// Number is a JSON number kept as its literal text.
type Number string

// String returns the literal text of the number.
func (n Number) String() string { return string(n) }

// JSONObject is a JSON object that remembers the order its keys were first seen in.
// Setting an existing key replaces its value but keeps its original position.
type JSONObject struct {
	keys   []string
	values map[string]JSONValue
}

// NewJSONObject creates an empty object.
func NewJSONObject() *JSONObject {
	return &JSONObject{values: make(map[string]JSONValue)}
}

// Set stores value under key.
func (o *JSONObject) Set(key string, value JSONValue) {
	if o.values == nil {
		o.values = make(map[string]JSONValue)
	}
	if _, exists := o.values[key]; !exists {
		o.keys = append(o.keys, key)
	}
	o.values[key] = value
}

// Get returns the value stored under key.
func (o *JSONObject) Get(key string) (JSONValue, bool) {
	v, ok := o.values[key]
	return v, ok
}

// Keys returns the keys in insertion order. The slice must not be modified.
func (o *JSONObject) Keys() []string {
	return o.keys
}

// Len returns the number of keys.
func (o *JSONObject) Len() int {
	return len(o.keys)
}

// Each calls fn for every member in insertion order.
func (o *JSONObject) Each(fn func(key string, value JSONValue)) {
	for _, k := range o.keys {
		fn(k, o.values[k])
	}
}

// IntermediateRepresentation holds the parsed document handed to the renderer.
type IntermediateRepresentation struct {
	Root        JSONValue
	RootIsArray bool // True if the root of the JSON is an array vs an object
}
