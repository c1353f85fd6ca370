package models

// JSONValue is a generic type to represent any JSON value.
// This can be a string, float64, bool, nil, JSONObject, or JSONArray.
// Every site that builds or inspects a value switches over exactly these
// cases; no other dynamic types are ever stored in the tree.
type JSONValue interface{}

// JSONObject represents a JSON object, which is a map of strings to JSONValues.
type JSONObject map[string]JSONValue

// JSONArray represents a JSON array, which is a slice of JSONValues.
type JSONArray []JSONValue
