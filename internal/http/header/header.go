package header

type Field struct {
	Key   string
	Value string
}

type RequestHeader interface {
	Value(key string) string
	Fields() []Field
	Method() string
	Path() string
	Version() string
}

type ResponseHeader interface {
	Value(key string) string
	Set(key string, value string)
	Fields() []Field
	Finalize() []byte
}

type requestHeader struct {
	method  string
	path    string
	version string
	fields  []Field
}

type responseHeader struct {
	startLine []byte
	fields    []Field
}

func value(fields []Field, key string) string {
	for _, f := range fields {
		if f.Key == key {
			return f.Value
		}
	}
	return ""
}

// set replaces an existing key in place and appends otherwise, so the wire
// order of first occurrence is kept.
func set(fields []Field, key, value string) []Field {
	for i := range fields {
		if fields[i].Key == key {
			fields[i].Value = value
			return fields
		}
	}
	return append(fields, Field{Key: key, Value: value})
}
