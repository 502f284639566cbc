package header

import "fmt"

func NewResponse(version, statusPhrase string) ResponseHeader {
	return &responseHeader{
		startLine: []byte(fmt.Sprintf("%s %s", version, statusPhrase)),
		fields:    make([]Field, 0, 2),
	}
}

func (resp *responseHeader) Value(key string) string {
	return value(resp.fields, key)
}

func (resp *responseHeader) Set(key string, value string) {
	resp.fields = set(resp.fields, key, value)
}

func (resp *responseHeader) Fields() []Field {
	return resp.fields
}

func (resp *responseHeader) Finalize() []byte {
	return finalize(resp.startLine, resp.fields)
}
