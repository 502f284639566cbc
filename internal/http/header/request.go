package header

func NewRequest(data []byte) (RequestHeader, error) {
	header, err := parseRequest(data)
	if err != nil {
		return nil, err
	}
	return header, nil
}

func (req *requestHeader) Value(key string) string {
	return value(req.fields, key)
}

func (req *requestHeader) Fields() []Field {
	return req.fields
}

func (req *requestHeader) Method() string {
	return req.method
}

func (req *requestHeader) Path() string {
	return req.path
}

func (req *requestHeader) Version() string {
	return req.version
}
