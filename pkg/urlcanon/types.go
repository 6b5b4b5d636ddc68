package urlcanon

// QueryPair is one decoded key/value unit of a query string.
type QueryPair struct {
	Key   []byte
	Value []byte
}

// EncodedPair is a QueryPair after percent-encoding.
type EncodedPair struct {
	Key   string
	Value string
}

// ParsedURL holds the structural parts of a URL. Host is the whole
// authority, including userinfo and port. Path is already escaped.
type ParsedURL struct {
	Scheme      string
	Host        string
	Path        string
	Pairs       []QueryPair
	Fragment    string
	HasFragment bool
}
