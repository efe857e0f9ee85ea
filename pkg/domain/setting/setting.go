package setting

// Setting is a loosely typed key/value pair. Values are kept as strings
// regardless of what they represent.
type Setting struct {
	ID    uint
	Key   string
	Value string
}

// New creates a Setting for key and value.
func New(key, value string) *Setting {
	return &Setting{Key: key, Value: value}
}
