package models

// DataLocation addresses a node of the realtime database tree. Path is a
// slash-separated list of keys relative to the configured base path; Key, when
// set, names a child of Path.
type DataLocation struct {
	Path string
	Key  string
}
