package loader

// Document is the top-level fixture file
type Document struct {
	Relations []RelationMeta `yaml:"relations"`
}

// RelationMeta describes one base relation and its rows
type RelationMeta struct {
	Name       string          `yaml:"name"`
	PrimaryKey string          `yaml:"primary_key,omitempty"`
	Attributes []AttributeMeta `yaml:"attributes"`
	Rows       [][]any         `yaml:"rows,omitempty"`
}

// AttributeMeta describes one attribute
type AttributeMeta struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}
