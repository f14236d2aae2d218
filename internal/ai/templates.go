package ai

import (
	"os"
	"path/filepath"
)

// TemplateStore resolves prompt templates by task from a directory of static
// text files. Reads are stateless; the files never change at runtime.
type TemplateStore struct {
	dir string
}

// NewTemplateStore creates a store rooted at dir.
func NewTemplateStore(dir string) *TemplateStore {
	return &TemplateStore{dir: dir}
}

// Load returns the template for the given task, or the empty string when no
// template file exists. A missing template is a valid state: the prompt then
// degrades to the serialized payload alone.
func (s *TemplateStore) Load(task Task) string {
	data, err := os.ReadFile(filepath.Join(s.dir, string(task)+".md"))
	if err != nil {
		return ""
	}
	return string(data)
}
