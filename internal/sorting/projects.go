package sorting

import (
	"strings"

	"github.com/dori/portfolio/internal/model"
)

// ProjectsByCreatedDate orders projects by creation time
func ProjectsByCreatedDate(descending bool) Descriptor[model.Project] {
	return Descriptor[model.Project]{
		Key: "createdDate",
		Compare: func(a, b model.Project) int {
			return a.CreatedDate.Compare(b.CreatedDate)
		},
		Descending: descending,
	}
}

// ProjectsByTitle orders projects by title
func ProjectsByTitle() Descriptor[model.Project] {
	return Descriptor[model.Project]{
		Key: "title",
		Compare: func(a, b model.Project) int {
			return strings.Compare(a.ProjectTitle(), b.ProjectTitle())
		},
	}
}

// DefaultProjects lists newest projects first
func DefaultProjects() []Descriptor[model.Project] {
	return []Descriptor[model.Project]{ProjectsByCreatedDate(true)}
}
