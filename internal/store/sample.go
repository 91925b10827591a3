package store

import (
	"fmt"

	"github.com/dori/portfolio/internal/model"
)

const (
	sampleProjects        = 5
	sampleItemsPerProject = 10
)

// CreateSampleData adds five projects of ten items each, with random closed,
// priority and completed values, and saves.
func (s *Store) CreateSampleData() SaveResult {
	for pi := 1; pi <= sampleProjects; pi++ {
		title := fmt.Sprintf("Project %d", pi)
		project := s.CreateProject(ProjectFields{
			Title:  &title,
			Closed: s.rng.IntN(2) == 1,
		})

		for ii := 1; ii <= sampleItemsPerProject; ii++ {
			itemTitle := fmt.Sprintf("Item %d", ii)
			created := s.now()
			_, err := s.CreateItem(ItemFields{
				ProjectID:    &project.ID,
				Title:        &itemTitle,
				CreationDate: &created,
				Priority:     model.Priority(s.rng.IntN(3) + 1),
				Completed:    s.rng.IntN(2) == 1,
			})
			if err != nil {
				s.logger.Error("failed to create sample item", "error", err)
			}
		}
	}

	return s.Save()
}
