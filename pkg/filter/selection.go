package filter

import "slices"

// Selection maps every category to the option ids chosen for it. An empty category places no constraint.
type Selection [categoryCount][]string

// Set replaces the ids selected for a category.
func (s *Selection) Set(category Category, ids ...string) {
	s[category] = slices.Clone(ids)
}

func (s *Selection) Get(category Category) []string {
	return s[category]
}

// Toggle adds the id to the category when absent and removes it when present, the way the grid picker does.
func (s *Selection) Toggle(category Category, id string) {
	if index := slices.Index(s[category], id); index >= 0 {
		s[category] = slices.Delete(s[category], index, index+1)

		return
	}

	s[category] = append(s[category], id)
}

func (s *Selection) IsEmpty() bool {
	for _, ids := range s {
		if len(ids) > 0 {
			return false
		}
	}

	return true
}

// Populated lists the categories with at least one selected id.
func (s *Selection) Populated() []Category {
	var populated []Category

	for category, ids := range s {
		if len(ids) > 0 {
			populated = append(populated, Category(category))
		}
	}

	return populated
}

// FromMap builds a selection from category names, as they arrive on the wire.
func FromMap(values map[string][]string) (Selection, error) {
	var selection Selection

	for name, ids := range values {
		category, err := ParseCategory(name)
		if err != nil {
			return Selection{}, err
		}

		selection.Set(category, ids...)
	}

	return selection, nil
}

// ToMap is the inverse of FromMap; every category is present, empty or not.
func (s *Selection) ToMap() map[string][]string {
	values := make(map[string][]string, categoryCount)

	for category, ids := range s {
		values[Category(category).String()] = append([]string{}, ids...)
	}

	return values
}
