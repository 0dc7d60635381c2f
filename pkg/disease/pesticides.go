package disease

import (
	"encoding/json"
	"fmt"
	"strings"

	"agrifusion/domain"
	"agrifusion/entities"
)

// ParsePesticides reads pesticides from form values. A JSON array in the
// "pesticides" field wins; otherwise flattened "pesticides[i][field]" values
// are collected for i = 0, 1, ... until an index has no fields at all.
func ParsePesticides(form map[string][]string) ([]entities.Pesticide, error) {
	if raw := first(form, "pesticides"); strings.TrimSpace(raw) != "" {
		var list []entities.Pesticide
		if err := json.Unmarshal([]byte(raw), &list); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidPesticides, err)
		}
		return list, nil
	}

	list := make([]entities.Pesticide, 0)
	for i := 0; ; i++ {
		key := func(field string) string { return fmt.Sprintf("pesticides[%d][%s]", i, field) }
		_, hasName := form[key("name")]
		_, hasType := form[key("type")]
		_, hasDosage := form[key("dosage")]
		_, hasFrequency := form[key("frequency")]
		_, hasTarget := form[key("target")]
		if !hasName && !hasType && !hasDosage && !hasFrequency && !hasTarget {
			break
		}
		list = append(list, entities.Pesticide{
			Name:      first(form, key("name")),
			Type:      first(form, key("type")),
			Dosage:    first(form, key("dosage")),
			Frequency: first(form, key("frequency")),
			Target:    first(form, key("target")),
		})
	}
	return list, nil
}

func first(form map[string][]string, key string) string {
	if v := form[key]; len(v) > 0 {
		return v[0]
	}
	return ""
}
