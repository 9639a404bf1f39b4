package catalog

// SpecificationMap converts a product's specification entries into a
// name-keyed map. Entries with an empty property name are dropped and
// duplicate names are last-write-wins. A nil input yields an empty map.
func SpecificationMap(entries []SpecificationEntry) map[string]string {
	specs := make(map[string]string, len(entries))
	for _, entry := range entries {
		if entry.PropertyName == "" {
			continue
		}
		specs[entry.PropertyName] = entry.Value
	}
	return specs
}
