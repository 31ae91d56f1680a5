package models

// MedicationCatalogItem describes one medication available for logging.
// The journal core reads the catalog and never mutates it; inactive items
// are not offered for new entries but stay resolvable by id so historical
// entries keep their display names.
type MedicationCatalogItem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Dose        string `json:"dose,omitempty"`
	DefaultTime string `json:"defaultTime,omitempty"`
	PRN         bool   `json:"prn,omitempty"`
	Active      bool   `json:"active"`
}

// ActiveCatalog filters the catalog down to items offered for logging.
func ActiveCatalog(items []MedicationCatalogItem) []MedicationCatalogItem {
	active := make([]MedicationCatalogItem, 0, len(items))
	for _, it := range items {
		if it.Active {
			active = append(active, it)
		}
	}
	return active
}
