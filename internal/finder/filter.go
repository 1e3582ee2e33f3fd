package finder

import "bizfinder/internal/models"

// FilterNoWebsite keeps the places without a website, in input order.
func FilterNoWebsite(places []models.Place) []models.Place {
	out := make([]models.Place, 0, len(places))
	for _, p := range places {
		if !p.HasWebsite() {
			out = append(out, p)
		}
	}
	return out
}

// Partition splits places into those absent from known, in input order, and
// returns the ids of every input place. The caller persists allIDs, not just
// the new ones, so a place is reported as new at most once.
func Partition(places []models.Place, known models.IDSet) (newPlaces []models.Place, allIDs models.IDSet) {
	newPlaces = make([]models.Place, 0, len(places))
	allIDs = make(models.IDSet, len(places))
	for _, p := range places {
		allIDs.Add(p.ID)
		if !known.Has(p.ID) {
			newPlaces = append(newPlaces, p)
		}
	}
	return newPlaces, allIDs
}
