package restroom

import "github.com/google/uuid"

// Seed returns the build-time catalog dataset. Ids are assigned once at
// process start; the collection is never loaded from disk or network.
func Seed() []Restroom {
	return []Restroom{
		{
			ID:          uuid.New(),
			Name:        "SM City Manila Restroom",
			Position:    Position{Lat: 14.5906, Lng: 120.9831},
			Cleanliness: 4,
			Features:    []string{"Wheelchair Accessible", "Hand Dryer", "Soap Available"},
			PaymentType: PaymentFree,
			Type:        TypePrivate,
			Gender:      []string{"Male", "Female"},
		},
		{
			ID:          uuid.New(),
			Name:        "Rizal Park Public Restroom",
			Position:    Position{Lat: 14.5832, Lng: 120.9794},
			Cleanliness: 3,
			Features:    []string{"Tabo"},
			PaymentType: PaymentPaid,
			Type:        TypePublic,
			Gender:      []string{"Male", "Female"},
		},
		{
			ID:          uuid.New(),
			Name:        "Ayala Malls Manila Bay Restroom",
			Position:    Position{Lat: 14.5327, Lng: 120.9909},
			Cleanliness: 5,
			Features:    []string{"Wheelchair Accessible", "Hand Dryer", "Paper Towels", "Soap Available", "Bidet"},
			PaymentType: PaymentFree,
			Type:        TypePrivate,
			Gender:      []string{"Male", "Female", "Gender-Neutral"},
		},
		{
			ID:          uuid.New(),
			Name:        "Quezon Memorial Circle Comfort Room",
			Position:    Position{Lat: 14.6515, Lng: 121.0493},
			Cleanliness: 3,
			Features:    []string{"Soap Available", "Tabo"},
			PaymentType: PaymentPaid,
			Type:        TypePublic,
			Gender:      []string{"Male", "Female"},
		},
		{
			ID:          uuid.New(),
			Name:        "Robinsons Place Ermita Restroom",
			Position:    Position{Lat: 14.5774, Lng: 120.9837},
			Cleanliness: 4,
			Features:    []string{"Hand Dryer", "Soap Available", "Bidet"},
			PaymentType: PaymentFree,
			Type:        TypePrivate,
			Gender:      []string{"Male", "Female", "Unisex"},
		},
		{
			ID:          uuid.New(),
			Name:        "Intramuros Visitor Center Restroom",
			Position:    Position{Lat: 14.5896, Lng: 120.9752},
			Cleanliness: 4,
			Features:    []string{"Wheelchair Accessible", "Paper Towels", "Soap Available"},
			PaymentType: PaymentFree,
			Type:        TypePublic,
			Gender:      []string{"Male", "Female"},
		},
		{
			ID:          uuid.New(),
			Name:        "Binondo Church Plaza Restroom",
			Position:    Position{Lat: 14.6003, Lng: 120.9744},
			Cleanliness: 2,
			Features:    []string{"Tabo"},
			PaymentType: PaymentPaid,
			Type:        TypePublic,
			Gender:      []string{"Male", "Female"},
		},
		{
			ID:          uuid.New(),
			Name:        "Lucky Chinatown Mall Restroom",
			Position:    Position{Lat: 14.6033, Lng: 120.9717},
			Cleanliness: 5,
			Features:    []string{"Wheelchair Accessible", "Hand Dryer", "Paper Towels", "Soap Available"},
			PaymentType: PaymentFree,
			Type:        TypePrivate,
			Gender:      []string{"Male", "Female", "All-Gender"},
		},
		{
			ID:          uuid.New(),
			Name:        "Manila Ocean Park Restroom",
			Position:    Position{Lat: 14.5795, Lng: 120.9726},
			Cleanliness: 4,
			Features:    []string{"Hand Dryer", "Soap Available"},
			PaymentType: PaymentFree,
			Type:        TypePrivate,
			Gender:      []string{"Male", "Female"},
		},
		{
			ID:          uuid.New(),
			Name:        "UST España Gate Comfort Room",
			Position:    Position{Lat: 14.6096, Lng: 120.9893},
			Cleanliness: 3,
			Features:    []string{"Soap Available"},
			PaymentType: PaymentFree,
			Type:        TypePublic,
			Gender:      []string{"Male", "Female", "Gender-Neutral"},
		},
	}
}
