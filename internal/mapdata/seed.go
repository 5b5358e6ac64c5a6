package mapdata

// defaultDocument is the map document the store boots with. Centered on
// Bhopal; replaced wholesale by the bulk update endpoint.
func defaultDocument() Document {
	return Document{
		Zones: []Zone{
			{
				Name:  "Old City",
				Color: "red",
				Coordinates: [][]float64{
					{23.2685, 77.3901},
					{23.2712, 77.4102},
					{23.2598, 77.4155},
					{23.2541, 77.3988},
				},
			},
			{
				Name:  "Railway Station Area",
				Color: "orange",
				Coordinates: [][]float64{
					{23.2662, 77.4312},
					{23.2701, 77.4418},
					{23.2609, 77.4460},
					{23.2580, 77.4351},
				},
			},
			{
				Name:   "Upper Lake Buffer",
				Color:  "green",
				Center: []float64{23.2530, 77.3650},
				Radius: 1800,
			},
		},
		Places: []Place{
			{
				Name:        "Upper Lake Viewpoint",
				Category:    "Scenic",
				Coordinates: []float64{23.2533, 77.3712},
				Icon:        "https://cdn.sahyatri.app/icons/scenic.png",
			},
			{
				Name:        "Taj-ul-Masajid",
				Category:    "Heritage",
				Coordinates: []float64{23.2618, 77.3925},
				Icon:        "https://cdn.sahyatri.app/icons/heritage.png",
			},
			{
				Name:        "DB City Mall",
				Category:    "Shopping",
				Coordinates: []float64{23.2332, 77.4343},
				Icon:        "https://cdn.sahyatri.app/icons/shopping.png",
			},
		},
		Points: []Point{
			{ID: 1, Position: []float64{23.29, 77.40}, Label: "Arjun Gupta"},
		},
	}
}
