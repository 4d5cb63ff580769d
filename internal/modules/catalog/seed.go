// README: Seed datasets. The catalog is built in memory at startup; there is
// no upstream source of truth for this data.
package catalog

import (
	"fmt"

	"travelbuddy/internal/types"
)

func usd(major float64) types.Money { return types.FromFloat(major, "USD") }

func seedDestinations() []Destination {
	return []Destination{
		{
			ID: 1, Name: "Paris, France", Region: "Europe", CostLevel: 3,
			Features:     FeatureScores{Cultural: 0.9, Outdoor: 0.4, Culinary: 0.8, Relaxation: 0.5, Shopping: 0.9, Entertainment: 0.8, Sightseeing: 0.9},
			Climate:      "temperate",
			BestSeasons:  []string{"spring", "fall"},
			AvgDailyCost: usd(150),
			Languages:    []string{"French", "English"},
			Currency:     "EUR",
			Description:  "The City of Light, known for its art, fashion, gastronomy, and culture.",
			LocalTransport: []string{"Metro", "Bus", "Taxi", "Bicycle"},
			Attractions: []string{"Eiffel Tower", "Louvre Museum", "Notre-Dame Cathedral",
				"Arc de Triomphe", "Montmartre", "Seine River"},
			Position: types.Point{Lat: 48.8566, Lng: 2.3522},
		},
		{
			ID: 2, Name: "Tokyo, Japan", Region: "Asia", CostLevel: 4,
			Features:     FeatureScores{Cultural: 0.8, Outdoor: 0.3, Culinary: 0.9, Relaxation: 0.4, Shopping: 0.8, Entertainment: 0.9, Sightseeing: 0.8},
			Climate:      "temperate",
			BestSeasons:  []string{"spring", "fall"},
			AvgDailyCost: usd(120),
			Languages:    []string{"Japanese", "English (limited)"},
			Currency:     "JPY",
			Description:  "A vibrant mix of traditional and ultramodern culture.",
			LocalTransport: []string{"Metro", "JR Lines", "Bus", "Taxi"},
			Attractions: []string{"Tokyo Tower", "Shibuya Crossing", "Meiji Shrine",
				"Senso-ji Temple", "Imperial Palace", "Akihabara"},
			Position: types.Point{Lat: 35.6762, Lng: 139.6503},
		},
		{
			ID: 3, Name: "New York, USA", Region: "North America", CostLevel: 4,
			Features:     FeatureScores{Cultural: 0.9, Outdoor: 0.5, Culinary: 0.9, Relaxation: 0.3, Shopping: 0.9, Entertainment: 0.9, Sightseeing: 0.8},
			Climate:      "temperate",
			BestSeasons:  []string{"spring", "fall"},
			AvgDailyCost: usd(200),
			Languages:    []string{"English"},
			Currency:     "USD",
			Description:  "The city that never sleeps, a global center for finance, culture, and entertainment.",
			LocalTransport: []string{"Subway", "Bus", "Taxi", "Uber/Lyft"},
			Attractions: []string{"Times Square", "Statue of Liberty", "Central Park",
				"Empire State Building", "Broadway", "Brooklyn Bridge"},
			Position: types.Point{Lat: 40.7128, Lng: -74.0060},
		},
		{
			ID: 4, Name: "Rome, Italy", Region: "Europe", CostLevel: 3,
			Features:     FeatureScores{Cultural: 1.0, Outdoor: 0.6, Culinary: 0.9, Relaxation: 0.5, Shopping: 0.7, Entertainment: 0.6, Sightseeing: 0.9},
			Climate:      "mediterranean",
			BestSeasons:  []string{"spring", "fall"},
			AvgDailyCost: usd(120),
			Languages:    []string{"Italian", "English (limited)"},
			Currency:     "EUR",
			Description:  "The Eternal City with ancient ruins, art, and cuisine.",
			LocalTransport: []string{"Metro", "Bus", "Taxi", "Tram"},
			Attractions: []string{"Colosseum", "Roman Forum", "Vatican City",
				"Trevi Fountain", "Pantheon", "Spanish Steps"},
			Position: types.Point{Lat: 41.9028, Lng: 12.4964},
		},
		{
			ID: 5, Name: "Bali, Indonesia", Region: "Asia", CostLevel: 2,
			Features:     FeatureScores{Cultural: 0.7, Outdoor: 0.9, Culinary: 0.7, Relaxation: 1.0, Shopping: 0.5, Entertainment: 0.6, Sightseeing: 0.7},
			Climate:      "tropical",
			BestSeasons:  []string{"dry season (Apr-Oct)"},
			AvgDailyCost: usd(60),
			Languages:    []string{"Indonesian", "English"},
			Currency:     "IDR",
			Description:  "Island paradise with beaches, temples, and lush landscapes.",
			LocalTransport: []string{"Scooter rental", "Taxi", "Private driver"},
			Attractions: []string{"Ubud Monkey Forest", "Tanah Lot Temple", "Uluwatu Temple",
				"Kuta Beach", "Rice Terraces", "Mount Batur"},
			Position: types.Point{Lat: -8.4095, Lng: 115.1889},
		},
		{
			ID: 6, Name: "Barcelona, Spain", Region: "Europe", CostLevel: 3,
			Features:     FeatureScores{Cultural: 0.8, Outdoor: 0.7, Culinary: 0.9, Relaxation: 0.7, Shopping: 0.8, Entertainment: 0.7, Sightseeing: 0.8},
			Climate:      "mediterranean",
			BestSeasons:  []string{"spring", "early summer", "fall"},
			AvgDailyCost: usd(110),
			Languages:    []string{"Spanish", "Catalan", "English"},
			Currency:     "EUR",
			Description:  "Vibrant city with stunning architecture, beaches, and cuisine.",
			LocalTransport: []string{"Metro", "Bus", "Taxi", "Bicycle"},
			Attractions: []string{"Sagrada Familia", "Park Güell", "La Rambla",
				"Gothic Quarter", "Casa Batlló", "Barceloneta Beach"},
			Position: types.Point{Lat: 41.3874, Lng: 2.1686},
		},
		{
			ID: 7, Name: "Bangkok, Thailand", Region: "Asia", CostLevel: 2,
			Features:     FeatureScores{Cultural: 0.8, Outdoor: 0.5, Culinary: 0.9, Relaxation: 0.5, Shopping: 0.8, Entertainment: 0.7, Sightseeing: 0.7},
			Climate:      "tropical",
			BestSeasons:  []string{"cool season (Nov-Feb)"},
			AvgDailyCost: usd(50),
			Languages:    []string{"Thai", "English (limited)"},
			Currency:     "THB",
			Description:  "Bustling city with temples, markets, and vibrant street life.",
			LocalTransport: []string{"BTS Skytrain", "MRT Subway", "Taxi", "Tuk-tuk", "Boat"},
			Attractions: []string{"Grand Palace", "Wat Arun", "Chatuchak Market",
				"Khao San Road", "Jim Thompson House", "Chao Phraya River"},
			Position: types.Point{Lat: 13.7563, Lng: 100.5018},
		},
		{
			ID: 8, Name: "Cape Town, South Africa", Region: "Africa", CostLevel: 2,
			Features:     FeatureScores{Cultural: 0.7, Outdoor: 0.9, Culinary: 0.7, Relaxation: 0.6, Shopping: 0.6, Entertainment: 0.6, Sightseeing: 0.8},
			Climate:      "mediterranean",
			BestSeasons:  []string{"spring", "summer (Oct-Apr)"},
			AvgDailyCost: usd(80),
			Languages:    []string{"English", "Afrikaans", "Xhosa"},
			Currency:     "ZAR",
			Description:  "Stunning coastal city with mountains, beaches, and wildlife.",
			LocalTransport: []string{"MyCiti Bus", "Taxi", "Uber", "Car rental"},
			Attractions: []string{"Table Mountain", "Robben Island", "Cape of Good Hope",
				"V&A Waterfront", "Kirstenbosch Gardens", "Boulders Beach"},
			Position: types.Point{Lat: -33.9249, Lng: 18.4241},
		},
		{
			ID: 9, Name: "Sydney, Australia", Region: "Oceania", CostLevel: 4,
			Features:     FeatureScores{Cultural: 0.7, Outdoor: 0.9, Culinary: 0.8, Relaxation: 0.7, Shopping: 0.7, Entertainment: 0.7, Sightseeing: 0.8},
			Climate:      "temperate",
			BestSeasons:  []string{"spring", "fall"},
			AvgDailyCost: usd(150),
			Languages:    []string{"English"},
			Currency:     "AUD",
			Description:  "Harbor city with iconic landmarks, beaches, and outdoor lifestyle.",
			LocalTransport: []string{"Train", "Bus", "Ferry", "Light Rail", "Taxi"},
			Attractions: []string{"Sydney Opera House", "Sydney Harbour Bridge", "Bondi Beach",
				"Darling Harbour", "Royal Botanic Garden", "Taronga Zoo"},
			Position: types.Point{Lat: -33.8688, Lng: 151.2093},
		},
		{
			ID: 10, Name: "Rio de Janeiro, Brazil", Region: "South America", CostLevel: 2,
			Features:     FeatureScores{Cultural: 0.7, Outdoor: 0.9, Culinary: 0.7, Relaxation: 0.8, Shopping: 0.6, Entertainment: 0.8, Sightseeing: 0.8},
			Climate:      "tropical",
			BestSeasons:  []string{"winter (May-Oct)"},
			AvgDailyCost: usd(70),
			Languages:    []string{"Portuguese", "English (limited)"},
			Currency:     "BRL",
			Description:  "Vibrant city with stunning beaches, mountains, and culture.",
			LocalTransport: []string{"Metro", "Bus", "Taxi", "Uber"},
			Attractions: []string{"Christ the Redeemer", "Sugarloaf Mountain", "Copacabana Beach",
				"Ipanema Beach", "Tijuca Forest", "Lapa Steps"},
			Position: types.Point{Lat: -22.9068, Lng: -43.1729},
		},
	}
}

// activityTemplate drives deterministic per-destination activity generation.
// Costs scale with the destination cost level the same way the tiered
// accommodation rates do.
type activityTemplate struct {
	category   string
	count      int
	nameFmt    string
	descFmt    string
	durations  []float64
	baseCost   float64 // per cost-level USD, before the per-index step
	costStep   float64
	basePop    float64
	popStep    float64
	morning    bool
	afternoon  bool
	evening    bool
}

var activityTemplates = []activityTemplate{
	{
		category: CategoryCultural, count: 3,
		nameFmt:   "Museum/Cultural Site Visit in %s",
		descFmt:   "Visit a prominent museum or cultural landmark in %s.",
		durations: []float64{2, 3, 4},
		baseCost:  15, costStep: 8,
		basePop: 0.78, popStep: 0.05,
		morning: true, afternoon: true, evening: false,
	},
	{
		category: CategoryOutdoor, count: 3,
		nameFmt:   "Outdoor Adventure in %s",
		descFmt:   "Enjoy the natural surroundings in %s with hiking, walking tours, or outdoor sports.",
		durations: []float64{3, 4, 5},
		baseCost:  18, costStep: 10,
		basePop: 0.65, popStep: 0.07,
		morning: true, afternoon: true, evening: false,
	},
	{
		category: CategoryCulinary, count: 2,
		nameFmt:   "Culinary Experience in %s",
		descFmt:   "Taste the local cuisine or join a food tour in %s.",
		durations: []float64{2, 3},
		baseCost:  22, costStep: 12,
		basePop: 0.82, popStep: 0.06,
		morning: false, afternoon: true, evening: true,
	},
	{
		category: CategoryRelaxation, count: 2,
		nameFmt:   "Relaxation Activity in %s",
		descFmt:   "Unwind with spa treatments, beach time, or wellness activities in %s.",
		durations: []float64{2, 3},
		baseCost:  28, costStep: 14,
		basePop: 0.72, popStep: 0.08,
		morning: true, afternoon: true, evening: true,
	},
	{
		category: CategoryShopping, count: 1,
		nameFmt:   "Shopping Experience in %s",
		descFmt:   "Explore local markets, boutiques, or shopping districts in %s.",
		durations: []float64{3},
		baseCost:  12, costStep: 0,
		basePop: 0.70, popStep: 0,
		morning: false, afternoon: true, evening: true,
	},
	{
		category: CategoryEntertainment, count: 2,
		nameFmt:   "Entertainment in %s",
		descFmt:   "Enjoy shows, performances, or nightlife in %s.",
		durations: []float64{2, 3},
		baseCost:  25, costStep: 15,
		basePop: 0.74, popStep: 0.07,
		morning: false, afternoon: false, evening: true,
	},
	{
		category: CategorySightseeing, count: 3,
		nameFmt:   "Sightseeing in %s",
		descFmt:   "Visit popular landmarks and attractions in %s.",
		durations: []float64{2, 3, 4},
		baseCost:  10, costStep: 6,
		basePop: 0.82, popStep: 0.05,
		morning: true, afternoon: true, evening: true,
	},
}

func seedActivities(destinations []Destination) []Activity {
	var out []Activity
	id := 1
	for _, dest := range destinations {
		for _, tpl := range activityTemplates {
			for i := 0; i < tpl.count; i++ {
				cost := (tpl.baseCost + float64(i)*tpl.costStep) * float64(dest.CostLevel)
				out = append(out, Activity{
					ID:              id,
					DestinationID:   dest.ID,
					Name:            fmt.Sprintf(tpl.nameFmt, dest.Name),
					Category:        tpl.category,
					Description:     fmt.Sprintf(tpl.descFmt, dest.Name),
					DurationHours:   tpl.durations[i%len(tpl.durations)],
					Cost:            usd(cost),
					MorningSuitable: tpl.morning,
					AfternoonOK:     tpl.afternoon,
					EveningSuitable: tpl.evening,
					Popularity:      tpl.basePop + float64(i)*tpl.popStep,
				})
				id++
			}
		}
	}
	return append(out, signatureActivities(id)...)
}

// signatureActivities are hand-curated headline activities for select
// destinations, layered on top of the generated ones.
func signatureActivities(startID int) []Activity {
	id := startID
	next := func() int { v := id; id++; return v }
	return []Activity{
		{
			ID: next(), DestinationID: 1,
			Name:        "Eiffel Tower Visit",
			Category:    CategorySightseeing,
			Description: "Visit the iconic symbol of Paris with options to go to the top for panoramic views.",
			DurationHours: 3, Cost: usd(25),
			MorningSuitable: true, AfternoonOK: true, EveningSuitable: true,
			Popularity: 0.95,
		},
		{
			ID: next(), DestinationID: 1,
			Name:        "Louvre Museum Tour",
			Category:    CategoryCultural,
			Description: "Explore one of the world's largest art museums, home to the Mona Lisa.",
			DurationHours: 4, Cost: usd(15),
			MorningSuitable: true, AfternoonOK: true, EveningSuitable: false,
			Popularity: 0.9,
		},
		{
			ID: next(), DestinationID: 1,
			Name:        "Seine River Cruise",
			Category:    CategorySightseeing,
			Description: "See Paris from the water on a scenic boat tour along the Seine River.",
			DurationHours: 1.5, Cost: usd(15),
			MorningSuitable: true, AfternoonOK: true, EveningSuitable: true,
			Popularity: 0.85,
		},
		{
			ID: next(), DestinationID: 2,
			Name:        "Tsukiji Outer Market Tour",
			Category:    CategoryCulinary,
			Description: "Explore the famous seafood market and enjoy fresh sushi for breakfast.",
			DurationHours: 3, Cost: usd(40),
			MorningSuitable: true, AfternoonOK: false, EveningSuitable: false,
			Popularity: 0.85,
		},
		{
			ID: next(), DestinationID: 2,
			Name:        "Shibuya Crossing Experience",
			Category:    CategorySightseeing,
			Description: "Witness the busiest pedestrian crossing in the world and explore the Shibuya district.",
			DurationHours: 2, Cost: usd(0),
			MorningSuitable: true, AfternoonOK: true, EveningSuitable: true,
			Popularity: 0.9,
		},
		{
			ID: next(), DestinationID: 2,
			Name:        "Robot Restaurant Show",
			Category:    CategoryEntertainment,
			Description: "Experience a uniquely Japanese spectacle of lights, music, and robots in Shinjuku.",
			DurationHours: 2, Cost: usd(80),
			MorningSuitable: false, AfternoonOK: false, EveningSuitable: true,
			Popularity: 0.8,
		},
	}
}

// accommodationTier describes one lodging option generated per destination.
type accommodationTier struct {
	nameFmt         string
	typ             string
	nightlyPerLevel float64
	rating          float64
	amenities       []string
	suitableFor     []string
	locationQuality float64
}

var accommodationTiers = []accommodationTier{
	{"Budget Hotel in %s", "Hotel", 30, 3.5,
		[]string{"WiFi", "Air Conditioning"},
		[]string{"Solo", "Couple", "Friends"}, 3.5},
	{"Hostel in %s", "Hostel", 20, 3.6,
		[]string{"WiFi", "Shared Kitchen", "Lounge"},
		[]string{"Solo", "Friends"}, 4.0},
	{"Mid-range Hotel in %s", "Hotel", 60, 4.0,
		[]string{"WiFi", "Air Conditioning", "Restaurant", "Room Service"},
		[]string{"Solo", "Couple", "Family", "Friends"}, 4.0},
	{"Airbnb Apartment in %s", "Airbnb", 50, 4.3,
		[]string{"WiFi", "Kitchen", "Washer", "Air Conditioning"},
		[]string{"Solo", "Couple", "Family", "Friends"}, 4.0},
	{"Luxury Hotel in %s", "Hotel", 150, 4.5,
		[]string{"WiFi", "Air Conditioning", "Pool", "Spa", "Gym", "Restaurant", "Room Service"},
		[]string{"Solo", "Couple", "Family"}, 4.5},
	{"Resort in %s", "Resort", 200, 4.7,
		[]string{"WiFi", "Air Conditioning", "Pool", "Spa", "Gym", "Multiple Restaurants", "Private Beach/Garden"},
		[]string{"Couple", "Family"}, 4.8},
}

func seedAccommodations(destinations []Destination) []Accommodation {
	var out []Accommodation
	for _, dest := range destinations {
		for _, tier := range accommodationTiers {
			out = append(out, Accommodation{
				DestinationID:   dest.ID,
				Name:            fmt.Sprintf(tier.nameFmt, dest.Name),
				Type:            tier.typ,
				CostPerNight:    usd(tier.nightlyPerLevel * float64(dest.CostLevel)),
				Rating:          tier.rating,
				Amenities:       tier.amenities,
				SuitableFor:     tier.suitableFor,
				LocationQuality: tier.locationQuality,
			})
		}
	}
	return out
}

func seedTransportModes() []TransportMode {
	return []TransportMode{
		{Mode: "Plane", CostPerKm: 0.15, SpeedKmH: 900, ComfortLevel: 3, EcoFriendliness: 1, MinDistanceKm: 300, MaxDistanceKm: 20000},
		{Mode: "Train", CostPerKm: 0.10, SpeedKmH: 200, ComfortLevel: 4, EcoFriendliness: 4, MinDistanceKm: 50, MaxDistanceKm: 1000},
		{Mode: "Bus", CostPerKm: 0.05, SpeedKmH: 80, ComfortLevel: 2, EcoFriendliness: 3, MinDistanceKm: 10, MaxDistanceKm: 800},
		{Mode: "Car", CostPerKm: 0.20, SpeedKmH: 100, ComfortLevel: 4, EcoFriendliness: 2, MinDistanceKm: 5, MaxDistanceKm: 1000},
		{Mode: "Ferry", CostPerKm: 0.08, SpeedKmH: 40, ComfortLevel: 3, EcoFriendliness: 3, MinDistanceKm: 10, MaxDistanceKm: 500},
	}
}
