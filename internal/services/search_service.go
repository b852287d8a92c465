package services

import "strings"

// searchService serves the static city and activity catalogs used by the
// trip-planning UI. Stand-in data until a real places provider is wired.
type searchService struct {
	cities     []CityResult
	activities []ActivityResult
}

// NewSearchService creates a new SearchServicer backed by the built-in catalogs.
func NewSearchService() SearchServicer {
	return &searchService{
		cities: []CityResult{
			{CityName: "Paris", Country: "France", Region: "Europe", CostIndex: 85},
			{CityName: "Tokyo", Country: "Japan", Region: "Asia", CostIndex: 95},
			{CityName: "New York", Country: "USA", Region: "North America", CostIndex: 100},
			{CityName: "Bangkok", Country: "Thailand", Region: "Asia", CostIndex: 45},
			{CityName: "London", Country: "UK", Region: "Europe", CostIndex: 90},
			{CityName: "Sydney", Country: "Australia", Region: "Oceania", CostIndex: 88},
			{CityName: "Dubai", Country: "UAE", Region: "Middle East", CostIndex: 92},
			{CityName: "Barcelona", Country: "Spain", Region: "Europe", CostIndex: 70},
			{CityName: "Bali", Country: "Indonesia", Region: "Asia", CostIndex: 40},
			{CityName: "Rome", Country: "Italy", Region: "Europe", CostIndex: 75},
			{CityName: "Amsterdam", Country: "Netherlands", Region: "Europe", CostIndex: 82},
			{CityName: "Singapore", Country: "Singapore", Region: "Asia", CostIndex: 95},
			{CityName: "Istanbul", Country: "Turkey", Region: "Europe", CostIndex: 50},
			{CityName: "Prague", Country: "Czech Republic", Region: "Europe", CostIndex: 55},
			{CityName: "Lisbon", Country: "Portugal", Region: "Europe", CostIndex: 60},
		},
		activities: []ActivityResult{
			{Name: "Eiffel Tower Visit", Category: "sightseeing", City: "Paris", Cost: 25, Duration: "2-3 hours"},
			{Name: "Louvre Museum", Category: "sightseeing", City: "Paris", Cost: 17, Duration: "3-4 hours"},
			{Name: "Sushi Making Class", Category: "food", City: "Tokyo", Cost: 80, Duration: "2 hours"},
			{Name: "Shibuya Crossing Tour", Category: "sightseeing", City: "Tokyo", Cost: 0, Duration: "1 hour"},
			{Name: "Statue of Liberty Tour", Category: "sightseeing", City: "New York", Cost: 24, Duration: "2 hours"},
			{Name: "Broadway Show", Category: "entertainment", City: "New York", Cost: 120, Duration: "2.5 hours"},
			{Name: "Grand Palace Tour", Category: "sightseeing", City: "Bangkok", Cost: 15, Duration: "2 hours"},
			{Name: "Street Food Tour", Category: "food", City: "Bangkok", Cost: 35, Duration: "3 hours"},
			{Name: "Big Ben & Westminster", Category: "sightseeing", City: "London", Cost: 0, Duration: "1 hour"},
			{Name: "British Museum", Category: "sightseeing", City: "London", Cost: 0, Duration: "3-4 hours"},
			{Name: "Sagrada Familia", Category: "sightseeing", City: "Barcelona", Cost: 26, Duration: "2 hours"},
			{Name: "Tapas Tasting Tour", Category: "food", City: "Barcelona", Cost: 45, Duration: "3 hours"},
			{Name: "Colosseum Tour", Category: "sightseeing", City: "Rome", Cost: 18, Duration: "2 hours"},
			{Name: "Vatican Museums", Category: "sightseeing", City: "Rome", Cost: 21, Duration: "3-4 hours"},
		},
	}
}

// SearchCities filters the city catalog. All filters are optional
// case-insensitive substring matches.
func (s *searchService) SearchCities(query, country, region string) []CityResult {
	results := make([]CityResult, 0, len(s.cities))
	for _, city := range s.cities {
		if query != "" && !containsFold(city.CityName, query) {
			continue
		}
		if country != "" && !containsFold(city.Country, country) {
			continue
		}
		if region != "" && !containsFold(city.Region, region) {
			continue
		}
		results = append(results, city)
	}
	return results
}

// SearchActivities filters the activity catalog. Category is an exact
// case-insensitive match; query and city are substring matches.
func (s *searchService) SearchActivities(query, category, city string) []ActivityResult {
	results := make([]ActivityResult, 0, len(s.activities))
	for _, activity := range s.activities {
		if query != "" && !containsFold(activity.Name, query) {
			continue
		}
		if category != "" && !strings.EqualFold(activity.Category, category) {
			continue
		}
		if city != "" && !containsFold(activity.City, city) {
			continue
		}
		results = append(results, activity)
	}
	return results
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
