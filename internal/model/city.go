package model

// Tier multipliers applied to the baseline rates.
const (
	Tier1Multiplier = 1.5
	Tier2Multiplier = 1.2
	Tier3Multiplier = 1.0
)

// Cities is the fixed set of cities posts can be assigned to.
var Cities = []string{
	"Mumbai", "Delhi", "Bangalore", "Hyderabad", "Chennai", "Kolkata",
	"Pune", "Ahmedabad", "Jaipur", "Surat", "Lucknow", "Kanpur",
	"Nagpur", "Indore", "Thane", "Bhopal", "Visakhapatnam", "Pimpri",
	"Patna", "Vadodara", "Ghaziabad", "Ludhiana", "Agra", "Nashik",
	"Faridabad", "Meerut", "Rajkot", "Kalyan", "Vasai", "Varanasi",
	"Srinagar", "Aurangabad", "Dhanbad", "Amritsar", "Navi Mumbai",
	"Allahabad", "Ranchi", "Howrah", "Coimbatore", "Jabalpur",
}

var tier1Cities = map[string]struct{}{
	"Mumbai": {}, "Delhi": {}, "Bangalore": {}, "Hyderabad": {},
	"Chennai": {}, "Kolkata": {}, "Pune": {},
}

var tier2Cities = map[string]struct{}{
	"Ahmedabad": {}, "Jaipur": {}, "Surat": {}, "Lucknow": {},
	"Kanpur": {}, "Nagpur": {}, "Indore": {},
}

// CityTier returns the tier label of a city. Unknown cities fall into tier3.
func CityTier(city string) string {
	if _, ok := tier1Cities[city]; ok {
		return TierLabel1
	}
	if _, ok := tier2Cities[city]; ok {
		return TierLabel2
	}
	return TierLabel3
}

// TierMultiplier returns the rate multiplier for a tier label.
func TierMultiplier(tier string) float64 {
	switch tier {
	case TierLabel1:
		return Tier1Multiplier
	case TierLabel2:
		return Tier2Multiplier
	default:
		return Tier3Multiplier
	}
}

// IsKnownCity reports whether the city belongs to the fixed set.
func IsKnownCity(city string) bool {
	for _, c := range Cities {
		if c == city {
			return true
		}
	}
	return false
}
