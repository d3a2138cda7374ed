package lookup

import "strings"

type locationName struct {
	short string
	long  string
}

// ZIP3 display names for the terminals and regions the network serves.
// Static configuration, not derived data.
var locationNames = map[string]locationName{
	// Northeast
	"100": {"NYC", "New York, NY"},
	"104": {"BRX", "Bronx, NY"},
	"110": {"QNS", "Queens, NY"},
	"112": {"BKN", "Brooklyn, NY"},
	"114": {"JFK", "Jamaica, NY"},
	"120": {"ALB", "Albany, NY"},
	"130": {"SYR", "Syracuse, NY"},
	"140": {"BUF", "Buffalo, NY"},
	"144": {"ROC", "Rochester, NY"},
	"150": {"PIT", "Pittsburgh, PA"},
	"170": {"HBG", "Harrisburg, PA"},
	"191": {"PHL", "Philadelphia, PA"},
	"021": {"BOS", "Boston, MA"},
	"061": {"HFD", "Hartford, CT"},
	"070": {"NWK", "Newark, NJ"},

	// Southeast
	"303": {"ATL", "Atlanta, GA"},
	"331": {"MIA", "Miami, FL"},
	"328": {"ORL", "Orlando, FL"},
	"282": {"CLT", "Charlotte, NC"},
	"370": {"BNA", "Nashville, TN"},
	"381": {"MEM", "Memphis, TN"},

	// Midwest
	"606": {"CHI", "Chicago, IL"},
	"432": {"CMH", "Columbus, OH"},
	"441": {"CLE", "Cleveland, OH"},
	"452": {"CVG", "Cincinnati, OH"},
	"462": {"IND", "Indianapolis, IN"},
	"482": {"DET", "Detroit, MI"},
	"532": {"MKE", "Milwaukee, WI"},
	"551": {"MSP", "St. Paul, MN"},
	"631": {"STL", "St. Louis, MO"},
	"641": {"MKC", "Kansas City, MO"},

	// South / Central
	"750": {"DFW", "Dallas, TX"},
	"770": {"HOU", "Houston, TX"},
	"782": {"SAT", "San Antonio, TX"},
	"787": {"AUS", "Austin, TX"},
	"731": {"OKC", "Oklahoma City, OK"},
	"701": {"MSY", "New Orleans, LA"},

	// Mountain / West
	"802": {"DEN", "Denver, CO"},
	"841": {"SLC", "Salt Lake City, UT"},
	"850": {"PHX", "Phoenix, AZ"},
	"857": {"TUS", "Tucson, AZ"},
	"871": {"ABQ", "Albuquerque, NM"},
	"891": {"LAS", "Las Vegas, NV"},

	// Pacific
	"900": {"LAX", "Los Angeles, CA"},
	"921": {"SAN", "San Diego, CA"},
	"941": {"SFO", "San Francisco, CA"},
	"958": {"SMF", "Sacramento, CA"},
	"972": {"PDX", "Portland, OR"},
	"981": {"SEA", "Seattle, WA"},
	"991": {"SPK", "Spokane, WA"},
}

// StaticLocationResolver implements the LocationResolver port over the
// fixed ZIP3 table above.
type StaticLocationResolver struct{}

func NewStaticLocationResolver() *StaticLocationResolver {
	return &StaticLocationResolver{}
}

// ShortName returns the 3-letter code for table display, falling back to
// the raw code. A trailing "xx" (ZIP3 wildcard notation) is stripped first.
func (r *StaticLocationResolver) ShortName(zip3 string) string {
	code := strings.TrimSuffix(zip3, "xx")
	if n, ok := locationNames[code]; ok {
		return n.short
	}
	return code
}

// LongName returns the long display name, falling back to "ZIP <code>".
func (r *StaticLocationResolver) LongName(zip3 string) string {
	code := strings.TrimSuffix(zip3, "xx")
	if n, ok := locationNames[code]; ok {
		return n.long
	}
	return "ZIP " + zip3
}

func (r *StaticLocationResolver) Count() int {
	return len(locationNames)
}
