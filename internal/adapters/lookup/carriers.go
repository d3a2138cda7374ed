package lookup

// Carrier display names keyed by anonymized carrier id.
var carrierNames = map[string]string{
	// Major LTL carriers
	"0e32a59c0c8e": "XPO Logistics",
	"ae9d1671f54a": "FedEx Freight",
	"cfd59abc9d4b": "Old Dominion",
	"d29d021b03f6": "Estes Express",
	"b8e932b33b01": "Saia LTL",
	"e6c81f092efd": "ABF Freight",
	"5797a633da7c": "YRC Worldwide",
	"dbfc03065eae": "R+L Carriers",
	"de78ac80b8a6": "Southeastern Freight",
	"e241c58d2bfc": "AAA Cooper",

	// Mid-size carriers
	"a77afc74f43b": "Dayton Freight",
	"54874e5091dc": "Central Transport",
	"cd870e9d66f4": "Averitt Express",
	"f3966ed1d22b": "Pitt Ohio",
	"a1f6e862ef0a": "Holland Regional",
	"b3e6702bc7d2": "New Penn",

	// Truckload carriers
	"020d05ae87ec": "J.B. Hunt",
	"7fa7f958bd51": "Schneider National",
	"103fb84c7f5b": "Werner Enterprises",
	"1859c9911606": "Swift Transportation",
	"2322a0240573": "Knight-Swift",
	"1fbbcf35d02b": "Heartland Express",
}

// StaticCarrierResolver implements the CarrierResolver port over the fixed
// carrier table.
type StaticCarrierResolver struct{}

func NewStaticCarrierResolver() *StaticCarrierResolver {
	return &StaticCarrierResolver{}
}

// DisplayName returns the carrier's display name, falling back to a
// shortened id for unmapped carriers.
func (r *StaticCarrierResolver) DisplayName(carrierID string) string {
	if name, ok := carrierNames[carrierID]; ok {
		return name
	}
	if len(carrierID) > 8 {
		return "Carrier-" + carrierID[:8]
	}
	return "Carrier-" + carrierID
}

func (r *StaticCarrierResolver) Count() int {
	return len(carrierNames)
}
