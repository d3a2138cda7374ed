package ports

// Port: read-only lookup of location display names by ZIP3 code.
// Injected rather than consulted as package state so tests can swap it.
type LocationResolver interface {
	// Short 3-letter code for table display (e.g. "DFW").
	ShortName(zip3 string) string
	// Long display name (e.g. "Dallas, TX").
	LongName(zip3 string) string
	// Number of known locations.
	Count() int
}

// Port: read-only lookup of carrier display names by carrier id.
type CarrierResolver interface {
	DisplayName(carrierID string) string
	Count() int
}
