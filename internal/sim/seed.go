package sim

// DefaultZones is the fixed seed set the registry is built from at process
// start: high-traffic Nairobi collection points with hand-tuned capacities
// and accumulation rates.
func DefaultZones() []ZoneSeed {
	return []ZoneSeed{
		{ID: "zone-gikomba", Name: "Gikomba Market", Lat: -1.2836, Lng: 36.8392, BinCapacityKg: 2000, GenerationRateKgMin: 4.2, InitialFillKg: 900},
		{ID: "zone-kibera", Name: "Kibera Drive", Lat: -1.3133, Lng: 36.7820, BinCapacityKg: 1500, GenerationRateKgMin: 3.1, InitialFillKg: 650},
		{ID: "zone-kawangware", Name: "Kawangware 46", Lat: -1.2850, Lng: 36.7469, BinCapacityKg: 1200, GenerationRateKgMin: 2.4, InitialFillKg: 400},
		{ID: "zone-eastleigh", Name: "Eastleigh First Avenue", Lat: -1.2743, Lng: 36.8504, BinCapacityKg: 1800, GenerationRateKgMin: 3.6, InitialFillKg: 820},
		{ID: "zone-ngara", Name: "Ngara Market", Lat: -1.2747, Lng: 36.8236, BinCapacityKg: 1000, GenerationRateKgMin: 1.8, InitialFillKg: 300},
		{ID: "zone-westlands", Name: "Westlands Roundabout", Lat: -1.2676, Lng: 36.8108, BinCapacityKg: 800, GenerationRateKgMin: 1.1, InitialFillKg: 150},
		{ID: "zone-industrial", Name: "Industrial Area Enterprise Rd", Lat: -1.3080, Lng: 36.8510, BinCapacityKg: 2500, GenerationRateKgMin: 2.9, InitialFillKg: 1100},
		{ID: "zone-kasarani", Name: "Kasarani Stadium Gate", Lat: -1.2227, Lng: 36.8986, BinCapacityKg: 900, GenerationRateKgMin: 0.9, InitialFillKg: 120},
	}
}
