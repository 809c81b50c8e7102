package journey

import "journeymap/internal/model"

// SampleJourneys returns the bundled demo catalog.
func SampleJourneys() []model.Journey {
	return []model.Journey{
		{
			ID:              1,
			Name:            "Gurgaon City",
			Description:     "A full day of cafes and restaurants across Gurugram",
			Date:            "Dec 15, 2024",
			CoverEmoji:      "🌆",
			TotalDistanceKm: 34.6,
			Stops: []model.Stop{
				{
					ID: 1, Title: "Haldiram", Type: model.StopStart,
					Address:   "Sahara Mall Shopping Complex, M.G. Road, Gurugram",
					Notes:     "Started early at 7am. Light traffic.",
					Latitude:  28.4794338, Longitude: 77.0864217,
					Timestamp: 1734232200000, DurationMins: 5,
					RestaurantCode: "GGN-HALDIRAM-SAHARA", IsChain: true,
					TotalAmount: "₹240",
				},
				{
					ID: 2, Title: "YouMee", Type: model.StopPhoto,
					Address:   "Unit GR-02, Ground Floor, Worldmark Gurgaon, Sector 65, Gurugram, Haryana 122001",
					Notes:     "Sushi counter with a view of the whole floor. Crowded in the morning but worth it. The dragon roll was the highlight.",
					Latitude:  28.3980361, Longitude: 77.0726711,
					Timestamp: 1734236400000, DistanceFromPrevKm: 12.3, DurationMins: 45,
					RestaurantCode: "GGN-YOUMEE-WORLDMARK", IsPrime: true, IsChain: true,
					TotalAmount: "₹1,860", DiscountAmount: "₹372",
				},
				{
					ID: 3, Title: "Barista Coffee", Type: model.StopFood,
					Address:   "Shop D1 and D13, Ground Floor, DLF Phase 1, Qutub Plaza, Gurugram",
					Notes:     "Quick breakfast. Had a cappuccino and a croissant.",
					Latitude:  28.4714694, Longitude: 77.1020038,
					Timestamp: 1734239400000, DistanceFromPrevKm: 0.6, DurationMins: 60,
					RestaurantCode: "GGN-BARISTA-QUTUB", IsChain: true,
					TotalAmount: "₹420",
				},
				{
					ID: 4, Title: "P.F. Chang's", Type: model.StopFood,
					Address:   "Unit 6, Ground Floor, DLF Phase 2, Sector 24, DLF Cyber City, Gurgaon",
					Notes:     "Lettuce wraps and dan dan noodles. Service was quick.",
					Latitude:  28.4950716, Longitude: 77.0884522,
					Timestamp: 1734241800000, DistanceFromPrevKm: 0.6, DurationMins: 60,
					RestaurantCode: "GGN-PFCHANGS-CYBERCITY", IsPrime: true, IsChain: true,
					TotalAmount: "₹2,310", DiscountAmount: "₹462",
				},
				{
					ID: 5, Title: "Haldiram MGF Metropolitan Mall", Type: model.StopVisit,
					Address:   "MGF Metropolitan Mall, MG Road, Gurgaon",
					Notes:     "Picked up sweets and namkeen to take home.",
					Latitude:  28.4809652, Longitude: 77.0803792,
					Timestamp: 1734246000000, DistanceFromPrevKm: 0.7, DurationMins: 40,
					RestaurantCode: "GGN-HALDIRAM-MGF", IsChain: true,
					TotalAmount: "₹680",
				},
				{
					ID: 6, Title: "Punjab Grill Tappa", Type: model.StopFood,
					Address:   "Shop 19, Ground Floor, DLF Cybercity, Gurgaon 122002",
					Notes:     "Dal makhani and butter chicken. Live music started around two.",
					Latitude:  28.4959442, Longitude: 77.0888396,
					Timestamp: 1734252000000, DistanceFromPrevKm: 3.2, DurationMins: 75,
					RestaurantCode: "GGN-PUNJABGRILL-TAPPA", IsPrime: true,
					TotalAmount: "₹3,150", DiscountAmount: "₹630",
				},
				{
					ID: 7, Title: "OMI by Aldott", Type: model.StopVisit,
					Address:   "The Aldott, 81, Moulsari Ave, DLF Phase 3, Sector 24, Gurugram, Haryana",
					Notes:     "Rooftop at golden hour. Beautiful sunset view over the Cyber City towers. Stayed for a mocktail and small plates.",
					Latitude:  28.492682, Longitude: 77.1076935,
					Timestamp: 1734260400000, DistanceFromPrevKm: 4.1, DurationMins: 60,
					RestaurantCode: "GGN-OMI-ALDOTT",
					TotalAmount: "₹1,540",
				},
				{
					ID: 8, Title: "My Secret Place", Type: model.StopRest,
					Address:   "SCO 14, Main Palam Vihar Road, Sector 23A, Gurugram",
					Notes:     "Quick coffee stop before heading out again.",
					Latitude:  28.5049246, Longitude: 77.0527208,
					Timestamp: 1734267600000, DistanceFromPrevKm: 9.8, DurationMins: 25,
					RestaurantCode: "GGN-SECRETPLACE-PALAMVIHAR",
					TotalAmount: "₹310",
				},
				{
					ID: 9, Title: "The Drunken Botanist", Type: model.StopFood,
					Address:   "Unit 1B and 1C, Building 10C, Cyber Hub, DLF Cyber City, Gurgaon",
					Notes:     "Late dinner at Cyber Hub. Loud but fun.",
					Latitude:  28.4938892, Longitude: 77.0883356,
					Timestamp: 1734270000000, DistanceFromPrevKm: 1.8, DurationMins: 70,
					RestaurantCode: "GGN-DRUNKENBOTANIST-CYBERHUB", IsPrime: true,
					TotalAmount: "₹2,740", DiscountAmount: "₹548",
				},
				{
					ID: 10, Title: "Daryaganj", Type: model.StopEnd,
					Address:   "Ambience Mall, DLF Phase 3, Haryana",
					Notes:     "Dessert to close the day. Feet ache but memories made!",
					Latitude:  28.5055767, Longitude: 77.0962019,
					Timestamp: 1734274800000, DistanceFromPrevKm: 1.8,
					RestaurantCode: "GGN-DARYAGANJ-AMBIENCE", IsChain: true,
					TotalAmount: "₹560",
				},
			},
		},
		{
			ID:              2,
			Name:            "Delhi Heritage Walk",
			Description:     "Old Delhi to New Delhi monuments trail",
			Date:            "Jan 4, 2025",
			CoverEmoji:      "🏛️",
			TotalDistanceKm: 22.4,
			Stops: []model.Stop{
				{
					ID: 10, Title: "Hotel – Connaught Place", Type: model.StopStart,
					Address:   "Connaught Place, New Delhi 110001",
					Notes:     "Checked out of hotel after breakfast.",
					Latitude:  28.6315, Longitude: 77.2167,
					Timestamp: 1735971600000, DurationMins: 10,
					RestaurantCode: "DEL-HOTEL-CP",
				},
				{
					ID: 11, Title: "India Gate", Type: model.StopPhoto,
					Address:   "Rajpath, India Gate, New Delhi 110001",
					Notes:     "War memorial dedicated to soldiers. Grand structure. Lots of families picnicking around.",
					Latitude:  28.6129, Longitude: 77.2295,
					Timestamp: 1735974000000, DistanceFromPrevKm: 3.2, DurationMins: 40,
					RestaurantCode: "DEL-INDIAGATE",
				},
				{
					ID: 12, Title: "Humayun's Tomb", Type: model.StopVisit,
					Address:   "Mathura Road, Nizamuddin East, New Delhi 110013",
					Notes:     "Precursor to the Taj Mahal. Stunning Mughal architecture. Gardens were immaculately maintained.",
					Latitude:  28.5933, Longitude: 77.2507,
					Timestamp: 1735979400000, DistanceFromPrevKm: 5.1, DurationMins: 75,
					RestaurantCode: "DEL-HUMAYUNSTOMB",
				},
				{
					ID: 13, Title: "Paranthe Wali Gali", Type: model.StopFood,
					Address:   "Chandni Chowk, Old Delhi, Delhi 110006",
					Notes:     "Best stuffed parathas in India! Had aloo and paneer paratha with chole. Absolutely amazing.",
					Latitude:  28.6562, Longitude: 77.2310,
					Timestamp: 1735988400000, DistanceFromPrevKm: 8.7, DurationMins: 50,
					RestaurantCode: "DEL-PARANTHEWALIGALI", IsPrime: true,
					TotalAmount: "₹450", DiscountAmount: "₹45",
				},
				{
					ID: 14, Title: "Red Fort", Type: model.StopVisit,
					Address:   "Netaji Subhash Marg, Lal Qila, Old Delhi 110006",
					Notes:     "Massive Mughal fortress. The Lahori Gate is breathtaking. Sound and light show info collected for evening.",
					Latitude:  28.6562, Longitude: 77.2410,
					Timestamp: 1735992000000, DistanceFromPrevKm: 1.1, DurationMins: 90,
					RestaurantCode: "DEL-REDFORT",
				},
				{
					ID: 15, Title: "Jama Masjid", Type: model.StopPhoto,
					Address:   "Jama Masjid Road, Chandni Chowk, Old Delhi 110006",
					Notes:     "One of the largest mosques in India. Climbed the minaret for panoramic old Delhi views.",
					Latitude:  28.6507, Longitude: 77.2334,
					Timestamp: 1735998600000, DistanceFromPrevKm: 1.0, DurationMins: 45,
					RestaurantCode: "DEL-JAMAMASJID",
				},
				{
					ID: 16, Title: "Back to Hotel", Type: model.StopEnd,
					Address:   "Connaught Place, New Delhi 110001",
					Notes:     "Exhausted but fulfilled. Covered 22km today!",
					Latitude:  28.6315, Longitude: 77.2167,
					Timestamp: 1736006400000, DistanceFromPrevKm: 3.3,
					RestaurantCode: "DEL-HOTEL-CP",
				},
			},
		},
		{
			ID:              3,
			Name:            "Goa Beach Hopping",
			Description:     "North Goa beaches in one perfect day",
			Date:            "Feb 10, 2025",
			CoverEmoji:      "🏖️",
			TotalDistanceKm: 48.2,
			Stops: []model.Stop{
				{
					ID: 17, Title: "Resort – Candolim", Type: model.StopStart,
					Address:   "Candolim Beach Road, Candolim, Goa 403515",
					Notes:     "Early start to beat the beach crowds.",
					Latitude:  15.5189, Longitude: 73.7606,
					Timestamp: 1739165400000, DurationMins: 10,
					RestaurantCode: "GOA-RESORT-CANDOLIM",
				},
				{
					ID: 18, Title: "Aguada Fort", Type: model.StopPhoto,
					Address:   "Sinquerim, Bardez, North Goa 403519",
					Notes:     "17th century Portuguese fort. Lighthouse still operational. Stunning views of Arabian Sea.",
					Latitude:  15.5015, Longitude: 73.7732,
					Timestamp: 1739167800000, DistanceFromPrevKm: 4.2, DurationMins: 45,
					RestaurantCode: "GOA-AGUADAFORT",
				},
				{
					ID: 19, Title: "Baga Beach", Type: model.StopRest,
					Address:   "Baga, North Goa 403516",
					Notes:     "Lively beach. Had fresh coconut water. Watched parasailing. Great energy here.",
					Latitude:  15.5556, Longitude: 73.7519,
					Timestamp: 1739172600000, DistanceFromPrevKm: 7.8, DurationMins: 60,
					RestaurantCode: "GOA-BAGABEACH",
				},
				{
					ID: 20, Title: "Brittos – Baga", Type: model.StopFood,
					Address:   "Baga Beach Road, Baga, Goa 403516",
					Notes:     "Famous beach shack. Had kingfish recheado and prawn curry rice.",
					Latitude:  15.5572, Longitude: 73.7511,
					Timestamp: 1739176800000, DistanceFromPrevKm: 0.3, DurationMins: 90,
					RestaurantCode: "GOA-BRITTOS-BAGA", IsPrime: true,
					TotalAmount: "₹2,080", DiscountAmount: "₹312",
				},
				{
					ID: 21, Title: "Anjuna Flea Market", Type: model.StopVisit,
					Address:   "Anjuna Beach, North Goa 403509",
					Notes:     "Iconic flea market. Bought a hand-painted bag and silver jewellery.",
					Latitude:  15.5736, Longitude: 73.7403,
					Timestamp: 1739184000000, DistanceFromPrevKm: 5.1, DurationMins: 75,
					RestaurantCode: "GOA-ANJUNAFLEA",
				},
				{
					ID: 22, Title: "Vagator Beach Sunset", Type: model.StopPhoto,
					Address:   "Vagator, North Goa 403509",
					Notes:     "Best sunset of the trip. Sat on the red cliffs as the sun dipped into the sea. Magical.",
					Latitude:  15.5996, Longitude: 73.7440,
					Timestamp: 1739192400000, DistanceFromPrevKm: 4.6, DurationMins: 50,
					RestaurantCode: "GOA-VAGATORBEACH",
				},
				{
					ID: 23, Title: "Thalassa – Vagator", Type: model.StopFood,
					Address:   "Small Vagator Beach, Ozran, Goa 403509",
					Notes:     "Greek taverna with sea view. Had a mezze platter and fresh lime soda.",
					Latitude:  15.5981, Longitude: 73.7446,
					Timestamp: 1739196000000, DistanceFromPrevKm: 0.4, DurationMins: 75,
					RestaurantCode: "GOA-THALASSA-VAGATOR", IsPrime: true, IsChain: true,
					TotalAmount: "₹3,420", DiscountAmount: "₹684",
				},
				{
					ID: 24, Title: "Resort – Candolim", Type: model.StopEnd,
					Address:   "Candolim Beach Road, Candolim, Goa 403515",
					Notes:     "Long drive back. Stars were incredible on the way.",
					Latitude:  15.5189, Longitude: 73.7606,
					Timestamp: 1739203800000, DistanceFromPrevKm: 25.8,
					RestaurantCode: "GOA-RESORT-CANDOLIM",
				},
			},
		},
	}
}
