package usecase

import "github.com/kietsocola/foodorder/internal/pkg/models"

// FallbackVenueID is the first venue of the local catalog; callers use it
// to detect that the fallback data is being served
const FallbackVenueID = "28e9a27c-6053-4dd2-91e0-193b855dc7f0"

// fallbackVenues is the fixed local catalog served when the venue
// boundary is unavailable: 3 venues, 12 products.
var fallbackVenues = []models.Venue{
	{
		ID:           FallbackVenueID,
		VenueName:    "Tuấn Kiệt của Tuyết Mai",
		VenueAddress: "Quận 6, TP HCM",
		Products: []models.Product{
			{ID: "product-1", Name: "Một cái ôm", Description: "Món ăn đặc biệt với tình yêu thương", VenueID: FallbackVenueID, Price: 10500},
			{ID: "product-2", Name: "Một cái hun", Description: "Ngọt ngào như nụ hôn đầu tiên", VenueID: FallbackVenueID, Price: 12000},
			{ID: "product-3", Name: "Một cái véo má", Description: "Tinh nghịch và đáng yêu", VenueID: FallbackVenueID, Price: 8750},
			{ID: "product-4", Name: "Một buổi đi chơi", Description: "Kỷ niệm không thể nào quên", VenueID: FallbackVenueID, Price: 15000},
			{ID: "product-5", Name: "Một bữa ăn tối", Description: "Lãng mạn dưới ánh nến", VenueID: FallbackVenueID, Price: 20000},
		},
	},
	{
		ID:           "venue-2",
		VenueName:    "Quán Phở Hà Nội",
		VenueAddress: "Quận 1, TP HCM",
		Products: []models.Product{
			{ID: "product-6", Name: "Phở Bò Tái", Description: "Phở bò truyền thống Hà Nội", VenueID: "venue-2", Price: 45000},
			{ID: "product-7", Name: "Phở Gà", Description: "Phở gà thơm ngon, thanh đạm", VenueID: "venue-2", Price: 40000},
			{ID: "product-8", Name: "Trà Đá", Description: "Trà đá mát lạnh giải khát", VenueID: "venue-2", Price: 5000},
			{ID: "product-9", Name: "Chả Cá Lã Vọng", Description: "Đặc sản Hà Nội nổi tiếng", VenueID: "venue-2", Price: 85000},
		},
	},
	{
		ID:           "venue-3",
		VenueName:    "Bánh Mì Sài Gòn",
		VenueAddress: "Quận 3, TP HCM",
		Products: []models.Product{
			{ID: "product-10", Name: "Bánh Mì Thịt Nướng", Description: "Bánh mì giòn với thịt nướng thơm lừng", VenueID: "venue-3", Price: 25000},
			{ID: "product-11", Name: "Bánh Mì Pate", Description: "Bánh mì pate truyền thống", VenueID: "venue-3", Price: 20000},
			{ID: "product-12", Name: "Cà Phê Sữa Đá", Description: "Cà phê Việt Nam đậm đà", VenueID: "venue-3", Price: 18000},
		},
	},
}

// FallbackVenues returns a deep copy of the local catalog so callers
// cannot mutate the canonical data, including the nested product lists
func FallbackVenues() []models.Venue {
	venues := make([]models.Venue, len(fallbackVenues))
	copy(venues, fallbackVenues)
	for i := range venues {
		products := make([]models.Product, len(venues[i].Products))
		copy(products, venues[i].Products)
		venues[i].Products = products
	}
	return venues
}
