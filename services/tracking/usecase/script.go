package usecase

// ScriptEntry is one synthetic delivery stop: a fixed coordinate and a
// human-readable status line
type ScriptEntry struct {
	Latitude  float64
	Longitude float64
	Status    string
}

// defaultScript walks a courier from the venue to the customer in five
// fixed stops. The sequence is finite and non-restartable.
var defaultScript = []ScriptEntry{
	{Latitude: 10.7769, Longitude: 106.6955, Status: "Đã nhận đơn hàng"},
	{Latitude: 10.7779, Longitude: 106.6965, Status: "Đang chuẩn bị món"},
	{Latitude: 10.7789, Longitude: 106.6975, Status: "Shipper đang lấy hàng"},
	{Latitude: 10.7799, Longitude: 106.6985, Status: "Đang giao hàng"},
	{Latitude: 10.7809, Longitude: 106.6995, Status: "Sắp đến nơi"},
}

// DefaultScript returns a copy of the built-in delivery sequence
func DefaultScript() []ScriptEntry {
	script := make([]ScriptEntry, len(defaultScript))
	copy(script, defaultScript)
	return script
}
