package domain

// RoomType represents a room tier of the hotel
type RoomType string

const (
	RoomStandard  RoomType = "standard"
	RoomDeluxe    RoomType = "deluxe"
	RoomPremium   RoomType = "premium"
	RoomSuite     RoomType = "suite"
	RoomVIP       RoomType = "vip"
	RoomPenthouse RoomType = "penthouse"
)

// AllRoomTypes список всех типов номеров
var AllRoomTypes = []RoomType{
	RoomStandard,
	RoomDeluxe,
	RoomPremium,
	RoomSuite,
	RoomVIP,
	RoomPenthouse,
}

// IsValid returns true if the room type is one of the known tiers
func (r RoomType) IsValid() bool {
	for _, t := range AllRoomTypes {
		if r == t {
			return true
		}
	}
	return false
}

// RateTable immutable mapping from room tier to nightly rate
// Injected from config so pricing is deterministic and testable with
// alternate tables
type RateTable map[RoomType]float64

// Rate returns the nightly rate for the tier
// Unknown tiers price at 0, never fail
func (t RateTable) Rate(room RoomType) float64 {
	return t[room]
}
