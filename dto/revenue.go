package dto

type RevenueResponse struct {
	TotalRevenue        int64          `json:"totalRevenue"`
	CurrentMonthRevenue int64          `json:"currentMonthRevenue"`
	LastMonthRevenue    int64          `json:"lastMonthRevenue"`
	CurrentWeekRevenue  int64          `json:"currentWeekRevenue"`
	MonthlyRevenue      []MonthRevenue `json:"monthlyRevenue"`
}

type MonthRevenue struct {
	Month        string `json:"month"`
	Revenue      int64  `json:"revenue"`
	BookingCount int    `json:"bookingCount"`
}

type OwnerRevenueResponse struct {
	ID           uint         `json:"id"`
	Date         string       `json:"date"`
	BookingCount int          `json:"booking_count"`
	Revenue      int64        `json:"revenue"`
	User         RevenueOwner `json:"user"`
}

type RevenueOwner struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
}
