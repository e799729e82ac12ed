package constants

// User status
const (
	UserStatusActive   = 1
	UserStatusInactive = 0
)

// User role
const (
	RoleCustomer = 0
	RoleOwner    = 1
	RoleStaff    = 2
)

// Booking status
const (
	BookingStatusPending  = "Pending"
	BookingStatusApproved = "Approved"
	BookingStatusRejected = "Rejected"
)

// IsTerminalBookingStatus kiểm tra trạng thái booking đã kết thúc chưa
func IsTerminalBookingStatus(status string) bool {
	return status == BookingStatusApproved || status == BookingStatusRejected
}
