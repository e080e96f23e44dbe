package dtos

// SignUpReq mirrors the signup form; field names match the web client.
type SignUpReq struct {
	Name     string `json:"name"`
	USN      string `json:"usn"`
	Semester int    `json:"sem"`
	Mobile   string `json:"mobno"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SignInReq struct {
	USN      string `json:"usn"`
	Password string `json:"password"`
}

type CreateEventReq struct {
	EventName        string  `json:"eventName"`
	EventDescription string  `json:"eventDescription"`
	EventDate        string  `json:"eventDate"`
	EventTime        string  `json:"eventTime"`
	EventLocation    string  `json:"eventLocation"`
	MaxParticipants  int     `json:"maxParticipants"`
	MaxVolunteers    int     `json:"maxVolunteers"`
	RegistrationFee  float64 `json:"registrationFee"`
	ClubID           *uint   `json:"clubId"`
}

type MarkAttendanceReq struct {
	EventID uint   `json:"eventId"`
	USN     string `json:"usn"`
}

type ForgotPasswordReq struct {
	Email string `json:"email"`
}

type ResetPasswordReq struct {
	Token       string `json:"token"`
	NewPassword string `json:"newPassword"`
}

type CreateOrderReq struct {
	EventID uint `json:"eventId"`
}

type VerifyPaymentReq struct {
	PaymentID string `json:"paymentId"`
	OrderID   string `json:"orderId"`
	Signature string `json:"signature"`
	EventID   uint   `json:"eventId"`
}
