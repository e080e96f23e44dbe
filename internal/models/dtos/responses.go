package dtos

// APIResponse is the standard JSON envelope for every endpoint.
type APIResponse struct {
	Status       string `json:"status"`
	Message      string `json:"message,omitempty"`
	ResponseTime string `json:"response_time,omitempty"`
	Data         any    `json:"data,omitempty"`
}

type AuthResponse struct {
	UserUSN  string `json:"userUSN"`
	UserName string `json:"userName"`
}

type ProfileResponse struct {
	UserUSN  string `json:"userUSN"`
	UserName string `json:"userName"`
	Semester int    `json:"semester"`
	Mobile   string `json:"mobile"`
	Email    string `json:"email"`
}

// EventView is the enriched event shape the list and detail endpoints
// return; field names match what the web client renders.
type EventView struct {
	EID             uint    `json:"eid"`
	Name            string  `json:"ename"`
	Description     string  `json:"eventdesc"`
	EventDate       string  `json:"eventDate"`
	EventTime       string  `json:"eventTime"`
	EventLoc        string  `json:"eventLoc"`
	MaxPart         int     `json:"maxPart"`
	MaxVoln         int     `json:"maxVoln"`
	RegFee          float64 `json:"regFee"`
	ClubName        string  `json:"clubName,omitempty"`
	OrganizerName   string  `json:"organizerName,omitempty"`
}

// EventBuckets partitions events by date relative to "today".
type EventBuckets struct {
	Ongoing   []EventView `json:"ongoing"`
	Completed []EventView `json:"completed"`
	Upcoming  []EventView `json:"upcoming"`
}

type EventListResponse struct {
	Events      EventBuckets `json:"events"`
	CurrentUser string       `json:"currentUser"`
}

// EventDetail adds the caller-relative flags to an EventView.
type EventDetail struct {
	EventView
	OrganizerUSN string `json:"orgUSN"`
	IsRegistered bool   `json:"isRegistered"`
	IsVolunteer  bool   `json:"isVolunteer"`
	IsOrganizer  bool   `json:"isOrganizer"`
}

// MyEventView is an EventView joined through the caller's own
// participation, volunteering, or organizer relation.
type MyEventView struct {
	EventView
	Attended bool   `json:"attended"`
	Role     string `json:"role"`
}

type CreateEventResponse struct {
	EventID uint `json:"eventId"`
}

type CountResponse struct {
	Count int64 `json:"count"`
}

type ClubView struct {
	CID         uint   `json:"cid"`
	Name        string `json:"cname"`
	Description string `json:"clubdesc"`
	MaxMembers  *int   `json:"maxmembers,omitempty"`
}

type StudentView struct {
	USN      string `json:"usn"`
	Name     string `json:"sname"`
	Semester int    `json:"sem"`
	Mobile   string `json:"mobno"`
	Email    string `json:"emailid"`
}

// GatewayOrder is the payment gateway's order object, passed through to
// the client for checkout.
type GatewayOrder struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

type CreateOrderResponse struct {
	Order GatewayOrder `json:"order"`
	KeyID string       `json:"key_id"`
}

type ResetPasswordResponse struct {
	UserName string `json:"userName"`
}
