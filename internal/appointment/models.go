package appointment

// Attributes mirrors the remote appointment attribute object. Appointments
// are read-only on this side; there is no mutation path.
type Attributes struct {
	Date     string `json:"Date"`
	UserName string `json:"UserName"`
	Email    string `json:"Email"`
	Time     string `json:"Time"`
	Note     string `json:"Note"`
}

type Record struct {
	ID         int64      `json:"id"`
	Attributes Attributes `json:"attributes"`
}
