package doctor

// Attributes mirrors the remote collection's doctor attribute object.
// JSON tags follow the remote schema exactly (mixed casing, underscore in
// Year_of_Experience, lowercase email); do not "fix" them. Numeric-looking
// values such as Patients and Year_of_Experience are free text on the wire
// and stay strings end to end.
type Attributes struct {
	Name             string `json:"Name"`
	Address          string `json:"Address"`
	Patients         string `json:"Patients"`
	YearOfExperience string `json:"Year_of_Experience"`
	StartTime        string `json:"StartTime"`
	EndTime          string `json:"EndTime"`
	About            string `json:"About"`
	Phone            string `json:"Phone"`
	Email            string `json:"email"`
	Premium          bool   `json:"Premium"`
}

// Record is one doctor as stored remotely. The id is assigned by the remote
// store on create and is immutable afterwards.
type Record struct {
	ID         int64      `json:"id"`
	Attributes Attributes `json:"attributes"`
}

// Attachment is a pending image upload: raw bytes plus the original filename.
type Attachment struct {
	Filename string
	Data     []byte
}
