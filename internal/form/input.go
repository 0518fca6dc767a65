package form

// Input represents a contact form submission
type Input struct {
	Name    string `json:"name" binding:"required,min=3,max=100"`
	Email   string `json:"email" binding:"required,email,max=255"`
	Message string `json:"message" binding:"required,min=10,max=1000"`
}

// IsZero reports whether no field has been filled in yet.
func (in Input) IsZero() bool {
	return in.Name == "" && in.Email == "" && in.Message == ""
}

// Errors maps a field name to a human-readable validation message.
// A field absent from the map is valid.
type Errors map[string]string

// Field names as they appear in the JSON payload and in Errors keys.
const (
	FieldName    = "name"
	FieldEmail   = "email"
	FieldMessage = "message"
)
