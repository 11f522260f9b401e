package marketplace

// Field names usable with Record.StringField and Record.ListField.
const (
	FieldID         = "ID"
	FieldTitle      = "Title"
	FieldLocation   = "Location"
	FieldEmployment = "Employment"
	FieldKind       = "Kind"
	FieldSkills     = "Skills"
	FieldServices   = "Services"
)

// Record is the read-only view of a marketplace entry shared by all three
// collections. Filtering steps address fields by name instead of depending
// on the concrete type.
type Record interface {
	StringField(name string) string
	ListField(name string) []string
}
