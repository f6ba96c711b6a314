package vanilla

// ChromeClass is a typed identifier for the classes wrapped around a
// component.
type ChromeClass string

const (
	ClassField       ChromeClass = "sketchpad-field"
	ClassLabel       ChromeClass = "sketchpad-label"
	ClassDescription ChromeClass = "sketchpad-description"
)

// Default*Class values apply when ChromeClasses leaves an entry empty.
const (
	DefaultFieldClass       = string(ClassField)
	DefaultLabelClass       = string(ClassLabel)
	DefaultDescriptionClass = string(ClassDescription)
)

// ChromeClasses overrides the wrapper classes, for hosts with their own CSS
// framework.
type ChromeClasses struct {
	Field       string
	Label       string
	Description string
}

func (c ChromeClasses) withDefaults() ChromeClasses {
	if c.Field = sanitizeClassList(c.Field); c.Field == "" {
		c.Field = DefaultFieldClass
	}
	if c.Label = sanitizeClassList(c.Label); c.Label == "" {
		c.Label = DefaultLabelClass
	}
	if c.Description = sanitizeClassList(c.Description); c.Description == "" {
		c.Description = DefaultDescriptionClass
	}
	return c
}
