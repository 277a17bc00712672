package css

// Keyframes is a named animation definition. Its Style maps step selectors
// ("from", "to", percentages) to declarations.
type Keyframes struct {
	Name  string
	Style Object
}

// NewKeyframes returns keyframes with the given base name and steps.
func NewKeyframes(name string, style Object) *Keyframes {
	return &Keyframes{Name: name, Style: style}
}

// GetName returns the name scoped to hashID, or the base name when hashID is empty.
func (k *Keyframes) GetName(hashID string) string {
	if hashID == "" {
		return k.Name
	}
	return hashID + "-" + k.Name
}
