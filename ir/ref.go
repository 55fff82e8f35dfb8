package ir

// RefKey is the member name marking a mapping as a reference.
const RefKey = "$ref"

// RefTarget reports whether node is a reference link, and if so returns
// the reference string. A mapping is a reference link when its "$ref"
// member exists and holds a string. A "$ref" member holding any other
// shape is plain data.
func RefTarget(node *Node) (string, bool) {
	if node == nil || node.Type != ObjectType {
		return "", false
	}
	v := Get(node, RefKey)
	if v == nil || v.Type != StringType {
		return "", false
	}
	return v.String, true
}
