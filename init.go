package lindng

// tagsByName is the reverse of tagNames, used by ParseTagID.
var tagsByName map[string]TagID

func init() {
	tagsByName = make(map[string]TagID, len(tagNames))
	for t, name := range tagNames {
		tagsByName[name] = t
	}
}
