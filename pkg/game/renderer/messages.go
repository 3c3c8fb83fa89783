package renderer

import "fmt"

// Message translates key and fills in its verbs. An untranslated key is
// returned bare so a missing catalogue reads as KEY, not KEY%!(EXTRA ...).
func Message(key string, args ...any) string {
	msg := dynamicGet(key)
	if len(args) == 0 || msg == key {
		return msg
	}
	return fmt.Sprintf(msg, args...)
}
