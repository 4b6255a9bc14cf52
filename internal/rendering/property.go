package rendering

import "sync"

var (
	propertyMu    sync.Mutex
	propertyIDs   = map[string]int{}
	propertyNames []string
)

// PropertyToID interns a shader property name. The same name always maps to
// the same ID for the life of the process.
func PropertyToID(name string) int {
	propertyMu.Lock()
	defer propertyMu.Unlock()

	if id, ok := propertyIDs[name]; ok {
		return id
	}
	id := len(propertyNames)
	propertyIDs[name] = id
	propertyNames = append(propertyNames, name)
	return id
}

// PropertyName returns the name interned under id, or "" if unknown.
func PropertyName(id int) string {
	propertyMu.Lock()
	defer propertyMu.Unlock()

	if id < 0 || id >= len(propertyNames) {
		return ""
	}
	return propertyNames[id]
}
