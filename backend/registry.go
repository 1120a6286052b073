package backend

import (
	"sync"
)

// registry holds registered model factories.
var (
	registryMu sync.RWMutex
	factories  = make(map[string]ModelFactory)
	output     = Vector
)

// Register registers a model factory under the given model type name.
// This is typically called from init() functions in model packages.
// If a factory with the same name is already registered, it is replaced.
func Register(name string, factory ModelFactory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	factories[name] = factory
}

// Unregister removes a model factory from the registry.
// This is useful for testing.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(factories, name)
}

// Available returns a list of registered model type names.
func Available() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	return names
}

// IsRegistered checks if a factory for the given model type is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := factories[name]
	return ok
}

// SetOutput configures the output capability passed to factories on
// subsequent Select calls. The default is Vector.
func SetOutput(o Output) {
	registryMu.Lock()
	defer registryMu.Unlock()
	output = o
}

// CurrentOutput returns the configured output capability.
func CurrentOutput() Output {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return output
}
