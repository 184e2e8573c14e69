// Package intern provides canonical string storage for argument keys.
// Registering and matching both look up the same keys repeatedly, so the
// registry keeps a single owned copy of every key and hands it out instead
// of re-slicing caller argv.
package intern

import "sync"

// Keys is a thread-safe canonical store for argument key strings.
type Keys struct {
	strings map[string]string
	mutex   sync.RWMutex
}

// NewKeys creates a key store with optional pre-allocated capacity.
func NewKeys(capacity int) *Keys {
	if capacity <= 0 {
		capacity = 32
	}
	return &Keys{
		strings: make(map[string]string, capacity),
	}
}

// Canonical returns the owned copy of s, storing one on first sight.
func (k *Keys) Canonical(s string) string {
	k.mutex.RLock()
	if owned, exists := k.strings[s]; exists {
		k.mutex.RUnlock()
		return owned
	}
	k.mutex.RUnlock()

	k.mutex.Lock()
	defer k.mutex.Unlock()

	if owned, exists := k.strings[s]; exists {
		return owned
	}

	// Force a copy so the stored key never aliases caller argv.
	owned := string(append([]byte(nil), s...))
	k.strings[owned] = owned
	return owned
}

// Len returns the number of stored keys.
func (k *Keys) Len() int {
	k.mutex.RLock()
	defer k.mutex.RUnlock()
	return len(k.strings)
}

// Clear removes all stored keys.
func (k *Keys) Clear() {
	k.mutex.Lock()
	defer k.mutex.Unlock()

	for s := range k.strings {
		delete(k.strings, s)
	}
}

// Pre-built two-byte short flag keys so "-x" lookups during matching never
// allocate. a-z (0-25), A-Z (26-51), 0-9 (52-61).
var shortFlagKeys = [62]string{
	"-a", "-b", "-c", "-d", "-e", "-f", "-g", "-h", "-i", "-j", "-k", "-l", "-m",
	"-n", "-o", "-p", "-q", "-r", "-s", "-t", "-u", "-v", "-w", "-x", "-y", "-z",
	"-A", "-B", "-C", "-D", "-E", "-F", "-G", "-H", "-I", "-J", "-K", "-L", "-M",
	"-N", "-O", "-P", "-Q", "-R", "-S", "-T", "-U", "-V", "-W", "-X", "-Y", "-Z",
	"-0", "-1", "-2", "-3", "-4", "-5", "-6", "-7", "-8", "-9",
}

// ShortFlag returns the canonical "-x" key for a single flag character.
func ShortFlag(b byte) string {
	if b >= 'a' && b <= 'z' {
		return shortFlagKeys[b-'a']
	}
	if b >= 'A' && b <= 'Z' {
		return shortFlagKeys[26+b-'A']
	}
	if b >= '0' && b <= '9' {
		return shortFlagKeys[52+b-'0']
	}
	return "-" + string(rune(b))
}

// IsAlpha reports whether b is an ASCII letter, the only characters
// accepted as short flag names.
func IsAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
