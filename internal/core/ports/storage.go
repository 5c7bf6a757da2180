package ports

// KeyValue is the durable local storage used for the session token, the
// cached profile, and the client-only cart snapshot. Implementations are
// synchronous and last-writer-wins; values are opaque strings.
type KeyValue interface {
	// Get returns the stored value and whether the key was present.
	Get(key string) (string, bool)
	Set(key, value string) error
	Delete(key string) error
}

// Storage keys shared by the session store and the cart snapshot.
const (
	StorageKeyToken = "token"
	StorageKeyUser  = "user"
	StorageKeyCart  = "cart"
)
