package store

// Durable storage keys. The bare token/user pair mirrors what the API
// layer reads on every request; the namespaced blobs are the fast
// rehydration mirrors written alongside.
const (
	keyToken      = "token"
	keyUser       = "user"
	keyAuthMirror = "auth-storage"
	keyCart       = "cart-storage"
)
