package domain

import "errors"

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrNotAuthenticated = errors.New("not authenticated")
var ErrMerchantMismatch = errors.New("product belongs to a different merchant")
var ErrOrderNotFound = errors.New("order not found")
var ErrEmptyCart = errors.New("cart is empty")
var ErrSuperseded = errors.New("superseded by a newer operation")
var ErrKeyNotFound = errors.New("key not found")

// Gateway failure classes (see the response mapping in infrastructure/gateway).
var ErrUnauthorized = errors.New("session rejected by the server")
var ErrServer = errors.New("server error")
var ErrConnectivity = errors.New("connectivity error")

// Geolocation failure classes, mirroring the platform capability's
// three rejection reasons.
var ErrGeoPermissionDenied = errors.New("geolocation permission denied")
var ErrGeoUnavailable = errors.New("position unavailable")
var ErrGeoTimeout = errors.New("geolocation timed out")
