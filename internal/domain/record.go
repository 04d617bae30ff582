package domain

// Record is the normalized metadata output for a resolved link.
//
// All fields are strings. Year is the leading four characters of whatever
// date representation the platform published, never a parsed date, so
// non-numeric platform data round-trips unmodified. A field may be empty
// only where the owning adapter declares an explicit fallback; adapters
// never substitute empty strings for data they failed to extract.
type Record struct {
	Title   string `json:"title"`
	Channel string `json:"channel"`
	Year    string `json:"year"`
	URL     string `json:"url"`
}

// Classification is the outcome of the link classifier: the host-specific
// normalized link plus the host it belongs to. It is transient, constructed
// per request and never persisted.
type Classification struct {
	Link string
	Host Host
}
