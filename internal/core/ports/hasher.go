package ports

// Hasher computes short, deterministic, non-cryptographic fingerprints.
//
//go:generate mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Hasher interface {
	// Hash returns the fingerprint of data as a compact alphanumeric string.
	Hash(data string) string
}
