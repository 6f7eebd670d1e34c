package badger

// Key layout. All starship records live under one prefix so a prefix scan
// returns the whole catalog in archive-id order. Metadata lives under a
// separate prefix that the catalog scan never touches.
const (
	starshipPrefix = "ss:"
	fingerprintKey = "meta:catalog_fp"
)

func starshipKey(archiveID string) []byte {
	return []byte(starshipPrefix + archiveID)
}
