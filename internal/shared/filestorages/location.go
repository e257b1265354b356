package filestorages

import (
	"fmt"
	"strings"
)

// FormatLocation renders scheme://bucket/key.
func FormatLocation(scheme, bucket, key string) string {
	return fmt.Sprintf("%s://%s/%s", scheme, bucket, key)
}

// ParseLocation splits a location produced by FormatLocation.
func ParseLocation(location string) (scheme, bucket, key string, err error) {
	scheme, rest, ok := strings.Cut(location, "://")
	if !ok || scheme == "" {
		return "", "", "", fmt.Errorf("%w: %q", ErrInvalidLocation, location)
	}
	bucket, key, ok = strings.Cut(rest, "/")
	if !ok || bucket == "" || key == "" {
		return "", "", "", fmt.Errorf("%w: %q", ErrInvalidLocation, location)
	}
	return scheme, bucket, key, nil
}

// KeyOf resolves location to a key of storage, rejecting locations in other buckets.
func KeyOf(storage FileStorage, location string) (string, error) {
	_, _, key, err := ParseLocation(location)
	if err != nil {
		return "", err
	}
	if storage.Location(key) != location {
		return "", fmt.Errorf("%w: %q is not in bucket %q", ErrInvalidLocation, location, storage.Bucket())
	}
	return key, nil
}
