package domain

import (
	"fmt"
	"strings"

	"github.com/ipfs/go-cid"
)

const ipfsScheme = "ipfs://"

// ResolveCID extracts and validates the content identifier of an ipfs:// URI,
// an /ipfs/<cid> gateway path or a bare CID.
func ResolveCID(uri string) (string, error) {
	s := strings.TrimSpace(uri)
	switch {
	case strings.HasPrefix(s, ipfsScheme):
		s = strings.TrimPrefix(s, ipfsScheme)
	case strings.Contains(s, "/ipfs/"):
		s = s[strings.Index(s, "/ipfs/")+len("/ipfs/"):]
	}
	// drop any path below the root object
	if i := strings.IndexAny(s, "/?#"); i >= 0 {
		s = s[:i]
	}
	c, err := cid.Decode(s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidCID, uri)
	}
	return c.String(), nil
}

// IpfsURI formats a content identifier as an ipfs:// URI
func IpfsURI(c string) string {
	return ipfsScheme + c
}
