package assets

import (
	"strings"

	"image-gateway/internal/mediatypes"
)

// Negotiation is the outcome of resolving a request's target format.
type Negotiation struct {
	Format mediatypes.Format
	// ByAccept is true when the format was chosen from Accept-header
	// signaling against a precomputed sibling rather than from an explicit
	// parameter or the request path. Responses negotiated this way carry
	// Vary: Accept.
	ByAccept bool
}

// Negotiate resolves the format a request is served in.
//
// Resolution order: an explicit format parameter wins verbatim; otherwise,
// when the client accepts image/webp, the path does not already name webp
// and a precomputed <id>.webp sibling exists, webp is selected; otherwise
// the format implied by the request path's extension applies, with the
// origin file's own format as the fallback for extensionless paths.
func (s *Store) Negotiate(id, formatParam, accept, pathExt string, origin mediatypes.Format) (Negotiation, error) {
	if formatParam != "" {
		f, err := mediatypes.ParseFormat(formatParam)
		if err != nil {
			return Negotiation{}, err
		}
		return Negotiation{Format: f}, nil
	}

	pathExt = strings.ToLower(strings.TrimPrefix(pathExt, "."))

	if strings.Contains(accept, mediatypes.FormatWebP.MimeType()) &&
		pathExt != string(mediatypes.FormatWebP) &&
		s.SiblingExists(id, mediatypes.FormatWebP) {
		return Negotiation{Format: mediatypes.FormatWebP, ByAccept: true}, nil
	}

	if pathExt != "" {
		f, err := mediatypes.ParseFormat(pathExt)
		if err != nil {
			return Negotiation{}, err
		}
		return Negotiation{Format: f}, nil
	}
	return Negotiation{Format: origin}, nil
}
