package sweep

import (
	"fmt"

	"github.com/khaledhosny/astrolabe/pkg/settings"
	"github.com/khaledhosny/astrolabe/pkg/text"
)

// Hemisphere returns the letter encoded into filenames and labels: N for
// latitudes at or above the equator, S below it.
func Hemisphere(latitude int) string {
	if latitude < 0 {
		return "S"
	}
	return "N"
}

func absLatitude(latitude int) int {
	if latitude < 0 {
		return -latitude
	}
	return latitude
}

// LatitudeLabel renders the human-readable latitude, e.g. "52°N".
func LatitudeLabel(latitude int) string {
	return fmt.Sprintf("%d°%s", absLatitude(latitude), Hemisphere(latitude))
}

// PartName returns the extension-less filename for one part. The magnitude
// is zero-padded to two digits; three-digit magnitudes pass through
// untruncated.
func PartName(kind string, latitude int, language string, typ settings.InstrumentType) string {
	return fmt.Sprintf("%s_%02d%s_%s_%s", kind, absLatitude(latitude), Hemisphere(latitude), language, typ)
}

// DocumentName returns the filename of the assembly document for one
// (language, type, latitude) triple.
func DocumentName(latitude int, language string, typ settings.InstrumentType) string {
	return fmt.Sprintf("astrolabe_%02d%s_%s_%s.tex", absLatitude(latitude), Hemisphere(latitude), language, typ)
}

// LanguageSuffix collapses the default language to an empty suffix; other
// languages become "_{lang}". The rule itself lives in pkg/text next to
// the catalogue; this is a convenience re-export for naming callers.
func LanguageSuffix(language string) string {
	return text.LanguageSuffix(language)
}
