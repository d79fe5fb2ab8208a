package eligibility

import (
	"fmt"

	"github.com/skyline-aviation/crew-staffing-api/internal/domain"
)

// Color is the badge color shown next to a crew member.
type Color string

const (
	ColorGreen  Color = "green"
	ColorYellow Color = "yellow"
	ColorRed    Color = "red"
	ColorGray   Color = "gray"
)

const (
	StatusTextInactive              = "Inactive"
	StatusTextMissingQualifications = "Missing qualifications"
	StatusTextAvailable             = "Available"
)

// Status is the display badge for a crew member.
type Status struct {
	Text  string
	Color Color
}

// DeriveStatus picks the badge. First match wins:
//  1. account not active: Inactive, gray
//  2. not eligible: Missing qualifications, red
//  3. any missing documents: "{n} docs missing", yellow
//  4. otherwise: Available, green
func DeriveStatus(c domain.CrewMember, eligible bool, missingDocuments []string) Status {
	switch {
	case !c.IsActive():
		return Status{Text: StatusTextInactive, Color: ColorGray}
	case !eligible:
		return Status{Text: StatusTextMissingQualifications, Color: ColorRed}
	case len(missingDocuments) > 0:
		return Status{Text: fmt.Sprintf("%d docs missing", len(missingDocuments)), Color: ColorYellow}
	default:
		return Status{Text: StatusTextAvailable, Color: ColorGreen}
	}
}
