package rendering

// SectionKind identifies which generator handles a top-level section
type SectionKind int

// Known section kinds. The zero value is deliberately not a valid kind.
const (
	SectionStyling SectionKind = iota + 1
	SectionPersonalInformation
	SectionEducation
	SectionWorkExperience
	SectionLanguages
	SectionSkills
	SectionVolunteering
)

// Type tags a section must declare for its kind
const (
	TypePersonalInformation = "personal information"
	TypeSection             = "section"
	TypeLeftColumn          = "leftcolumn"
)

// ParseSectionKind maps a top-level section name to its kind.
// "volonteering" is an older spelling still found in existing documents.
func ParseSectionKind(name string) (SectionKind, bool) {
	switch name {
	case "styling":
		return SectionStyling, true
	case "personal information":
		return SectionPersonalInformation, true
	case "education":
		return SectionEducation, true
	case "work experience":
		return SectionWorkExperience, true
	case "languages":
		return SectionLanguages, true
	case "programming":
		return SectionSkills, true
	case "volunteering", "volonteering":
		return SectionVolunteering, true
	default:
		return 0, false
	}
}

// String returns the canonical section name for the kind
func (k SectionKind) String() string {
	switch k {
	case SectionStyling:
		return "styling"
	case SectionPersonalInformation:
		return "personal information"
	case SectionEducation:
		return "education"
	case SectionWorkExperience:
		return "work experience"
	case SectionLanguages:
		return "languages"
	case SectionSkills:
		return "programming"
	case SectionVolunteering:
		return "volunteering"
	default:
		return "unknown"
	}
}

// TypeTag returns the `type` value a section of this kind must carry.
// Styling sections are not tagged and return "".
func (k SectionKind) TypeTag() string {
	switch k {
	case SectionPersonalInformation:
		return TypePersonalInformation
	case SectionEducation, SectionWorkExperience, SectionVolunteering:
		return TypeSection
	case SectionLanguages, SectionSkills:
		return TypeLeftColumn
	default:
		return ""
	}
}
