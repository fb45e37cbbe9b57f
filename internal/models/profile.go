package models

import "strings"

// DefaultRegion is the region of a profile that has not chosen one
const DefaultRegion = "Barcha hududlar"

// BusinessProfile describes the entrepreneur and the business
type BusinessProfile struct {
	Name          string `json:"name"`
	Region        string `json:"region"`
	FirstName     string `json:"firstName,omitempty"`
	LastName      string `json:"lastName,omitempty"`
	Username      string `json:"username,omitempty"`
	Phone         string `json:"phone,omitempty"`
	BusinessName  string `json:"businessName,omitempty"`
	TIN           string `json:"tin,omitempty"`
	LegalForm     string `json:"legalForm,omitempty"`
	ActivityType  string `json:"activityType,omitempty"`
	DirectorName  string `json:"directorName,omitempty"`
	Email         string `json:"email,omitempty"`
	Address       string `json:"address,omitempty"`
	EmployeeCount *int   `json:"employeeCount,omitempty"`
}

// NewBusinessProfile returns the default profile
func NewBusinessProfile() BusinessProfile {
	return BusinessProfile{Region: DefaultRegion}
}

// Normalize trims names and restores the default region
func (p *BusinessProfile) Normalize() {
	p.Name = strings.TrimSpace(p.Name)
	p.Region = strings.TrimSpace(p.Region)
	if p.Region == "" {
		p.Region = DefaultRegion
	}
}

// IsEmpty reports whether no business data has been filled in
func (p *BusinessProfile) IsEmpty() bool {
	return *p == BusinessProfile{} || *p == NewBusinessProfile()
}

// Field returns the value of a profile field by its JSON name.
// The second result is false when the field is unknown or not set.
func (p *BusinessProfile) Field(name string) (string, bool) {
	var value string
	switch name {
	case "name":
		value = p.Name
	case "region":
		value = p.Region
	case "firstName":
		value = p.FirstName
	case "lastName":
		value = p.LastName
	case "username":
		value = p.Username
	case "phone":
		value = p.Phone
	case "businessName":
		value = p.BusinessName
	case "tin":
		value = p.TIN
	case "legalForm":
		value = p.LegalForm
	case "activityType":
		value = p.ActivityType
	case "directorName":
		value = p.DirectorName
	case "email":
		value = p.Email
	case "address":
		value = p.Address
	case "employeeCount":
		if p.EmployeeCount == nil {
			return "", false
		}
		return "set", true
	default:
		return "", false
	}
	value = strings.TrimSpace(value)
	return value, value != ""
}
