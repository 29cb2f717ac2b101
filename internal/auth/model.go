package auth

// User is the domain entity. Password holds the bcrypt hash and never
// serializes.
type User struct {
	ID       string `json:"id"`
	Name     string `json:"name,omitempty"`
	Email    string `json:"email"`
	Password string `json:"-"`
	Role     string `json:"role,omitempty"`

	// optional profile fields
	Phone             string `json:"phone,omitempty"`
	Address           string `json:"address,omitempty"`
	DateOfBirth       string `json:"dateOfBirth,omitempty"`
	Gender            string `json:"gender,omitempty"`
	EmergencyContact  string `json:"emergencyContact,omitempty"`
	Allergies         string `json:"allergies,omitempty"`
	MedicalConditions string `json:"medicalConditions,omitempty"`
}

// ProfileUpdate carries partial profile changes; empty fields are left as-is.
type ProfileUpdate struct {
	Name              string `json:"name"`
	Phone             string `json:"phone"`
	Address           string `json:"address"`
	DateOfBirth       string `json:"dateOfBirth"`
	Gender            string `json:"gender"`
	EmergencyContact  string `json:"emergencyContact"`
	Allergies         string `json:"allergies"`
	MedicalConditions string `json:"medicalConditions"`
}
