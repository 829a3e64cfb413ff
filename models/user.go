package models

// Identity is the authenticated user's public record. It is the value
// persisted under the "user" storage key.
type Identity struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	IsAdmin bool   `json:"isAdmin"`
}

// Address is the postal part of a profile.
type Address struct {
	Street   string `json:"street"`
	City     string `json:"city"`
	Postcode string `json:"postcode"`
	Country  string `json:"country"`
}

// Preferences holds per-user notification switches.
type Preferences struct {
	EmailNotifications bool `json:"emailNotifications"`
	Marketing          bool `json:"marketing"`
}

// Profile is the optional extended data attached to an identity. All fields
// may be absent; updates are shallow merges of the present fields.
type Profile struct {
	Address     *Address     `json:"address,omitempty"`
	Phone       string       `json:"phone,omitempty"`
	Preferences *Preferences `json:"preferences,omitempty"`
}

// ProfilePatch is a partial profile update. Nil fields are left untouched.
type ProfilePatch struct {
	Address     *Address     `json:"address,omitempty"`
	Phone       *string      `json:"phone,omitempty"`
	Preferences *Preferences `json:"preferences,omitempty"`
}

// Apply merges the patch into p, field by field.
func (p *Profile) Apply(patch ProfilePatch) {
	if patch.Address != nil {
		p.Address = patch.Address
	}
	if patch.Phone != nil {
		p.Phone = *patch.Phone
	}
	if patch.Preferences != nil {
		p.Preferences = patch.Preferences
	}
}
