package profiles

import (
	"fmt"
	"strings"

	gerrors "github.com/PolarWolf314/gswitch/internal/errors"
	"github.com/PolarWolf314/gswitch/internal/utils"
)

// Profile is a named git identity.
type Profile struct {
	Name       string `json:"name" yaml:"name"`
	UserName   string `json:"user_name" yaml:"user_name"`
	Email      string `json:"email" yaml:"email"`
	SigningKey string `json:"signing_key,omitempty" yaml:"signing_key,omitempty"`
}

// HasSigningKey reports whether the profile configures commit signing.
func (p Profile) HasSigningKey() bool {
	return strings.TrimSpace(p.SigningKey) != ""
}

// Validate checks the profile is complete enough to be applied to git.
func (p Profile) Validate() error {
	if !utils.IsValidProfileName(p.Name) {
		return fmt.Errorf("%w: name %q must be non-empty and contain no whitespace", gerrors.ErrInvalidProfile, p.Name)
	}
	if strings.TrimSpace(p.UserName) == "" {
		return fmt.Errorf("%w: profile %q has no user name", gerrors.ErrInvalidProfile, p.Name)
	}
	if !utils.IsValidEmail(p.Email) {
		return fmt.Errorf("%w: %q", gerrors.ErrInvalidEmail, p.Email)
	}
	if _, err := SigningKind(p.SigningKey); err != nil {
		return err
	}
	return nil
}
