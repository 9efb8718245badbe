package profiles

import (
	"fmt"
	"regexp"
	"strings"

	gerrors "github.com/PolarWolf314/gswitch/internal/errors"
	"golang.org/x/crypto/ssh"
)

// KeyKind is the signing format a key belongs to.
type KeyKind int

const (
	KeyNone KeyKind = iota
	KeyGPG
	KeySSH
	// KeyUnknown is a key git may read as either format, such as a private
	// SSH key path or a GPG user id.
	KeyUnknown
)

func (k KeyKind) String() string {
	switch k {
	case KeyGPG:
		return "gpg"
	case KeySSH:
		return "ssh"
	case KeyUnknown:
		return "unknown"
	default:
		return "none"
	}
}

// git accepts literal SSH keys in user.signingkey when prefixed with "key::".
const literalKeyPrefix = "key::"

var sshKeyTypePrefixes = []string{"ssh-", "ecdsa-", "sk-"}

var gpgKeyID = regexp.MustCompile(`^(0x)?[0-9A-Fa-f]{8,40}!?$`)

// SigningKind classifies a user.signingkey value. Literal SSH public keys are
// parsed and rejected with ErrInvalidProfile when malformed. Paths to .pub
// files are treated as SSH keys without reading them. Hex key ids and
// fingerprints are GPG keys, and anything else is KeyUnknown.
func SigningKind(key string) (KeyKind, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return KeyNone, nil
	}

	if strings.HasSuffix(key, ".pub") {
		return KeySSH, nil
	}

	literal := strings.TrimPrefix(key, literalKeyPrefix)
	if !isSSHLiteral(literal) {
		if gpgKeyID.MatchString(key) {
			return KeyGPG, nil
		}
		return KeyUnknown, nil
	}

	if _, _, _, _, err := ssh.ParseAuthorizedKey([]byte(literal)); err != nil {
		return KeyNone, fmt.Errorf("%w: signing key is not a valid SSH public key: %v", gerrors.ErrInvalidProfile, err)
	}
	return KeySSH, nil
}

func isSSHLiteral(key string) bool {
	for _, prefix := range sshKeyTypePrefixes {
		if strings.HasPrefix(key, prefix) {
			return true
		}
	}
	return false
}
