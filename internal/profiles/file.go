package profiles

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/afero"

	"github.com/PolarWolf314/gswitch/internal/configs"
	gerrors "github.com/PolarWolf314/gswitch/internal/errors"
)

type document struct {
	CurrentProfile string            `toml:"current_profile"`
	Profiles       map[string]record `toml:"profiles"`
}

type header struct {
	CurrentProfile string `toml:"current_profile,omitempty"`
}

type record struct {
	UserName string `toml:"user_name,omitempty"`
	// Name is the user name as written by older releases.
	Name       string `toml:"name,omitempty"`
	Email      string `toml:"email"`
	SigningKey string `toml:"signing_key,omitempty"`
}

var bareKey = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// Load reads the store at path. A missing file is an empty store.
func Load(fs afero.Fs, path string) (*Store, error) {
	content, err := afero.ReadFile(fs, path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return NewStore(), nil
		}
		return nil, fmt.Errorf("%w: reading %s: %v", gerrors.ErrIO, path, err)
	}

	var doc document
	md, err := configs.DecodeTOML(content, &doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", gerrors.ErrConfigCorrupt, path, err)
	}
	if err := checkTypes(md); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", gerrors.ErrConfigCorrupt, path, err)
	}

	store := NewStore()
	for _, name := range documentOrder(md, doc) {
		rec := doc.Profiles[name]
		p := Profile{
			Name:       name,
			UserName:   rec.UserName,
			Email:      rec.Email,
			SigningKey: rec.SigningKey,
		}
		if p.UserName == "" {
			p.UserName = rec.Name
		}
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %s: profile %q: %v", gerrors.ErrConfigCorrupt, path, name, err)
		}
		store.Upsert(p)
	}

	if _, ok := store.Get(doc.CurrentProfile); ok {
		store.Current = doc.CurrentProfile
	}
	return store, nil
}

// checkTypes rejects top-level keys that decode silently into zero values
// when their TOML type is wrong.
func checkTypes(md toml.MetaData) error {
	for _, want := range []struct{ key, typ string }{
		{"current_profile", "String"},
		{"profiles", "Hash"},
	} {
		if md.IsDefined(want.key) && md.Type(want.key) != want.typ {
			return fmt.Errorf("%s must be a %s, got %s", want.key, strings.ToLower(want.typ), strings.ToLower(md.Type(want.key)))
		}
	}
	return nil
}

// Save writes store to path atomically, creating parent directories.
func Save(fs afero.Fs, path string, store *Store) error {
	content, err := Encode(store)
	if err != nil {
		return fmt.Errorf("%w: encoding profile store: %v", gerrors.ErrIO, err)
	}
	if err := configs.WriteFileAtomic(fs, path, content, 0600); err != nil {
		return fmt.Errorf("%w: %v", gerrors.ErrIO, err)
	}
	return nil
}

// Encode renders store as a TOML document with profile tables in insertion
// order.
func Encode(store *Store) ([]byte, error) {
	var buf bytes.Buffer

	top, err := configs.EncodeTOML(header{CurrentProfile: store.Current})
	if err != nil {
		return nil, err
	}
	buf.Write(top)

	for _, p := range store.List() {
		if buf.Len() > 0 {
			buf.WriteString("\n")
		}
		fmt.Fprintf(&buf, "[profiles.%s]\n", tableKey(p.Name))

		body, err := configs.EncodeTOML(record{
			UserName:   p.UserName,
			Email:      p.Email,
			SigningKey: p.SigningKey,
		})
		if err != nil {
			return nil, fmt.Errorf("encoding profile %q: %w", p.Name, err)
		}
		buf.Write(body)
	}

	return buf.Bytes(), nil
}

func tableKey(name string) string {
	if bareKey.MatchString(name) {
		return name
	}
	return strconv.Quote(name)
}

// documentOrder lists profile names in the order their tables appear.
func documentOrder(md toml.MetaData, doc document) []string {
	seen := make(map[string]bool, len(doc.Profiles))
	var names []string
	for _, key := range md.Keys() {
		if len(key) < 2 || key[0] != "profiles" || seen[key[1]] {
			continue
		}
		if _, ok := doc.Profiles[key[1]]; !ok {
			continue
		}
		seen[key[1]] = true
		names = append(names, key[1])
	}

	var rest []string
	for name := range doc.Profiles {
		if !seen[name] {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	return append(names, rest...)
}
